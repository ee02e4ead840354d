package handlers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const mimeBytesNumber = 512

type orderDocument struct {
	Reference string `json:"reference"`
}

// OrderHTTPHandler is http handler for doctor's order uploads
type OrderHTTPHandler struct {
	dir            string
	validMimeTypes map[string]string
}

// NewOrderHTTPHandler builds new OrderHTTPHandler, documents are stored in dir
func NewOrderHTTPHandler(dir string) *OrderHTTPHandler {
	return &OrderHTTPHandler{
		dir: dir,
		validMimeTypes: map[string]string{
			"image/gif":       ".gif",
			"image/jpeg":      ".jpg",
			"image/png":       ".png",
			"image/tiff":      ".tiff",
			"image/webp":      ".webp",
			"application/pdf": ".pdf",
		},
	}
}

// Upload uploads doctor's order
// @Summary     Upload doctor's order
// @Description Stores scan or photo of doctor's order, returned reference is sent with booking
// @Tags        intake
// @Accept      mpfd
// @Produce     json
// @Param       order formData file true "Doctor's order"
// @Success     201   {object} orderDocument
// @Failure     400   {object} echo.HTTPError
// @Failure     500   {object} echo.HTTPError
// @Router      /api/bookings/orders [post]
func (h *OrderHTTPHandler) Upload(c echo.Context) error {
	fileHdr, err := c.FormFile("order")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	file, err := fileHdr.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("failed to load file content - %v", err))
	}
	defer file.Close()

	mimeBuff := make([]byte, mimeBytesNumber)
	n, err := file.Read(mimeBuff)
	if err != nil && err != io.EOF {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	mimeType := http.DetectContentType(mimeBuff[:n])
	ext, ok := h.validMimeTypes[mimeType]
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("MIME type %s is not allowed", mimeType))
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := os.MkdirAll(h.dir, 0o750); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(h.dir, name))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if _, err := io.Copy(dst, file); err != nil {
		_ = dst.Close()
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := dst.Close(); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, &orderDocument{Reference: name})
}
