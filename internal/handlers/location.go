package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/imaging-leads/internal/intake"
	"github.com/umalmyha/imaging-leads/internal/pricing"
	"github.com/umalmyha/imaging-leads/internal/validation"
)

type locationQuery struct {
	ZipCode     string `query:"zip_code" validate:"required,zipcode"`
	ImagingType string `query:"imaging_type" validate:"required"`
}

// LocationHTTPHandler is http handler for imaging centers lookup
type LocationHTTPHandler struct {
	provider pricing.Provider
}

// NewLocationHTTPHandler builds new LocationHTTPHandler
func NewLocationHTTPHandler(provider pricing.Provider) *LocationHTTPHandler {
	return &LocationHTTPHandler{provider: provider}
}

// Find finds imaging centers
// @Summary     Find imaging centers
// @Description Returns imaging centers near zip code offering requested scan, cheapest first
// @Tags        locations
// @Produce     json
// @Param       zip_code     query    string true "5-digit ZIP code"
// @Param       imaging_type query    string true "Imaging type"
// @Success     200          {array}  model.ScanLocation
// @Failure     400          {object} validation.PayloadError
// @Failure     500          {object} echo.HTTPError
// @Router      /api/locations [get]
func (h *LocationHTTPHandler) Find(c echo.Context) error {
	var q locationQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&q); err != nil {
		return err
	}

	t, ok := intake.NormalizeImagingType(q.ImagingType)
	if !ok {
		return validation.NewPayloadError("imaging_type", fmt.Sprintf("imaging type %s is not supported", q.ImagingType))
	}

	locations, err := h.provider.Locations(c.Request().Context(), q.ZipCode, t)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, locations)
}
