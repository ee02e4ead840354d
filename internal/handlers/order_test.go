package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func uploadRequest(t *testing.T, content []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("order", "order.bin")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/bookings/orders", body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func TestOrderUpload(t *testing.T) {
	dir := t.TempDir()
	e := echo.New()
	h := NewOrderHTTPHandler(dir)

	t.Log("png scan is stored")
	{
		png := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 64)...)
		rec := httptest.NewRecorder()
		require.NoError(t, h.Upload(e.NewContext(uploadRequest(t, png), rec)))
		require.Equal(t, http.StatusCreated, rec.Code)

		var doc orderDocument
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
		require.True(t, strings.HasSuffix(doc.Reference, ".png"), "extension must follow content")

		stored, err := os.ReadFile(filepath.Join(dir, doc.Reference))
		require.NoError(t, err, "document must be stored")
		require.Equal(t, png, stored)
	}

	t.Log("plain text is rejected")
	{
		rec := httptest.NewRecorder()
		err := h.Upload(e.NewContext(uploadRequest(t, []byte("just some text")), rec))

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		require.Equal(t, http.StatusBadRequest, httpErr.Code)
	}
}
