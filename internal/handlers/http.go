package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/imaging-leads/internal/validation"

	apperrors "github.com/umalmyha/imaging-leads/internal/errors"
)

// ErrorHandler converts errors raised by handlers to http responses
func ErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			logrus.Errorf("error occurred after response was committed - %v", err)
			return
		}

		code, body := errorResponse(err)
		if code == 0 {
			logrus.Errorf("error occurred on http request processing - %v", err)
			e.DefaultHTTPErrorHandler(err, c)
			return
		}

		entry := logrus.WithFields(logrus.Fields{"method": c.Request().Method, "uri": c.Request().RequestURI, "status": code})
		if code >= http.StatusInternalServerError {
			entry.Errorf("request failed - %v", err)
		} else {
			entry.Debugf("request rejected - %v", err)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, body)
		}

		if err != nil {
			logrus.Errorf("failed to send error response - %v", err)
		}
	}
}

func errorResponse(err error) (int, any) {
	var pldErr *validation.PayloadError
	if errors.As(err, &pldErr) {
		return http.StatusBadRequest, pldErr
	}

	var businessErr *apperrors.BusinessErr
	if errors.As(err, &businessErr) {
		return http.StatusBadRequest, businessErr
	}

	var notFoundErr *apperrors.EntryNotFoundErr
	if errors.As(err, &notFoundErr) {
		return http.StatusNotFound, echo.Map{"message": notFoundErr.Error()}
	}

	if errors.Is(err, apperrors.ErrVersionConflict) {
		return http.StatusConflict, echo.Map{"message": err.Error()}
	}

	if errors.Is(err, apperrors.ErrDeleteNotConfirmed) {
		return http.StatusPreconditionFailed, echo.Map{"message": err.Error()}
	}

	var storeErr *apperrors.StoreErr
	if errors.As(err, &storeErr) {
		return http.StatusServiceUnavailable, echo.Map{"message": "datastore is unavailable, please try again later"}
	}

	return 0, nil
}

func submissionID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, validation.NewPayloadError("id", "id must be a positive integer")
	}
	return id, nil
}
