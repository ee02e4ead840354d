package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/imaging-leads/internal/intake"
	"github.com/umalmyha/imaging-leads/internal/service"
)

// IntakeHTTPHandler is http handler for public forms
type IntakeHTTPHandler struct {
	intakeSvc service.IntakeService
}

// NewIntakeHTTPHandler builds new IntakeHTTPHandler
func NewIntakeHTTPHandler(intakeSvc service.IntakeService) *IntakeHTTPHandler {
	return &IntakeHTTPHandler{intakeSvc: intakeSvc}
}

// SubmitLead stores lead form
// @Summary     Submit lead
// @Description Stores lead form submitted by site visitor, referrer utm_source is kept
// @Tags        intake
// @Accept      json
// @Produce     json
// @Param       lead body     intake.LeadPayload true "Lead form"
// @Success     201  {object} intakeResponse
// @Failure     400  {object} intakeResponse
// @Failure     503  {object} intakeResponse
// @Router      /api/submissions [post]
func (h *IntakeHTTPHandler) SubmitLead(c echo.Context) error {
	var p intake.LeadPayload
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if p.ReferrerURL == nil {
		if ref := c.Request().Referer(); ref != "" {
			p.ReferrerURL = &ref
		}
	}

	res := h.intakeSvc.SubmitLead(c.Request().Context(), p)
	return c.JSON(intakeStatus(res), newIntakeResponse(res))
}

// SubmitBooking stores booking confirmation
// @Summary     Submit booking
// @Description Stores booking confirmation, only last four digits of card are kept
// @Tags        intake
// @Accept      json
// @Produce     json
// @Param       booking body     intake.BookingPayload true "Booking confirmation"
// @Success     201     {object} intakeResponse
// @Failure     400     {object} intakeResponse
// @Failure     503     {object} intakeResponse
// @Router      /api/bookings [post]
func (h *IntakeHTTPHandler) SubmitBooking(c echo.Context) error {
	var p intake.BookingPayload
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res := h.intakeSvc.SubmitBooking(c.Request().Context(), p)
	return c.JSON(intakeStatus(res), newIntakeResponse(res))
}

func intakeStatus(res intake.Result) int {
	if res.Success {
		return http.StatusCreated
	}

	if res.Kind == intake.FailureValidation {
		return http.StatusBadRequest
	}
	return http.StatusServiceUnavailable
}
