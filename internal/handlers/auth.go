package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/imaging-leads/internal/service"
)

type session struct {
	Token     string `json:"accessToken"`
	ExpiresAt int64  `json:"expiresAt"`
}

type login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthHTTPHandler is http handler for auth endpoint
type AuthHTTPHandler struct {
	authSvc service.AuthService
}

// NewAuthHTTPHandler builds new AuthHTTPHandler
func NewAuthHTTPHandler(authSvc service.AuthService) *AuthHTTPHandler {
	return &AuthHTTPHandler{authSvc: authSvc}
}

// Login logins staff member
// @Summary     Login staff
// @Description Verifies provided credentials, signs access token for dashboard
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       login body     login true "Staff credentials"
// @Success     200   {object} session
// @Failure     400   {object} echo.HTTPError
// @Failure     401   {object} echo.HTTPError
// @Failure     500   {object} echo.HTTPError
// @Router      /api/auth/login [post]
func (h *AuthHTTPHandler) Login(c echo.Context) error {
	var lgn login
	if err := c.Bind(&lgn); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&lgn); err != nil {
		return err
	}

	jwt, err := h.authSvc.Login(c.Request().Context(), lgn.Email, lgn.Password, time.Now().UTC())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &session{
		Token:     jwt.Signed,
		ExpiresAt: jwt.ExpiresAt,
	})
}
