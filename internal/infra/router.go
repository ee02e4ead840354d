package infra

import (
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/imaging-leads/internal/config"
	"github.com/umalmyha/imaging-leads/internal/handlers"
	"github.com/umalmyha/imaging-leads/internal/middleware"

	echoSwagger "github.com/swaggo/echo-swagger"
	echomw "github.com/labstack/echo/v4/middleware"
	_ "github.com/umalmyha/imaging-leads/docs" // swagger docs
)

// Router builds echo instance with all http routes registered
func Router(cfg *config.Config, svcs *Services) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = svcs.Validator
	e.HTTPErrorHandler = handlers.ErrorHandler(e)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			logrus.WithFields(logrus.Fields{
				"method":  v.Method,
				"uri":     v.URI,
				"status":  v.Status,
				"latency": v.Latency.String(),
			}).Info("http request")
			return nil
		},
	}))

	// Middleware
	authorizeMw := middleware.Authorize(svcs.JwtValidator)

	// Handlers
	intakeHandler := handlers.NewIntakeHTTPHandler(svcs.Intake)
	orderHandler := handlers.NewOrderHTTPHandler(cfg.HTTPCfg.UploadsDir)
	locationHandler := handlers.NewLocationHTTPHandler(svcs.Pricing)
	authHandler := handlers.NewAuthHTTPHandler(svcs.Auth)
	submHandler := handlers.NewSubmissionHTTPHandler(svcs.Review, svcs.Lifecycle)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API routes
	api := e.Group("/api")

	// public forms
	api.POST("/submissions", intakeHandler.SubmitLead)
	api.POST("/bookings", intakeHandler.SubmitBooking)
	api.POST("/bookings/orders", orderHandler.Upload)
	api.GET("/locations", locationHandler.Find)

	// auth
	authAPI := api.Group("/auth")
	authAPI.POST("/login", authHandler.Login)

	// staff review
	submAPI := api.Group("/admin/submissions", authorizeMw)
	submAPI.GET("", submHandler.GetAll)
	submAPI.GET("/export", submHandler.Export)
	submAPI.GET("/:id", submHandler.Get)
	submAPI.POST("", submHandler.Post)
	submAPI.PUT("/:id", submHandler.Put)
	submAPI.PATCH("/:id", submHandler.Patch)
	submAPI.POST("/:id/cycle", submHandler.Cycle)
	submAPI.POST("/:id/deletion", submHandler.RequestDeletion)
	submAPI.DELETE("/:id", submHandler.DeleteByID)
	submAPI.DELETE("/:id/deletion/:ticket", submHandler.CancelDeletion)

	return e
}
