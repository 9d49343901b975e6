package rest

import (
	"wikifeed/config"
	"wikifeed/di"
	middleware_custom "wikifeed/middleware"
	"wikifeed/utils/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	e.Use(middleware_custom.RequestIDMiddleware())
	e.Use(middleware.Recover())
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.Origins(),
		AllowMethods: []string{echo.GET, echo.POST, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "X-Request-ID"},
	}))
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: cfg.Server.ReadTimeout,
	}))
	e.Use(middleware_custom.LoggingMiddleware(logger.Logger))
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/v1/health" || c.Path() == "/metrics"
		},
	}))

	v1 := e.Group("/v1")

	registerStatsRoutes(v1, container)
	registerEngagementRoutes(v1, container)
	registerFeedRoutes(v1, container, cfg)
	registerArticleRoutes(v1, container, cfg)
	registerSessionRoutes(v1, container)
	registerIngestRoutes(v1, container)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
