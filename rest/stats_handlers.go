package rest

import (
	"net/http"

	"wikifeed/di"

	"github.com/labstack/echo/v4"
)

func registerStatsRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	v1.GET("/health", handleHealth())
	v1.GET("/stats", handleStats(container))
}

func handleHealth() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, MessageResponse{Message: "ok"})
	}
}

func handleStats(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		stats, err := container.StatsUsecase.FetchStats(c.Request().Context())
		if err != nil {
			return handleError(c, err, "fetch_stats")
		}

		return c.JSON(http.StatusOK, stats)
	}
}
