package rest

import (
	"net/http"
	"strconv"

	"wikifeed/config"
	"wikifeed/di"
	"wikifeed/utils/errors"

	"github.com/labstack/echo/v4"
)

func registerFeedRoutes(v1 *echo.Group, container *di.ApplicationComponents, cfg *config.Config) {
	v1.GET("/feed", handleFeed(container, cfg))
	v1.GET("/users/:user_id/preferences", handlePreferences(container))
}

// handleFeed serves the personalized feed. Query params: user_id (required),
// count, mix (discovery fraction), exclude (repeatable article id).
func handleFeed(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := parseUUID(c.QueryParam("user_id"), "user_id")
		if err != nil {
			return handleError(c, err, "build_feed")
		}

		count, err := parseLimit(c, "count", cfg.Feed.ArticlesPerPage, cfg.Feed.MaxArticlesPerRequest)
		if err != nil {
			return handleError(c, err, "build_feed")
		}

		mix := -1.0
		if raw := c.QueryParam("mix"); raw != "" {
			mix, err = strconv.ParseFloat(raw, 64)
			if err != nil || mix < 0 || mix > 1 {
				return handleError(c, errors.ValidationError("mix must be a number between 0 and 1", map[string]interface{}{
					"mix": raw,
				}), "build_feed")
			}
		}

		exclude, err := parseUUIDList(c.QueryParams()["exclude"], "exclude")
		if err != nil {
			return handleError(c, err, "build_feed")
		}

		entries, err := container.FeedUsecase.BuildFeed(c.Request().Context(), userID, count, mix, exclude)
		if err != nil {
			return handleError(c, err, "build_feed")
		}

		return c.JSON(http.StatusOK, entries)
	}
}

func handlePreferences(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := parseUUID(c.Param("user_id"), "user_id")
		if err != nil {
			return handleError(c, err, "compute_preferences")
		}

		preferences, err := container.PreferenceUsecase.ComputePreferences(c.Request().Context(), userID)
		if err != nil {
			return handleError(c, err, "compute_preferences")
		}

		weights := make(map[string]float64, len(preferences))
		for category, weight := range preferences {
			weights[category.String()] = weight
		}

		return c.JSON(http.StatusOK, PreferencesResponse{
			UserID:  userID.String(),
			Weights: weights,
		})
	}
}
