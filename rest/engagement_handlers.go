package rest

import (
	"net/http"

	"wikifeed/di"
	"wikifeed/domain"
	"wikifeed/utils/errors"

	"github.com/labstack/echo/v4"
)

func registerEngagementRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	v1.POST("/engagement/events", handleRecordEvent(container))
	v1.GET("/articles/:id/engagement", handleArticleEngagement(container))
}

func handleRecordEvent(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var payload RecordEventPayload
		if err := c.Bind(&payload); err != nil {
			return handleError(c, errors.ValidationError("invalid request body", nil), "record_event")
		}

		articleID, err := parseUUID(payload.ArticleID, "article_id")
		if err != nil {
			return handleError(c, err, "record_event")
		}

		userID, err := parseUUID(payload.UserID, "user_id")
		if err != nil {
			return handleError(c, err, "record_event")
		}

		eventID, err := container.EngagementUsecase.RecordEvent(c.Request().Context(), &domain.EngagementEvent{
			ArticleID:       articleID,
			UserID:          userID,
			Kind:            domain.EventKind(payload.Kind),
			DurationSeconds: payload.DurationSeconds,
			ScrollDepth:     payload.ScrollDepth,
		})
		if err != nil {
			return handleError(c, err, "record_event")
		}

		return c.JSON(http.StatusCreated, RecordEventResponse{EventID: eventID})
	}
}

func handleArticleEngagement(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		articleID, err := parseUUID(c.Param("id"), "id")
		if err != nil {
			return handleError(c, err, "article_engagement")
		}

		userID, err := parseUUID(c.QueryParam("user_id"), "user_id")
		if err != nil {
			return handleError(c, err, "article_engagement")
		}

		summary, err := container.EngagementUsecase.FetchArticleEngagement(c.Request().Context(), articleID, userID)
		if err != nil {
			return handleError(c, err, "article_engagement")
		}

		return c.JSON(http.StatusOK, summary)
	}
}
