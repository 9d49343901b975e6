package rest

import (
	"net/http"
	"strconv"

	"wikifeed/di"
	"wikifeed/utils/errors"

	"github.com/labstack/echo/v4"
)

func registerSessionRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	v1.POST("/sessions", handleStartSession(container))
	v1.POST("/sessions/:id/end", handleEndSession(container))
	v1.GET("/users/:user_id/sessions", handleRecentSessions(container))
}

func handleStartSession(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var payload StartSessionPayload
		if err := c.Bind(&payload); err != nil {
			return handleError(c, errors.ValidationError("invalid request body", nil), "start_session")
		}

		userID, err := parseUUID(payload.UserID, "user_id")
		if err != nil {
			return handleError(c, err, "start_session")
		}

		sessionID, err := container.SessionUsecase.StartSession(c.Request().Context(), userID)
		if err != nil {
			return handleError(c, err, "start_session")
		}

		return c.JSON(http.StatusCreated, StartSessionResponse{SessionID: sessionID})
	}
}

func handleEndSession(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return handleError(c, errors.ValidationError("id must be an integer", map[string]interface{}{
				"id": c.Param("id"),
			}), "end_session")
		}

		var payload EndSessionPayload
		if err := c.Bind(&payload); err != nil {
			return handleError(c, errors.ValidationError("invalid request body", nil), "end_session")
		}

		err = container.SessionUsecase.EndSession(c.Request().Context(), sessionID,
			payload.ArticlesRead, payload.TotalDurationSeconds)
		if err != nil {
			return handleError(c, err, "end_session")
		}

		return c.JSON(http.StatusOK, MessageResponse{Message: "session ended"})
	}
}

func handleRecentSessions(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := parseUUID(c.Param("user_id"), "user_id")
		if err != nil {
			return handleError(c, err, "recent_sessions")
		}

		limit, err := parseLimit(c, "limit", 20, 100)
		if err != nil {
			return handleError(c, err, "recent_sessions")
		}

		sessions, err := container.SessionUsecase.FetchRecentSessions(c.Request().Context(), userID, limit)
		if err != nil {
			return handleError(c, err, "recent_sessions")
		}

		return c.JSON(http.StatusOK, sessions)
	}
}
