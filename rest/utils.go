package rest

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"wikifeed/domain"
	"wikifeed/utils/errors"
	"wikifeed/utils/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// handleError maps domain and application errors onto HTTP responses.
// Validation problems are the caller's fault, missing rows are 404, and
// everything else is reported as an internal failure without leaking the
// underlying cause.
func handleError(c echo.Context, err error, operation string) error {
	ctx := c.Request().Context()

	if stderrors.Is(err, domain.ErrArticleNotFound) || stderrors.Is(err, domain.ErrSessionNotFound) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	}

	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		switch appErr.Code {
		case errors.ErrCodeValidation:
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: appErr.Message,
				Code:  string(appErr.Code),
			})
		case errors.ErrCodeNotFound:
			return c.JSON(http.StatusNotFound, ErrorResponse{
				Error: appErr.Message,
				Code:  string(appErr.Code),
			})
		case errors.ErrCodeExternalAPI, errors.ErrCodeTimeout:
			logger.Logger.ErrorContext(ctx, "upstream failure", "error", err, "operation", operation)
			return c.JSON(http.StatusBadGateway, ErrorResponse{
				Error: "upstream service unavailable",
				Code:  string(appErr.Code),
			})
		}
	}

	logger.Logger.ErrorContext(ctx, "request failed", "error", err, "operation", operation)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

func parseUUID(value, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, errors.ValidationError(field+" must be a valid UUID", map[string]interface{}{
			field: value,
		})
	}
	return id, nil
}

// parseLimit reads an optional positive integer query param, clamped to
// maxValue. Absent or empty falls back to fallback.
func parseLimit(c echo.Context, name string, fallback, maxValue int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, errors.ValidationError(name+" must be a positive integer", map[string]interface{}{
			name: raw,
		})
	}

	if value > maxValue {
		value = maxValue
	}
	return value, nil
}

// parseUUIDList parses a repeated query param into UUIDs.
func parseUUIDList(values []string, field string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(values))
	for _, value := range values {
		id, err := parseUUID(value, field)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
