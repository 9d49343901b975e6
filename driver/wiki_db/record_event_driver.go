package wiki_db

import (
	"context"

	"wikifeed/domain"
	apperrors "wikifeed/utils/errors"
	"wikifeed/utils/logger"
)

// RecordEvent appends a single engagement event. The insert is one
// statement: it either fully records or fails without partial state.
func (r *WikiDBRepository) RecordEvent(ctx context.Context, event *domain.EngagementEvent) (int64, error) {
	query := `
		INSERT INTO engagement_events (article_id, user_id, event_kind, duration_seconds, scroll_depth)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var eventID int64
	err := r.pool.QueryRow(ctx, query,
		event.ArticleID,
		event.UserID,
		string(event.Kind),
		event.DurationSeconds,
		event.ScrollDepth,
	).Scan(&eventID)
	if err != nil {
		logger.SafeError("error recording engagement event",
			"error", err,
			"article_id", event.ArticleID,
			"user_id", event.UserID,
			"kind", event.Kind)
		return 0, apperrors.DatabaseError("failed to record engagement event", err, map[string]interface{}{
			"article_id": event.ArticleID.String(),
			"user_id":    event.UserID.String(),
			"kind":       string(event.Kind),
		})
	}

	return eventID, nil
}
