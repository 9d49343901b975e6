package wiki_db

import (
	"context"
	"time"

	"wikifeed/domain"
	apperrors "wikifeed/utils/errors"
	"wikifeed/utils/logger"

	"github.com/google/uuid"
)

// FetchUserEvents returns the user's events since the given time, each
// joined with its article's categories. This is the raw material of the
// preference learner.
func (r *WikiDBRepository) FetchUserEvents(ctx context.Context, userID uuid.UUID, since time.Time) ([]*domain.CategorizedEvent, error) {
	query := `
		SELECT e.event_kind, e.duration_seconds, e.scroll_depth, e.created_at, a.categories
		FROM engagement_events e
		JOIN articles a ON a.id = e.article_id
		WHERE e.user_id = $1 AND e.created_at > $2
		ORDER BY e.created_at
	`

	rows, err := r.pool.Query(ctx, query, userID, since)
	if err != nil {
		logger.SafeError("error fetching user events", "error", err, "user_id", userID)
		return nil, apperrors.DatabaseError("failed to fetch user events", err, map[string]interface{}{
			"user_id": userID.String(),
		})
	}
	defer rows.Close()

	var events []*domain.CategorizedEvent
	for rows.Next() {
		var (
			event      domain.CategorizedEvent
			kind       string
			categories []string
		)
		if err := rows.Scan(&kind, &event.DurationSeconds, &event.ScrollDepth, &event.CreatedAt, &categories); err != nil {
			logger.SafeError("error scanning user event", "error", err, "user_id", userID)
			return nil, apperrors.DatabaseError("failed to scan user event", err, nil)
		}
		event.Kind = domain.EventKind(kind)
		event.Categories = toCategories(categories)
		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.DatabaseError("failed to read user events", err, nil)
	}

	return events, nil
}

// FetchReadArticleIDs lists distinct articles the user has viewed or read,
// for feed exclusion.
func (r *WikiDBRepository) FetchReadArticleIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT DISTINCT article_id
		FROM engagement_events
		WHERE user_id = $1 AND event_kind IN ('view', 'read')
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		logger.SafeError("error fetching read articles", "error", err, "user_id", userID)
		return nil, apperrors.DatabaseError("failed to fetch read articles", err, map[string]interface{}{
			"user_id": userID.String(),
		})
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, apperrors.DatabaseError("failed to scan read article id", err, nil)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
