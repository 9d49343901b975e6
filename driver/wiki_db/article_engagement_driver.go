package wiki_db

import (
	"context"

	"wikifeed/domain"
	apperrors "wikifeed/utils/errors"
	"wikifeed/utils/logger"

	"github.com/google/uuid"
)

// FetchArticleEngagement aggregates all events for one (article, user)
// pair. COALESCE keeps averages at 0.0 when no events exist, so the summary
// is always fully populated.
func (r *WikiDBRepository) FetchArticleEngagement(ctx context.Context, articleID, userID uuid.UUID) (*domain.ArticleEngagement, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(AVG(duration_seconds), 0),
			COALESCE(AVG(scroll_depth), 0),
			COUNT(*) FILTER (WHERE event_kind = 'bookmark'),
			COUNT(*) FILTER (WHERE event_kind = 'skip')
		FROM engagement_events
		WHERE article_id = $1 AND user_id = $2
	`

	var summary domain.ArticleEngagement
	err := r.pool.QueryRow(ctx, query, articleID, userID).Scan(
		&summary.ViewCount,
		&summary.AvgDuration,
		&summary.AvgScroll,
		&summary.BookmarkCount,
		&summary.SkipCount,
	)
	if err != nil {
		logger.SafeError("error fetching article engagement", "error", err, "article_id", articleID)
		return nil, apperrors.DatabaseError("failed to fetch article engagement", err, map[string]interface{}{
			"article_id": articleID.String(),
			"user_id":    userID.String(),
		})
	}

	return &summary, nil
}
