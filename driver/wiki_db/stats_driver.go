package wiki_db

import (
	"context"

	"wikifeed/domain"
	apperrors "wikifeed/utils/errors"
	"wikifeed/utils/logger"
)

func (r *WikiDBRepository) FetchStats(ctx context.Context) (*domain.Stats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM articles),
			(SELECT COUNT(*) FROM engagement_events),
			(SELECT COUNT(*) FROM reading_sessions)
	`

	var stats domain.Stats
	if err := r.pool.QueryRow(ctx, query).Scan(&stats.Articles, &stats.Events, &stats.Sessions); err != nil {
		logger.SafeError("error fetching stats", "error", err)
		return nil, apperrors.DatabaseError("failed to fetch stats", err, nil)
	}

	return &stats, nil
}
