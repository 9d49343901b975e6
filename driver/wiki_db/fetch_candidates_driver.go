package wiki_db

import (
	"context"

	"wikifeed/domain"
	apperrors "wikifeed/utils/errors"
	"wikifeed/utils/logger"

	"github.com/google/uuid"
)

// FetchCandidates returns non-excluded articles in descending access-count
// order, optionally restricted to articles carrying at least one of the
// given categories. An empty exclusion slice excludes nothing.
func (r *WikiDBRepository) FetchCandidates(ctx context.Context, excludeIDs []uuid.UUID, categoryIn []domain.Category, limit int) ([]*domain.Article, error) {
	if excludeIDs == nil {
		excludeIDs = []uuid.UUID{}
	}

	var (
		query string
		args  []any
	)
	if len(categoryIn) > 0 {
		query = `
			SELECT ` + articleColumns + `
			FROM articles
			WHERE NOT (id = ANY($1)) AND categories && $2
			ORDER BY access_count DESC, created_at DESC
			LIMIT $3
		`
		args = []any{excludeIDs, fromCategories(categoryIn), limit}
	} else {
		query = `
			SELECT ` + articleColumns + `
			FROM articles
			WHERE NOT (id = ANY($1))
			ORDER BY access_count DESC, created_at DESC
			LIMIT $2
		`
		args = []any{excludeIDs, limit}
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		logger.SafeError("error fetching candidates", "error", err, "limit", limit)
		return nil, apperrors.DatabaseError("failed to fetch candidates", err, map[string]interface{}{
			"limit": limit,
		})
	}

	return scanArticles(rows)
}

// FetchRandomCandidates samples non-excluded articles uniformly without
// replacement.
func (r *WikiDBRepository) FetchRandomCandidates(ctx context.Context, excludeIDs []uuid.UUID, limit int) ([]*domain.Article, error) {
	if excludeIDs == nil {
		excludeIDs = []uuid.UUID{}
	}

	query := `
		SELECT ` + articleColumns + `
		FROM articles
		WHERE NOT (id = ANY($1))
		ORDER BY RANDOM()
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, excludeIDs, limit)
	if err != nil {
		logger.SafeError("error fetching random candidates", "error", err, "limit", limit)
		return nil, apperrors.DatabaseError("failed to fetch random candidates", err, map[string]interface{}{
			"limit": limit,
		})
	}

	return scanArticles(rows)
}
