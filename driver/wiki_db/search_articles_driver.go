package wiki_db

import (
	"context"

	"wikifeed/domain"
	apperrors "wikifeed/utils/errors"
	"wikifeed/utils/logger"
)

// SearchArticles matches title or content by case-insensitive substring,
// most popular first.
func (r *WikiDBRepository) SearchArticles(ctx context.Context, searchQuery string, limit int) ([]*domain.Article, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM articles
		WHERE title ILIKE '%' || $1 || '%' OR content ILIKE '%' || $1 || '%'
		ORDER BY access_count DESC, created_at DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, searchQuery, limit)
	if err != nil {
		logger.SafeError("error searching articles", "error", err, "query", searchQuery)
		return nil, apperrors.DatabaseError("failed to search articles", err, map[string]interface{}{
			"query": searchQuery,
		})
	}

	return scanArticles(rows)
}

// BrowseByCategory lists articles in one category by popularity, with no
// preference weighting.
func (r *WikiDBRepository) BrowseByCategory(ctx context.Context, category domain.Category, limit int) ([]*domain.Article, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM articles
		WHERE $1 = ANY(categories)
		ORDER BY access_count DESC, created_at DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, string(category), limit)
	if err != nil {
		logger.SafeError("error browsing category", "error", err, "category", category)
		return nil, apperrors.DatabaseError("failed to browse category", err, map[string]interface{}{
			"category": string(category),
		})
	}

	return scanArticles(rows)
}
