package wiki_db

import (
	"context"
	"errors"

	"wikifeed/domain"
	apperrors "wikifeed/utils/errors"
	"wikifeed/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveArticle upserts an article keyed by its external page id. Re-ingesting
// a known page refreshes content and classification but preserves the
// access counter.
func (r *WikiDBRepository) SaveArticle(ctx context.Context, article *domain.Article) error {
	query := `
		INSERT INTO articles (id, page_id, title, content, categories, word_count, reading_time, thumbnail)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (page_id) DO UPDATE SET
			title = EXCLUDED.title,
			content = EXCLUDED.content,
			categories = EXCLUDED.categories,
			word_count = EXCLUDED.word_count,
			reading_time = EXCLUDED.reading_time,
			thumbnail = EXCLUDED.thumbnail
	`

	_, err := r.pool.Exec(ctx, query,
		article.ID,
		article.PageID,
		article.Title,
		article.Content,
		fromCategories(article.Categories),
		article.WordCount,
		article.ReadingTime,
		article.Thumbnail,
	)
	if err != nil {
		logger.SafeError("error saving article", "error", err, "title", article.Title)
		return apperrors.DatabaseError("failed to save article", err, map[string]interface{}{
			"page_id": article.PageID,
			"title":   article.Title,
		})
	}

	return nil
}

func (r *WikiDBRepository) FetchArticleByID(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM articles
		WHERE id = $1
	`

	article, err := scanArticle(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArticleNotFound
		}
		logger.SafeError("error fetching article", "error", err, "id", id)
		return nil, apperrors.DatabaseError("failed to fetch article", err, map[string]interface{}{
			"id": id.String(),
		})
	}

	return article, nil
}

// IncrementAccessCount bumps the popularity counter in a single atomic
// statement so concurrent serves never lose updates.
func (r *WikiDBRepository) IncrementAccessCount(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `UPDATE articles SET access_count = access_count + 1 WHERE id = $1`, id)
	if err != nil {
		logger.SafeError("error incrementing access count", "error", err, "id", id)
		return apperrors.DatabaseError("failed to increment access count", err, map[string]interface{}{
			"id": id.String(),
		})
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrArticleNotFound
	}

	return nil
}
