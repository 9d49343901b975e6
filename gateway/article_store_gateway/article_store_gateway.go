package article_store_gateway

import (
	"context"

	"wikifeed/domain"
	"wikifeed/driver/wiki_db"
	"wikifeed/utils/errors"
	"wikifeed/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ArticleStoreGateway struct {
	repository *wiki_db.WikiDBRepository
}

func NewArticleStoreGateway(pool *pgxpool.Pool) *ArticleStoreGateway {
	return &ArticleStoreGateway{
		repository: wiki_db.NewWikiDBRepository(pool),
	}
}

func (g *ArticleStoreGateway) SaveArticle(ctx context.Context, article *domain.Article) error {
	if g.repository == nil {
		dbErr := errors.DatabaseError("database connection not available", nil, map[string]interface{}{
			"gateway": "ArticleStoreGateway",
			"method":  "SaveArticle",
		})
		errors.LogError(logger.Logger, dbErr, "database_connection_check")
		return dbErr
	}

	return g.repository.SaveArticle(ctx, article)
}

func (g *ArticleStoreGateway) FetchArticleByID(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	if g.repository == nil {
		dbErr := errors.DatabaseError("database connection not available", nil, map[string]interface{}{
			"gateway": "ArticleStoreGateway",
			"method":  "FetchArticleByID",
		})
		errors.LogError(logger.Logger, dbErr, "database_connection_check")
		return nil, dbErr
	}

	return g.repository.FetchArticleByID(ctx, id)
}

func (g *ArticleStoreGateway) IncrementAccessCount(ctx context.Context, id uuid.UUID) error {
	if g.repository == nil {
		dbErr := errors.DatabaseError("database connection not available", nil, map[string]interface{}{
			"gateway": "ArticleStoreGateway",
			"method":  "IncrementAccessCount",
		})
		errors.LogError(logger.Logger, dbErr, "database_connection_check")
		return dbErr
	}

	return g.repository.IncrementAccessCount(ctx, id)
}
