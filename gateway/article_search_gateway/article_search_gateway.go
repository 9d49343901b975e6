package article_search_gateway

import (
	"context"

	"wikifeed/domain"
	"wikifeed/driver/wiki_db"
	"wikifeed/utils/errors"
	"wikifeed/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ArticleSearchGateway struct {
	repository *wiki_db.WikiDBRepository
}

func NewArticleSearchGateway(pool *pgxpool.Pool) *ArticleSearchGateway {
	return &ArticleSearchGateway{
		repository: wiki_db.NewWikiDBRepository(pool),
	}
}

func (g *ArticleSearchGateway) SearchArticles(ctx context.Context, query string, limit int) ([]*domain.Article, error) {
	if g.repository == nil {
		dbErr := errors.DatabaseError("database connection not available", nil, map[string]interface{}{
			"gateway": "ArticleSearchGateway",
			"method":  "SearchArticles",
		})
		errors.LogError(logger.Logger, dbErr, "database_connection_check")
		return nil, dbErr
	}

	return g.repository.SearchArticles(ctx, query, limit)
}

func (g *ArticleSearchGateway) BrowseByCategory(ctx context.Context, category domain.Category, limit int) ([]*domain.Article, error) {
	if g.repository == nil {
		dbErr := errors.DatabaseError("database connection not available", nil, map[string]interface{}{
			"gateway": "ArticleSearchGateway",
			"method":  "BrowseByCategory",
		})
		errors.LogError(logger.Logger, dbErr, "database_connection_check")
		return nil, dbErr
	}

	return g.repository.BrowseByCategory(ctx, category, limit)
}
