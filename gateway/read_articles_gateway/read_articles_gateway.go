package read_articles_gateway

import (
	"context"

	"wikifeed/driver/wiki_db"
	"wikifeed/utils/errors"
	"wikifeed/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReadArticlesGateway struct {
	repository *wiki_db.WikiDBRepository
}

func NewReadArticlesGateway(pool *pgxpool.Pool) *ReadArticlesGateway {
	return &ReadArticlesGateway{
		repository: wiki_db.NewWikiDBRepository(pool),
	}
}

func (g *ReadArticlesGateway) FetchReadArticleIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if g.repository == nil {
		dbErr := errors.DatabaseError("database connection not available", nil, map[string]interface{}{
			"gateway": "ReadArticlesGateway",
			"method":  "FetchReadArticleIDs",
		})
		errors.LogError(logger.Logger, dbErr, "database_connection_check")
		return nil, dbErr
	}

	return g.repository.FetchReadArticleIDs(ctx, userID)
}
