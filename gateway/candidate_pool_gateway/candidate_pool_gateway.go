package candidate_pool_gateway

import (
	"context"

	"wikifeed/domain"
	"wikifeed/driver/wiki_db"
	"wikifeed/port/candidate_pool_port"
	"wikifeed/utils/errors"
	"wikifeed/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CandidatePoolGateway struct {
	repository *wiki_db.WikiDBRepository
}

func NewCandidatePoolGateway(pool *pgxpool.Pool) *CandidatePoolGateway {
	return &CandidatePoolGateway{
		repository: wiki_db.NewWikiDBRepository(pool),
	}
}

func (g *CandidatePoolGateway) FetchCandidates(ctx context.Context, filter candidate_pool_port.CandidateFilter) ([]*domain.Article, error) {
	if g.repository == nil {
		dbErr := errors.DatabaseError("database connection not available", nil, map[string]interface{}{
			"gateway": "CandidatePoolGateway",
			"method":  "FetchCandidates",
		})
		errors.LogError(logger.Logger, dbErr, "database_connection_check")
		return nil, dbErr
	}

	return g.repository.FetchCandidates(ctx, filter.ExcludeIDs, filter.CategoryIn, filter.Limit)
}

func (g *CandidatePoolGateway) FetchRandomCandidates(ctx context.Context, excludeIDs []uuid.UUID, limit int) ([]*domain.Article, error) {
	if g.repository == nil {
		dbErr := errors.DatabaseError("database connection not available", nil, map[string]interface{}{
			"gateway": "CandidatePoolGateway",
			"method":  "FetchRandomCandidates",
		})
		errors.LogError(logger.Logger, dbErr, "database_connection_check")
		return nil, dbErr
	}

	return g.repository.FetchRandomCandidates(ctx, excludeIDs, limit)
}
