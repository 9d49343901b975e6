package stats_gateway

import (
	"context"

	"wikifeed/domain"
	"wikifeed/driver/wiki_db"
	"wikifeed/utils/errors"
	"wikifeed/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsGateway struct {
	repository *wiki_db.WikiDBRepository
}

func NewStatsGateway(pool *pgxpool.Pool) *StatsGateway {
	return &StatsGateway{
		repository: wiki_db.NewWikiDBRepository(pool),
	}
}

func (g *StatsGateway) FetchStats(ctx context.Context) (*domain.Stats, error) {
	if g.repository == nil {
		dbErr := errors.DatabaseError("database connection not available", nil, map[string]interface{}{
			"gateway": "StatsGateway",
			"method":  "FetchStats",
		})
		errors.LogError(logger.Logger, dbErr, "database_connection_check")
		return nil, dbErr
	}

	return g.repository.FetchStats(ctx)
}
