package user_events_gateway

import (
	"context"
	"time"

	"wikifeed/domain"
	"wikifeed/driver/wiki_db"
	"wikifeed/utils/errors"
	"wikifeed/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserEventsGateway struct {
	repository *wiki_db.WikiDBRepository
}

func NewUserEventsGateway(pool *pgxpool.Pool) *UserEventsGateway {
	return &UserEventsGateway{
		repository: wiki_db.NewWikiDBRepository(pool),
	}
}

func (g *UserEventsGateway) FetchUserEvents(ctx context.Context, userID uuid.UUID, since time.Time) ([]*domain.CategorizedEvent, error) {
	if g.repository == nil {
		dbErr := errors.DatabaseError("database connection not available", nil, map[string]interface{}{
			"gateway": "UserEventsGateway",
			"method":  "FetchUserEvents",
		})
		errors.LogError(logger.Logger, dbErr, "database_connection_check")
		return nil, dbErr
	}

	return g.repository.FetchUserEvents(ctx, userID, since)
}
