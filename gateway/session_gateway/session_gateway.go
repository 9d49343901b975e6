package session_gateway

import (
	"context"

	"wikifeed/domain"
	"wikifeed/driver/wiki_db"
	"wikifeed/utils/errors"
	"wikifeed/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SessionGateway struct {
	repository *wiki_db.WikiDBRepository
}

func NewSessionGateway(pool *pgxpool.Pool) *SessionGateway {
	return &SessionGateway{
		repository: wiki_db.NewWikiDBRepository(pool),
	}
}

func (g *SessionGateway) StartSession(ctx context.Context, userID uuid.UUID) (int64, error) {
	if g.repository == nil {
		dbErr := errors.DatabaseError("database connection not available", nil, map[string]interface{}{
			"gateway": "SessionGateway",
			"method":  "StartSession",
		})
		errors.LogError(logger.Logger, dbErr, "database_connection_check")
		return 0, dbErr
	}

	return g.repository.StartSession(ctx, userID)
}

func (g *SessionGateway) EndSession(ctx context.Context, sessionID int64, articlesRead, totalDurationSeconds int) error {
	if g.repository == nil {
		dbErr := errors.DatabaseError("database connection not available", nil, map[string]interface{}{
			"gateway": "SessionGateway",
			"method":  "EndSession",
		})
		errors.LogError(logger.Logger, dbErr, "database_connection_check")
		return dbErr
	}

	return g.repository.EndSession(ctx, sessionID, articlesRead, totalDurationSeconds)
}

func (g *SessionGateway) FetchRecentSessions(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.ReadingSession, error) {
	if g.repository == nil {
		dbErr := errors.DatabaseError("database connection not available", nil, map[string]interface{}{
			"gateway": "SessionGateway",
			"method":  "FetchRecentSessions",
		})
		errors.LogError(logger.Logger, dbErr, "database_connection_check")
		return nil, dbErr
	}

	return g.repository.FetchRecentSessions(ctx, userID, limit)
}
