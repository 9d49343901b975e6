package engagement_event_gateway

import (
	"context"

	"wikifeed/domain"
	"wikifeed/driver/wiki_db"
	"wikifeed/utils/errors"
	"wikifeed/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EngagementEventGateway struct {
	repository *wiki_db.WikiDBRepository
}

func NewEngagementEventGateway(pool *pgxpool.Pool) *EngagementEventGateway {
	return &EngagementEventGateway{
		repository: wiki_db.NewWikiDBRepository(pool),
	}
}

func (g *EngagementEventGateway) RecordEvent(ctx context.Context, event *domain.EngagementEvent) (int64, error) {
	if g.repository == nil {
		dbErr := errors.DatabaseError("database connection not available", nil, map[string]interface{}{
			"gateway": "EngagementEventGateway",
			"method":  "RecordEvent",
		})
		errors.LogError(logger.Logger, dbErr, "database_connection_check")
		return 0, dbErr
	}

	return g.repository.RecordEvent(ctx, event)
}

func (g *EngagementEventGateway) FetchArticleEngagement(ctx context.Context, articleID, userID uuid.UUID) (*domain.ArticleEngagement, error) {
	if g.repository == nil {
		dbErr := errors.DatabaseError("database connection not available", nil, map[string]interface{}{
			"gateway": "EngagementEventGateway",
			"method":  "FetchArticleEngagement",
		})
		errors.LogError(logger.Logger, dbErr, "database_connection_check")
		return nil, dbErr
	}

	return g.repository.FetchArticleEngagement(ctx, articleID, userID)
}
