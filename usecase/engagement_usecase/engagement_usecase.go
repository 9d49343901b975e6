package engagement_usecase

import (
	"context"

	"wikifeed/domain"
	"wikifeed/port/engagement_event_port"
	"wikifeed/utils/errors"
	"wikifeed/utils/logger"
	"wikifeed/utils/metrics"

	"github.com/google/uuid"
)

type EngagementUsecase struct {
	eventGateway engagement_event_port.EngagementEventPort
}

func NewEngagementUsecase(eventGateway engagement_event_port.EngagementEventPort) *EngagementUsecase {
	return &EngagementUsecase{
		eventGateway: eventGateway,
	}
}

// RecordEvent validates and stores one engagement event, returning its
// assigned identifier. Events are append-only; there is no update path.
func (u *EngagementUsecase) RecordEvent(ctx context.Context, event *domain.EngagementEvent) (int64, error) {
	if !event.Kind.IsValid() {
		return 0, errors.ValidationError("unknown event kind", map[string]interface{}{
			"kind": string(event.Kind),
		})
	}

	if event.ArticleID == uuid.Nil {
		return 0, errors.ValidationError("article_id must not be empty", nil)
	}

	if event.UserID == uuid.Nil {
		return 0, errors.ValidationError("user_id must not be empty", nil)
	}

	if event.DurationSeconds < 0 {
		return 0, errors.ValidationError("duration_seconds must not be negative", map[string]interface{}{
			"duration_seconds": event.DurationSeconds,
		})
	}

	if event.ScrollDepth < 0 || event.ScrollDepth > 1 {
		return 0, errors.ValidationError("scroll_depth must be between 0 and 1", map[string]interface{}{
			"scroll_depth": event.ScrollDepth,
		})
	}

	eventID, err := u.eventGateway.RecordEvent(ctx, event)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to record engagement event",
			"error", err, "article_id", event.ArticleID, "kind", event.Kind)
		return 0, err
	}

	metrics.EventsRecorded.WithLabelValues(string(event.Kind)).Inc()
	logger.Logger.InfoContext(ctx, "engagement event recorded",
		"event_id", eventID, "kind", event.Kind, "article_id", event.ArticleID)

	return eventID, nil
}

// FetchArticleEngagement returns the aggregate summary for one
// (article, user) pair. The summary is zero-valued when no events exist.
func (u *EngagementUsecase) FetchArticleEngagement(ctx context.Context, articleID, userID uuid.UUID) (*domain.ArticleEngagement, error) {
	if articleID == uuid.Nil {
		return nil, errors.ValidationError("article_id must not be empty", nil)
	}

	if userID == uuid.Nil {
		return nil, errors.ValidationError("user_id must not be empty", nil)
	}

	summary, err := u.eventGateway.FetchArticleEngagement(ctx, articleID, userID)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to fetch article engagement",
			"error", err, "article_id", articleID)
		return nil, err
	}

	return summary, nil
}
