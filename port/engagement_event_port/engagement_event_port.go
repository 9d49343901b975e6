package engagement_event_port

//go:generate go run go.uber.org/mock/mockgen -source=engagement_event_port.go -destination=../../mocks/mock_engagement_event_port.go -package=mocks EngagementEventPort

import (
	"context"

	"wikifeed/domain"

	"github.com/google/uuid"
)

// EngagementEventPort appends engagement events and reads per-article
// summaries. The event log is append-only: events are never updated or
// deleted.
type EngagementEventPort interface {
	// RecordEvent appends one event and returns its monotonically
	// increasing identifier.
	RecordEvent(ctx context.Context, event *domain.EngagementEvent) (int64, error)
	// FetchArticleEngagement aggregates all events for the (article, user)
	// pair. Zero-valued summary when no events exist.
	FetchArticleEngagement(ctx context.Context, articleID, userID uuid.UUID) (*domain.ArticleEngagement, error)
}
