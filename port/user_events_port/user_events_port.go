package user_events_port

//go:generate go run go.uber.org/mock/mockgen -source=user_events_port.go -destination=../../mocks/mock_user_events_port.go -package=mocks UserEventsPort

import (
	"context"
	"time"

	"wikifeed/domain"

	"github.com/google/uuid"
)

// UserEventsPort reads a user's engagement events for preference learning.
// Each event comes back joined with the categories of its article.
type UserEventsPort interface {
	FetchUserEvents(ctx context.Context, userID uuid.UUID, since time.Time) ([]*domain.CategorizedEvent, error)
}
