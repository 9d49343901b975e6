package session_port

//go:generate go run go.uber.org/mock/mockgen -source=session_port.go -destination=../../mocks/mock_session_port.go -package=mocks SessionPort

import (
	"context"

	"wikifeed/domain"

	"github.com/google/uuid"
)

// SessionPort handles reading-session bookkeeping, independent of scoring.
type SessionPort interface {
	StartSession(ctx context.Context, userID uuid.UUID) (int64, error)
	EndSession(ctx context.Context, sessionID int64, articlesRead, totalDurationSeconds int) error
	FetchRecentSessions(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.ReadingSession, error)
}
