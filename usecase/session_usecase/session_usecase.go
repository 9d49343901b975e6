package session_usecase

import (
	"context"

	"wikifeed/domain"
	"wikifeed/port/session_port"
	"wikifeed/utils/errors"
	"wikifeed/utils/logger"

	"github.com/google/uuid"
)

type SessionUsecase struct {
	sessionGateway session_port.SessionPort
}

func NewSessionUsecase(sessionGateway session_port.SessionPort) *SessionUsecase {
	return &SessionUsecase{
		sessionGateway: sessionGateway,
	}
}

func (u *SessionUsecase) StartSession(ctx context.Context, userID uuid.UUID) (int64, error) {
	if userID == uuid.Nil {
		return 0, errors.ValidationError("user_id must not be empty", nil)
	}

	sessionID, err := u.sessionGateway.StartSession(ctx, userID)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to start session", "error", err, "user_id", userID)
		return 0, err
	}

	logger.Logger.InfoContext(ctx, "reading session started", "session_id", sessionID, "user_id", userID)
	return sessionID, nil
}

func (u *SessionUsecase) EndSession(ctx context.Context, sessionID int64, articlesRead, totalDurationSeconds int) error {
	if sessionID <= 0 {
		return errors.ValidationError("session_id must be positive", map[string]interface{}{
			"session_id": sessionID,
		})
	}

	if articlesRead < 0 || totalDurationSeconds < 0 {
		return errors.ValidationError("session totals must not be negative", map[string]interface{}{
			"articles_read":          articlesRead,
			"total_duration_seconds": totalDurationSeconds,
		})
	}

	if err := u.sessionGateway.EndSession(ctx, sessionID, articlesRead, totalDurationSeconds); err != nil {
		logger.Logger.ErrorContext(ctx, "failed to end session", "error", err, "session_id", sessionID)
		return err
	}

	logger.Logger.InfoContext(ctx, "reading session ended",
		"session_id", sessionID, "articles_read", articlesRead)
	return nil
}

func (u *SessionUsecase) FetchRecentSessions(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.ReadingSession, error) {
	if userID == uuid.Nil {
		return nil, errors.ValidationError("user_id must not be empty", nil)
	}

	if limit <= 0 {
		return nil, errors.ValidationError("limit must be greater than 0", map[string]interface{}{
			"limit": limit,
		})
	}

	sessions, err := u.sessionGateway.FetchRecentSessions(ctx, userID, limit)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to fetch sessions", "error", err, "user_id", userID)
		return nil, err
	}

	return sessions, nil
}
