package wiki_db

import (
	"context"

	"wikifeed/domain"
	apperrors "wikifeed/utils/errors"
	"wikifeed/utils/logger"

	"github.com/google/uuid"
)

func (r *WikiDBRepository) StartSession(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `
		INSERT INTO reading_sessions (user_id)
		VALUES ($1)
		RETURNING id
	`

	var sessionID int64
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&sessionID); err != nil {
		logger.SafeError("error starting session", "error", err, "user_id", userID)
		return 0, apperrors.DatabaseError("failed to start session", err, map[string]interface{}{
			"user_id": userID.String(),
		})
	}

	return sessionID, nil
}

func (r *WikiDBRepository) EndSession(ctx context.Context, sessionID int64, articlesRead, totalDurationSeconds int) error {
	query := `
		UPDATE reading_sessions
		SET end_time = NOW(), articles_read = $1, total_duration_seconds = $2
		WHERE id = $3
	`

	tag, err := r.pool.Exec(ctx, query, articlesRead, totalDurationSeconds, sessionID)
	if err != nil {
		logger.SafeError("error ending session", "error", err, "session_id", sessionID)
		return apperrors.DatabaseError("failed to end session", err, map[string]interface{}{
			"session_id": sessionID,
		})
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrSessionNotFound
	}

	return nil
}

func (r *WikiDBRepository) FetchRecentSessions(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.ReadingSession, error) {
	query := `
		SELECT id, user_id, start_time, end_time, articles_read, total_duration_seconds
		FROM reading_sessions
		WHERE user_id = $1
		ORDER BY start_time DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		logger.SafeError("error fetching sessions", "error", err, "user_id", userID)
		return nil, apperrors.DatabaseError("failed to fetch sessions", err, map[string]interface{}{
			"user_id": userID.String(),
		})
	}
	defer rows.Close()

	var sessions []*domain.ReadingSession
	for rows.Next() {
		var session domain.ReadingSession
		err := rows.Scan(
			&session.ID,
			&session.UserID,
			&session.StartTime,
			&session.EndTime,
			&session.ArticlesRead,
			&session.TotalDuration,
		)
		if err != nil {
			return nil, apperrors.DatabaseError("failed to scan session", err, nil)
		}
		sessions = append(sessions, &session)
	}

	return sessions, rows.Err()
}
