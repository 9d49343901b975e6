package wiki_db

import (
	"context"
	"testing"
	"time"

	"wikifeed/domain"
	"wikifeed/utils/logger"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

func TestWikiDBRepository_StartSession(t *testing.T) {
	logger.InitLogger()
	ctx := context.Background()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &WikiDBRepository{pool: mock}

	userID := uuid.New()

	mock.ExpectQuery("INSERT INTO reading_sessions").
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(9)))

	sessionID, err := repo.StartSession(ctx, userID)

	require.NoError(t, err)
	require.Equal(t, int64(9), sessionID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWikiDBRepository_EndSession(t *testing.T) {
	logger.InitLogger()
	ctx := context.Background()

	t.Run("ClosesSession", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := &WikiDBRepository{pool: mock}

		mock.ExpectExec("UPDATE reading_sessions.*SET end_time").
			WithArgs(5, 870, int64(9)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		require.NoError(t, repo.EndSession(ctx, 9, 5, 870))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UnknownSessionIsNotFound", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := &WikiDBRepository{pool: mock}

		mock.ExpectExec("UPDATE reading_sessions.*SET end_time").
			WithArgs(0, 0, int64(404)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		require.ErrorIs(t, repo.EndSession(ctx, 404, 0, 0), domain.ErrSessionNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestWikiDBRepository_FetchRecentSessions(t *testing.T) {
	logger.InitLogger()
	ctx := context.Background()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &WikiDBRepository{pool: mock}

	userID := uuid.New()
	start := time.Now().Add(-time.Hour)
	end := time.Now()

	mock.ExpectQuery("SELECT.*FROM reading_sessions.*ORDER BY start_time DESC").
		WithArgs(userID, 10).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "start_time", "end_time", "articles_read", "total_duration_seconds"}).
			AddRow(int64(2), userID, start, &end, 3, 540).
			AddRow(int64(1), userID, start.Add(-24*time.Hour), (*time.Time)(nil), 0, 0))

	sessions, err := repo.FetchRecentSessions(ctx, userID, 10)

	require.NoError(t, err)
	require.Len(t, sessions, 2)
	require.Equal(t, int64(2), sessions[0].ID)
	require.NotNil(t, sessions[0].EndTime)
	require.Nil(t, sessions[1].EndTime)
	require.NoError(t, mock.ExpectationsWereMet())
}
