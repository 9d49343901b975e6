package wiki_db

import (
	"context"
	"fmt"
	"testing"

	"wikifeed/domain"
	apperrors "wikifeed/utils/errors"
	"wikifeed/utils/logger"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

func TestWikiDBRepository_RecordEvent(t *testing.T) {
	logger.InitLogger()
	ctx := context.Background()

	t.Run("AppendsEventAndReturnsID", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := &WikiDBRepository{pool: mock}

		articleID := uuid.New()
		userID := uuid.New()

		mock.ExpectQuery("INSERT INTO engagement_events").
			WithArgs(articleID, userID, "bookmark", 120, 0.8).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(42)))

		eventID, err := repo.RecordEvent(ctx, &domain.EngagementEvent{
			ArticleID:       articleID,
			UserID:          userID,
			Kind:            domain.EventBookmark,
			DurationSeconds: 120,
			ScrollDepth:     0.8,
		})

		require.NoError(t, err)
		require.Equal(t, int64(42), eventID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("InvalidReferenceSurfacesAsDatabaseError", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := &WikiDBRepository{pool: mock}

		articleID := uuid.New()
		userID := uuid.New()

		mock.ExpectQuery("INSERT INTO engagement_events").
			WithArgs(articleID, userID, "view", 0, 0.0).
			WillReturnError(fmt.Errorf("violates foreign key constraint"))

		_, err = repo.RecordEvent(ctx, &domain.EngagementEvent{
			ArticleID: articleID,
			UserID:    userID,
			Kind:      domain.EventView,
		})

		require.Error(t, err)
		require.True(t, apperrors.IsCode(err, apperrors.ErrCodeDatabase))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestWikiDBRepository_FetchArticleEngagement(t *testing.T) {
	logger.InitLogger()
	ctx := context.Background()

	t.Run("AggregatesAllEventsForPair", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := &WikiDBRepository{pool: mock}

		articleID := uuid.New()
		userID := uuid.New()

		mock.ExpectQuery("SELECT.*FROM engagement_events.*WHERE article_id").
			WithArgs(articleID, userID).
			WillReturnRows(pgxmock.NewRows([]string{"count", "avg_duration", "avg_scroll", "bookmarks", "skips"}).
				AddRow(7, 95.5, 0.62, 2, 1))

		summary, err := repo.FetchArticleEngagement(ctx, articleID, userID)

		require.NoError(t, err)
		require.Equal(t, 7, summary.ViewCount)
		require.InDelta(t, 95.5, summary.AvgDuration, 1e-9)
		require.InDelta(t, 0.62, summary.AvgScroll, 1e-9)
		require.Equal(t, 2, summary.BookmarkCount)
		require.Equal(t, 1, summary.SkipCount)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NoEventsYieldsZeroValues", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := &WikiDBRepository{pool: mock}

		articleID := uuid.New()
		userID := uuid.New()

		mock.ExpectQuery("SELECT.*FROM engagement_events.*WHERE article_id").
			WithArgs(articleID, userID).
			WillReturnRows(pgxmock.NewRows([]string{"count", "avg_duration", "avg_scroll", "bookmarks", "skips"}).
				AddRow(0, 0.0, 0.0, 0, 0))

		summary, err := repo.FetchArticleEngagement(ctx, articleID, userID)

		require.NoError(t, err)
		require.Equal(t, &domain.ArticleEngagement{}, summary)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
