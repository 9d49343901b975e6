package wiki_db

import (
	"context"
	"testing"
	"time"

	"wikifeed/domain"
	"wikifeed/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

func TestWikiDBRepository_SaveArticle(t *testing.T) {
	logger.InitLogger()
	ctx := context.Background()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &WikiDBRepository{pool: mock}

	article := &domain.Article{
		ID:          uuid.New(),
		PageID:      12345,
		Title:       "Photosynthesis",
		Content:     "process used by plants",
		Categories:  []domain.Category{domain.CategoryScience},
		WordCount:   450,
		ReadingTime: 3,
	}

	mock.ExpectExec("INSERT INTO articles.*ON CONFLICT \\(page_id\\)").
		WithArgs(article.ID, article.PageID, article.Title, article.Content,
			[]string{"Science"}, article.WordCount, article.ReadingTime, article.Thumbnail).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.SaveArticle(ctx, article))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWikiDBRepository_FetchArticleByID(t *testing.T) {
	logger.InitLogger()
	ctx := context.Background()

	t.Run("ReturnsArticle", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := &WikiDBRepository{pool: mock}

		id := uuid.New()
		now := time.Now()

		mock.ExpectQuery("SELECT.*FROM articles.*WHERE id").
			WithArgs(id).
			WillReturnRows(articleRows().
				AddRow(id, int64(12345), "Photosynthesis", "process used by plants",
					[]string{"Science"}, 450, 3, 17, "", now))

		article, err := repo.FetchArticleByID(ctx, id)

		require.NoError(t, err)
		require.Equal(t, "Photosynthesis", article.Title)
		require.Equal(t, 17, article.AccessCount)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UnknownIDIsNotFound", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := &WikiDBRepository{pool: mock}

		id := uuid.New()

		mock.ExpectQuery("SELECT.*FROM articles.*WHERE id").
			WithArgs(id).
			WillReturnError(pgx.ErrNoRows)

		_, err = repo.FetchArticleByID(ctx, id)

		require.ErrorIs(t, err, domain.ErrArticleNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestWikiDBRepository_IncrementAccessCount(t *testing.T) {
	logger.InitLogger()
	ctx := context.Background()

	t.Run("BumpsCounter", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := &WikiDBRepository{pool: mock}

		id := uuid.New()

		mock.ExpectExec("UPDATE articles SET access_count").
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		require.NoError(t, repo.IncrementAccessCount(ctx, id))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UnknownIDIsNotFound", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := &WikiDBRepository{pool: mock}

		id := uuid.New()

		mock.ExpectExec("UPDATE articles SET access_count").
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		require.ErrorIs(t, repo.IncrementAccessCount(ctx, id), domain.ErrArticleNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
