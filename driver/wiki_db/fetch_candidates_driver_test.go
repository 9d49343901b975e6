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

func articleRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "page_id", "title", "content", "categories",
		"word_count", "reading_time", "access_count", "thumbnail", "created_at",
	})
}

func TestWikiDBRepository_FetchCandidates(t *testing.T) {
	logger.InitLogger()
	ctx := context.Background()

	t.Run("PassesExclusionsAndPopularityOrder", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := &WikiDBRepository{pool: mock}

		excluded := uuid.New()
		first := uuid.New()
		second := uuid.New()
		now := time.Now()

		mock.ExpectQuery("SELECT.*FROM articles.*NOT \\(id = ANY").
			WithArgs([]uuid.UUID{excluded}, 10).
			WillReturnRows(articleRows().
				AddRow(first, int64(100), "Moon", "lunar body", []string{"Science"}, 320, 2, 900, "", now).
				AddRow(second, int64(101), "Tide", "ocean motion", []string{"Geography"}, 210, 2, 400, "", now))

		articles, err := repo.FetchCandidates(ctx, []uuid.UUID{excluded}, nil, 10)

		require.NoError(t, err)
		require.Len(t, articles, 2)
		require.Equal(t, first, articles[0].ID)
		require.Equal(t, "Moon", articles[0].Title)
		require.Equal(t, []domain.Category{domain.CategoryScience}, articles[0].Categories)
		require.Equal(t, second, articles[1].ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NilExclusionBecomesEmptySlice", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := &WikiDBRepository{pool: mock}

		mock.ExpectQuery("SELECT.*FROM articles.*NOT \\(id = ANY").
			WithArgs([]uuid.UUID{}, 5).
			WillReturnRows(articleRows())

		articles, err := repo.FetchCandidates(ctx, nil, nil, 5)

		require.NoError(t, err)
		require.Empty(t, articles)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CategoryRestrictionUsesOverlapOperator", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := &WikiDBRepository{pool: mock}

		id := uuid.New()
		now := time.Now()

		mock.ExpectQuery("SELECT.*FROM articles.*categories &&").
			WithArgs([]uuid.UUID{}, []string{"History", "People"}, 3).
			WillReturnRows(articleRows().
				AddRow(id, int64(7), "Cleopatra", "queen of egypt", []string{"History", "People"}, 500, 3, 120, "", now))

		articles, err := repo.FetchCandidates(ctx, nil, []domain.Category{domain.CategoryHistory, domain.CategoryPeople}, 3)

		require.NoError(t, err)
		require.Len(t, articles, 1)
		require.Equal(t, "Cleopatra", articles[0].Title)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("EmptyCategoriesColumnFallsBackToGeneral", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := &WikiDBRepository{pool: mock}

		id := uuid.New()
		now := time.Now()

		mock.ExpectQuery("SELECT.*FROM articles.*NOT \\(id = ANY").
			WithArgs([]uuid.UUID{}, 1).
			WillReturnRows(articleRows().
				AddRow(id, int64(8), "Stub", "short text", []string{}, 40, 1, 0, "", now))

		articles, err := repo.FetchCandidates(ctx, nil, nil, 1)

		require.NoError(t, err)
		require.Len(t, articles, 1)
		require.Equal(t, []domain.Category{domain.CategoryGeneral}, articles[0].Categories)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestWikiDBRepository_FetchRandomCandidates(t *testing.T) {
	logger.InitLogger()
	ctx := context.Background()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &WikiDBRepository{pool: mock}

	excluded := uuid.New()
	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery("SELECT.*FROM articles.*ORDER BY RANDOM").
		WithArgs([]uuid.UUID{excluded}, 4).
		WillReturnRows(articleRows().
			AddRow(id, int64(12), "Quasar", "distant object", []string{"Science"}, 600, 3, 45, "", now))

	articles, err := repo.FetchRandomCandidates(ctx, []uuid.UUID{excluded}, 4)

	require.NoError(t, err)
	require.Len(t, articles, 1)
	require.Equal(t, "Quasar", articles[0].Title)
	require.NoError(t, mock.ExpectationsWereMet())
}
