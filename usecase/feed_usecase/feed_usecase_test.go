package feed_usecase

import (
	"context"
	stderrors "errors"
	"math/rand"
	"testing"
	"time"

	"wikifeed/config"
	"wikifeed/domain"
	"wikifeed/mocks"
	"wikifeed/port/candidate_pool_port"
	"wikifeed/usecase/preference_usecase"
	"wikifeed/utils/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testFeedConfig() config.FeedConfig {
	return config.FeedConfig{
		DefaultMix:            0.3,
		ArticlesPerPage:       20,
		MaxArticlesPerRequest: 50,
		CandidatePoolLimit:    500,
	}
}

func makeArticles(n int, category domain.Category) []*domain.Article {
	articles := make([]*domain.Article, 0, n)
	for i := 0; i < n; i++ {
		articles = append(articles, &domain.Article{
			ID:         uuid.New(),
			Title:      category.String(),
			Categories: []domain.Category{category},
		})
	}
	return articles
}

type feedFixture struct {
	usecase       *FeedUsecase
	userEvents    *mocks.MockUserEventsPort
	readArticles  *mocks.MockReadArticlesPort
	candidatePool *mocks.MockCandidatePoolPort
}

func newFeedFixture(t *testing.T, seed int64) *feedFixture {
	t.Helper()
	logger.InitLogger()

	ctrl := gomock.NewController(t)
	userEvents := mocks.NewMockUserEventsPort(ctrl)
	readArticles := mocks.NewMockReadArticlesPort(ctrl)
	candidatePool := mocks.NewMockCandidatePoolPort(ctrl)

	preferences := preference_usecase.NewPreferenceUsecase(userEvents, config.EngagementConfig{
		ViewWeight:           1.0,
		ReadWeight:           2.0,
		BookmarkWeight:       5.0,
		SkipWeight:           -2.0,
		ScrollWeight:         0.5,
		RecencyDecayBase:     0.9,
		TimeFactorCapSeconds: 600,
		WindowDays:           30,
	}).WithClock(func() time.Time {
		return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	})

	return &feedFixture{
		usecase: NewFeedUsecase(preferences, readArticles, candidatePool,
			testFeedConfig(), rand.New(rand.NewSource(seed))),
		userEvents:    userEvents,
		readArticles:  readArticles,
		candidatePool: candidatePool,
	}
}

func TestFeedUsecase_BuildFeed(t *testing.T) {
	userID := uuid.New()

	t.Run("splits recommended and discovery by the mix", func(t *testing.T) {
		f := newFeedFixture(t, 1)

		f.readArticles.EXPECT().FetchReadArticleIDs(gomock.Any(), userID).Return(nil, nil)
		f.userEvents.EXPECT().FetchUserEvents(gomock.Any(), userID, gomock.Any()).Return(nil, nil)
		f.candidatePool.EXPECT().
			FetchCandidates(gomock.Any(), gomock.Any()).
			Return(makeArticles(30, domain.CategoryScience), nil)
		f.candidatePool.EXPECT().
			FetchRandomCandidates(gomock.Any(), gomock.Any(), 6).
			Return(makeArticles(6, domain.CategoryArts), nil)

		entries, err := f.usecase.BuildFeed(context.Background(), userID, 20, 0.3, nil)

		require.NoError(t, err)
		require.Len(t, entries, 20)

		recommended, discovery := 0, 0
		for _, entry := range entries {
			switch entry.Source {
			case domain.FeedSourceRecommended:
				recommended++
			case domain.FeedSourceDiscovery:
				discovery++
				assert.InDelta(t, domain.DiscoveryBaseScore, entry.RelevanceScore, 1e-9)
			}
		}
		assert.Equal(t, 14, recommended)
		assert.Equal(t, 6, discovery)
	})

	t.Run("full mix serves only discovery", func(t *testing.T) {
		f := newFeedFixture(t, 1)

		f.readArticles.EXPECT().FetchReadArticleIDs(gomock.Any(), userID).Return(nil, nil)
		f.userEvents.EXPECT().FetchUserEvents(gomock.Any(), userID, gomock.Any()).Return(nil, nil)
		f.candidatePool.EXPECT().
			FetchRandomCandidates(gomock.Any(), gomock.Any(), 10).
			Return(makeArticles(10, domain.CategoryArts), nil)

		entries, err := f.usecase.BuildFeed(context.Background(), userID, 10, 1.0, nil)

		require.NoError(t, err)
		require.Len(t, entries, 10)
		for _, entry := range entries {
			assert.Equal(t, domain.FeedSourceDiscovery, entry.Source)
			assert.InDelta(t, domain.DiscoveryBaseScore, entry.RelevanceScore, 1e-9)
		}
	})

	t.Run("read articles are excluded from both pools", func(t *testing.T) {
		f := newFeedFixture(t, 1)

		readIDs := []uuid.UUID{uuid.New(), uuid.New()}
		f.readArticles.EXPECT().FetchReadArticleIDs(gomock.Any(), userID).Return(readIDs, nil)
		f.userEvents.EXPECT().FetchUserEvents(gomock.Any(), userID, gomock.Any()).Return(nil, nil)

		recommended := makeArticles(7, domain.CategoryScience)
		f.candidatePool.EXPECT().
			FetchCandidates(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter candidate_pool_port.CandidateFilter) ([]*domain.Article, error) {
				assert.Equal(t, readIDs, filter.ExcludeIDs)
				assert.Equal(t, 500, filter.Limit)
				return recommended, nil
			})
		f.candidatePool.EXPECT().
			FetchRandomCandidates(gomock.Any(), gomock.Any(), 3).
			DoAndReturn(func(_ context.Context, excludeIDs []uuid.UUID, _ int) ([]*domain.Article, error) {
				assert.Len(t, excludeIDs, len(readIDs)+7)
				for _, readID := range readIDs {
					assert.Contains(t, excludeIDs, readID)
				}
				return makeArticles(3, domain.CategoryArts), nil
			})

		entries, err := f.usecase.BuildFeed(context.Background(), userID, 10, 0.3, nil)

		require.NoError(t, err)
		require.Len(t, entries, 10)
		for _, entry := range entries {
			assert.NotContains(t, readIDs, entry.Article.ID)
		}
	})

	t.Run("caller exclusions join the read set", func(t *testing.T) {
		f := newFeedFixture(t, 1)

		clientExclude := []uuid.UUID{uuid.New()}
		f.readArticles.EXPECT().FetchReadArticleIDs(gomock.Any(), userID).Return(nil, nil)
		f.userEvents.EXPECT().FetchUserEvents(gomock.Any(), userID, gomock.Any()).Return(nil, nil)
		f.candidatePool.EXPECT().
			FetchCandidates(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter candidate_pool_port.CandidateFilter) ([]*domain.Article, error) {
				assert.Equal(t, clientExclude, filter.ExcludeIDs)
				return makeArticles(7, domain.CategoryScience), nil
			})
		f.candidatePool.EXPECT().
			FetchRandomCandidates(gomock.Any(), gomock.Any(), 3).
			Return(makeArticles(3, domain.CategoryArts), nil)

		_, err := f.usecase.BuildFeed(context.Background(), userID, 10, 0.3, clientExclude)
		require.NoError(t, err)
	})

	t.Run("same seed yields the same order", func(t *testing.T) {
		build := func() []domain.FeedEntry {
			f := newFeedFixture(t, 99)

			f.readArticles.EXPECT().FetchReadArticleIDs(gomock.Any(), userID).Return(nil, nil)
			f.userEvents.EXPECT().FetchUserEvents(gomock.Any(), userID, gomock.Any()).Return(nil, nil)
			f.candidatePool.EXPECT().
				FetchCandidates(gomock.Any(), gomock.Any()).
				Return(makeArticles(20, domain.CategoryScience), nil)
			f.candidatePool.EXPECT().
				FetchRandomCandidates(gomock.Any(), gomock.Any(), 3).
				Return(makeArticles(3, domain.CategoryArts), nil)

			entries, err := f.usecase.BuildFeed(context.Background(), userID, 10, 0.3, nil)
			require.NoError(t, err)
			return entries
		}

		first := build()
		second := build()

		require.Equal(t, len(first), len(second))
		for i := range first {
			assert.Equal(t, first[i].Source, second[i].Source)
		}
	})

	t.Run("zero count falls back to the configured page size", func(t *testing.T) {
		f := newFeedFixture(t, 1)

		f.readArticles.EXPECT().FetchReadArticleIDs(gomock.Any(), userID).Return(nil, nil)
		f.userEvents.EXPECT().FetchUserEvents(gomock.Any(), userID, gomock.Any()).Return(nil, nil)
		f.candidatePool.EXPECT().
			FetchCandidates(gomock.Any(), gomock.Any()).
			Return(makeArticles(20, domain.CategoryScience), nil)
		f.candidatePool.EXPECT().
			FetchRandomCandidates(gomock.Any(), gomock.Any(), 6).
			Return(makeArticles(6, domain.CategoryArts), nil)

		entries, err := f.usecase.BuildFeed(context.Background(), userID, 0, -1, nil)

		require.NoError(t, err)
		assert.Len(t, entries, 20)
	})

	t.Run("short candidate pool yields a short feed", func(t *testing.T) {
		f := newFeedFixture(t, 1)

		f.readArticles.EXPECT().FetchReadArticleIDs(gomock.Any(), userID).Return(nil, nil)
		f.userEvents.EXPECT().FetchUserEvents(gomock.Any(), userID, gomock.Any()).Return(nil, nil)
		f.candidatePool.EXPECT().
			FetchCandidates(gomock.Any(), gomock.Any()).
			Return(makeArticles(2, domain.CategoryScience), nil)
		f.candidatePool.EXPECT().
			FetchRandomCandidates(gomock.Any(), gomock.Any(), 6).
			Return(nil, nil)

		entries, err := f.usecase.BuildFeed(context.Background(), userID, 20, 0.3, nil)

		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("failing candidate pool degrades to discovery only", func(t *testing.T) {
		f := newFeedFixture(t, 1)

		f.readArticles.EXPECT().FetchReadArticleIDs(gomock.Any(), userID).Return(nil, nil)
		f.userEvents.EXPECT().FetchUserEvents(gomock.Any(), userID, gomock.Any()).Return(nil, nil)
		f.candidatePool.EXPECT().
			FetchCandidates(gomock.Any(), gomock.Any()).
			Return(nil, stderrors.New("connection refused"))
		f.candidatePool.EXPECT().
			FetchRandomCandidates(gomock.Any(), gomock.Any(), 6).
			Return(makeArticles(6, domain.CategoryArts), nil)

		entries, err := f.usecase.BuildFeed(context.Background(), userID, 20, 0.3, nil)

		require.NoError(t, err)
		require.Len(t, entries, 6)
		for _, entry := range entries {
			assert.Equal(t, domain.FeedSourceDiscovery, entry.Source)
		}
	})

	t.Run("failing discovery pool degrades to recommendations only", func(t *testing.T) {
		f := newFeedFixture(t, 1)

		f.readArticles.EXPECT().FetchReadArticleIDs(gomock.Any(), userID).Return(nil, nil)
		f.userEvents.EXPECT().FetchUserEvents(gomock.Any(), userID, gomock.Any()).Return(nil, nil)
		f.candidatePool.EXPECT().
			FetchCandidates(gomock.Any(), gomock.Any()).
			Return(makeArticles(14, domain.CategoryScience), nil)
		f.candidatePool.EXPECT().
			FetchRandomCandidates(gomock.Any(), gomock.Any(), 6).
			Return(nil, stderrors.New("connection refused"))

		entries, err := f.usecase.BuildFeed(context.Background(), userID, 20, 0.3, nil)

		require.NoError(t, err)
		require.Len(t, entries, 14)
		for _, entry := range entries {
			assert.Equal(t, domain.FeedSourceRecommended, entry.Source)
		}
	})

	t.Run("nil user is rejected", func(t *testing.T) {
		f := newFeedFixture(t, 1)

		_, err := f.usecase.BuildFeed(context.Background(), uuid.Nil, 10, 0.3, nil)
		assert.Error(t, err)
	})
}
