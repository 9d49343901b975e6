package feed_usecase

import (
	"context"
	"math"
	"math/rand"

	"wikifeed/config"
	"wikifeed/domain"
	"wikifeed/port/candidate_pool_port"
	"wikifeed/port/read_articles_port"
	"wikifeed/usecase/preference_usecase"
	"wikifeed/usecase/scoring_usecase"
	"wikifeed/utils/errors"
	"wikifeed/utils/logger"
	"wikifeed/utils/metrics"

	"github.com/google/uuid"
)

// FeedUsecase assembles the personalized feed: a recommended slice ranked
// by learned preferences plus a discovery slice sampled at random, shuffled
// together so the reader cannot tell which entry came from which pool.
type FeedUsecase struct {
	preferences   *preference_usecase.PreferenceUsecase
	readArticles  read_articles_port.ReadArticlesPort
	candidatePool candidate_pool_port.CandidatePoolPort
	feedConfig    config.FeedConfig
	rng           *rand.Rand
}

func NewFeedUsecase(
	preferences *preference_usecase.PreferenceUsecase,
	readArticles read_articles_port.ReadArticlesPort,
	candidatePool candidate_pool_port.CandidatePoolPort,
	feedConfig config.FeedConfig,
	rng *rand.Rand,
) *FeedUsecase {
	return &FeedUsecase{
		preferences:   preferences,
		readArticles:  readArticles,
		candidatePool: candidatePool,
		feedConfig:    feedConfig,
		rng:           rng,
	}
}

// BuildFeed returns up to count feed entries for the user. mix is the
// discovery fraction in [0, 1]; a negative mix selects the configured
// default. Articles the user has already viewed or read never appear, and
// callers may exclude further ids on top of that.
func (u *FeedUsecase) BuildFeed(ctx context.Context, userID uuid.UUID, count int, mix float64, excludeIDs []uuid.UUID) ([]domain.FeedEntry, error) {
	if userID == uuid.Nil {
		return nil, errors.ValidationError("user_id must not be empty", nil)
	}

	if count <= 0 {
		count = u.feedConfig.ArticlesPerPage
	}
	if count > u.feedConfig.MaxArticlesPerRequest {
		count = u.feedConfig.MaxArticlesPerRequest
	}

	if mix < 0 {
		mix = u.feedConfig.DefaultMix
	}
	if mix > 1 {
		mix = 1
	}

	readIDs, err := u.readArticles.FetchReadArticleIDs(ctx, userID)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to fetch read articles", "error", err, "user_id", userID)
		return nil, err
	}
	readIDs = append(readIDs, excludeIDs...)

	preferences, err := u.preferences.ComputePreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	recommendCount := int(math.Floor(float64(count) * (1 - mix)))
	discoveryCount := count - recommendCount

	entries := make([]domain.FeedEntry, 0, count)

	recommended := u.recommendEntries(ctx, preferences, readIDs, recommendCount)
	entries = append(entries, recommended...)

	exclude := append(append([]uuid.UUID{}, readIDs...), entryIDs(recommended)...)
	discovery := u.discoveryEntries(ctx, exclude, discoveryCount)
	entries = append(entries, discovery...)

	u.rng.Shuffle(len(entries), func(i, j int) {
		entries[i], entries[j] = entries[j], entries[i]
	})

	metrics.FeedsBuilt.Inc()
	metrics.FeedEntriesServed.WithLabelValues(string(domain.FeedSourceRecommended)).Add(float64(len(recommended)))
	metrics.FeedEntriesServed.WithLabelValues(string(domain.FeedSourceDiscovery)).Add(float64(len(discovery)))

	logger.Logger.InfoContext(ctx, "feed built",
		"user_id", userID,
		"recommended", len(recommended),
		"discovery", len(discovery))

	return entries, nil
}

// recommendEntries treats a failing pool as empty: the feed shrinks
// instead of erroring out.
func (u *FeedUsecase) recommendEntries(ctx context.Context, preferences domain.PreferenceWeights, readIDs []uuid.UUID, count int) []domain.FeedEntry {
	if count <= 0 {
		return nil
	}

	candidates, err := u.candidatePool.FetchCandidates(ctx, candidate_pool_port.CandidateFilter{
		ExcludeIDs: readIDs,
		Limit:      u.feedConfig.CandidatePoolLimit,
	})
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to fetch candidates, serving without recommendations", "error", err)
		return nil
	}

	scored := scoring_usecase.ScoreArticles(candidates, preferences)
	if len(scored) > count {
		scored = scored[:count]
	}

	entries := make([]domain.FeedEntry, 0, len(scored))
	for _, item := range scored {
		entries = append(entries, domain.FeedEntry{
			Article:        item.Article,
			RelevanceScore: item.Score,
			Source:         domain.FeedSourceRecommended,
		})
	}

	return entries
}

func (u *FeedUsecase) discoveryEntries(ctx context.Context, excludeIDs []uuid.UUID, count int) []domain.FeedEntry {
	if count <= 0 {
		return nil
	}

	articles, err := u.candidatePool.FetchRandomCandidates(ctx, excludeIDs, count)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to fetch discovery articles, serving without discovery", "error", err)
		return nil
	}

	entries := make([]domain.FeedEntry, 0, len(articles))
	for _, article := range articles {
		entries = append(entries, domain.FeedEntry{
			Article:        article,
			RelevanceScore: domain.DiscoveryBaseScore,
			Source:         domain.FeedSourceDiscovery,
		})
	}

	return entries
}

func entryIDs(entries []domain.FeedEntry) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.Article.ID)
	}
	return ids
}
