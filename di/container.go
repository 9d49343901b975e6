package di

import (
	"math/rand"
	"time"

	"wikifeed/config"
	"wikifeed/gateway/article_search_gateway"
	"wikifeed/gateway/article_store_gateway"
	"wikifeed/gateway/candidate_pool_gateway"
	"wikifeed/gateway/engagement_event_gateway"
	"wikifeed/gateway/read_articles_gateway"
	"wikifeed/gateway/session_gateway"
	"wikifeed/gateway/stats_gateway"
	"wikifeed/gateway/user_events_gateway"
	"wikifeed/gateway/wikipedia_source_gateway"
	"wikifeed/usecase/article_usecase"
	"wikifeed/usecase/engagement_usecase"
	"wikifeed/usecase/feed_usecase"
	"wikifeed/usecase/ingest_usecase"
	"wikifeed/usecase/preference_usecase"
	"wikifeed/usecase/scoring_usecase"
	"wikifeed/usecase/session_usecase"
	"wikifeed/usecase/stats_usecase"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ApplicationComponents struct {
	EngagementUsecase *engagement_usecase.EngagementUsecase
	PreferenceUsecase *preference_usecase.PreferenceUsecase
	ScoringUsecase    *scoring_usecase.ScoringUsecase
	FeedUsecase       *feed_usecase.FeedUsecase
	SessionUsecase    *session_usecase.SessionUsecase
	ArticleUsecase    *article_usecase.ArticleUsecase
	IngestUsecase     *ingest_usecase.IngestUsecase
	StatsUsecase      *stats_usecase.StatsUsecase
}

func NewApplicationComponents(pool *pgxpool.Pool, cfg *config.Config) *ApplicationComponents {
	engagementGateway := engagement_event_gateway.NewEngagementEventGateway(pool)
	userEventsGateway := user_events_gateway.NewUserEventsGateway(pool)
	readArticlesGateway := read_articles_gateway.NewReadArticlesGateway(pool)
	candidatePoolGateway := candidate_pool_gateway.NewCandidatePoolGateway(pool)
	searchGateway := article_search_gateway.NewArticleSearchGateway(pool)
	sessionGateway := session_gateway.NewSessionGateway(pool)
	articleStoreGateway := article_store_gateway.NewArticleStoreGateway(pool)
	statsGateway := stats_gateway.NewStatsGateway(pool)
	wikipediaGateway := wikipedia_source_gateway.NewWikipediaSourceGateway(cfg)

	preferenceUsecase := preference_usecase.NewPreferenceUsecase(userEventsGateway, cfg.Engagement)
	feedUsecase := feed_usecase.NewFeedUsecase(
		preferenceUsecase,
		readArticlesGateway,
		candidatePoolGateway,
		cfg.Feed,
		rand.New(rand.NewSource(time.Now().UnixNano())),
	)

	return &ApplicationComponents{
		EngagementUsecase: engagement_usecase.NewEngagementUsecase(engagementGateway),
		PreferenceUsecase: preferenceUsecase,
		ScoringUsecase:    scoring_usecase.NewScoringUsecase(searchGateway),
		FeedUsecase:       feedUsecase,
		SessionUsecase:    session_usecase.NewSessionUsecase(sessionGateway),
		ArticleUsecase:    article_usecase.NewArticleUsecase(articleStoreGateway),
		IngestUsecase:     ingest_usecase.NewIngestUsecase(wikipediaGateway, articleStoreGateway, cfg.Ingest),
		StatsUsecase:      stats_usecase.NewStatsUsecase(statsGateway),
	}
}
