package config

import (
	"strings"
	"time"
)

type Config struct {
	Server     ServerConfig     `json:"server"`
	Database   DatabaseConfig   `json:"database"`
	Logging    LoggingConfig    `json:"logging"`
	HTTP       HTTPConfig       `json:"http"`
	Engagement EngagementConfig `json:"engagement"`
	Feed       FeedConfig       `json:"feed"`
	Ingest     IngestConfig     `json:"ingest"`
	Wikipedia  WikipediaConfig  `json:"wikipedia"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"9000"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout  time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`

	// AllowedOrigins is a comma-separated CORS origin list.
	AllowedOrigins string `json:"allowed_origins" env:"SERVER_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

// Origins splits the configured CORS origin list.
func (c *ServerConfig) Origins() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

type DatabaseConfig struct {
	MaxConnections    int           `json:"max_connections" env:"DB_MAX_CONNECTIONS" default:"25"`
	ConnectionTimeout time.Duration `json:"connection_timeout" env:"DB_CONNECTION_TIMEOUT" default:"30s"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"json"`
}

type HTTPConfig struct {
	ClientTimeout   time.Duration `json:"client_timeout" env:"HTTP_CLIENT_TIMEOUT" default:"15s"`
	DialTimeout     time.Duration `json:"dial_timeout" env:"HTTP_DIAL_TIMEOUT" default:"10s"`
	IdleConnTimeout time.Duration `json:"idle_conn_timeout" env:"HTTP_IDLE_CONN_TIMEOUT" default:"90s"`
}

// EngagementConfig holds the event weight table and the decay parameters of
// the preference learner. The weight table is deliberately configuration,
// not constants: deployments and tests run with different tables without
// touching the scoring code.
type EngagementConfig struct {
	ViewWeight     float64 `json:"view_weight" env:"ENGAGEMENT_VIEW_WEIGHT" default:"1.0"`
	ReadWeight     float64 `json:"read_weight" env:"ENGAGEMENT_READ_WEIGHT" default:"2.0"`
	BookmarkWeight float64 `json:"bookmark_weight" env:"ENGAGEMENT_BOOKMARK_WEIGHT" default:"5.0"`
	SkipWeight     float64 `json:"skip_weight" env:"ENGAGEMENT_SKIP_WEIGHT" default:"-2.0"`
	ScrollWeight   float64 `json:"scroll_weight" env:"ENGAGEMENT_SCROLL_WEIGHT" default:"0.5"`

	RecencyDecayBase     float64 `json:"recency_decay_base" env:"ENGAGEMENT_RECENCY_DECAY_BASE" default:"0.9"`
	TimeFactorCapSeconds int     `json:"time_factor_cap_seconds" env:"ENGAGEMENT_TIME_FACTOR_CAP_SECONDS" default:"600"`
	WindowDays           int     `json:"window_days" env:"ENGAGEMENT_WINDOW_DAYS" default:"30"`
}

type FeedConfig struct {
	DefaultMix            float64 `json:"default_mix" env:"FEED_DEFAULT_MIX" default:"0.3"`
	ArticlesPerPage       int     `json:"articles_per_page" env:"FEED_ARTICLES_PER_PAGE" default:"20"`
	MaxArticlesPerRequest int     `json:"max_articles_per_request" env:"FEED_MAX_ARTICLES_PER_REQUEST" default:"50"`
	CandidatePoolLimit    int     `json:"candidate_pool_limit" env:"FEED_CANDIDATE_POOL_LIMIT" default:"500"`
}

type IngestConfig struct {
	BatchSize             int `json:"batch_size" env:"INGEST_BATCH_SIZE" default:"100"`
	MinArticleWords       int `json:"min_article_words" env:"INGEST_MIN_ARTICLE_WORDS" default:"100"`
	MaxCategoriesPerEntry int `json:"max_categories_per_entry" env:"INGEST_MAX_CATEGORIES" default:"20"`
	MaxConcurrentFetches  int `json:"max_concurrent_fetches" env:"INGEST_MAX_CONCURRENT_FETCHES" default:"4"`
	OverfetchFactor       int `json:"overfetch_factor" env:"INGEST_OVERFETCH_FACTOR" default:"2"`

	JobEnabled  bool          `json:"job_enabled" env:"INGEST_JOB_ENABLED" default:"true"`
	JobInterval time.Duration `json:"job_interval" env:"INGEST_JOB_INTERVAL" default:"1h"`
	JobTimeout  time.Duration `json:"job_timeout" env:"INGEST_JOB_TIMEOUT" default:"10m"`
}

type WikipediaConfig struct {
	RestBaseURL   string        `json:"rest_base_url" env:"WIKIPEDIA_REST_BASE_URL" default:"https://en.wikipedia.org/api/rest_v1"`
	ActionBaseURL string        `json:"action_base_url" env:"WIKIPEDIA_ACTION_BASE_URL" default:"https://en.wikipedia.org/w/api.php"`
	UserAgent     string        `json:"user_agent" env:"WIKIPEDIA_USER_AGENT" default:"WikiFeed/1.0 (research)"`
	FetchInterval time.Duration `json:"fetch_interval" env:"WIKIPEDIA_FETCH_INTERVAL" default:"200ms"`
}

// EventWeights flattens the per-kind weight fields into the lookup table
// the preference learner consumes.
func (c *EngagementConfig) EventWeights() map[string]float64 {
	return map[string]float64{
		"view":     c.ViewWeight,
		"read":     c.ReadWeight,
		"bookmark": c.BookmarkWeight,
		"skip":     c.SkipWeight,
		"scroll":   c.ScrollWeight,
	}
}

// NewConfig loads configuration from environment variables with fallback to
// defaults, then validates the result.
func NewConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Load is an alias for NewConfig.
func Load() (*Config, error) {
	return NewConfig()
}
