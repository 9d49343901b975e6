package config

import "fmt"

// validateConfig validates the loaded configuration values.
func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := validateDatabaseConfig(&config.Database); err != nil {
		return fmt.Errorf("database config validation failed: %w", err)
	}

	if err := validateLoggingConfig(&config.Logging); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}

	if err := validateEngagementConfig(&config.Engagement); err != nil {
		return fmt.Errorf("engagement config validation failed: %w", err)
	}

	if err := validateFeedConfig(&config.Feed); err != nil {
		return fmt.Errorf("feed config validation failed: %w", err)
	}

	if err := validateIngestConfig(&config.Ingest); err != nil {
		return fmt.Errorf("ingest config validation failed: %w", err)
	}

	if err := validateWikipediaConfig(&config.Wikipedia); err != nil {
		return fmt.Errorf("wikipedia config validation failed: %w", err)
	}

	return nil
}

func validateServerConfig(config *ServerConfig) error {
	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", config.Port)
	}

	if config.ReadTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got ReadTimeout: %v", config.ReadTimeout)
	}

	if config.WriteTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got WriteTimeout: %v", config.WriteTimeout)
	}

	if config.IdleTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got IdleTimeout: %v", config.IdleTimeout)
	}

	return nil
}

func validateDatabaseConfig(config *DatabaseConfig) error {
	if config.MaxConnections < 1 {
		return fmt.Errorf("max connections must be positive, got %d", config.MaxConnections)
	}

	if config.ConnectionTimeout <= 0 {
		return fmt.Errorf("connection timeout must be positive, got %v", config.ConnectionTimeout)
	}

	return nil
}

func validateLoggingConfig(config *LoggingConfig) error {
	switch config.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", config.Level)
	}

	switch config.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format: %s", config.Format)
	}

	return nil
}

func validateEngagementConfig(config *EngagementConfig) error {
	if config.RecencyDecayBase <= 0 || config.RecencyDecayBase > 1 {
		return fmt.Errorf("recency decay base must be within (0, 1], got %v", config.RecencyDecayBase)
	}

	if config.TimeFactorCapSeconds <= 0 {
		return fmt.Errorf("time factor cap must be positive, got %d", config.TimeFactorCapSeconds)
	}

	if config.WindowDays <= 0 {
		return fmt.Errorf("window days must be positive, got %d", config.WindowDays)
	}

	return nil
}

func validateFeedConfig(config *FeedConfig) error {
	if config.DefaultMix < 0 || config.DefaultMix > 1 {
		return fmt.Errorf("default feed mix must be within [0, 1], got %v", config.DefaultMix)
	}

	if config.ArticlesPerPage < 1 {
		return fmt.Errorf("articles per page must be positive, got %d", config.ArticlesPerPage)
	}

	if config.MaxArticlesPerRequest < config.ArticlesPerPage {
		return fmt.Errorf("max articles per request (%d) must not be below articles per page (%d)",
			config.MaxArticlesPerRequest, config.ArticlesPerPage)
	}

	if config.CandidatePoolLimit < config.MaxArticlesPerRequest {
		return fmt.Errorf("candidate pool limit (%d) must not be below max articles per request (%d)",
			config.CandidatePoolLimit, config.MaxArticlesPerRequest)
	}

	return nil
}

func validateIngestConfig(config *IngestConfig) error {
	if config.BatchSize < 1 {
		return fmt.Errorf("batch size must be positive, got %d", config.BatchSize)
	}

	if config.MinArticleWords < 0 {
		return fmt.Errorf("min article words must not be negative, got %d", config.MinArticleWords)
	}

	if config.MaxCategoriesPerEntry < 1 {
		return fmt.Errorf("max categories per entry must be positive, got %d", config.MaxCategoriesPerEntry)
	}

	if config.MaxConcurrentFetches < 1 {
		return fmt.Errorf("max concurrent fetches must be positive, got %d", config.MaxConcurrentFetches)
	}

	if config.OverfetchFactor < 1 {
		return fmt.Errorf("overfetch factor must be positive, got %d", config.OverfetchFactor)
	}

	return nil
}

func validateWikipediaConfig(config *WikipediaConfig) error {
	if config.RestBaseURL == "" {
		return fmt.Errorf("wikipedia REST base URL must not be empty")
	}

	if config.ActionBaseURL == "" {
		return fmt.Errorf("wikipedia action base URL must not be empty")
	}

	if config.UserAgent == "" {
		return fmt.Errorf("wikipedia user agent must not be empty")
	}

	if config.FetchInterval <= 0 {
		return fmt.Errorf("fetch interval must be positive, got %v", config.FetchInterval)
	}

	return nil
}
