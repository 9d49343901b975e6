package rest

// RecordEventPayload is the body of POST /v1/engagement/events.
type RecordEventPayload struct {
	ArticleID       string  `json:"article_id"`
	UserID          string  `json:"user_id"`
	Kind            string  `json:"kind"`
	DurationSeconds int     `json:"duration_seconds"`
	ScrollDepth     float64 `json:"scroll_depth"`
}

type RecordEventResponse struct {
	EventID int64 `json:"event_id"`
}

type StartSessionPayload struct {
	UserID string `json:"user_id"`
}

type StartSessionResponse struct {
	SessionID int64 `json:"session_id"`
}

type EndSessionPayload struct {
	ArticlesRead         int `json:"articles_read"`
	TotalDurationSeconds int `json:"total_duration_seconds"`
}

type IngestRandomPayload struct {
	Count int `json:"count"`
}

type IngestArticlePayload struct {
	Title string `json:"title"`
}

type PreferencesResponse struct {
	UserID  string             `json:"user_id"`
	Weights map[string]float64 `json:"weights"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
