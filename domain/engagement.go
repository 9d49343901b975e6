package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventKind categorizes a single user interaction with an article.
type EventKind string

const (
	EventView     EventKind = "view"
	EventRead     EventKind = "read"
	EventBookmark EventKind = "bookmark"
	EventSkip     EventKind = "skip"
	EventScroll   EventKind = "scroll"
)

func (k EventKind) IsValid() bool {
	switch k {
	case EventView, EventRead, EventBookmark, EventSkip, EventScroll:
		return true
	}
	return false
}

// EngagementEvent is a single append-only interaction record. Events are
// never mutated or deleted once written.
type EngagementEvent struct {
	ID              int64     `json:"id"`
	ArticleID       uuid.UUID `json:"article_id"`
	UserID          uuid.UUID `json:"user_id"`
	Kind            EventKind `json:"kind"`
	DurationSeconds int       `json:"duration_seconds"`
	ScrollDepth     float64   `json:"scroll_depth"`
	CreatedAt       time.Time `json:"created_at"`
}

// CategorizedEvent pairs an event with the canonical categories of the
// article it touched. This is the row shape the preference learner consumes:
// the event's signal contributes to every category of its article.
type CategorizedEvent struct {
	Kind            EventKind
	DurationSeconds int
	ScrollDepth     float64
	CreatedAt       time.Time
	Categories      []Category
}

// ArticleEngagement summarizes all events for one (article, user) pair.
// Counts are zero and averages 0.0 when no events exist.
type ArticleEngagement struct {
	ViewCount     int     `json:"view_count"`
	AvgDuration   float64 `json:"avg_duration"`
	AvgScroll     float64 `json:"avg_scroll"`
	BookmarkCount int     `json:"bookmark_count"`
	SkipCount     int     `json:"skip_count"`
}

// ReadingSession tracks one reading sitting. EndTime is nil while the
// session is open.
type ReadingSession struct {
	ID            int64      `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	StartTime     time.Time  `json:"start_time"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	ArticlesRead  int        `json:"articles_read"`
	TotalDuration int        `json:"total_duration_seconds"`
}
