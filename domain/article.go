package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReadingSpeedWPM is the assumed reading speed used to derive reading time
// from word count.
const ReadingSpeedWPM = 200

// Article is an encyclopedia article as stored by the feed. Access count is
// the only mutable field after ingestion; it is incremented atomically on
// each serve.
type Article struct {
	ID          uuid.UUID  `json:"id"`
	PageID      int64      `json:"page_id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Categories  []Category `json:"categories"`
	WordCount   int        `json:"word_count"`
	ReadingTime int        `json:"reading_time"`
	AccessCount int        `json:"access_count"`
	Thumbnail   string     `json:"thumbnail,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// EstimateReadingTime returns whole minutes, rounding up so short articles
// still report one minute.
func EstimateReadingTime(wordCount int) int {
	if wordCount <= 0 {
		return 0
	}
	return (wordCount + ReadingSpeedWPM - 1) / ReadingSpeedWPM
}

// HasCategory reports whether the article carries the given canonical
// category.
func (a *Article) HasCategory(c Category) bool {
	for _, cat := range a.Categories {
		if cat == c {
			return true
		}
	}
	return false
}
