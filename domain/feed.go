package domain

// FeedSource tells which pool a feed entry came from.
type FeedSource string

const (
	FeedSourceRecommended FeedSource = "recommended"
	FeedSourceDiscovery   FeedSource = "discovery"
)

// DiscoveryBaseScore is the fixed relevance assigned to discovery entries.
const DiscoveryBaseScore = 0.3

// FeedEntry is one slot of the final personalized feed.
type FeedEntry struct {
	Article        *Article   `json:"article"`
	RelevanceScore float64    `json:"relevance_score"`
	Source         FeedSource `json:"recommendation_type"`
}

// ScoredArticle pairs a candidate article with its computed relevance.
type ScoredArticle struct {
	Article *Article
	Score   float64
}
