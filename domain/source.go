package domain

// SourceArticle is the raw shape an article-source adapter returns before
// classification and ingestion. Tags carry the source's own topic strings
// (e.g. Wikipedia category titles) when available.
type SourceArticle struct {
	PageID    int64
	Title     string
	Extract   string
	Content   string
	Tags      []string
	Thumbnail string
}

// Stats summarizes store contents for the stats endpoint.
type Stats struct {
	Articles int64 `json:"articles"`
	Events   int64 `json:"events"`
	Sessions int64 `json:"sessions"`
}
