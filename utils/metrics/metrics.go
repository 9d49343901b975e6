// Package metrics exposes prometheus counters for the feed backend.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wikifeed_engagement_events_total",
		Help: "Engagement events recorded, by event kind.",
	}, []string{"kind"})

	FeedsBuilt = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wikifeed_feeds_built_total",
		Help: "Personalized feeds assembled.",
	})

	FeedEntriesServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wikifeed_feed_entries_total",
		Help: "Feed entries served, by pool.",
	}, []string{"source"})

	ArticlesIngested = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wikifeed_articles_ingested_total",
		Help: "Articles ingested from the live source.",
	})

	IngestFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wikifeed_ingest_failures_total",
		Help: "Live source fetches that failed and were skipped.",
	})
)
