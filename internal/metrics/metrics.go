package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	ArticlesProcessed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "articlesrate_articles_processed_total",
		Help: "Articles processed, labeled by terminal status",
	}, []string{"status"})

	ProcessingSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "articlesrate_processing_seconds",
		Help:    "Per-article pipeline duration in seconds",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(ArticlesProcessed, ProcessingSeconds)
}
