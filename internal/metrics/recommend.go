package metrics

import "github.com/prometheus/client_golang/prometheus"

// Recommendation engine Prometheus metrics.
var (
	RecommendationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shelfwise",
			Name:      "recommendations_total",
			Help:      "Total recommendation requests by serving mode",
		},
		[]string{"mode"}, // "personalized" / "fallback"
	)

	RecommendationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "shelfwise",
			Name:      "recommendation_duration_seconds",
			Help:      "End-to-end recommendation computation duration",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"mode"},
	)

	CatalogVocabularyTerms = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "shelfwise",
			Name:      "catalog_vocabulary_terms",
			Help:      "Distinct terms in the most recently vectorized catalog snapshot",
		},
	)

	ProfileInteractions = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "shelfwise",
			Name:      "profile_interactions",
			Help:      "Qualifying interactions per user profile build",
			Buckets:   []float64{1, 2, 5, 10, 25, 50, 100, 250},
		},
	)
)

// Serving mode label values.
const (
	ModePersonalized = "personalized"
	ModeFallback     = "fallback"
)

var recMetricsRegistered bool

// RegisterRecommendationMetrics registers engine metrics. Must be called once from main.
func RegisterRecommendationMetrics() {
	if recMetricsRegistered {
		return
	}
	prometheus.MustRegister(RecommendationsTotal)
	prometheus.MustRegister(RecommendationDuration)
	prometheus.MustRegister(CatalogVocabularyTerms)
	prometheus.MustRegister(ProfileInteractions)
	recMetricsRegistered = true
}
