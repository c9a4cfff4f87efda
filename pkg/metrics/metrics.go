package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fantasy"

// Metrics shared by the scheduler and the api.
type Metrics struct {
	Registry *prometheus.Registry

	ProviderRequests    *prometheus.CounterVec
	MatchesUpserted     *prometheus.CounterVec
	MatchesSkipped      *prometheus.CounterVec
	NewlyCompleted      prometheus.Counter
	QuarantinedRows     prometheus.Counter
	IngestUnitErrors    *prometheus.CounterVec
	Aggregations        *prometheus.CounterVec
	AggregationDuration prometheus.Histogram
	LineupWrites        *prometheus.CounterVec
	LineupsLocked       prometheus.Counter
	MatchesPurged       prometheus.Counter
}

// New registers every collector on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		ProviderRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_requests_total",
			Help:      "Requests made to the match provider by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		MatchesUpserted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matches_upserted_total",
			Help:      "Matches written to the cache by completeness.",
		}, []string{"complete"}),
		MatchesSkipped: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matches_skipped_total",
			Help:      "Candidate matches skipped by the freshness guard by reason.",
		}, []string{"reason"}),
		NewlyCompleted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matches_completed_total",
			Help:      "Matches that turned complete on upsert.",
		}),
		QuarantinedRows: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quarantined_player_rows_total",
			Help:      "Player rows dropped for missing an account id.",
		}),
		IngestUnitErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ingest_unit_errors_total",
			Help:      "Failed units during ingestion runs.",
		}, []string{"unit"}),
		Aggregations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "aggregations_total",
			Help:      "Leaderboard aggregations by outcome.",
		}, []string{"outcome"}),
		AggregationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "aggregation_duration_seconds",
			Help:      "Time spent building a day leaderboard.",
			Buckets:   prometheus.DefBuckets,
		}),
		LineupWrites: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lineup_writes_total",
			Help:      "Lineup write attempts by outcome.",
		}, []string{"outcome"}),
		LineupsLocked: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lineups_locked_total",
			Help:      "Lineups flipped to locked by the lock sweep.",
		}),
		MatchesPurged: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matches_purged_total",
			Help:      "Matches removed by the retention job.",
		}),
	}
}

// Handler exposes the registry for scraping.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
