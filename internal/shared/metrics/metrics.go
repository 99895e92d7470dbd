package metrics

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	matchRequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "match_requests_total",
		Help: "Total match requests processed",
	})
	matchJobsScoredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "match_jobs_scored_total",
		Help: "Total job records scored across all match requests",
	})
	matchJobsSkippedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "match_jobs_skipped_total",
		Help: "Total job records skipped due to per-job scoring failures",
	})
	matchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "match_duration_ms",
		Help:    "Match orchestration duration in milliseconds",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
	})
	simulationEvaluationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "simulation_evaluations_total",
		Help: "Total simulation submissions evaluated",
	})
	corpusRebuildsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "corpus_rebuilds_total",
		Help: "Total job corpus rebuilds",
	})
	corpusSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "corpus_size",
		Help: "Job records in the current corpus snapshot",
	})
)

// IncMatchRequests increments the match request counter.
func IncMatchRequests() {
	matchRequestsTotal.Inc()
}

// AddJobsScored records how many jobs one match request scored.
func AddJobsScored(n int) {
	if n <= 0 {
		return
	}
	matchJobsScoredTotal.Add(float64(n))
}

// IncJobSkipped increments the skipped-job counter.
func IncJobSkipped() {
	matchJobsSkippedTotal.Inc()
}

// ObserveMatchDurationMs records a match orchestration duration in milliseconds.
func ObserveMatchDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	matchDuration.Observe(value)
}

// IncSimulationEvaluations increments the simulation evaluation counter.
func IncSimulationEvaluations() {
	simulationEvaluationsTotal.Inc()
}

// IncCorpusRebuilds increments the corpus rebuild counter.
func IncCorpusRebuilds() {
	corpusRebuildsTotal.Inc()
}

// SetCorpusSize records the size of the current corpus snapshot.
func SetCorpusSize(n int) {
	corpusSize.Set(float64(n))
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	var h http.Handler = promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
