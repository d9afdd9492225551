package telemetry

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ProblemRecorder counts problem-detail responses by status and title.
// Counters are exposed on the Prometheus scrape endpoint.
type ProblemRecorder struct {
	total *prometheus.CounterVec
}

// NewProblemRecorder registers the problem counter with reg.
// Pass prometheus.DefaultRegisterer in production and a fresh registry in tests.
func NewProblemRecorder(reg prometheus.Registerer) *ProblemRecorder {
	return &ProblemRecorder{
		total: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "posts_gateway",
			Name:      "problem_responses_total",
			Help:      "Problem-detail error responses written, by HTTP status and title.",
		}, []string{"status", "title"}),
	}
}

// Record increments the counter for one error response.
// A nil recorder is a no-op.
func (r *ProblemRecorder) Record(status int, title string) {
	if r == nil {
		return
	}

	r.total.WithLabelValues(strconv.Itoa(status), title).Inc()
}
