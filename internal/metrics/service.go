package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var _ Metrics = (*Service)(nil)

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		APIRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "startuppong_api_requests_total",
			Help: "The total number of startuppong API round-trips by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		APIRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "startuppong_api_request_duration_seconds",
			Help:    "The duration of startuppong API round-trips.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"endpoint"}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "startuppong_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "startuppong_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
	}

	reg.MustRegister(
		s.APIRequests,
		s.APIRequestDuration,
		s.SlackNotifSent,
		s.SlackNotifFailed,
	)

	return s
}

func (s *Service) ObserveRequest(endpoint, outcome string, duration float64) {
	s.APIRequests.WithLabelValues(endpoint, outcome).Inc()
	s.APIRequestDuration.WithLabelValues(endpoint).Observe(duration)
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

// WriteTextfile writes everything gathered by g to path in the Prometheus
// text format, for pickup by a node_exporter textfile collector.
// If no gatherer is provided, it uses the default one.
func WriteTextfile(path string, gatherer ...prometheus.Gatherer) error {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return prometheus.WriteToTextfile(path, gath)
}
