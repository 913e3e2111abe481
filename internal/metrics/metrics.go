package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clubcourts_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "clubcourts_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	SettlementsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clubcourts_settlements_total",
			Help: "Total number of session settlement attempts",
		},
		[]string{"result"},
	)

	PaymentsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "clubcourts_payments_created_total",
			Help: "Total number of payment share records created",
		},
	)

	FundContributionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "clubcourts_fund_contributions_total",
			Help: "Total number of fund contributions recorded",
		},
	)

	SchedulesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "clubcourts_schedules_created_total",
			Help: "Total number of schedules created",
		},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clubcourts_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "clubcourts_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordSettlement(result string) {
	SettlementsTotal.WithLabelValues(result).Inc()
}

func RecordPaymentsCreated(n int) {
	PaymentsCreatedTotal.Add(float64(n))
}

func RecordFundContribution() {
	FundContributionsTotal.Inc()
}

func RecordScheduleCreated() {
	SchedulesCreatedTotal.Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
