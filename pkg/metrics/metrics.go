package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ContentReads = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "tripcontent", Name: "content_reads_total", Help: "Number of content document reads by source (stored|default)."},
		[]string{"source"},
	)
	ContentWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "tripcontent", Name: "content_writes_total", Help: "Number of content document writes by outcome."},
		[]string{"status"},
	)
	Uploads = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "tripcontent", Name: "uploads_total", Help: "Number of file uploads by outcome (ok|rejected|error)."},
		[]string{"status"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "tripcontent", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "tripcontent", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(ContentReads)
	reg.MustRegister(ContentWrites)
	reg.MustRegister(Uploads)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
