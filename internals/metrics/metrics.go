package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "schoolhub", Name: "http_requests_total", Help: "Handled HTTP requests",
	}, []string{"method", "route", "status"})
	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "schoolhub", Name: "http_request_duration_seconds", Help: "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
	Submissions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "schoolhub", Name: "task_submissions_total", Help: "Accepted task submissions by resulting status",
	}, []string{"status"})
	Gradings = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "schoolhub", Name: "task_gradings_total", Help: "Graded submissions by resulting status",
	}, []string{"status"})
	AccessDenied = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "schoolhub", Name: "access_denied_total", Help: "Denied student record access by requester role",
	}, []string{"role"})
	DBPing = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "schoolhub", Name: "db_ping_seconds", Help: "DB ping latency",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPDuration, Submissions, Gradings, AccessDenied, DBPing)
}

func Handler() http.Handler { return promhttp.Handler() }

func ObserveDBPing(d time.Duration) { DBPing.Observe(d.Seconds()) }

func ObserveRequest(method, route, status string, d time.Duration) {
	HTTPRequests.WithLabelValues(method, route, status).Inc()
	HTTPDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
