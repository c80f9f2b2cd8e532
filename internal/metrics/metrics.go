// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector gathers request-level metrics for the CMS API.
type Collector struct {
	registry       *prometheus.Registry
	httpStatus     *prometheus.CounterVec
	requestLatency prometheus.Histogram
	loginFailures  prometheus.Counter
	uploads        prometheus.Counter
}

// NewCollector creates a Collector with its own registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cms_http_status_total",
			Help: "Responses by HTTP status code",
		}, []string{"status_code"}),
		requestLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "cms_request_latency_seconds",
			Help:    "Request handling latency in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		loginFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cms_login_failures_total",
			Help: "Rejected admin login attempts",
		}),
		uploads: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cms_uploads_total",
			Help: "Accepted image uploads",
		}),
	}

	c.registry.MustRegister(
		c.httpStatus,
		c.requestLatency,
		c.loginFailures,
		c.uploads,
	)
	return c
}

// RecordLoginFailure counts one rejected login attempt.
func (c *Collector) RecordLoginFailure() {
	c.loginFailures.Inc()
}

// RecordUpload counts one accepted image upload.
func (c *Collector) RecordUpload() {
	c.uploads.Inc()
}

// Middleware returns a gin middleware recording status codes and latency.
func (c *Collector) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		c.httpStatus.WithLabelValues(strconv.Itoa(ctx.Writer.Status())).Inc()
		c.requestLatency.Observe(time.Since(start).Seconds())
	}
}

// Handler returns the HTTP handler exposing the metrics endpoint.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
