package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// unmatchedRoute 是未匹配任何路由的请求使用的标签值，避免把原始路径写入标签
const unmatchedRoute = "unmatched"

// Metrics 收集 HTTP 请求的 Prometheus 指标。
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics 创建指标并注册到给定的 registry。
func NewMetrics(namespace string, registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		panic("prometheus Registerer cannot be nil for Metrics middleware")
	}
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
	registerer.MustRegister(m.requests, m.duration)
	return m
}

// Handler 返回记录请求数量和耗时的 Gin 中间件。
// route 标签使用路由模板 (如 /api/posts/:id)，不是实际路径。
func (m *Metrics) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		method := c.Request.Method
		m.requests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.duration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
