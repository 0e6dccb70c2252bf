package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsBuilder 按 method/path/status 维度统计请求耗时与次数
type MetricsBuilder struct {
	duration *prometheus.SummaryVec
	total    *prometheus.CounterVec
}

func NewMetricsBuilder() *MetricsBuilder {
	labels := []string{"method", "path", "status_code"}
	return &MetricsBuilder{
		duration: promauto.NewSummaryVec(
			prometheus.SummaryOpts{
				Namespace: "eshop",
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Objectives: map[float64]float64{
					0.5:  0.05,
					0.9:  0.01,
					0.95: 0.005,
					0.99: 0.001,
				},
			}, labels),
		total: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "eshop",
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			}, labels),
	}
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		method := ctx.Request.Method
		// 未命中任何路由时 FullPath 为空, 退回原始路径
		path := ctx.FullPath()
		if path == "" {
			path = ctx.Request.URL.Path
		}
		status := strconv.Itoa(ctx.Writer.Status())

		b.duration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
		b.total.WithLabelValues(method, path, status).Inc()
	}
}
