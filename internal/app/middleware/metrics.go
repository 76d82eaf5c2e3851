package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

// NewMetricMiddleware records per-request latency, counts, and payload
// sizes against the supplied meter.
func NewMetricMiddleware(meter metric.Meter) gin.HandlerFunc {
	durationHistogram, _ := meter.Int64Histogram(
		"http.server.latency",
		metric.WithUnit("ms"),
		metric.WithDescription("The latency of HTTP requests."),
	)

	requestCounter, _ := meter.Int64Counter(
		"http.server.requests_total",
		metric.WithDescription("The total number of HTTP requests."),
	)

	successCounter, _ := meter.Int64Counter(
		"http.server.success_requests_total",
		metric.WithDescription("The total number of successful HTTP requests."),
	)

	errorCounter, _ := meter.Int64Counter(
		"http.server.error_requests_total",
		metric.WithDescription("The total number of failed HTTP requests."),
	)

	requestSizeHistogram, _ := meter.Int64Histogram(
		"http.server.request_size_bytes",
		metric.WithUnit("bytes"),
		metric.WithDescription("The size of HTTP requests in bytes."),
	)

	responseSizeHistogram, _ := meter.Int64Histogram(
		"http.server.response_size_bytes",
		metric.WithUnit("bytes"),
		metric.WithDescription("The size of HTTP responses in bytes."),
	)

	return func(c *gin.Context) {
		startTime := time.Now()
		requestSize := c.Request.ContentLength

		c.Next()

		duration := time.Since(startTime).Milliseconds()
		statusCode := c.Writer.Status()

		attributes := []attribute.KeyValue{
			semconv.HTTPRouteKey.String(c.FullPath()),
			semconv.HTTPMethodKey.String(c.Request.Method),
			semconv.HTTPStatusCodeKey.Int(statusCode),
			attribute.String("http.client_ip", c.ClientIP()),
		}

		ctx := c.Request.Context()
		durationHistogram.Record(ctx, duration, metric.WithAttributes(attributes...))
		requestCounter.Add(ctx, 1, metric.WithAttributes(attributes...))
		requestSizeHistogram.Record(ctx, requestSize, metric.WithAttributes(attributes...))
		responseSizeHistogram.Record(ctx, int64(c.Writer.Size()), metric.WithAttributes(attributes...))

		if statusCode >= 200 && statusCode < 400 {
			successCounter.Add(ctx, 1, metric.WithAttributes(attributes...))
		} else {
			errorCounter.Add(ctx, 1, metric.WithAttributes(attributes...))
		}
	}
}
