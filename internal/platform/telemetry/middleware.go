package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/storefront-web/internal/platform/logging"
)

const instrumentationName = "github.com/jsamuelsen/storefront-web/internal/platform/telemetry"

// HeaderTraceID is the response header carrying the trace id of the request.
const HeaderTraceID = "X-Trace-ID"

// Metrics are the server-side request instruments.
type Metrics struct {
	duration metric.Float64Histogram
	total    metric.Int64Counter
	inflight metric.Int64UpDownCounter
}

// NewMetrics registers the request instruments on the global meter.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(instrumentationName)

	var (
		m   Metrics
		err error
	)

	m.duration, err = meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Time spent serving a page or endpoint"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration histogram: %w", err)
	}

	m.total, err = meter.Int64Counter("http.server.request.total",
		metric.WithDescription("Requests served, by route and status"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating request counter: %w", err)
	}

	m.inflight, err = meter.Int64UpDownCounter("http.server.active_requests",
		metric.WithDescription("Requests currently being served"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating in-flight counter: %w", err)
	}

	return &m, nil
}

// Middleware records the request instruments and exposes the trace id on
// the X-Trace-ID header and in the request logger. It runs after
// TracingMiddleware, which starts the span.
func Middleware() gin.HandlerFunc {
	metrics, err := NewMetrics()
	if err != nil {
		otel.Handle(err)
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if traceID := TraceIDFromContext(ctx); traceID != "" {
			c.Header(HeaderTraceID, traceID)

			ctx = logging.WithTraceID(ctx, traceID)
			c.Request = c.Request.WithContext(ctx)
		}

		if metrics == nil {
			c.Next()
			return
		}

		metrics.observe(ctx, c)
	}
}

func (m *Metrics) observe(ctx context.Context, c *gin.Context) {
	route := []attribute.KeyValue{
		attribute.String("http.method", c.Request.Method),
		attribute.String("http.route", c.FullPath()),
	}

	start := time.Now()
	m.inflight.Add(ctx, 1, metric.WithAttributes(route...))

	c.Next()

	m.inflight.Add(ctx, -1, metric.WithAttributes(route...))

	done := metric.WithAttributes(append(route, attribute.Int("http.status_code", c.Writer.Status()))...)
	m.duration.Record(ctx, time.Since(start).Seconds(), done)
	m.total.Add(ctx, 1, done)
}

// TracingMiddleware returns the otelgin tracing middleware.
func TracingMiddleware(serviceName string) gin.HandlerFunc {
	return otelgin.Middleware(serviceName)
}

// TraceIDFromContext returns the trace id of the active span, or "".
func TraceIDFromContext(ctx context.Context) string {
	span := trace.SpanFromContext(ctx)
	if !span.SpanContext().HasTraceID() {
		return ""
	}

	return span.SpanContext().TraceID().String()
}
