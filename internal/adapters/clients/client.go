package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/storefront-web/internal/adapters/http/middleware"
	"github.com/jsamuelsen/storefront-web/internal/platform/config"
	"github.com/jsamuelsen/storefront-web/internal/platform/logging"
)

const (
	instrumentationName = "github.com/jsamuelsen/storefront-web/internal/adapters/clients"

	defaultTimeout = 10 * time.Second
)

// Config configures one upstream client.
type Config struct {
	// BaseURL prefixes every relative path, e.g. the content API's /wp-json/wp/v2.
	BaseURL string

	// ServiceName names the upstream in logs, spans, metrics and errors.
	ServiceName string

	// Timeout bounds a single request, including reading the body.
	Timeout time.Duration

	// UserAgent is sent on every request when set.
	UserAgent string

	// Transport configures the connection pool of the default transport.
	Transport config.TransportConfig

	// RoundTripper replaces the pooled transport, e.g. the OAuth2 transport
	// of the newsletter client.
	RoundTripper http.RoundTripper
}

// Client calls one upstream API. Every call is a single attempt: pages
// degrade on failure instead of waiting on retries. Calls are traced, counted
// and carry the request and correlation IDs of the incoming request.
type Client struct {
	http        *http.Client
	baseURL     string
	serviceName string
	userAgent   string

	tracer   trace.Tracer
	duration metric.Float64Histogram
	total    metric.Int64Counter
}

// New creates a client for cfg.
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}

	if cfg.ServiceName == "" {
		return nil, errors.New("service name is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	transport := cfg.RoundTripper
	if transport == nil {
		transport = NewTransport(cfg.Transport)
	}

	meter := otel.Meter(instrumentationName)

	duration, err := meter.Float64Histogram("http.client.request.duration",
		metric.WithDescription("Duration of upstream API requests"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration metric: %w", err)
	}

	total, err := meter.Int64Counter("http.client.request.total",
		metric.WithDescription("Upstream API requests by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating request counter: %w", err)
	}

	return &Client{
		http:        &http.Client{Timeout: timeout, Transport: transport},
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		serviceName: cfg.ServiceName,
		userAgent:   cfg.UserAgent,
		tracer:      otel.Tracer(instrumentationName),
		duration:    duration,
		total:       total,
	}, nil
}

// NewTransport builds a pooled transport. Zero values fall back to the
// configuration defaults.
func NewTransport(tc config.TransportConfig) *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = orDefault(tc.MaxIdleConns, config.DefaultTransportMaxIdleConns)
	t.MaxIdleConnsPerHost = orDefault(tc.MaxIdleConnsPerHost, config.DefaultTransportMaxIdleConnsPerHost)
	t.IdleConnTimeout = orDefault(tc.IdleConnTimeout, config.DefaultTransportIdleConnTimeout)

	return t
}

func orDefault[T int | time.Duration](v, def T) T {
	if v <= 0 {
		return def
	}

	return v
}

// ServiceName returns the upstream name.
func (c *Client) ServiceName() string {
	return c.serviceName
}

// Get sends a GET for path, relative to the base URL unless absolute.
func (c *Client) Get(ctx context.Context, path string) (*http.Response, error) {
	return c.send(ctx, http.MethodGet, path, nil, nil)
}

// GetWithHeaders sends a GET with extra headers, e.g. the publisher
// Authorization header.
func (c *Client) GetWithHeaders(ctx context.Context, path string, headers http.Header) (*http.Response, error) {
	return c.send(ctx, http.MethodGet, path, nil, headers)
}

// SendJSON encodes v as the request body of a method request.
func (c *Client) SendJSON(ctx context.Context, method, path string, v any, headers http.Header) (*http.Response, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}

	h := http.Header{"Content-Type": {"application/json"}}
	for k, vs := range headers {
		h[k] = append(h[k], vs...)
	}

	return c.send(ctx, method, path, bytes.NewReader(body), h)
}

// Ping reports whether the upstream answers below 500. Client errors such
// as 401 still prove the API is reachable.
func (c *Client) Ping(ctx context.Context, path string) error {
	resp, err := c.Get(ctx, path)
	if err != nil {
		return err
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: %s returned %d", ErrUnhealthy, c.serviceName, resp.StatusCode)
	}

	return nil
}

func (c *Client) send(ctx context.Context, method, path string, body io.Reader, headers http.Header) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.resolve(path), body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	for k, vs := range headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	return c.Do(ctx, req)
}

// Do sends req once. Transport failures, timeouts included, are wrapped in
// ErrRequestFailed; any HTTP response is returned for the caller to map.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	ctx, span := c.tracer.Start(ctx, req.Method+" "+c.serviceName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
			attribute.String("peer.service", c.serviceName),
		),
	)
	defer span.End()

	c.decorate(ctx, req)

	logger := logging.FromContext(ctx).With(
		slog.String("upstream", c.serviceName),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
	)
	logger.Log(ctx, logging.LevelTrace, "upstream request", slog.String("url", req.URL.String()))

	resp, err := c.http.Do(req.WithContext(ctx))
	elapsed := time.Since(start)

	if err != nil {
		outcome := "error"
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			outcome = "canceled"
		}

		span.SetStatus(codes.Error, err.Error())
		c.record(ctx, req.Method, 0, outcome, elapsed)
		logger.Warn("upstream request failed", slog.Duration("duration", elapsed), slog.Any("error", err))

		return nil, fmt.Errorf("%w: %s: %w", ErrRequestFailed, c.serviceName, err)
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode >= http.StatusBadRequest {
		span.SetStatus(codes.Error, resp.Status)
	}

	c.record(ctx, req.Method, resp.StatusCode, statusClass(resp.StatusCode), elapsed)
	logger.Log(ctx, logging.LevelTrace, "upstream response",
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", elapsed),
	)

	return resp, nil
}

// decorate adds the tracing, ID and user agent headers.
func (c *Client) decorate(ctx context.Context, req *http.Request) {
	if id := middleware.RequestIDFromContext(ctx); id != "" {
		req.Header.Set(middleware.HeaderRequestID, id)
	}

	if id := middleware.CorrelationIDFromContext(ctx); id != "" {
		req.Header.Set(middleware.HeaderCorrelationID, id)
	}

	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
}

// resolve joins path onto the base URL. Absolute URLs, such as the feed
// URL, are used as given.
func (c *Client) resolve(path string) string {
	if u, err := url.Parse(path); err == nil && u.IsAbs() {
		return path
	}

	return c.baseURL + "/" + strings.TrimPrefix(path, "/")
}

func (c *Client) record(ctx context.Context, method string, status int, outcome string, elapsed time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.String("http.method", method),
		attribute.String("peer.service", c.serviceName),
		attribute.String("result", outcome),
	}

	if status > 0 {
		attrs = append(attrs, attribute.Int("http.status_code", status))
	}

	set := metric.WithAttributes(attrs...)
	c.duration.Record(ctx, elapsed.Seconds(), set)
	c.total.Add(ctx, 1, set)
}

// statusClass returns "2xx", "4xx" and so on.
func statusClass(status int) string {
	return strconv.Itoa(status/100) + "xx"
}
