package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/storefront-web/internal/adapters/http/handlers"
	"github.com/jsamuelsen/storefront-web/internal/adapters/http/middleware"
	"github.com/jsamuelsen/storefront-web/internal/platform/config"
	"github.com/jsamuelsen/storefront-web/internal/platform/telemetry"
)

// DefaultRequestTimeout bounds one page render when none is configured.
const DefaultRequestTimeout = 20 * time.Second

// RouterConfig contains everything needed to build the route table.
type RouterConfig struct {
	// ServiceName names the spans created for incoming requests.
	ServiceName string

	// Session configures the cookie session used by the account pages.
	Session *config.SessionConfig

	// CORS configures the JSON blog endpoints.
	CORS *config.CORSConfig

	// Timeout bounds each request. Zero means DefaultRequestTimeout.
	Timeout time.Duration

	HealthHandler  *handlers.HealthHandler
	BlogHandler    *handlers.BlogHandler
	AccountHandler *handlers.AccountHandler
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID
//  3. Correlation ID - handle distributed tracing correlation
//  4. OpenTelemetry - request span, then request metrics
//  5. Logging - request logging (skips /-/ endpoints)
//  6. Sessions - signed cookie session
//
// Route groups:
//   - /-/ (internal): health, build info and metrics, no request deadline
//   - /blog: listing, feed, articles; /blog/api adds CORS
//   - /account: publisher pages, login required except POST /agreement
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.TracingMiddleware(cfg.ServiceName),
		telemetry.Middleware(),
		middleware.Logging(),
	)

	if cfg.Session != nil {
		engine.Use(middleware.Sessions(cfg.Session))
	}

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutes(engine.Group("/-"))
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	deadline := middleware.RequestTimeout(timeout)

	if cfg.BlogHandler != nil {
		var apiMiddleware []gin.HandlerFunc
		if cfg.CORS != nil {
			apiMiddleware = append(apiMiddleware, middleware.CORS(cfg.CORS))
		}

		cfg.BlogHandler.RegisterBlogRoutes(engine.Group("/blog", deadline), apiMiddleware...)
	}

	if cfg.AccountHandler != nil {
		cfg.AccountHandler.RegisterAccountRoutes(engine.Group("/account", deadline))
	}
}
