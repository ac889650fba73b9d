//go:build integration

package integration

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/storefront-web/internal/adapters/clients"
	"github.com/jsamuelsen/storefront-web/internal/adapters/clients/acl"
	"github.com/jsamuelsen/storefront-web/internal/adapters/flags"
	httpadapter "github.com/jsamuelsen/storefront-web/internal/adapters/http"
	"github.com/jsamuelsen/storefront-web/internal/adapters/http/handlers"
	"github.com/jsamuelsen/storefront-web/internal/adapters/http/middleware"
	"github.com/jsamuelsen/storefront-web/internal/app"
	"github.com/jsamuelsen/storefront-web/internal/domain"
	"github.com/jsamuelsen/storefront-web/internal/platform/config"
	"github.com/jsamuelsen/storefront-web/internal/platform/metrics"
	"github.com/jsamuelsen/storefront-web/internal/ports"
)

const (
	templateGlob = "../../web/templates/**/*.html"
	loginPath    = "/login"
	testLogin    = "/test/login"
)

// storefront is the full service wired against an upstreamFake and served
// from an httptest server.
type storefront struct {
	upstream *upstreamFake
	server   *httptest.Server
	flags    *flags.Static
	registry *prometheus.Registry
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newStorefront(upstream *upstreamFake) (*storefront, error) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	transport := config.TransportConfig{
		MaxIdleConns:        config.DefaultTransportMaxIdleConns,
		MaxIdleConnsPerHost: config.DefaultTransportMaxIdleConnsPerHost,
		IdleConnTimeout:     config.DefaultTransportIdleConnTimeout,
	}

	contentHTTP, err := clients.New(&clients.Config{
		BaseURL:     upstream.contentURL(),
		ServiceName: "content-api",
		Timeout:     2 * time.Second,
		Transport:   transport,
	})
	if err != nil {
		return nil, fmt.Errorf("content client: %w", err)
	}

	publisherHTTP, err := clients.New(&clients.Config{
		BaseURL:     upstream.server.URL,
		ServiceName: "publisher-api",
		Timeout:     2 * time.Second,
		Transport:   transport,
	})
	if err != nil {
		return nil, fmt.Errorf("publisher client: %w", err)
	}

	content := acl.NewContentClient(acl.ContentClientConfig{
		Client:  contentHTTP,
		FeedURL: upstream.feedURL(),
		Logger:  logger,
	})
	publisher := acl.NewPublisherClient(acl.PublisherClientConfig{Client: publisherHTTP, Logger: logger})

	registry := prometheus.NewRegistry()

	fallbacks, err := metrics.NewFallbacks(registry)
	if err != nil {
		return nil, fmt.Errorf("fallback metrics: %w", err)
	}

	health := ports.NewHealthRegistry()
	if err := health.Register(content); err != nil {
		return nil, err
	}

	if err := health.Register(publisher); err != nil {
		return nil, err
	}

	flagStore := flags.NewStatic(map[string]any{ports.FlagBlogCategories: false})

	blogService := app.NewBlogService(app.BlogServiceConfig{
		Content:   content,
		Fallbacks: fallbacks,
		Blog: app.BlogConfig{
			CategoryWhitelist: []string{"News", "Tutorials"},
			PerPage:           config.DefaultBlogPerPage,
			RelatedLimit:      config.DefaultBlogRelatedLimit,
			SnapLimit:         config.DefaultBlogSnapLimit,
			SeriesTagPrefix:   "sc:series",
			SnapTagPrefix:     "sc:snap:",
			Feed: domain.FeedRewrite{
				SourceOrigin: upstream.server.URL,
				BrandFrom:    "Ubuntu Blog",
				BrandTo:      "Snapcraft Blog",
			},
		},
	})

	accountService := app.NewAccountService(app.AccountServiceConfig{Publisher: publisher})

	tmpl, err := httpadapter.ParseTemplates(templateGlob)
	if err != nil {
		return nil, err
	}

	engine := gin.New()
	engine.SetHTMLTemplate(tmpl)

	httpadapter.SetupRouter(engine, httpadapter.RouterConfig{
		ServiceName: "storefront-web",
		Session: &config.SessionConfig{
			Name:   "storefront",
			Secret: "integration-session-secret",
			MaxAge: config.DefaultSessionMaxAge,
		},
		CORS:    &config.CORSConfig{},
		Timeout: 5 * time.Second,
		HealthHandler: handlers.NewHealthHandler(handlers.HealthHandlerConfig{
			Registry: health,
			Build:    handlers.NewBuildInfo("1.2.3", "abc123", "2024-03-05T10:00:00Z"),
			Gatherer: registry,
		}),
		BlogHandler: handlers.NewBlogHandler(blogService, flagStore),
		AccountHandler: handlers.NewAccountHandler(handlers.AccountHandlerConfig{
			Service:  accountService,
			SnapsURL: "/snaps",
			LoginURL: loginPath,
		}),
	})

	// Stands in for the login flow, which lives outside this service.
	engine.GET(testLogin, func(c *gin.Context) {
		if err := middleware.SetPublisherAuth(c, c.Query("auth")); err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}

		c.Status(http.StatusNoContent)
	})

	return &storefront{
		upstream: upstream,
		server:   httptest.NewServer(engine),
		flags:    flagStore,
		registry: registry,
	}, nil
}

func (s *storefront) close() {
	s.server.Close()
}

// newBrowser returns a client that keeps cookies and does not follow redirects.
func (s *storefront) newBrowser() *http.Client {
	jar, _ := cookiejar.New(nil)

	return &http.Client{
		Jar:     jar,
		Timeout: 10 * time.Second,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}
