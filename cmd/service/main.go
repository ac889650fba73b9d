// Package main is the entry point for the storefront web service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/storefront-web/internal/adapters/clients"
	"github.com/jsamuelsen/storefront-web/internal/adapters/clients/acl"
	"github.com/jsamuelsen/storefront-web/internal/adapters/flags"
	"github.com/jsamuelsen/storefront-web/internal/adapters/http"
	"github.com/jsamuelsen/storefront-web/internal/adapters/http/handlers"
	"github.com/jsamuelsen/storefront-web/internal/app"
	"github.com/jsamuelsen/storefront-web/internal/domain"
	"github.com/jsamuelsen/storefront-web/internal/platform/config"
	"github.com/jsamuelsen/storefront-web/internal/platform/logging"
	"github.com/jsamuelsen/storefront-web/internal/platform/metrics"
	"github.com/jsamuelsen/storefront-web/internal/platform/telemetry"
	"github.com/jsamuelsen/storefront-web/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	slog.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
		Insecure:     cfg.Telemetry.Insecure,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	if telProvider.Enabled() {
		logger.Info("exporting telemetry", slog.String("endpoint", cfg.Telemetry.Endpoint))
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Create remote API adapters (ACL pattern)
	upstreams, err := newUpstreams(cfg, logger)
	if err != nil {
		return err
	}

	// 6. Register adapters as health checkers
	healthRegistry := ports.NewHealthRegistry(ports.WithCheckTimeout(min(cfg.Client.Timeout, ports.DefaultCheckTimeout)))

	for _, checker := range []ports.HealthChecker{upstreams.content, upstreams.publisher} {
		if err := healthRegistry.Register(checker); err != nil {
			return fmt.Errorf("registering %s health check: %w", checker.Name(), err)
		}
	}

	// 7. Create application services
	fallbacks, err := metrics.NewFallbacks(prometheus.DefaultRegisterer)
	if err != nil {
		return fmt.Errorf("registering fallback metrics: %w", err)
	}

	blogService := app.NewBlogService(app.BlogServiceConfig{
		Content:   upstreams.content,
		Fallbacks: fallbacks,
		Blog:      blogConfig(&cfg.Blog),
	})

	accountService := app.NewAccountService(app.AccountServiceConfig{
		Publisher:  upstreams.publisher,
		Newsletter: upstreams.newsletter,
	})

	// 8. Create handlers
	healthHandler := handlers.NewHealthHandler(handlers.HealthHandlerConfig{
		Registry: healthRegistry,
		Build:    handlers.NewBuildInfo(Version, Commit, BuildTime),
	})
	blogHandler := handlers.NewBlogHandler(blogService, featureFlags(cfg))
	accountHandler := handlers.NewAccountHandler(handlers.AccountHandlerConfig{
		Service:  accountService,
		SnapsURL: cfg.Account.SnapsURL,
		LoginURL: cfg.Account.LoginURL,
	})

	// 9. Create HTTP server and load page templates
	server := http.New(&cfg.Server, logger)

	if err := server.LoadTemplates(cfg.Templates.Glob); err != nil {
		return fmt.Errorf("loading templates: %w", err)
	}

	// 10. Setup router with all middleware and routes
	http.SetupRouter(server.Engine(), http.RouterConfig{
		ServiceName:    cfg.Telemetry.ServiceName,
		Session:        &cfg.Session,
		CORS:           &cfg.CORS,
		Timeout:        cfg.Server.RequestTimeout,
		HealthHandler:  healthHandler,
		BlogHandler:    blogHandler,
		AccountHandler: accountHandler,
	})

	// 11. Start server (non-blocking)
	serverErr := server.Start()

	// 12. Wait for shutdown signal
	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// upstreams holds the adapters for the remote APIs.
type upstreams struct {
	content    *acl.ContentClient
	publisher  *acl.PublisherClient
	newsletter ports.NewsletterClient
}

func newUpstreams(cfg *config.Config, logger *slog.Logger) (*upstreams, error) {
	contentHTTP, err := clients.New(&clients.Config{
		BaseURL:     cfg.Services.Content.BaseURL,
		ServiceName: cfg.Services.Content.Name,
		Timeout:     cfg.Client.Timeout,
		Transport:   cfg.Client.Transport,
		UserAgent:   userAgent(),
	})
	if err != nil {
		return nil, fmt.Errorf("creating content API client: %w", err)
	}

	publisherHTTP, err := clients.New(&clients.Config{
		BaseURL:     cfg.Services.Publisher.BaseURL,
		ServiceName: cfg.Services.Publisher.Name,
		Timeout:     cfg.Client.Timeout,
		Transport:   cfg.Client.Transport,
		UserAgent:   userAgent(),
	})
	if err != nil {
		return nil, fmt.Errorf("creating publisher API client: %w", err)
	}

	u := &upstreams{
		content: acl.NewContentClient(acl.ContentClientConfig{
			Client:  contentHTTP,
			FeedURL: cfg.Blog.FeedPath,
			Logger:  logger,
		}),
		publisher: acl.NewPublisherClient(acl.PublisherClientConfig{
			Client: publisherHTTP,
			Logger: logger,
		}),
	}

	marketo := cfg.Services.Marketo
	if !marketo.Enabled {
		logger.Info("newsletter updates disabled")
		return u, nil
	}

	newsletter, err := acl.NewMarketoClient(acl.MarketoClientConfig{
		BaseURL:         marketo.BaseURL,
		ServiceName:     marketo.Name,
		ClientID:        marketo.ID,
		ClientSecret:    marketo.Secret,
		NewsletterField: marketo.NewsletterField,
		Timeout:         cfg.Client.Timeout,
		Transport:       cfg.Client.Transport,
		UserAgent:       userAgent(),
		Logger:          logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating newsletter client: %w", err)
	}

	u.newsletter = newsletter

	return u, nil
}

func blogConfig(c *config.BlogConfig) app.BlogConfig {
	return app.BlogConfig{
		CategoryWhitelist:  c.CategoryWhitelist,
		DefaultTagIDs:      c.DefaultTagIDs,
		PerPage:            c.PerPage,
		RelatedLimit:       c.RelatedLimit,
		SnapLimit:          c.SnapLimit,
		SeriesTagPrefix:    c.SeriesTagPrefix,
		SnapTagPrefix:      c.SnapTagPrefix,
		FetchFeaturedMedia: c.FetchFeaturedMedia,
		Feed: domain.FeedRewrite{
			SourceOrigin: c.FeedSourceOrigin,
			BrandFrom:    c.BrandFrom,
			BrandTo:      c.BrandTo,
		},
	}
}

func userAgent() string {
	return "storefront-web/" + Version
}

// featureFlags seeds the flag store from the blog settings. Entries under
// the flags key override them.
func featureFlags(cfg *config.Config) *flags.Static {
	store := flags.NewStatic(map[string]any{
		ports.FlagBlogCategories: cfg.Blog.CategoriesEnabled,
	})

	for name, value := range cfg.Flags {
		store.Set(name, value)
	}

	return store
}

// waitForShutdown blocks until a shutdown signal is received or server error occurs.
// It then performs graceful shutdown of the HTTP server.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
