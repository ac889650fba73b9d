// Package http provides the HTTP adapter layer using Gin: the server, the
// HTML template loading, and the route table of the storefront.
package http

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/storefront-web/internal/platform/config"
)

// ErrNoTemplates is returned when the template glob matches no file.
var ErrNoTemplates = errors.New("no templates found")

// Server wraps http.Server with Gin and provides graceful shutdown.
type Server struct {
	engine     *gin.Engine
	httpServer *http.Server
	config     *config.ServerConfig
	logger     *slog.Logger
}

// New creates a new HTTP server with the provided configuration.
func New(cfg *config.ServerConfig, logger *slog.Logger) *Server {
	// Set Gin mode based on configuration
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()

	// Apply max request body size middleware
	engine.Use(maxBodySize(cfg.MaxRequestSize))

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      engine,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &Server{
		engine:     engine,
		httpServer: httpServer,
		config:     cfg,
		logger:     logger,
	}
}

// LoadTemplates parses the page templates into the engine. See ParseTemplates.
func (s *Server) LoadTemplates(glob string) error {
	tmpl, err := ParseTemplates(glob)
	if err != nil {
		return err
	}

	s.engine.SetHTMLTemplate(tmpl)
	s.logger.Info("templates loaded",
		slog.String("glob", glob),
		slog.Int("count", len(tmpl.Templates())),
	)

	return nil
}

// ParseTemplates parses every file below the glob's fixed leading directory
// whose name matches the glob's last element, at any depth. Each template is
// named by its slash-separated path relative to that directory, so
// "web/templates/**/*.html" yields "error.html" and "blog/index.html".
func ParseTemplates(glob string) (*template.Template, error) {
	root := templateRoot(glob)
	pattern := filepath.Base(glob)
	tmpl := template.New("").Funcs(templateFuncs)
	count := 0

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if ok, _ := filepath.Match(pattern, d.Name()); !ok {
			return nil
		}

		name, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("naming template %s: %w", path, err)
		}

		body, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", path, err)
		}

		if _, err := tmpl.New(filepath.ToSlash(name)).Parse(string(body)); err != nil {
			return fmt.Errorf("parsing template %s: %w", name, err)
		}

		count++

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading templates %q: %w", glob, err)
	}

	if count == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoTemplates, glob)
	}

	return tmpl, nil
}

// templateFuncs are available to every page template. rawHTML marks
// content API markup (titles and bodies) as trusted. Excerpts are plain
// text and go through normal escaping.
var templateFuncs = template.FuncMap{
	"rawHTML": func(s string) template.HTML {
		return template.HTML(s) //nolint:gosec // content API markup is rendered as published
	},
}

// Engine returns the underlying Gin engine for route registration.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Config returns the server configuration.
func (s *Server) Config() *config.ServerConfig {
	return s.config
}

// Start begins listening and serving HTTP requests.
// Returns an error channel that will receive any ListenAndServe errors.
// This method is non-blocking.
func (s *Server) Start() <-chan error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("starting HTTP server",
			slog.String("addr", s.httpServer.Addr),
			slog.Duration("read_timeout", s.config.ReadTimeout),
			slog.Duration("write_timeout", s.config.WriteTimeout),
		)

		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server error: %w", err)
		}

		close(errCh)
	}()

	return errCh
}

// Shutdown gracefully stops the server, waiting for active connections to finish.
// The provided context controls the shutdown timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	s.logger.Info("HTTP server stopped")

	return nil
}

// Addr returns the server's listening address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// templateRoot returns the leading directory of glob that holds no
// wildcard characters.
func templateRoot(glob string) string {
	dir := filepath.Dir(glob)
	for hasMeta(dir) && dir != "." && dir != string(filepath.Separator) {
		dir = filepath.Dir(dir)
	}

	return dir
}

func hasMeta(path string) bool {
	return strings.ContainsAny(path, "*?[")
}

// maxBodySize returns middleware that limits the request body size.
func maxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
