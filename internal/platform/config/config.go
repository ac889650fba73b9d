// Package config provides configuration loading and management using koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	// DefaultServerPort is the default HTTP server port.
	DefaultServerPort = 8004

	// DefaultMaxRequestSize is the default maximum request body size (1MB).
	DefaultMaxRequestSize = 1 << 20 // 1048576 bytes

	// DefaultTransportMaxIdleConns is the default max idle connections.
	DefaultTransportMaxIdleConns = 100

	// DefaultTransportMaxIdleConnsPerHost is the default max idle connections per host.
	DefaultTransportMaxIdleConnsPerHost = 10

	// DefaultTransportIdleConnTimeout is the default idle connection timeout.
	DefaultTransportIdleConnTimeout = 90 * time.Second

	// DefaultLogFileMaxSizeMB is the default max log file size in megabytes.
	DefaultLogFileMaxSizeMB = 100

	// DefaultLogFileMaxBackups is the default number of old log files to retain.
	DefaultLogFileMaxBackups = 3

	// DefaultLogFileMaxAgeDays is the default max days to retain old log files.
	DefaultLogFileMaxAgeDays = 28

	// DefaultBlogPerPage is the number of articles on one listing page.
	DefaultBlogPerPage = 12

	// DefaultBlogRelatedLimit is the number of related articles on a detail page.
	DefaultBlogRelatedLimit = 3

	// DefaultBlogSnapLimit is the number of articles returned for one snap.
	DefaultBlogSnapLimit = 3

	// DefaultSessionSecret signs session cookies when nothing else is set.
	// It is rejected in prod.
	DefaultSessionSecret = "insecure-local-session-secret"

	// DefaultSessionMaxAge is the session cookie lifetime in seconds (one week).
	DefaultSessionMaxAge = 7 * 24 * 60 * 60
)

// Config is the root configuration structure.
type Config struct {
	App       AppConfig       `koanf:"app"       validate:"required"`
	Server    ServerConfig    `koanf:"server"    validate:"required"`
	Log       LogConfig       `koanf:"log"       validate:"required"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Client    ClientConfig    `koanf:"client"    validate:"required"`
	Services  ServicesConfig  `koanf:"services"  validate:"required"`
	Blog      BlogConfig      `koanf:"blog"      validate:"required"`
	Session   SessionConfig   `koanf:"session"   validate:"required"`
	Account   AccountConfig   `koanf:"account"   validate:"required"`
	CORS      CORSConfig      `koanf:"cors"`
	Templates TemplatesConfig `koanf:"templates" validate:"required"`
	Flags     map[string]any  `koanf:"flags"`
}

// AppConfig contains application-level settings.
type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev qa prod test"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"             validate:"required,min=1,max=65535"`
	Host            string        `koanf:"host"             validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"required,min=1s"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"required,min=1s"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"     validate:"required,min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required,min=1s"`
	RequestTimeout  time.Duration `koanf:"request_timeout"  validate:"required,min=1s"`
	MaxRequestSize  int64         `koanf:"max_request_size" validate:"required,min=1"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=trace debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// TelemetryConfig contains OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`
	Insecure     bool    `koanf:"insecure"`
}

// ClientConfig contains HTTP client settings for the remote APIs.
// Requests are attempted once; there is no retry or circuit breaking.
type ClientConfig struct {
	Timeout   time.Duration   `koanf:"timeout"   validate:"required,min=100ms"`
	Transport TransportConfig `koanf:"transport" validate:"required"`
}

// TransportConfig contains HTTP transport pool settings.
type TransportConfig struct {
	MaxIdleConns        int           `koanf:"max_idle_conns"          validate:"required,min=1"`
	MaxIdleConnsPerHost int           `koanf:"max_idle_conns_per_host" validate:"required,min=1"`
	IdleConnTimeout     time.Duration `koanf:"idle_conn_timeout"       validate:"required,min=1s"`
}

// ServicesConfig contains configuration for the remote APIs.
type ServicesConfig struct {
	Content   ServiceEndpointConfig `koanf:"content"   validate:"required"`
	Publisher ServiceEndpointConfig `koanf:"publisher" validate:"required"`
	Marketo   MarketoConfig         `koanf:"marketo"`
}

// ServiceEndpointConfig contains configuration for a remote service endpoint.
type ServiceEndpointConfig struct {
	BaseURL string `koanf:"base_url" validate:"required,url"`
	Name    string `koanf:"name"     validate:"required"`
}

// MarketoConfig contains the newsletter API settings.
// The newsletter client is disabled when Enabled is false.
type MarketoConfig struct {
	Enabled         bool   `koanf:"enabled"`
	BaseURL         string `koanf:"base_url"         validate:"required_if=Enabled true,omitempty,url"`
	Name            string `koanf:"name"             validate:"required"`
	ID              string `koanf:"id"               validate:"required_if=Enabled true"`
	Secret          string `koanf:"secret"           validate:"required_if=Enabled true"`
	NewsletterField string `koanf:"newsletter_field" validate:"required"`
}

// BlogConfig contains blog page settings.
type BlogConfig struct {
	CategoriesEnabled  bool     `koanf:"categories_enabled"`
	CategoryWhitelist  []string `koanf:"category_whitelist"`
	DefaultTagIDs      []int    `koanf:"default_tag_ids"`
	PerPage            int      `koanf:"per_page"             validate:"required,min=1,max=100"`
	RelatedLimit       int      `koanf:"related_limit"        validate:"required,min=1,max=100"`
	SnapLimit          int      `koanf:"snap_limit"           validate:"required,min=1,max=100"`
	SeriesTagPrefix    string   `koanf:"series_tag_prefix"    validate:"required"`
	SnapTagPrefix      string   `koanf:"snap_tag_prefix"      validate:"required"`
	FetchFeaturedMedia bool     `koanf:"fetch_featured_media"`
	FeedPath           string   `koanf:"feed_path"            validate:"required"`
	FeedSourceOrigin   string   `koanf:"feed_source_origin"`
	BrandFrom          string   `koanf:"brand_from"`
	BrandTo            string   `koanf:"brand_to"`
}

// SessionConfig contains the cookie session settings.
type SessionConfig struct {
	Name   string `koanf:"name"    validate:"required"`
	Secret string `koanf:"secret"  validate:"required,min=16"`
	Secure bool   `koanf:"secure"`
	MaxAge int    `koanf:"max_age" validate:"min=0"`
}

// AccountConfig contains the account page settings.
type AccountConfig struct {
	LoginURL string `koanf:"login_url" validate:"required"`
	SnapsURL string `koanf:"snaps_url" validate:"required"`
}

// CORSConfig contains the allowed origins of the JSON blog endpoints.
type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
}

// TemplatesConfig contains the HTML template location.
type TemplatesConfig struct {
	Glob string `koanf:"glob" validate:"required"`
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"app.name":        "storefront-web",
		"app.version":     "dev",
		"app.environment": "local",

		"server.port":             DefaultServerPort,
		"server.host":             "0.0.0.0",
		"server.read_timeout":     "30s",
		"server.write_timeout":    "30s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "10s",
		"server.request_timeout":  "20s",
		"server.max_request_size": DefaultMaxRequestSize,

		"log.level":            "info",
		"log.format":           "json",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/storefront.log",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,

		"telemetry.enabled":       false,
		"telemetry.endpoint":      "",
		"telemetry.service_name":  "storefront-web",
		"telemetry.sampling_rate": 1.0,
		"telemetry.insecure":      true,

		"client.timeout":                           "10s",
		"client.transport.max_idle_conns":          DefaultTransportMaxIdleConns,
		"client.transport.max_idle_conns_per_host": DefaultTransportMaxIdleConnsPerHost,
		"client.transport.idle_conn_timeout":       "90s",

		"services.content.base_url":         "https://admin.insights.ubuntu.com/wp-json/wp/v2",
		"services.content.name":             "content-api",
		"services.publisher.base_url":       "https://dashboard.snapcraft.io",
		"services.publisher.name":           "publisher-api",
		"services.marketo.enabled":          false,
		"services.marketo.base_url":         "",
		"services.marketo.name":             "marketo",
		"services.marketo.newsletter_field": "snapcraftnewsletter",

		"blog.categories_enabled":   false,
		"blog.category_whitelist":   []string{"News", "Tutorials", "Case Studies", "Videos"},
		"blog.default_tag_ids":      []int{2996},
		"blog.per_page":             DefaultBlogPerPage,
		"blog.related_limit":        DefaultBlogRelatedLimit,
		"blog.snap_limit":           DefaultBlogSnapLimit,
		"blog.series_tag_prefix":    "sc:series",
		"blog.snap_tag_prefix":      "sc:snap:",
		"blog.fetch_featured_media": false,
		"blog.feed_path":            "https://admin.insights.ubuntu.com/feed",
		"blog.feed_source_origin":   "",
		"blog.brand_from":           "Ubuntu Blog",
		"blog.brand_to":             "Snapcraft Blog",

		"session.name":    "storefront",
		"session.secret":  DefaultSessionSecret,
		"session.secure":  false,
		"session.max_age": DefaultSessionMaxAge,

		"account.login_url": "/login",
		"account.snaps_url": "/snaps",

		"templates.glob": "web/templates/**/*.html",
	}
}

// Load loads configuration with the following precedence (highest to lowest):
//  1. Environment variables (APP_ prefix, including those from a .env file)
//  2. Profile config file (configs/{profile}.yaml)
//  3. Base config file (configs/base.yaml)
//  4. Default values
func Load(profile string) (*Config, error) {
	err := loadDotEnv(".env")
	if err != nil {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	k := koanf.New(".")

	// 1. Load defaults
	err = k.Load(confmap.Provider(defaults(), "."), nil)
	if err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// 2. Load base config file if it exists
	err = loadFileIfExists(k, "configs/base.yaml")
	if err != nil {
		return nil, fmt.Errorf("loading base config: %w", err)
	}

	// 3. Load profile config file if it exists
	if profile != "" {
		profilePath := fmt.Sprintf("configs/%s.yaml", profile)

		err := loadFileIfExists(k, profilePath)
		if err != nil {
			return nil, fmt.Errorf("loading profile config %q: %w", profile, err)
		}
	}

	// 4. Load environment variables with APP_ prefix
	err = k.Load(env.Provider("APP_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "APP_")),
			"_",
			".",
		)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	// Unmarshal into Config struct
	var cfg Config

	err = k.Unmarshal("", &cfg)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// loadDotEnv loads variables from a .env file into the process environment.
// Variables already set in the environment win. A missing file is not an error.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return godotenv.Load(path)
}

// loadFileIfExists loads a YAML config file if it exists.
// Returns nil if the file doesn't exist, error only for parse/read failures.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil // File doesn't exist, that's fine
	}

	return k.Load(file.Provider(path), yaml.Parser())
}
