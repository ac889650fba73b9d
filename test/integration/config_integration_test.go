//go:build integration

package integration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/storefront-web/internal/platform/config"
)

// inWorkdir runs the test from a temporary directory holding the given
// files, relative to that directory.
func inWorkdir(t *testing.T, files map[string]string) {
	t.Helper()

	dir := t.TempDir()

	for name, body := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	}

	t.Chdir(dir)
}

// TestConfig_DefaultValues verifies that an empty working directory still
// yields a valid configuration.
func TestConfig_DefaultValues(t *testing.T) {
	inWorkdir(t, nil)

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, config.DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, config.DefaultBlogPerPage, cfg.Blog.PerPage)
	assert.Equal(t, "sc:snap:", cfg.Blog.SnapTagPrefix)
	assert.False(t, cfg.Services.Marketo.Enabled)
	assert.Equal(t, "web/templates/**/*.html", cfg.Templates.Glob)
}

// TestConfig_Precedence verifies env over profile over base. Environment
// names map underscores to key separators, so only keys without
// underscores can be set from the environment.
func TestConfig_Precedence(t *testing.T) {
	inWorkdir(t, map[string]string{
		"configs/base.yaml": `
blog:
  per_page: 6
  brand_to: Base Blog
account:
  login_url: /base-login
`,
		"configs/qa.yaml": `
app:
  environment: qa
blog:
  per_page: 8
`,
	})

	t.Setenv("APP_SESSION_NAME", "from-env")

	cfg, err := config.Load("qa")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "qa", cfg.App.Environment)
	assert.Equal(t, 8, cfg.Blog.PerPage)
	assert.Equal(t, "Base Blog", cfg.Blog.BrandTo)
	assert.Equal(t, "/base-login", cfg.Account.LoginURL)
	assert.Equal(t, "from-env", cfg.Session.Name)
}

// TestConfig_DotEnv verifies .env values load but never override the
// process environment.
func TestConfig_DotEnv(t *testing.T) {
	inWorkdir(t, map[string]string{
		".env": "APP_SESSION_SECRET=secret-from-dotenv-file\nAPP_SESSION_NAME=dotenv-name\n",
	})

	t.Setenv("APP_SESSION_NAME", "real-env-name")

	// godotenv writes into the process environment; restore it afterwards.
	t.Setenv("APP_SESSION_SECRET", "")
	require.NoError(t, os.Unsetenv("APP_SESSION_SECRET"))

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "secret-from-dotenv-file", cfg.Session.Secret)
	assert.Equal(t, "real-env-name", cfg.Session.Name)
}

func TestConfig_FeatureFlags(t *testing.T) {
	inWorkdir(t, map[string]string{
		"configs/base.yaml": `
flags:
  blog-categories: true
`,
	})

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, true, cfg.Flags["blog-categories"])
}

func TestConfig_InvalidConfiguration(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown environment", "app:\n  environment: staging\n"},
		{"marketo enabled without credentials", "services:\n  marketo:\n    enabled: true\n    base_url: https://mkto.example\n"},
		{"short session secret", "session:\n  secret: short\n"},
		{"zero page size", "blog:\n  per_page: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inWorkdir(t, map[string]string{"configs/base.yaml": tt.yaml})

			cfg, err := config.Load("")
			require.NoError(t, err)

			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfig_MalformedFile(t *testing.T) {
	inWorkdir(t, map[string]string{"configs/base.yaml": "blog: [unterminated\n"})

	_, err := config.Load("")
	assert.Error(t, err)
}
