package middleware

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/storefront-web/internal/platform/config"
	"github.com/jsamuelsen/storefront-web/internal/platform/logging"
)

const (
	// SessionKeyPublisher holds the publisher API authorization string
	// written by the login flow.
	SessionKeyPublisher = "publisher"

	// FlashPositive and FlashNegative are the flash message categories
	// rendered by the account pages.
	FlashPositive = "positive"
	FlashNegative = "negative"

	// loginNextParam carries the path to return to after login.
	loginNextParam = "next"
)

// Sessions returns middleware that attaches a signed cookie session to every
// request. Handlers access it with sessions.Default.
func Sessions(cfg *config.SessionConfig) gin.HandlerFunc {
	store := cookie.NewStore([]byte(cfg.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   cfg.MaxAge,
		Secure:   cfg.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return sessions.Sessions(cfg.Name, store)
}

// PublisherAuth returns the publisher authorization stored in the session.
func PublisherAuth(c *gin.Context) (string, bool) {
	auth, ok := sessions.Default(c).Get(SessionKeyPublisher).(string)
	if !ok || auth == "" {
		return "", false
	}

	return auth, true
}

// SetPublisherAuth stores the publisher authorization in the session.
func SetPublisherAuth(c *gin.Context, auth string) error {
	session := sessions.Default(c)
	session.Set(SessionKeyPublisher, auth)

	return session.Save()
}

// RequireLogin returns middleware that redirects requests without a
// publisher session to loginURL, passing the requested path as "next".
func RequireLogin(loginURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := PublisherAuth(c); ok {
			c.Next()
			return
		}

		logging.FromContext(c.Request.Context()).Debug("login required",
			slog.String("path", c.Request.URL.Path),
		)

		c.Redirect(http.StatusFound, loginRedirect(loginURL, c.Request.URL.Path))
		c.Abort()
	}
}

// AddFlash queues a message for the next rendered page.
func AddFlash(c *gin.Context, category, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, category)

	if err := session.Save(); err != nil {
		logging.FromContext(c.Request.Context()).Warn("saving flash message failed",
			slog.String("category", category),
			slog.Any("error", err),
		)
	}
}

// Flashes pops the queued messages, keyed by category.
func Flashes(c *gin.Context) map[string][]string {
	session := sessions.Default(c)
	out := make(map[string][]string)

	for _, category := range []string{FlashPositive, FlashNegative} {
		for _, v := range session.Flashes(category) {
			if msg, ok := v.(string); ok {
				out[category] = append(out[category], msg)
			}
		}
	}

	if len(out) > 0 {
		if err := session.Save(); err != nil {
			logging.FromContext(c.Request.Context()).Warn("saving popped flash messages failed",
				slog.Int("categories", len(out)),
				slog.Any("error", err),
			)
		}
	}

	return out
}

func loginRedirect(loginURL, next string) string {
	sep := "?"
	if strings.Contains(loginURL, "?") {
		sep = "&"
	}

	return loginURL + sep + url.Values{loginNextParam: {next}}.Encode()
}
