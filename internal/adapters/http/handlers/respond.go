package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/storefront-web/internal/adapters/http/dto"
	"github.com/jsamuelsen/storefront-web/internal/platform/logging"
	"github.com/jsamuelsen/storefront-web/internal/platform/telemetry"
)

// Template names rendered by the handlers.
const (
	templateError           = "error.html"
	templateBlogIndex       = "blog/index.html"
	templateBlogArticle     = "blog/article.html"
	templateAccountDetails  = "publisher/account-details.html"
	templateAgreement       = "publisher/developer_programme_agreement.html"
	templateAccountUsername = "publisher/username.html"
)

// renderError renders the error page for err with the status it maps to.
func renderError(c *gin.Context, err error) {
	status, resp := dto.MapDomainError(err)
	traceID := logError(c, status, err)

	c.HTML(status, templateError, gin.H{
		"status":   status,
		"code":     resp.Error.Code,
		"message":  resp.Error.Message,
		"trace_id": traceID,
	})
}

// respondError writes the JSON error envelope for err.
func respondError(c *gin.Context, err error) {
	status, resp := dto.MapDomainError(err)
	traceID := logError(c, status, err)

	c.JSON(status, resp.WithTraceID(traceID))
}

// logError records a failed request and returns its trace id.
func logError(c *gin.Context, status int, err error) string {
	ctx := c.Request.Context()
	traceID := telemetry.TraceIDFromContext(ctx)

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}

	logging.FromContext(ctx).Log(ctx, level, "request failed",
		slog.String("route", c.FullPath()),
		slog.Int("status", status),
		slog.Any("error", err),
	)

	return traceID
}
