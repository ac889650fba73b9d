package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/storefront-web/internal/adapters/http/dto"
	"github.com/jsamuelsen/storefront-web/internal/platform/telemetry"
)

// apiPathSegment marks routes that always answer with JSON.
const apiPathSegment = "/api/"

// WantsJSON reports whether the error for this request should be a JSON
// envelope rather than a page. API routes always get JSON; other routes
// get JSON only when the client prefers it over HTML.
func WantsJSON(c *gin.Context) bool {
	if strings.Contains(c.Request.URL.Path, apiPathSegment) {
		return true
	}

	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}

// abortWithError stops the chain with the error response for code unless
// the handler already started writing one.
func abortWithError(c *gin.Context, code, message string) {
	status := dto.HTTPStatusFromCode(code)

	if c.Writer.Written() {
		c.Abort()
		return
	}

	if WantsJSON(c) {
		resp := dto.NewErrorResponse(code, message).
			WithTraceID(telemetry.TraceIDFromContext(c.Request.Context()))
		c.AbortWithStatusJSON(status, resp)

		return
	}

	c.String(status, message)
	c.Abort()
}
