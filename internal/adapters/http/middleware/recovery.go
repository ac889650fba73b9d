package middleware

import (
	"log/slog"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/storefront-web/internal/adapters/http/dto"
	"github.com/jsamuelsen/storefront-web/internal/platform/logging"
	"github.com/jsamuelsen/storefront-web/internal/platform/telemetry"
)

// panicMessage is the only detail a visitor sees after a panic.
const panicMessage = "an internal error occurred"

// Recovery returns middleware that turns a panic into a 500 response.
// The panic value and stack go to the request logger at ERROR; pages get a
// plain message and API routes the JSON error envelope.
//
// Apply it first so it also covers the other middleware.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			ctx := c.Request.Context()
			logging.FromContext(ctx).Error("panic recovered",
				slog.Any("error", r),
				slog.String("stack", string(debug.Stack())),
				slog.String("method", c.Request.Method),
				slog.String("path", c.Request.URL.Path),
				slog.String("trace_id", telemetry.TraceIDFromContext(ctx)),
			)

			abortWithError(c, dto.ErrorCodeInternal, panicMessage)
		}()

		c.Next()
	}
}
