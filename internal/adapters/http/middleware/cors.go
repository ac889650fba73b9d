package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/storefront-web/internal/platform/config"
)

// corsMaxAge is how long browsers may cache a preflight answer.
const corsMaxAge = 12 * time.Hour

// CORS returns middleware for the read-only JSON blog endpoints, which are
// fetched cross-origin by the snap pages. Without configured origins every
// origin is allowed.
func CORS(cfg *config.CORSConfig) gin.HandlerFunc {
	c := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Accept", HeaderRequestID, HeaderCorrelationID},
		ExposeHeaders: []string{
			HeaderRequestID,
			HeaderCorrelationID,
		},
		MaxAge: corsMaxAge,
	}

	if len(cfg.AllowedOrigins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.AllowedOrigins
	}

	return cors.New(c)
}
