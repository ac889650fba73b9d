package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/storefront-web/internal/adapters/http/dto"
	"github.com/jsamuelsen/storefront-web/internal/app"
	"github.com/jsamuelsen/storefront-web/internal/platform/logging"
	"github.com/jsamuelsen/storefront-web/internal/ports"
)

// feedContentType is the media type of the blog feed passthrough.
const feedContentType = "text/xml; charset=utf-8"

// BlogHandler serves the blog pages and the snap lookup feeds.
type BlogHandler struct {
	service *app.BlogService
	flags   ports.FeatureFlags
}

// NewBlogHandler creates a blog handler.
func NewBlogHandler(service *app.BlogService, flags ports.FeatureFlags) *BlogHandler {
	return &BlogHandler{
		service: service,
		flags:   flags,
	}
}

// Listing handles GET /blog.
// The category flag is evaluated once here and passed down with the request.
func (h *BlogHandler) Listing(c *gin.Context) {
	ctx := c.Request.Context()

	var query dto.ListingQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logging.FromContext(ctx).Debug("ignoring malformed listing query", slog.Any("error", err))
	}

	page, err := h.service.Listing(ctx, app.ListingRequest{
		Page:              query.PageNumber(),
		Filter:            query.Filter,
		CategoriesEnabled: h.flags.IsEnabled(ctx, ports.FlagBlogCategories, false),
	})
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, templateBlogIndex, gin.H{
		"current_page":    page.CurrentPage,
		"total_pages":     page.TotalPages,
		"pagination":      dto.NewPagination(page.CurrentPage, page.TotalPages),
		"articles":        page.Articles,
		"categories":      page.Categories,
		"used_categories": page.UsedCategories,
		"filter":          page.Filter,
	})
}

// Feed handles GET /blog/feed.
// Upstream failures answer 502 with an empty body.
func (h *BlogHandler) Feed(c *gin.Context) {
	doc, err := h.service.Feed(c.Request.Context(), requestURL(c))
	if err != nil {
		logError(c, http.StatusBadGateway, err)
		c.Status(http.StatusBadGateway)

		return
	}

	c.Data(http.StatusOK, feedContentType, []byte(doc))
}

// Article handles GET /blog/:slug.
func (h *BlogHandler) Article(c *gin.Context) {
	page, err := h.service.Article(c.Request.Context(), c.Param("slug"))
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, templateBlogArticle, gin.H{
		"article":          page.Article,
		"related_articles": page.RelatedArticles,
		"tags":             page.Tags,
		"is_in_series":     page.IsInSeries,
	})
}

// SnapPosts handles GET /blog/api/snap-posts/:snap.
// Always answers 200 with a JSON array, empty when nothing matched.
func (h *BlogHandler) SnapPosts(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.SnapPosts(c.Request.Context(), c.Param("snap")))
}

// SnapSeries handles GET /blog/api/series/:series.
// Always answers 200 with a JSON array, empty when nothing matched.
func (h *BlogHandler) SnapSeries(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.SnapSeries(c.Request.Context(), c.Param("series")))
}

// RegisterBlogRoutes registers the blog routes on rg. apiMiddleware applies
// only to the JSON lookup routes under /api.
func (h *BlogHandler) RegisterBlogRoutes(rg *gin.RouterGroup, apiMiddleware ...gin.HandlerFunc) {
	rg.GET("", h.Listing)
	rg.GET("/feed", h.Feed)
	rg.GET("/:slug", h.Article)

	api := rg.Group("/api", apiMiddleware...)
	api.GET("/snap-posts/:snap", h.SnapPosts)
	api.GET("/series/:series", h.SnapSeries)
}

// requestURL rebuilds the absolute URL the client requested, without the
// query string. X-Forwarded-Proto wins over the connection scheme.
func requestURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}

	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	return scheme + "://" + c.Request.Host + c.Request.URL.Path
}
