// Package app contains application services that orchestrate use cases.
// This is the application layer in Clean Architecture - it coordinates
// domain logic and infrastructure through ports.
//
// Every page render issues its remote calls sequentially on the request
// context. Secondary lookups (authors, media, categories, tags, related
// posts) degrade to an absent value on failure; only the primary fetch of
// a page can fail the render.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jsamuelsen/storefront-web/internal/domain"
	"github.com/jsamuelsen/storefront-web/internal/platform/logging"
	"github.com/jsamuelsen/storefront-web/internal/ports"
)

// Lookup names reported to the FallbackRecorder.
const (
	LookupCategories = "categories"
	LookupCategory   = "category"
	LookupAuthor     = "author"
	LookupMedia      = "media"
	LookupTags       = "tags"
	LookupRelated    = "related"
	LookupSnapPosts  = "snap_posts"
	LookupSeries     = "series"
)

// BlogConfig holds the blog behaviour settings.
type BlogConfig struct {
	CategoryWhitelist  []string
	DefaultTagIDs      []int
	PerPage            int
	RelatedLimit       int
	SnapLimit          int
	SeriesTagPrefix    string
	SnapTagPrefix      string
	FetchFeaturedMedia bool
	Feed               domain.FeedRewrite
}

// BlogServiceConfig contains the dependencies of the blog service.
type BlogServiceConfig struct {
	Content   ports.ContentClient
	Fallbacks ports.FallbackRecorder
	Blog      BlogConfig
}

// BlogService aggregates remote content into blog pages.
type BlogService struct {
	content   ports.ContentClient
	fallbacks ports.FallbackRecorder
	cfg       BlogConfig
}

// ListingRequest describes one listing render.
type ListingRequest struct {
	Page              int
	Filter            string
	CategoriesEnabled bool
}

// ListingPage is the template context of the listing page.
type ListingPage struct {
	CurrentPage    int
	TotalPages     int
	Articles       []*domain.PresentedArticle
	Categories     []domain.Category
	UsedCategories map[int]*domain.Category
	Filter         string
}

// ArticlePage is the template context of the article page.
type ArticlePage struct {
	Article         *domain.PresentedArticle
	RelatedArticles []*domain.PresentedArticle
	Tags            []domain.Tag
	IsInSeries      bool
}

type noopRecorder struct{}

func (noopRecorder) RecordFallback(string) {}

// NewBlogService creates a blog service. It panics without a content client.
func NewBlogService(cfg BlogServiceConfig) *BlogService {
	if cfg.Content == nil {
		panic("app: BlogService requires a content client")
	}

	fallbacks := cfg.Fallbacks
	if fallbacks == nil {
		fallbacks = noopRecorder{}
	}

	blog := cfg.Blog
	if blog.PerPage < 1 {
		blog.PerPage = 12
	}

	if blog.RelatedLimit < 1 {
		blog.RelatedLimit = 3
	}

	if blog.SnapLimit < 1 {
		blog.SnapLimit = 3
	}

	return &BlogService{
		content:   cfg.Content,
		fallbacks: fallbacks,
		cfg:       blog,
	}
}

// Listing builds one page of the article listing.
// Only the article fetch can fail the render.
func (s *BlogService) Listing(ctx context.Context, req ListingRequest) (*ListingPage, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}

	query := domain.ArticleQuery{
		Page:    page,
		PerPage: s.cfg.PerPage,
		TagIDs:  s.cfg.DefaultTagIDs,
	}

	result := &ListingPage{CurrentPage: page}

	if req.CategoriesEnabled {
		result.Categories = s.whitelistedCategories(ctx)

		if id, ok := domain.ResolveCategoryFilter(req.Filter, result.Categories); ok {
			query.CategoryID = id
		}

		if !strings.EqualFold(req.Filter, domain.FilterAll) {
			result.Filter = req.Filter
		}
	}

	list, err := s.content.Articles(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetching articles: %w", err)
	}

	result.TotalPages = list.TotalPages
	result.Articles = make([]*domain.PresentedArticle, 0, len(list.Articles))

	cache := domain.NewCategoryCache()

	for i := range list.Articles {
		raw := &list.Articles[i]

		opts := domain.ShapeOptions{Author: s.author(ctx, raw.AuthorID)}
		if s.cfg.FetchFeaturedMedia {
			opts.Image = s.media(ctx, raw.FeaturedMediaID)
		}

		if req.CategoriesEnabled {
			cache.Record(raw.CategoryIDs...)
		}

		result.Articles = append(result.Articles, domain.ShapeArticle(raw, opts))
	}

	if req.CategoriesEnabled {
		cache.Resolve(
			func(id int) (*domain.Category, error) {
				return s.content.CategoryByID(ctx, id)
			},
			func(id int, err error) {
				s.fallback(ctx, LookupCategory, err, slog.Int("category_id", id))
			},
		)

		result.UsedCategories = cache.Map()
	}

	logging.FromContext(ctx).DebugContext(ctx, "listing assembled",
		slog.Int("page", page),
		slog.Int("total_pages", result.TotalPages),
		slog.Int("articles", len(result.Articles)),
		slog.Int("categories_resolved", cache.Len()),
	)

	return result, nil
}

// Article builds the detail page of the article published under slug.
// Returns a *domain.NotFoundError when no article has that slug.
func (s *BlogService) Article(ctx context.Context, slug string) (*ArticlePage, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, fmt.Errorf("validating input: %w", domain.NewValidationError("slug", "cannot be empty"))
	}

	articles, err := s.content.ArticleBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("fetching article: %w", err)
	}

	if len(articles) == 0 {
		return nil, domain.NewNotFoundError("Article", "")
	}

	raw := &articles[0]

	opts := domain.ShapeOptions{Author: s.author(ctx, raw.AuthorID)}
	if s.cfg.FetchFeaturedMedia {
		opts.Image = s.media(ctx, raw.FeaturedMediaID)
	}

	tags := []domain.Tag{}

	if len(raw.TagIDs) > 0 {
		fetched, err := s.content.TagsByIDs(ctx, raw.TagIDs)
		if err != nil {
			s.fallback(ctx, LookupTags, err, slog.Int("article_id", raw.ID))
		} else {
			tags = fetched
		}
	}

	return &ArticlePage{
		Article:         domain.ShapeArticle(raw, opts),
		RelatedArticles: s.related(ctx, raw),
		Tags:            tags,
		IsInSeries:      domain.IsInSeries(tags, s.cfg.SeriesTagPrefix),
	}, nil
}

// SnapPosts lists the articles tagged for a snap. Failures yield an empty list.
func (s *BlogService) SnapPosts(ctx context.Context, snap string) []domain.ArticleSummary {
	tag, err := s.content.TagByName(ctx, s.cfg.SnapTagPrefix+snap)
	if err != nil {
		s.fallback(ctx, LookupSnapPosts, err, slog.String("snap", snap))
		return []domain.ArticleSummary{}
	}

	if tag == nil {
		return []domain.ArticleSummary{}
	}

	list, err := s.content.Articles(ctx, domain.ArticleQuery{
		Page:    1,
		PerPage: s.cfg.SnapLimit,
		TagIDs:  domain.TagIDs([]domain.Tag{*tag}),
	})
	if err != nil {
		s.fallback(ctx, LookupSnapPosts, err, slog.String("snap", snap))
		return []domain.ArticleSummary{}
	}

	return domain.SummarizeArticles(list.Articles)
}

// SnapSeries lists the articles of a series. series is a tag id or a comma
// separated list of tag ids. Invalid input and failures yield an empty list.
func (s *BlogService) SnapSeries(ctx context.Context, series string) []domain.ArticleSummary {
	ids, ok := parseTagIDs(series)
	if !ok {
		return []domain.ArticleSummary{}
	}

	list, err := s.content.Articles(ctx, domain.ArticleQuery{
		Page:    1,
		PerPage: s.cfg.SnapLimit,
		TagIDs:  ids,
	})
	if err != nil {
		s.fallback(ctx, LookupSeries, err, slog.String("series", series))
		return []domain.ArticleSummary{}
	}

	return domain.SummarizeArticles(list.Articles)
}

// Feed fetches the remote feed and rewrites it for requestURL.
func (s *BlogService) Feed(ctx context.Context, requestURL string) (string, error) {
	doc, err := s.content.Feed(ctx)
	if err != nil {
		return "", fmt.Errorf("fetching feed: %w", err)
	}

	return domain.RewriteFeed(doc, requestURL, s.cfg.Feed), nil
}

func (s *BlogService) whitelistedCategories(ctx context.Context) []domain.Category {
	all, err := s.content.Categories(ctx)
	if err != nil {
		s.fallback(ctx, LookupCategories, err)
		return []domain.Category{}
	}

	return domain.WhitelistCategories(all, s.cfg.CategoryWhitelist)
}

func (s *BlogService) author(ctx context.Context, id int) *domain.User {
	if id == 0 {
		return nil
	}

	user, err := s.content.User(ctx, id)
	if err != nil {
		s.fallback(ctx, LookupAuthor, err, slog.Int("user_id", id))
		return nil
	}

	return user
}

func (s *BlogService) media(ctx context.Context, id int) *domain.Media {
	if id == 0 {
		return nil
	}

	media, err := s.content.Media(ctx, id)
	if err != nil {
		s.fallback(ctx, LookupMedia, err, slog.Int("media_id", id))
		return nil
	}

	return media
}

func (s *BlogService) related(ctx context.Context, raw *domain.Article) []*domain.PresentedArticle {
	if len(raw.TagIDs) == 0 {
		return []*domain.PresentedArticle{}
	}

	list, err := s.content.Articles(ctx, domain.ArticleQuery{
		Page:      1,
		PerPage:   s.cfg.RelatedLimit,
		TagIDs:    raw.TagIDs,
		ExcludeID: raw.ID,
	})
	if err != nil {
		s.fallback(ctx, LookupRelated, err, slog.Int("article_id", raw.ID))
		return nil
	}

	return domain.ShapeArticles(list.Articles)
}

func (s *BlogService) fallback(ctx context.Context, lookup string, err error, attrs ...any) {
	s.fallbacks.RecordFallback(lookup)

	args := append([]any{slog.String("lookup", lookup)}, attrs...)
	args = append(args, slog.Any("error", err))

	logging.FromContext(ctx).WarnContext(ctx, "secondary lookup failed", args...)
}

func parseTagIDs(raw string) ([]int, bool) {
	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))

	for _, part := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || id < 1 {
			return nil, false
		}

		ids = append(ids, id)
	}

	return ids, true
}
