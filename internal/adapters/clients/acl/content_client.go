package acl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/jsamuelsen/storefront-web/internal/adapters/clients"
	"github.com/jsamuelsen/storefront-web/internal/domain"
	"github.com/jsamuelsen/storefront-web/internal/platform/logging"
)

const (
	// headerTotalPages is the WordPress header carrying the page count of a collection.
	headerTotalPages = "X-WP-TotalPages"

	// maxPerPage is the largest page size the content API accepts.
	maxPerPage = 100

	// avatarSize is the avatar resolution picked from avatar_urls.
	avatarSize = "96"

	// maxFeedSize bounds the feed document read into memory.
	maxFeedSize = 10 << 20
)

// ContentClientConfig contains configuration for the content client.
type ContentClientConfig struct {
	// Client is the HTTP client to use for requests.
	// The client's BaseURL should point at the WordPress REST root (…/wp-json/wp/v2).
	Client *clients.Client

	// FeedURL is the absolute URL of the RSS feed.
	FeedURL string

	// Logger is the structured logger.
	Logger *slog.Logger
}

// ContentClient implements ports.ContentClient against the WordPress REST API.
// It translates WordPress posts and taxonomy into domain types.
type ContentClient struct {
	BaseAdapter
	feedURL string
	logger  *slog.Logger
}

// NewContentClient creates a new content client adapter.
// Panics if Client is nil. Defaults logger to slog.Default() if nil.
func NewContentClient(cfg ContentClientConfig) *ContentClient {
	if cfg.Client == nil {
		panic("ContentClient: Client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &ContentClient{
		BaseAdapter: NewBaseAdapter(cfg.Client, cfg.Client.ServiceName()),
		feedURL:     cfg.FeedURL,
		logger:      logger,
	}
}

// rendered is the WordPress wrapper around HTML fields.
type rendered struct {
	Rendered string `json:"rendered"`
}

// wpPost is the external DTO for a WordPress post.
type wpPost struct {
	ID            int      `json:"id"`
	Slug          string   `json:"slug"`
	Date          string   `json:"date"`
	Link          string   `json:"link"`
	Title         rendered `json:"title"`
	Content       rendered `json:"content"`
	Excerpt       rendered `json:"excerpt"`
	Author        int      `json:"author"`
	Categories    []int    `json:"categories"`
	Tags          []int    `json:"tags"`
	FeaturedMedia int      `json:"featured_media"`
}

// wpUser is the external DTO for a WordPress user.
type wpUser struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	Slug        string            `json:"slug"`
	Description string            `json:"description"`
	AvatarURLs  map[string]string `json:"avatar_urls"`
}

// translatePost converts a WordPress post to a domain article.
func translatePost(p *wpPost) domain.Article {
	return domain.Article{
		ID:              p.ID,
		Slug:            p.Slug,
		Title:           p.Title.Rendered,
		Content:         p.Content.Rendered,
		Excerpt:         p.Excerpt.Rendered,
		Date:            p.Date,
		Link:            p.Link,
		AuthorID:        p.Author,
		CategoryIDs:     nonNilInts(p.Categories),
		TagIDs:          nonNilInts(p.Tags),
		FeaturedMediaID: p.FeaturedMedia,
	}
}

// Categories returns every category known to the content API.
func (c *ContentClient) Categories(ctx context.Context) ([]domain.Category, error) {
	path := "/categories?per_page=" + strconv.Itoa(maxPerPage)

	cats, err := GetJSON[[]domain.Category](ctx, &c.BaseAdapter, path, nil, "list categories", "", "")
	if err != nil {
		return nil, err
	}

	return *cats, nil
}

// CategoryByID resolves a single category.
func (c *ContentClient) CategoryByID(ctx context.Context, id int) (*domain.Category, error) {
	return GetJSON[domain.Category](ctx, &c.BaseAdapter, "/categories/"+strconv.Itoa(id), nil,
		"get category", "Category", strconv.Itoa(id))
}

// Articles returns one page of articles matching the query.
func (c *ContentClient) Articles(ctx context.Context, query domain.ArticleQuery) (*domain.ArticleList, error) {
	path := "/posts?" + articleParams(query).Encode()

	c.logger.Log(ctx, logging.LevelTrace, "listing articles", slog.String("path", path))

	resp, err := c.Fetch(ctx, path, nil, "list articles", "", "")
	if err != nil {
		return nil, err
	}

	totalPages := 0
	if v := resp.Header.Get(headerTotalPages); v != "" {
		if totalPages, err = strconv.Atoi(v); err != nil {
			c.logger.Log(ctx, logging.LevelTrace, "ignoring malformed page count",
				slog.String("header", headerTotalPages),
				slog.String("value", v),
			)

			totalPages = 0
		}
	}

	posts, err := DecodeResponse[[]wpPost](resp.Body)
	if err != nil {
		return nil, domain.NewUpstreamError(c.ServiceName(), "list articles: "+err.Error())
	}

	return &domain.ArticleList{
		Articles:   TranslateSlice(*posts, translatePost),
		TotalPages: totalPages,
	}, nil
}

// ArticleBySlug returns the articles published under slug.
func (c *ContentClient) ArticleBySlug(ctx context.Context, slug string) ([]domain.Article, error) {
	params := url.Values{}
	params.Set("slug", slug)

	posts, err := GetJSON[[]wpPost](ctx, &c.BaseAdapter, "/posts?"+params.Encode(), nil, "get article", "", "")
	if err != nil {
		return nil, err
	}

	return TranslateSlice(*posts, translatePost), nil
}

// User resolves an author.
func (c *ContentClient) User(ctx context.Context, id int) (*domain.User, error) {
	u, err := GetJSON[wpUser](ctx, &c.BaseAdapter, "/users/"+strconv.Itoa(id), nil,
		"get user", "User", strconv.Itoa(id))
	if err != nil {
		return nil, err
	}

	return &domain.User{
		ID:          u.ID,
		Name:        u.Name,
		Slug:        u.Slug,
		Description: u.Description,
		AvatarURL:   u.AvatarURLs[avatarSize],
	}, nil
}

// Media resolves a featured image.
func (c *ContentClient) Media(ctx context.Context, id int) (*domain.Media, error) {
	return GetJSON[domain.Media](ctx, &c.BaseAdapter, "/media/"+strconv.Itoa(id), nil,
		"get media", "Media", strconv.Itoa(id))
}

// TagsByIDs resolves a list of tag ids.
func (c *ContentClient) TagsByIDs(ctx context.Context, ids []int) ([]domain.Tag, error) {
	if len(ids) == 0 {
		return []domain.Tag{}, nil
	}

	params := url.Values{}
	params.Set("include", joinInts(ids))
	params.Set("per_page", strconv.Itoa(maxPerPage))

	tags, err := GetJSON[[]domain.Tag](ctx, &c.BaseAdapter, "/tags?"+params.Encode(), nil, "list tags", "", "")
	if err != nil {
		return nil, err
	}

	return *tags, nil
}

// TagByName finds a tag by its exact name.
// The search endpoint matches substrings, so results are filtered here.
func (c *ContentClient) TagByName(ctx context.Context, name string) (*domain.Tag, error) {
	params := url.Values{}
	params.Set("search", name)

	tags, err := GetJSON[[]domain.Tag](ctx, &c.BaseAdapter, "/tags?"+params.Encode(), nil, "search tags", "", "")
	if err != nil {
		return nil, err
	}

	for i := range *tags {
		if (*tags)[i].Name == name {
			return &(*tags)[i], nil
		}
	}

	return nil, nil
}

// Feed returns the raw RSS document of the blog.
func (c *ContentClient) Feed(ctx context.Context) (string, error) {
	body, err := c.Get(ctx, c.feedURL, "get feed")
	if err != nil {
		return "", err
	}
	defer func() { _ = body.Close() }()

	doc, err := io.ReadAll(io.LimitReader(body, maxFeedSize))
	if err != nil {
		return "", domain.NewUpstreamError(c.ServiceName(), fmt.Sprintf("reading feed: %v", err))
	}

	return string(doc), nil
}

// Check implements ports.HealthChecker.
func (c *ContentClient) Check(ctx context.Context) error {
	return c.Client().Ping(ctx, "/categories?per_page=1")
}

// articleParams encodes an ArticleQuery as WordPress collection parameters.
func articleParams(q domain.ArticleQuery) url.Values {
	params := url.Values{}

	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}

	if q.PerPage > 0 {
		params.Set("per_page", strconv.Itoa(min(q.PerPage, maxPerPage)))
	}

	if len(q.TagIDs) > 0 {
		params.Set("tags", joinInts(q.TagIDs))
	}

	if q.CategoryID > 0 {
		params.Set("categories", strconv.Itoa(q.CategoryID))
	}

	if q.ExcludeID > 0 {
		params.Set("exclude", strconv.Itoa(q.ExcludeID))
	}

	return params
}

func joinInts(ids []int) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.Itoa(id))
	}

	return strings.Join(parts, ",")
}

func nonNilInts(ids []int) []int {
	if ids == nil {
		return []int{}
	}

	return ids
}
