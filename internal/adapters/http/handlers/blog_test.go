package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen/storefront-web/internal/app"
	"github.com/jsamuelsen/storefront-web/internal/domain"
	"github.com/jsamuelsen/storefront-web/internal/mocks"
	"github.com/jsamuelsen/storefront-web/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var errContentDown = domain.NewUpstreamStatusError("content-api", http.StatusServiceUnavailable, "service unavailable")

type blogFixture struct {
	router  *gin.Engine
	content *mocks.MockContentClient
	flags   *mocks.MockFeatureFlags
}

func newBlogFixture(t *testing.T) *blogFixture {
	t.Helper()

	content := mocks.NewMockContentClient(t)
	flags := mocks.NewMockFeatureFlags(t)

	service := app.NewBlogService(app.BlogServiceConfig{
		Content: content,
		Blog: app.BlogConfig{
			CategoryWhitelist: []string{"Snapcraft", "Tutorials"},
			PerPage:           12,
			RelatedLimit:      3,
			SnapLimit:         3,
			SeriesTagPrefix:   "sc:series:",
			SnapTagPrefix:     "sc:snap:",
			Feed: domain.FeedRewrite{
				BrandFrom: "Ubuntu Blog",
				BrandTo:   "Snapcraft Blog",
			},
		},
	})

	router := newTestEngine()
	NewBlogHandler(service, flags).RegisterBlogRoutes(router.Group("/blog"))

	return &blogFixture{router: router, content: content, flags: flags}
}

func (f *blogFixture) get(target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

	return w
}

func TestBlogHandler_Listing(t *testing.T) {
	f := newBlogFixture(t)
	f.flags.EXPECT().IsEnabled(mock.Anything, ports.FlagBlogCategories, false).Return(false).Once()
	f.content.EXPECT().Articles(mock.Anything, domain.ArticleQuery{Page: 2, PerPage: 12}).
		Return(&domain.ArticleList{
			Articles:   []domain.Article{{ID: 1, Slug: "first"}, {ID: 2, Slug: "second"}},
			TotalPages: 3,
		}, nil)

	w := f.get("/blog?page=2&filter=snapcraft")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "page 2/3 filter= categories=0 [first] [second]", w.Body.String())
}

func TestBlogHandler_Listing_InvalidPageFallsBackToFirst(t *testing.T) {
	f := newBlogFixture(t)
	f.flags.EXPECT().IsEnabled(mock.Anything, ports.FlagBlogCategories, false).Return(false)
	f.content.EXPECT().Articles(mock.Anything, domain.ArticleQuery{Page: 1, PerPage: 12}).
		Return(&domain.ArticleList{TotalPages: 1}, nil)

	w := f.get("/blog?page=banana")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "page 1/1 filter= categories=0", w.Body.String())
}

func TestBlogHandler_Listing_WithCategories(t *testing.T) {
	f := newBlogFixture(t)
	f.flags.EXPECT().IsEnabled(mock.Anything, ports.FlagBlogCategories, false).Return(true)
	f.content.EXPECT().Categories(mock.Anything).Return([]domain.Category{
		{ID: 10, Name: "Snapcraft"},
		{ID: 11, Name: "Internal"},
		{ID: 12, Name: "Tutorials"},
	}, nil)
	f.content.EXPECT().Articles(mock.Anything, domain.ArticleQuery{Page: 1, PerPage: 12, CategoryID: 10}).
		Return(&domain.ArticleList{
			Articles: []domain.Article{
				{ID: 1, Slug: "a", CategoryIDs: []int{10, 12}},
				{ID: 2, Slug: "b", CategoryIDs: []int{10}},
			},
			TotalPages: 1,
		}, nil)
	f.content.EXPECT().CategoryByID(mock.Anything, 10).Return(&domain.Category{ID: 10, Name: "Snapcraft"}, nil).Once()
	f.content.EXPECT().CategoryByID(mock.Anything, 12).Return(nil, errContentDown).Once()

	w := f.get("/blog?filter=snapcraft")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "page 1/1 filter=snapcraft categories=2 [a] [b] (10:Snapcraft) (12:)", w.Body.String())
}

func TestBlogHandler_Listing_UpstreamFailure(t *testing.T) {
	f := newBlogFixture(t)
	f.flags.EXPECT().IsEnabled(mock.Anything, ports.FlagBlogCategories, false).Return(false)
	f.content.EXPECT().Articles(mock.Anything, mock.Anything).Return(nil, errContentDown)

	w := f.get("/blog")

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "502 UPSTREAM_ERROR: fetching articles: content-api: service unavailable", w.Body.String())
}

func TestBlogHandler_Article(t *testing.T) {
	f := newBlogFixture(t)
	f.content.EXPECT().ArticleBySlug(mock.Anything, "snaps-in-space").Return([]domain.Article{
		{ID: 5, Slug: "snaps-in-space", Title: "Snaps in space", TagIDs: []int{7, 8}},
	}, nil)
	f.content.EXPECT().TagsByIDs(mock.Anything, []int{7, 8}).Return([]domain.Tag{
		{ID: 7, Name: "sc:series:space"},
		{ID: 8, Name: "robotics"},
	}, nil)
	f.content.EXPECT().Articles(mock.Anything, domain.ArticleQuery{Page: 1, PerPage: 3, TagIDs: []int{7, 8}, ExcludeID: 5}).
		Return(&domain.ArticleList{Articles: []domain.Article{{ID: 6}, {ID: 9}}}, nil)

	w := f.get("/blog/snaps-in-space")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Snaps in space series=true related=2 #sc:series:space #robotics", w.Body.String())
}

func TestBlogHandler_Article_Errors(t *testing.T) {
	tests := []struct {
		name       string
		result     []domain.Article
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "no article with slug",
			result:     []domain.Article{},
			wantStatus: http.StatusNotFound,
			wantBody:   "404 NOT_FOUND: Article not found",
		},
		{
			name:       "upstream failure",
			err:        errContentDown,
			wantStatus: http.StatusBadGateway,
			wantBody:   "502 UPSTREAM_ERROR: fetching article: content-api: service unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBlogFixture(t)
			f.content.EXPECT().ArticleBySlug(mock.Anything, "missing").Return(tt.result, tt.err)

			w := f.get("/blog/missing")

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestBlogHandler_Feed(t *testing.T) {
	f := newBlogFixture(t)
	f.content.EXPECT().Feed(mock.Anything).Return(
		`<rss><channel><title>Ubuntu Blog</title><link>http://example.com/blog/feed</link></channel></rss>`, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/blog/feed", nil)
	req.Host = "example.com"
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, feedContentType, w.Header().Get("Content-Type"))
	assert.Equal(t,
		`<rss><channel><title>Snapcraft Blog</title><link>http://example.com/blog</link></channel></rss>`,
		w.Body.String())
}

func TestBlogHandler_Feed_UpstreamFailure(t *testing.T) {
	f := newBlogFixture(t)
	f.content.EXPECT().Feed(mock.Anything).Return("", errContentDown)

	w := f.get("/blog/feed")

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestBlogHandler_SnapPosts(t *testing.T) {
	t.Run("tagged articles", func(t *testing.T) {
		f := newBlogFixture(t)
		f.content.EXPECT().TagByName(mock.Anything, "sc:snap:spotify").Return(&domain.Tag{ID: 42, Name: "sc:snap:spotify"}, nil)
		f.content.EXPECT().Articles(mock.Anything, domain.ArticleQuery{Page: 1, PerPage: 3, TagIDs: []int{42}}).
			Return(&domain.ArticleList{Articles: []domain.Article{{Slug: "listen", Title: "Listen up"}}}, nil)

		w := f.get("/blog/api/snap-posts/spotify")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"slug":"listen","title":"Listen up"}]`, w.Body.String())
	})

	t.Run("unknown snap", func(t *testing.T) {
		f := newBlogFixture(t)
		f.content.EXPECT().TagByName(mock.Anything, "sc:snap:nothing").Return(nil, nil)

		w := f.get("/blog/api/snap-posts/nothing")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("upstream failure", func(t *testing.T) {
		f := newBlogFixture(t)
		f.content.EXPECT().TagByName(mock.Anything, "sc:snap:broken").Return(nil, errContentDown)

		w := f.get("/blog/api/snap-posts/broken")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}

func TestBlogHandler_SnapSeries(t *testing.T) {
	t.Run("series articles", func(t *testing.T) {
		f := newBlogFixture(t)
		f.content.EXPECT().Articles(mock.Anything, domain.ArticleQuery{Page: 1, PerPage: 3, TagIDs: []int{3, 4}}).
			Return(&domain.ArticleList{Articles: []domain.Article{{Slug: "part-1", Title: "Part 1"}}}, nil)

		w := f.get("/blog/api/series/3,4")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"slug":"part-1","title":"Part 1"}]`, w.Body.String())
	})

	t.Run("non numeric series", func(t *testing.T) {
		f := newBlogFixture(t)

		w := f.get("/blog/api/series/abc")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}

func TestRequestURL(t *testing.T) {
	tests := []struct {
		name    string
		forward string
		want    string
	}{
		{"plain http", "", "http://snapcraft.io/blog/feed"},
		{"behind tls proxy", "https", "https://snapcraft.io/blog/feed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "http://snapcraft.io/blog/feed?x=1", nil)
			if tt.forward != "" {
				c.Request.Header.Set("X-Forwarded-Proto", tt.forward)
			}

			assert.Equal(t, tt.want, requestURL(c))
		})
	}
}
