package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawArticle() *Article {
	return &Article{
		ID:              42,
		Slug:            "snapcraft-summit",
		Title:           "Snapcraft Summit",
		Content:         "<p>Body</p>",
		Excerpt:         "<p>Join us   for the\n summit [&hellip;]</p>",
		Date:            "2018-10-09T10:00:00",
		Link:            "https://example.com/snapcraft-summit",
		AuthorID:        7,
		CategoryIDs:     []int{3, 7},
		TagIDs:          []int{2080},
		FeaturedMediaID: 11,
	}
}

func TestShapeArticle_PreservesIdentity(t *testing.T) {
	raw := rawArticle()

	shaped := ShapeArticle(raw, ShapeOptions{})

	assert.Equal(t, 42, shaped.ID)
	assert.Equal(t, "snapcraft-summit", shaped.Slug)
	assert.Equal(t, "Snapcraft Summit", shaped.Title)
	assert.Equal(t, "<p>Body</p>", shaped.Content)
	assert.Equal(t, []int{3, 7}, shaped.CategoryIDs)
	assert.Equal(t, []int{2080}, shaped.TagIDs)
	assert.Equal(t, "9 October 2018", shaped.Date)
	assert.Equal(t, "Join us for the summit …", shaped.Excerpt)
}

func TestShapeArticle_Enrichments(t *testing.T) {
	author := &User{ID: 7, Name: "Jane"}
	image := &Media{ID: 11, SourceURL: "https://example.com/a.png"}

	shaped := ShapeArticle(rawArticle(), ShapeOptions{Author: author, Image: image})

	assert.Same(t, author, shaped.Author)
	assert.Same(t, image, shaped.Image)
}

func TestShapeArticle_UnavailableFieldsSerializeAsNull(t *testing.T) {
	shaped := ShapeArticle(rawArticle(), ShapeOptions{})

	data, err := json.Marshal(shaped)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	author, ok := decoded["author"]
	assert.True(t, ok, "author key must be present")
	assert.Nil(t, author)

	image, ok := decoded["image"]
	assert.True(t, ok, "image key must be present")
	assert.Nil(t, image)
}

func TestShapeArticle_DoesNotMutateInput(t *testing.T) {
	raw := rawArticle()
	before := *raw

	_ = ShapeArticle(raw, ShapeOptions{Author: &User{ID: 1}})

	assert.Equal(t, before, *raw)
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "content api layout", input: "2019-01-31T08:15:00", expected: "31 January 2019"},
		{name: "rfc3339", input: "2019-01-31T08:15:00Z", expected: "31 January 2019"},
		{name: "unparsable passes through", input: "yesterday", expected: "yesterday"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDate(tt.input))
		})
	}
}

func TestCleanExcerpt_Truncates(t *testing.T) {
	long := "<p>" + strings.Repeat("word ", 200) + "</p>"

	excerpt := CleanExcerpt(long)

	assert.LessOrEqual(t, utf8.RuneCountInString(excerpt), MaxExcerptLength+1)
	assert.True(t, strings.HasSuffix(excerpt, "…"))
	assert.NotContains(t, excerpt, "<p>")
}

func TestSummarizeArticles(t *testing.T) {
	summaries := SummarizeArticles([]Article{
		{Slug: "one", Title: "One"},
		{Slug: "two", Title: "Two"},
	})

	assert.Equal(t, []ArticleSummary{
		{Slug: "one", Title: "One"},
		{Slug: "two", Title: "Two"},
	}, summaries)
}

func TestSummarizeArticles_EmptyIsNotNil(t *testing.T) {
	summaries := SummarizeArticles(nil)

	require.NotNil(t, summaries)

	data, err := json.Marshal(summaries)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestShapeArticles(t *testing.T) {
	shaped := ShapeArticles([]Article{{ID: 1}, {ID: 2}})

	require.Len(t, shaped, 2)
	assert.Equal(t, 1, shaped[0].ID)
	assert.Nil(t, shaped[0].Author)
	assert.Equal(t, 2, shaped[1].ID)
}
