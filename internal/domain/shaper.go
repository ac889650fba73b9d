package domain

import (
	"html"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// sourceDateLayout is the timestamp layout the content API uses for post dates.
	sourceDateLayout = "2006-01-02T15:04:05"

	// DisplayDateLayout is the date layout shown on article pages.
	DisplayDateLayout = "2 January 2006"

	// MaxExcerptLength is the maximum excerpt length in runes.
	MaxExcerptLength = 340
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// ShapeOptions carries enrichments resolved by the caller before shaping.
// A nil field means the lookup failed or was not attempted.
type ShapeOptions struct {
	Author *User
	Image  *Media
}

// ShapeArticle converts a raw article into its presentation form.
// It performs no I/O and never fails; unparsable dates are passed through.
func ShapeArticle(raw *Article, opts ShapeOptions) *PresentedArticle {
	return &PresentedArticle{
		ID:          raw.ID,
		Slug:        raw.Slug,
		Title:       raw.Title,
		Content:     raw.Content,
		Excerpt:     CleanExcerpt(raw.Excerpt),
		Date:        FormatDate(raw.Date),
		Link:        raw.Link,
		CategoryIDs: raw.CategoryIDs,
		TagIDs:      raw.TagIDs,
		Author:      opts.Author,
		Image:       opts.Image,
	}
}

// ShapeArticles shapes a slice of raw articles without enrichments.
func ShapeArticles(raw []Article) []*PresentedArticle {
	shaped := make([]*PresentedArticle, 0, len(raw))
	for i := range raw {
		shaped = append(shaped, ShapeArticle(&raw[i], ShapeOptions{}))
	}

	return shaped
}

// SummarizeArticles reduces articles to slug/title pairs.
// The result is never nil so it serializes as an empty JSON array.
func SummarizeArticles(raw []Article) []ArticleSummary {
	summaries := make([]ArticleSummary, 0, len(raw))
	for i := range raw {
		shaped := ShapeArticle(&raw[i], ShapeOptions{})
		summaries = append(summaries, ArticleSummary{
			Slug:  shaped.Slug,
			Title: shaped.Title,
		})
	}

	return summaries
}

// FormatDate renders a content API timestamp for display.
func FormatDate(raw string) string {
	t, err := time.Parse(sourceDateLayout, raw)
	if err != nil {
		t, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return raw
		}
	}

	return t.Format(DisplayDateLayout)
}

// CleanExcerpt strips markup from a rendered excerpt, collapses
// whitespace and caps the length at MaxExcerptLength runes.
func CleanExcerpt(rendered string) string {
	text := tagPattern.ReplaceAllString(rendered, "")
	text = html.UnescapeString(text)
	text = whitespacePattern.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, "[…]", "…")

	if utf8.RuneCountInString(text) > MaxExcerptLength {
		runes := []rune(text)
		text = strings.TrimSpace(string(runes[:MaxExcerptLength])) + "…"
	}

	return text
}
