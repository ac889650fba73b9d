package domain

import (
	"regexp"
	"strings"
)

// feedSuffix is the path segment the feed route is served under.
const feedSuffix = "/feed"

// FeedRewrite configures the textual substitutions applied to the remote feed.
type FeedRewrite struct {
	// SourceOrigin is the content API's public origin (e.g.
	// "https://admin.insights.ubuntu.com"). Links to it, with an optional
	// /yyyy/mm/dd date path, are pointed at the local blog. Empty disables it.
	SourceOrigin string

	// BrandFrom is replaced by BrandTo everywhere in the document.
	BrandFrom string
	BrandTo   string
}

// FeedHost derives the blog base URL from the feed request URL by
// dropping its trailing "/feed" segment. Other occurrences, e.g. in a
// "feeds." host, are kept.
func FeedHost(requestURL string) string {
	base, ok := strings.CutSuffix(strings.TrimSuffix(requestURL, "/"), feedSuffix)
	if !ok {
		return requestURL
	}

	return base
}

// RewriteFeed rewrites self-referential links of a feed document to the
// blog base URL and swaps the brand name. The document format is untouched.
func RewriteFeed(doc, requestURL string, rw FeedRewrite) string {
	host := FeedHost(requestURL)

	if requestURL != "" && host != requestURL {
		doc = strings.ReplaceAll(doc, requestURL, host)
	}

	if rw.SourceOrigin != "" {
		pattern := regexp.MustCompile(regexp.QuoteMeta(strings.TrimSuffix(rw.SourceOrigin, "/")) + `(/\d{4}/\d{2}/\d{2})?`)
		doc = pattern.ReplaceAllLiteralString(doc, host)
	}

	if rw.BrandFrom != "" {
		doc = strings.ReplaceAll(doc, rw.BrandFrom, rw.BrandTo)
	}

	return doc
}
