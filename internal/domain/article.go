package domain

// Article is a blog post as received from the content API.
// It is never modified after decoding; shaping produces a PresentedArticle.
type Article struct {
	ID              int
	Slug            string
	Title           string
	Content         string
	Excerpt         string
	Date            string
	Link            string
	AuthorID        int
	CategoryIDs     []int
	TagIDs          []int
	FeaturedMediaID int
}

// ArticleList is one page of articles plus the total page count
// reported by the content API.
type ArticleList struct {
	Articles   []Article
	TotalPages int
}

// ArticleQuery selects a page of articles.
// Zero values mean "not constrained".
type ArticleQuery struct {
	Page       int
	PerPage    int
	TagIDs     []int
	CategoryID int
	ExcludeID  int
}

// Category is a content API category.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Tag is a content API tag.
type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

// User is an article author.
type User struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	AvatarURL   string `json:"avatar_url"`
}

// Media is a featured image.
type Media struct {
	ID        int    `json:"id"`
	SourceURL string `json:"source_url"`
	AltText   string `json:"alt_text"`
}

// PresentedArticle is the fixed field set page templates consume.
// Author and Image are nil when the enrichment could not be resolved;
// they are serialized as null rather than omitted.
type PresentedArticle struct {
	ID          int    `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Excerpt     string `json:"excerpt"`
	Date        string `json:"date"`
	Link        string `json:"link"`
	CategoryIDs []int  `json:"categories"`
	TagIDs      []int  `json:"tags"`
	Author      *User  `json:"author"`
	Image       *Media `json:"image"`
}

// ArticleSummary is the minimal {slug, title} pair served to the snap
// and series JSON feeds.
type ArticleSummary struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}
