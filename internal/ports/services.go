// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrUpstream, etc.)
//   - Keep interfaces small and focused (Interface Segregation Principle)
package ports

import (
	"context"

	"github.com/jsamuelsen/storefront-web/internal/domain"
)

// ContentClient reads posts and their taxonomy from the remote content API.
//
// Every method returns a *domain.UpstreamError when the remote call fails.
// By-id lookups return a *domain.NotFoundError for ids the API does not know.
type ContentClient interface {
	// Categories returns every category known to the content API.
	Categories(ctx context.Context) ([]domain.Category, error)

	// CategoryByID resolves a single category.
	CategoryByID(ctx context.Context, id int) (*domain.Category, error)

	// Articles returns one page of articles matching the query together
	// with the total number of pages reported by the API.
	Articles(ctx context.Context, query domain.ArticleQuery) (*domain.ArticleList, error)

	// ArticleBySlug returns the articles published under slug.
	// An unknown slug yields an empty slice, not an error.
	ArticleBySlug(ctx context.Context, slug string) ([]domain.Article, error)

	// User resolves an author.
	User(ctx context.Context, id int) (*domain.User, error)

	// Media resolves a featured image.
	Media(ctx context.Context, id int) (*domain.Media, error)

	// TagsByIDs resolves a list of tag ids.
	TagsByIDs(ctx context.Context, ids []int) ([]domain.Tag, error)

	// TagByName finds a tag by its exact name. Returns nil, nil when no tag matches.
	TagByName(ctx context.Context, name string) (*domain.Tag, error)

	// Feed returns the raw RSS document of the blog.
	Feed(ctx context.Context) (string, error)
}

// PublisherClient talks to the publisher account API on behalf of a
// logged-in user. auth is the opaque credential held in the session.
type PublisherClient interface {
	// Account returns the profile of the authenticated publisher.
	Account(ctx context.Context, auth string) (*domain.Account, error)

	// AcceptAgreement records acceptance of the developer programme agreement.
	AcceptAgreement(ctx context.Context, auth string) error

	// ChangeUsername registers a username for the publisher.
	// Field-level rejections are returned as *domain.StoreErrorList.
	ChangeUsername(ctx context.Context, auth, username string) error
}

// NewsletterClient manages marketing subscriptions.
type NewsletterClient interface {
	// SetSubscription subscribes or unsubscribes email from the newsletter.
	SetSubscription(ctx context.Context, email string, subscribed bool) error
}

// FallbackRecorder counts secondary lookups that failed and were replaced
// by an absent value during a page render.
type FallbackRecorder interface {
	RecordFallback(lookup string)
}
