package ports

import (
	"context"
)

// FlagBlogCategories toggles category lookups, whitelisting and filtering
// on the blog listing page.
const FlagBlogCategories = "blog-categories"

// FeatureFlags defines the contract for feature flag evaluation.
// This port allows the application to check feature enablement without
// knowing the underlying provider.
//
// Flags are read once per request and the result is passed down explicitly,
// so a single render never observes two different values of one flag.
//
// Example usage:
//
//	enabled := flags.IsEnabled(ctx, ports.FlagBlogCategories, false)
//	page, err := blog.Listing(ctx, app.ListingRequest{CategoriesEnabled: enabled})
type FeatureFlags interface {
	// IsEnabled checks if a boolean feature flag is enabled.
	// Returns defaultValue if the flag doesn't exist or evaluation fails.
	IsEnabled(ctx context.Context, flag string, defaultValue bool) bool

	// GetString retrieves a string feature flag value.
	// Returns defaultValue if the flag doesn't exist or evaluation fails.
	GetString(ctx context.Context, flag string, defaultValue string) string

	// GetInt retrieves an integer feature flag value.
	// Returns defaultValue if the flag doesn't exist or evaluation fails.
	GetInt(ctx context.Context, flag string, defaultValue int) int
}
