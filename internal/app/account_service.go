package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jsamuelsen/storefront-web/internal/domain"
	"github.com/jsamuelsen/storefront-web/internal/platform/logging"
	"github.com/jsamuelsen/storefront-web/internal/ports"
)

// AccountServiceConfig contains the dependencies of the account service.
type AccountServiceConfig struct {
	Publisher  ports.PublisherClient
	Newsletter ports.NewsletterClient
}

// AccountService orchestrates the publisher account pages.
type AccountService struct {
	publisher  ports.PublisherClient
	newsletter ports.NewsletterClient
}

// NewAccountService creates an account service. It panics without a publisher client.
func NewAccountService(cfg AccountServiceConfig) *AccountService {
	if cfg.Publisher == nil {
		panic("app: AccountService requires a publisher client")
	}

	return &AccountService{
		publisher:  cfg.Publisher,
		newsletter: cfg.Newsletter,
	}
}

// Account returns the profile of the logged-in publisher.
func (s *AccountService) Account(ctx context.Context, auth string) (*domain.Account, error) {
	account, err := s.publisher.Account(ctx, auth)
	if err != nil {
		return nil, fmt.Errorf("fetching account: %w", err)
	}

	return account, nil
}

// UpdateNewsletter sets the newsletter subscription of email.
func (s *AccountService) UpdateNewsletter(ctx context.Context, email string, subscribed bool) error {
	if s.newsletter == nil {
		return domain.NewUpstreamError("marketo", "newsletter client not configured")
	}

	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("validating input: %w", domain.NewValidationError("email", "cannot be empty"))
	}

	if err := s.newsletter.SetSubscription(ctx, email, subscribed); err != nil {
		logging.FromContext(ctx).WarnContext(ctx, "newsletter update failed",
			slog.Bool("subscribed", subscribed),
			slog.Any("error", err),
		)

		return fmt.Errorf("updating newsletter: %w", err)
	}

	logging.FromContext(ctx).InfoContext(ctx, "newsletter updated", slog.Bool("subscribed", subscribed))

	return nil
}

// AcceptAgreement records acceptance of the developer programme agreement.
func (s *AccountService) AcceptAgreement(ctx context.Context, auth string) error {
	if err := s.publisher.AcceptAgreement(ctx, auth); err != nil {
		return fmt.Errorf("accepting agreement: %w", err)
	}

	return nil
}

// ChangeUsername registers username for the publisher. Field-level
// rejections are returned unwrapped as *domain.StoreErrorList.
func (s *AccountService) ChangeUsername(ctx context.Context, auth, username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return fmt.Errorf("validating input: %w", domain.NewValidationError("username", "cannot be empty"))
	}

	err := s.publisher.ChangeUsername(ctx, auth, username)
	if err == nil {
		return nil
	}

	if list, ok := domain.AsStoreErrorList(err); ok {
		return list
	}

	return fmt.Errorf("changing username: %w", err)
}
