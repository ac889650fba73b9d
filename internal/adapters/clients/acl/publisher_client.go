package acl

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen/storefront-web/internal/adapters/clients"
	"github.com/jsamuelsen/storefront-web/internal/domain"
)

const (
	pathAccount   = "/dev/api/account"
	pathAgreement = "/dev/api/agreement/"
)

// PublisherClientConfig contains configuration for the publisher client.
type PublisherClientConfig struct {
	// Client is the HTTP client to use for requests.
	Client *clients.Client

	// Logger is the structured logger.
	Logger *slog.Logger
}

// PublisherClient implements ports.PublisherClient against the publisher
// dashboard API. Every call carries the caller's session credential as the
// Authorization header.
type PublisherClient struct {
	BaseAdapter
	logger *slog.Logger
}

// NewPublisherClient creates a new publisher client adapter.
// Panics if Client is nil.
func NewPublisherClient(cfg PublisherClientConfig) *PublisherClient {
	if cfg.Client == nil {
		panic("PublisherClient: Client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &PublisherClient{
		BaseAdapter: NewBaseAdapter(cfg.Client, cfg.Client.ServiceName()),
		logger:      logger,
	}
}

// publisherAccount is the external DTO of the account endpoint.
type publisherAccount struct {
	Username      string `json:"username"`
	DisplayName   string `json:"displayname"`
	Email         string `json:"email"`
	Image         string `json:"image"`
	Subscriptions struct {
		Newsletter bool `json:"newsletter"`
	} `json:"subscriptions"`
}

type agreementRequest struct {
	LatestTOSAccepted bool `json:"latest_tos_accepted"`
}

type usernameRequest struct {
	ShortNamespace string `json:"short_namespace"`
}

// Account returns the profile of the authenticated publisher.
func (c *PublisherClient) Account(ctx context.Context, auth string) (*domain.Account, error) {
	acc, err := GetJSON[publisherAccount](ctx, &c.BaseAdapter, pathAccount, authHeader(auth), "get account", "", "")
	if err != nil {
		return nil, err
	}

	return &domain.Account{
		Username:             acc.Username,
		DisplayName:          acc.DisplayName,
		Email:                acc.Email,
		ImageURL:             acc.Image,
		NewsletterSubscribed: acc.Subscriptions.Newsletter,
	}, nil
}

// AcceptAgreement records acceptance of the developer programme agreement.
func (c *PublisherClient) AcceptAgreement(ctx context.Context, auth string) error {
	return c.send(ctx, http.MethodPost, pathAgreement, agreementRequest{LatestTOSAccepted: true}, auth, "accept agreement")
}

// ChangeUsername registers a username for the publisher.
// Field-level rejections are returned as *domain.StoreErrorList.
func (c *PublisherClient) ChangeUsername(ctx context.Context, auth, username string) error {
	return c.send(ctx, http.MethodPatch, pathAccount, usernameRequest{ShortNamespace: username}, auth, "change username")
}

// Check implements ports.HealthChecker. Any answer below 500 from the
// unauthenticated account endpoint means the API is reachable.
func (c *PublisherClient) Check(ctx context.Context) error {
	return c.Client().Ping(ctx, pathAccount)
}

func (c *PublisherClient) send(ctx context.Context, method, path string, body any, auth, operation string) error {
	resp, err := c.SendJSON(ctx, method, path, body, authHeader(auth), operation)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		mapped := MapStoreErrors(resp, c.ServiceName(), operation)
		c.logger.WarnContext(ctx, "publisher rejected request",
			slog.String("operation", operation),
			slog.Int("status", resp.StatusCode),
		)

		return mapped
	}

	return nil
}

func authHeader(auth string) http.Header {
	headers := http.Header{}
	if auth != "" {
		headers.Set("Authorization", auth)
	}

	return headers
}
