package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/jsamuelsen/storefront-web/internal/adapters/clients"
	"github.com/jsamuelsen/storefront-web/internal/domain"
	"github.com/jsamuelsen/storefront-web/internal/platform/config"
)

const (
	marketoTokenPath = "/identity/oauth/token"
	marketoLeadsPath = "/rest/v1/leads.json"
)

// MarketoClientConfig contains configuration for the Marketo client.
type MarketoClientConfig struct {
	// BaseURL is the Marketo REST instance (https://<munchkin>.mktorest.com).
	BaseURL string

	// ServiceName identifies Marketo in logs, spans, and errors.
	ServiceName string

	// ClientID and ClientSecret are the API-only user credentials.
	ClientID     string
	ClientSecret string

	// NewsletterField is the lead field holding the subscription flag.
	NewsletterField string

	// Timeout bounds each request, including token fetches.
	Timeout time.Duration

	// Transport configures the connection pool.
	Transport config.TransportConfig

	UserAgent string

	// Logger is the structured logger.
	Logger *slog.Logger
}

// MarketoClient implements ports.NewsletterClient by upserting the lead
// keyed by email. Access tokens come from the client credentials grant and
// are cached and refreshed by the oauth2 transport.
type MarketoClient struct {
	BaseAdapter
	field  string
	logger *slog.Logger
}

// NewMarketoClient creates a Marketo client with an OAuth2 client credentials transport.
func NewMarketoClient(cfg MarketoClientConfig) (*MarketoClient, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("marketo: base URL is required")
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = "marketo"
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	base := clients.NewTransport(cfg.Transport)
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")

	credentials := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     baseURL + marketoTokenPath,
		AuthStyle:    oauth2.AuthStyleInParams,
	}

	tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{
		Timeout:   cfg.Timeout,
		Transport: base,
	})

	client, err := clients.New(&clients.Config{
		BaseURL:     baseURL,
		ServiceName: cfg.ServiceName,
		Timeout:     cfg.Timeout,
		UserAgent:   cfg.UserAgent,
		RoundTripper: &oauth2.Transport{
			Source: credentials.TokenSource(tokenCtx),
			Base:   base,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marketo: %w", err)
	}

	return &MarketoClient{
		BaseAdapter: NewBaseAdapter(client, cfg.ServiceName),
		field:       cfg.NewsletterField,
		logger:      logger,
	}, nil
}

// marketoResponse is the envelope every Marketo REST call answers with.
// HTTP 200 does not imply success; the success flag does.
type marketoResponse struct {
	RequestID string              `json:"requestId"`
	Success   bool                `json:"success"`
	Errors    []domain.StoreError `json:"errors"`
	Result    []struct {
		ID      int    `json:"id"`
		Status  string `json:"status"`
		Reasons []struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"reasons"`
	} `json:"result"`
}

// SetSubscription subscribes or unsubscribes email from the newsletter.
func (c *MarketoClient) SetSubscription(ctx context.Context, email string, subscribed bool) error {
	payload := map[string]any{
		"lookupField": "email",
		"input": []map[string]any{
			{"email": email, c.field: subscribed},
		},
	}

	resp, err := c.SendJSON(ctx, http.MethodPost, marketoLeadsPath, payload, nil, "update lead")
	if err != nil {
		return err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		defer func() { _ = resp.Body.Close() }()

		return MapHTTPError(resp, nil, c.ServiceName(), "update lead", "", "")
	}

	result, err := DecodeResponse[marketoResponse](resp.Body)
	if err != nil {
		return domain.NewUpstreamError(c.ServiceName(), "update lead: "+err.Error())
	}

	if !result.Success {
		return domain.NewUpstreamError(c.ServiceName(), "update lead: "+firstMarketoError(result))
	}

	for _, r := range result.Result {
		if r.Status == "skipped" && len(r.Reasons) > 0 {
			return domain.NewUpstreamError(c.ServiceName(), "update lead: "+r.Reasons[0].Message)
		}
	}

	c.logger.DebugContext(ctx, "newsletter subscription updated",
		slog.Bool("subscribed", subscribed),
		slog.String("request_id", result.RequestID),
	)

	return nil
}

func firstMarketoError(r *marketoResponse) string {
	if len(r.Errors) == 0 {
		return "request unsuccessful"
	}

	return r.Errors[0].Code + " " + r.Errors[0].Message
}
