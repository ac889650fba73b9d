package acl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jsamuelsen/storefront-web/internal/adapters/clients"
	"github.com/jsamuelsen/storefront-web/internal/domain"
)

// BaseAdapter is embedded by every remote API adapter. It owns the client
// and maps failures to domain errors under the service name.
type BaseAdapter struct {
	client      *clients.Client
	serviceName string
}

// NewBaseAdapter wraps client for the named service.
func NewBaseAdapter(client *clients.Client, serviceName string) BaseAdapter {
	return BaseAdapter{
		client:      client,
		serviceName: serviceName,
	}
}

// Client returns the instrumented client, e.g. for health checks.
func (a *BaseAdapter) Client() *clients.Client {
	return a.client
}

// ServiceName names the upstream in errors.
func (a *BaseAdapter) ServiceName() string {
	return a.serviceName
}

// Name implements ports.HealthChecker.
func (a *BaseAdapter) Name() string {
	return a.serviceName
}

// Fetch performs a GET request and returns the successful response.
// The caller must close the body. Failures are mapped to domain errors;
// entity and entityID name the lookup for 404 handling.
func (a *BaseAdapter) Fetch(ctx context.Context, path string, headers http.Header, operation, entity, entityID string) (*http.Response, error) {
	resp, err := a.client.GetWithHeaders(ctx, path, headers)
	if err != nil {
		return nil, MapHTTPError(nil, err, a.serviceName, operation, entity, entityID)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		defer func() { _ = resp.Body.Close() }()

		return nil, MapHTTPError(resp, nil, a.serviceName, operation, entity, entityID)
	}

	return resp, nil
}

// Get returns the body of a successful GET. The caller closes it.
func (a *BaseAdapter) Get(ctx context.Context, path, operation string) (io.ReadCloser, error) {
	resp, err := a.Fetch(ctx, path, nil, operation, "", "")
	if err != nil {
		return nil, err
	}

	return resp.Body, nil
}

// GetJSON performs a GET request and decodes the JSON body into T.
func GetJSON[T any](ctx context.Context, a *BaseAdapter, path string, headers http.Header, operation, entity, entityID string) (*T, error) {
	resp, err := a.Fetch(ctx, path, headers, operation, entity, entityID)
	if err != nil {
		return nil, err
	}

	result, err := DecodeResponse[T](resp.Body)
	if err != nil {
		return nil, domain.NewUpstreamError(a.serviceName, fmt.Sprintf("%s: %v", operation, err))
	}

	return result, nil
}

// SendJSON sends v as JSON with method and returns the raw response.
// Transport failures are mapped to domain errors. Status handling is
// left to the caller because each API reports rejections differently.
func (a *BaseAdapter) SendJSON(ctx context.Context, method, path string, v any, headers http.Header, operation string) (*http.Response, error) {
	resp, err := a.client.SendJSON(ctx, method, path, v, headers)
	if err != nil {
		return nil, MapHTTPError(nil, err, a.serviceName, operation, "", "")
	}

	return resp, nil
}

// DecodeResponse decodes a JSON body into T and closes it.
func DecodeResponse[T any](body io.ReadCloser) (*T, error) {
	if body == nil {
		return nil, errors.New("response body is nil")
	}
	defer func() { _ = body.Close() }()

	var result T
	if err := json.NewDecoder(body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &result, nil
}

// Translator maps one wire record onto a domain value.
type Translator[External any, Domain any] func(ext *External) Domain

// TranslateSlice translates every item. The result is never nil, so an
// empty listing renders as an empty page rather than a missing one.
func TranslateSlice[E any, D any](items []E, translate Translator[E, D]) []D {
	result := make([]D, 0, len(items))

	for i := range items {
		result = append(result, translate(&items[i]))
	}

	return result
}
