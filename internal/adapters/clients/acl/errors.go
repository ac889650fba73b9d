package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jsamuelsen/storefront-web/internal/domain"
)

// maxErrorBody bounds how much of an error body is read for context.
const maxErrorBody = 64 << 10

// ErrorResponse is the error body shape shared by the remote APIs.
// The content API uses flat code/message; the publisher API sends an
// error_list; Marketo sends errors.
type ErrorResponse struct {
	Code      string              `json:"code,omitempty"`
	Message   string              `json:"message,omitempty"`
	ErrorList []domain.StoreError `json:"error_list,omitempty"`
	Errors    []domain.StoreError `json:"errors,omitempty"`
}

// GetMessage returns the most specific message the body carried.
func (e *ErrorResponse) GetMessage() string {
	switch {
	case e.Message != "":
		return e.Message
	case len(e.ErrorList) > 0:
		return e.ErrorList[0].Message
	case len(e.Errors) > 0:
		return e.Errors[0].Message
	default:
		return ""
	}
}

// ParseErrorResponse attempts to parse an error response body.
// Returns nil if the body is empty or cannot be parsed.
func ParseErrorResponse(body io.Reader) *ErrorResponse {
	if body == nil {
		return nil
	}

	var errResp ErrorResponse
	if err := json.NewDecoder(io.LimitReader(body, maxErrorBody)).Decode(&errResp); err != nil {
		return nil
	}

	if errResp.GetMessage() == "" && errResp.Code == "" {
		return nil
	}

	return &errResp
}

// MapHTTPError maps a failed call to a domain error.
// This function handles:
//   - Transport errors (no response received)
//   - 404 on a by-id lookup, which becomes a NotFoundError for entity
//   - Every other non-2xx status, which becomes an UpstreamError
//
// Pass an empty entity for calls where 404 is not a lookup miss.
func MapHTTPError(resp *http.Response, clientErr error, serviceName, operation, entity, entityID string) error {
	if clientErr != nil {
		return domain.NewUpstreamError(serviceName, fmt.Sprintf("%s failed: %v", operation, clientErr))
	}

	if resp == nil {
		return domain.NewUpstreamError(serviceName, "no response received")
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	if resp.StatusCode == http.StatusNotFound && entity != "" {
		return domain.NewNotFoundError(entity, entityID)
	}

	message := defaultMessageForStatus(resp.StatusCode, operation)
	if errResp := ParseErrorResponse(resp.Body); errResp != nil && errResp.GetMessage() != "" {
		message = errResp.GetMessage()
	}

	return domain.NewUpstreamStatusError(serviceName, resp.StatusCode, message)
}

// MapStoreErrors maps a failed publisher call. Bodies carrying an
// error_list become a *domain.StoreErrorList so forms can show the
// field errors; anything else falls back to MapHTTPError.
func MapStoreErrors(resp *http.Response, serviceName, operation string) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return domain.NewUpstreamError(serviceName, fmt.Sprintf("%s: reading error body: %v", operation, err))
	}

	var errResp ErrorResponse
	if json.Unmarshal(body, &errResp) == nil && len(errResp.ErrorList) > 0 {
		return &domain.StoreErrorList{Status: resp.StatusCode, Errors: errResp.ErrorList}
	}

	message := defaultMessageForStatus(resp.StatusCode, operation)
	if errResp.GetMessage() != "" {
		message = errResp.GetMessage()
	}

	return domain.NewUpstreamStatusError(serviceName, resp.StatusCode, message)
}

// defaultMessageForStatus returns a default message for an HTTP status.
func defaultMessageForStatus(status int, operation string) string {
	switch status {
	case http.StatusNotFound:
		return "resource not found"
	case http.StatusBadRequest:
		return "invalid request"
	case http.StatusForbidden:
		return "access denied"
	case http.StatusUnauthorized:
		return "authentication required"
	case http.StatusTooManyRequests:
		return "rate limit exceeded"
	case http.StatusServiceUnavailable:
		return "service temporarily unavailable"
	default:
		return fmt.Sprintf("%s failed with status %d", operation, status)
	}
}
