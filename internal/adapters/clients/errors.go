// Package clients is the instrumented HTTP client shared by the content,
// publisher and newsletter adapters.
package clients

import "errors"

// Transport-level failures. The acl package translates them into domain
// upstream errors.
var (
	// ErrRequestFailed wraps a request that produced no response.
	ErrRequestFailed = errors.New("request failed")

	// ErrUnhealthy is returned by Ping for a 5xx answer.
	ErrUnhealthy = errors.New("service unhealthy")
)
