// Package flags provides feature flag adapters.
package flags

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Static implements ports.FeatureFlags from configuration values.
// Values may arrive typed (YAML) or as strings (environment variables);
// both are accepted. Set overrides a value at runtime.
type Static struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewStatic creates a flag set from values. Keys are case-insensitive.
func NewStatic(values map[string]any) *Static {
	s := &Static{values: make(map[string]any, len(values))}
	for k, v := range values {
		s.values[normalize(k)] = v
	}

	return s
}

// Set overrides a flag value.
func (s *Static) Set(flag string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[normalize(flag)] = value
}

// IsEnabled checks if a boolean feature flag is enabled.
func (s *Static) IsEnabled(_ context.Context, flag string, defaultValue bool) bool {
	v, ok := s.lookup(flag)
	if !ok {
		return defaultValue
	}

	switch b := v.(type) {
	case bool:
		return b
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		if err != nil {
			return defaultValue
		}

		return parsed
	default:
		return defaultValue
	}
}

// GetString retrieves a string feature flag value.
func (s *Static) GetString(_ context.Context, flag string, defaultValue string) string {
	v, ok := s.lookup(flag)
	if !ok {
		return defaultValue
	}

	if str, isString := v.(string); isString {
		return str
	}

	return fmt.Sprint(v)
}

// GetInt retrieves an integer feature flag value.
func (s *Static) GetInt(_ context.Context, flag string, defaultValue int) int {
	v, ok := s.lookup(flag)
	if !ok {
		return defaultValue
	}

	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return defaultValue
		}

		return parsed
	default:
		return defaultValue
	}
}

func (s *Static) lookup(flag string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[normalize(flag)]

	return v, ok
}

func normalize(flag string) string {
	return strings.ToLower(strings.TrimSpace(flag))
}
