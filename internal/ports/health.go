package ports

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultCheckTimeout bounds a single upstream check during readiness.
const DefaultCheckTimeout = 2 * time.Second

// ErrDuplicateChecker is returned when a second checker registers under a
// name that is already taken.
var ErrDuplicateChecker = errors.New("duplicate health checker")

// HealthChecker is implemented by the remote API adapters. A nil error from
// Check means the upstream answered.
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}

// HealthRegistry runs the registered upstream checks for the readiness
// endpoint.
type HealthRegistry interface {
	Register(checker HealthChecker) error
	CheckAll(ctx context.Context) *HealthResult
}

// HealthStatus is the state of one upstream or of the whole storefront.
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthResult is the readiness report. Status is unhealthy as soon as one
// check fails.
type HealthResult struct {
	Status    HealthStatus            `json:"status"`
	Checks    map[string]*CheckResult `json:"checks"`
	Timestamp time.Time               `json:"timestamp"`
}

// CheckResult is the outcome of probing one upstream.
type CheckResult struct {
	Status   HealthStatus  `json:"status"`
	Message  string        `json:"message,omitempty"`
	Duration time.Duration `json:"duration"`
}

// UpstreamChecks is the HealthRegistry used by the storefront. Checks run
// in parallel, each under its own timeout, so one hanging upstream cannot
// hold the others' results hostage.
type UpstreamChecks struct {
	mu       sync.RWMutex
	checkers []HealthChecker
	timeout  time.Duration
}

// RegistryOption configures an UpstreamChecks.
type RegistryOption func(*UpstreamChecks)

// WithCheckTimeout overrides DefaultCheckTimeout. Non-positive values are
// ignored.
func WithCheckTimeout(d time.Duration) RegistryOption {
	return func(u *UpstreamChecks) {
		if d > 0 {
			u.timeout = d
		}
	}
}

// NewHealthRegistry returns an empty registry.
func NewHealthRegistry(opts ...RegistryOption) *UpstreamChecks {
	u := &UpstreamChecks{timeout: DefaultCheckTimeout}
	for _, opt := range opts {
		opt(u)
	}

	return u
}

// Register adds checker. Names must be unique.
func (u *UpstreamChecks) Register(checker HealthChecker) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	for _, c := range u.checkers {
		if c.Name() == checker.Name() {
			return fmt.Errorf("%w: %s", ErrDuplicateChecker, checker.Name())
		}
	}

	u.checkers = append(u.checkers, checker)

	return nil
}

// Names lists the registered checkers in registration order.
func (u *UpstreamChecks) Names() []string {
	u.mu.RLock()
	defer u.mu.RUnlock()

	names := make([]string, len(u.checkers))
	for i, c := range u.checkers {
		names[i] = c.Name()
	}

	return names
}

// CheckAll checks every upstream and aggregates the results.
func (u *UpstreamChecks) CheckAll(ctx context.Context) *HealthResult {
	u.mu.RLock()
	checkers := append([]HealthChecker(nil), u.checkers...)
	u.mu.RUnlock()

	results := make([]*CheckResult, len(checkers))

	var g errgroup.Group

	for i, checker := range checkers {
		g.Go(func() error {
			results[i] = u.runCheck(ctx, checker)
			return nil
		})
	}

	_ = g.Wait()

	report := &HealthResult{
		Status:    HealthStatusHealthy,
		Checks:    make(map[string]*CheckResult, len(checkers)),
		Timestamp: time.Now(),
	}

	for i, checker := range checkers {
		report.Checks[checker.Name()] = results[i]

		if results[i].Status == HealthStatusUnhealthy {
			report.Status = HealthStatusUnhealthy
		}
	}

	return report
}

func (u *UpstreamChecks) runCheck(ctx context.Context, checker HealthChecker) *CheckResult {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	start := time.Now()
	err := checker.Check(ctx)

	result := &CheckResult{Status: HealthStatusHealthy, Duration: time.Since(start)}
	if err != nil {
		result.Status = HealthStatusUnhealthy
		result.Message = err.Error()
	}

	return result
}
