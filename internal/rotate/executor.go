// Package rotate implements the API-key rotation and retry executor.
//
// Given an ordered pool of keys and a two-stage callback (build a
// client handle from a key, perform the operation on that handle), it
// drives sequential attempts, rotating to the next key on classified
// retryable failures, until success, a fatal failure, or a wall-clock
// deadline. The executor is protocol-agnostic: it knows nothing about
// the upstream request or response shape, which keeps it testable
// without any network dependency.
package rotate

import (
	"context"
	"time"
)

const (
	// DefaultDeadline bounds total retry time regardless of pool size.
	DefaultDeadline = 240 * time.Second
	// DefaultDelay is the pause between rotations so the upstream
	// service isn't hammered. Its exact duration is a tunable, not a
	// correctness requirement.
	DefaultDelay = time.Second
)

type config struct {
	deadline time.Duration
	delay    time.Duration
	observer Observer
}

// Option customizes a single Execute call.
type Option func(*config)

// WithDeadline overrides the wall-clock budget measured from the first attempt.
func WithDeadline(d time.Duration) Option {
	return func(c *config) { c.deadline = d }
}

// WithDelay overrides the pause inserted between rotations.
func WithDelay(d time.Duration) Option {
	return func(c *config) { c.delay = d }
}

// WithObserver injects an observer for attempt and rotation events.
func WithObserver(o Observer) Option {
	return func(c *config) { c.observer = o }
}

// Execute runs op against a client built from one key of the pool,
// rotating through the pool on retryable failures.
//
// It returns the first successful result, the original error of the
// first fatal failure, ErrNoKeys for an empty pool, or a *DeadlineError
// once the budget elapses. Attempts are strictly sequential: one key is
// in flight at a time, and an issued attempt is never abandoned
// mid-flight — the deadline only prevents new attempts from starting.
func Execute[H, R any](
	ctx context.Context,
	pool []string,
	build func(ctx context.Context, key string) (H, error),
	op func(ctx context.Context, h H) (R, error),
	opts ...Option,
) (R, error) {
	var zero R

	cfg := config{
		deadline: DefaultDeadline,
		delay:    DefaultDelay,
		observer: NopObserver{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(pool) == 0 {
		return zero, ErrNoKeys
	}

	start := time.Now()
	slot := 0
	attempts := 0
	var lastErr error

	for time.Since(start) < cfg.deadline {
		attempts++
		cfg.observer.Attempt(attempts, slot, len(pool))

		result, err := attempt(ctx, pool[slot], build, op)
		if err == nil {
			return result, nil
		}
		if Classify(err.Error()) == Fatal {
			cfg.observer.Fatal(attempts, slot)
			return zero, err
		}

		lastErr = err
		next := (slot + 1) % len(pool)
		elapsed := time.Since(start)
		cfg.observer.Rotate(attempts, slot, next, Reason(err.Error()), elapsed, cfg.deadline-elapsed)
		slot = next

		// Interruptible pause before the next attempt.
		select {
		case <-time.After(cfg.delay):
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}

	cfg.observer.DeadlineExceeded(attempts, len(pool))
	return zero, &DeadlineError{
		Attempts: attempts,
		PoolSize: len(pool),
		LastErr:  lastErr,
	}
}

// attempt runs both stages of one attempt. A build failure surfaces
// exactly like an operation failure and goes through classification.
func attempt[H, R any](
	ctx context.Context,
	key string,
	build func(ctx context.Context, key string) (H, error),
	op func(ctx context.Context, h H) (R, error),
) (R, error) {
	h, err := build(ctx, key)
	if err != nil {
		var zero R
		return zero, err
	}
	return op(ctx, h)
}
