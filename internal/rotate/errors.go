package rotate

import (
	"errors"
	"fmt"
)

// ErrNoKeys is returned when Execute is called with an empty pool.
// It is a configuration error, not a retry-exhaustion condition.
var ErrNoKeys = errors.New("no API keys configured")

// DeadlineError reports that the wall-clock budget elapsed before any
// key succeeded. It carries enough context for an operator to tell a
// too-small pool from a globally degraded service.
type DeadlineError struct {
	// Attempts is the total number of attempts made before giving up.
	Attempts int
	// PoolSize is the number of keys that were being rotated through.
	PoolSize int
	// LastErr is the last retryable error observed, never a key value.
	LastErr error
}

func (e *DeadlineError) Error() string {
	last := "none"
	if e.LastErr != nil {
		last = e.LastErr.Error()
	}
	return fmt.Sprintf("deadline exceeded after %d attempts across %d keys: last error: %s",
		e.Attempts, e.PoolSize, last)
}

func (e *DeadlineError) Unwrap() error { return e.LastErr }
