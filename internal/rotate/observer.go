package rotate

import (
	"log/slog"
	"time"
)

// Observer receives attempt, rotation, and terminal-outcome events
// from the executor. The executor only ever reports positional
// key-slot indices, never key material, so implementations cannot
// leak secrets by accident.
type Observer interface {
	// Attempt fires before each attempt starts.
	Attempt(attempt, slot, poolSize int)
	// Rotate fires after a retryable failure, before the rotation delay.
	Rotate(attempt, fromSlot, toSlot int, reason string, elapsed, remaining time.Duration)
	// Fatal fires when a non-retryable failure ends the call.
	Fatal(attempt, slot int)
	// DeadlineExceeded fires when the wall-clock budget elapses
	// before any key succeeded.
	DeadlineExceeded(attempts, poolSize int)
}

// NopObserver discards all events. It is the executor's default.
type NopObserver struct{}

func (NopObserver) Attempt(int, int, int) {}
func (NopObserver) Rotate(int, int, int, string, time.Duration, time.Duration) {
}
func (NopObserver) Fatal(int, int)            {}
func (NopObserver) DeadlineExceeded(int, int) {}

// LogObserver writes events to a slog.Logger.
type LogObserver struct {
	Log *slog.Logger
}

func (o LogObserver) Attempt(attempt, slot, poolSize int) {
	o.Log.Debug("generate attempt",
		"attempt", attempt,
		"key_slot", slot,
		"pool_size", poolSize,
	)
}

func (o LogObserver) Rotate(attempt, fromSlot, toSlot int, reason string, elapsed, remaining time.Duration) {
	o.Log.Warn("rotating API key",
		"attempt", attempt,
		"from_slot", fromSlot,
		"to_slot", toSlot,
		"reason", reason,
		"elapsed", elapsed.Round(time.Millisecond),
		"remaining", remaining.Round(time.Millisecond),
	)
}

func (o LogObserver) Fatal(attempt, slot int) {
	o.Log.Error("fatal generation failure",
		"attempt", attempt,
		"key_slot", slot,
	)
}

func (o LogObserver) DeadlineExceeded(attempts, poolSize int) {
	o.Log.Error("retry deadline exhausted",
		"attempts", attempts,
		"pool_size", poolSize,
	)
}

// Multi fans events out to several observers in order.
type Multi []Observer

func (m Multi) Attempt(attempt, slot, poolSize int) {
	for _, o := range m {
		o.Attempt(attempt, slot, poolSize)
	}
}

func (m Multi) Rotate(attempt, fromSlot, toSlot int, reason string, elapsed, remaining time.Duration) {
	for _, o := range m {
		o.Rotate(attempt, fromSlot, toSlot, reason, elapsed, remaining)
	}
}

func (m Multi) Fatal(attempt, slot int) {
	for _, o := range m {
		o.Fatal(attempt, slot)
	}
}

func (m Multi) DeadlineExceeded(attempts, poolSize int) {
	for _, o := range m {
		o.DeadlineExceeded(attempts, poolSize)
	}
}
