package observe

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_CountsEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.Attempt(1, 0, 2)
	m.Attempt(2, 1, 2)
	m.Rotate(1, 0, 1, "rate limit", time.Second, 239*time.Second)
	m.Rotate(2, 1, 0, "rate limit", 2*time.Second, 238*time.Second)
	m.Rotate(3, 0, 1, "invalid key", 3*time.Second, 237*time.Second)

	if got := testutil.ToFloat64(m.attempts); got != 2 {
		t.Errorf("attempts = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.rotations.WithLabelValues("rate limit")); got != 2 {
		t.Errorf("rate limit rotations = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.rotations.WithLabelValues("invalid key")); got != 1 {
		t.Errorf("invalid key rotations = %v, want 1", got)
	}
}

func TestMetrics_CountsTerminalOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.Fatal(1, 0)
	m.DeadlineExceeded(7, 2)
	m.DeadlineExceeded(3, 1)

	if got := testutil.ToFloat64(m.fatals); got != 1 {
		t.Errorf("fatal failures = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.deadlines); got != 2 {
		t.Errorf("deadline exhaustions = %v, want 2", got)
	}
}

func TestMetrics_RegistersWithRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	m.Attempt(1, 0, 1)
	m.Fatal(1, 0)
	m.DeadlineExceeded(1, 1)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	found := map[string]bool{}
	for _, f := range families {
		found[f.GetName()] = true
	}
	for _, name := range []string{
		"gemlens_generate_attempts_total",
		"gemlens_generate_fatal_failures_total",
		"gemlens_generate_deadline_exhaustions_total",
	} {
		if !found[name] {
			t.Errorf("%s not registered", name)
		}
	}
}
