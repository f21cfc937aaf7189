package gemini

import (
	"context"

	"github.com/pmoncada/gemlens/internal/rotate"
)

// Generator produces model output for a prompt. Tools depend on this
// interface rather than on key pools or rotation mechanics.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Rotator is a Generator that drives the rotation executor over an
// API-key pool. One Generate call is one logical request: attempts are
// sequential and no state survives the call.
type Rotator struct {
	pool  []string
	build func(ctx context.Context, apiKey string) (Client, error)
	opts  []rotate.Option
}

// NewRotator binds a key pool and model name to the rotation executor.
func NewRotator(pool []string, model string, opts ...rotate.Option) *Rotator {
	return &Rotator{
		pool:  pool,
		build: Builder(model),
		opts:  opts,
	}
}

func (r *Rotator) Generate(ctx context.Context, prompt string) (string, error) {
	return rotate.Execute(ctx, r.pool, r.build,
		func(ctx context.Context, c Client) (string, error) {
			return c.Generate(ctx, prompt)
		},
		r.opts...,
	)
}
