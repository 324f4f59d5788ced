package plot

import (
	"context"
	"errors"
)

// Sink renders figures.
type Sink interface {
	Render(ctx context.Context, fig Figure) error
}

// Nop discards figures.
type Nop struct{}

func (Nop) Render(context.Context, Figure) error { return nil }

// Multi renders every figure to each of its sinks in order. A failing sink
// does not stop the others; the errors are joined.
type Multi []Sink

func (m Multi) Render(ctx context.Context, fig Figure) error {
	var errs []error
	for _, s := range m {
		if err := s.Render(ctx, fig); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
