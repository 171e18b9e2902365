package domain

import "context"

// Finalizer composes and (optionally) persists a completed series.
// It is the single substitution point between the form and any backend.
type Finalizer interface {
	// Finalize receives the full record including its seasons and returns
	// the payload to report as the success value.
	Finalize(ctx context.Context, series Series) (Series, error)
}

// FinalizerFunc adapts a function to the Finalizer interface
type FinalizerFunc func(ctx context.Context, series Series) (Series, error)

// Finalize calls f(ctx, series)
func (f FinalizerFunc) Finalize(ctx context.Context, series Series) (Series, error) {
	return f(ctx, series)
}

// Catalog stores finalized series records
type Catalog interface {
	Save(series Series) (string, error)
	Get(id string) (Series, error)
}
