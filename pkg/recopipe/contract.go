package recopipe

import (
	"context"

	"github.com/askarn/go-recopipe/pkg/recopipe/model"
)

// ItemSource supplies the initial item collection for a run. It is
// called once per run, during the gather phase.
type ItemSource interface {
	Provide(ctx context.Context) ([]model.ItemID, error)
}

// ItemSourceFunc adapts a function to the ItemSource interface.
type ItemSourceFunc func(ctx context.Context) ([]model.ItemID, error)

// Provide implements the ItemSource interface.
func (f ItemSourceFunc) Provide(ctx context.Context) ([]model.ItemID, error) {
	return f(ctx)
}

// Presenter receives the final item collection of a successful run. A
// failed run never reaches the presenter.
type Presenter interface {
	Present(ctx context.Context, items []model.ItemID) error
}

// PresenterFunc adapts a function to the Presenter interface.
type PresenterFunc func(ctx context.Context, items []model.ItemID) error

// Present implements the Presenter interface.
func (f PresenterFunc) Present(ctx context.Context, items []model.ItemID) error {
	return f(ctx, items)
}
