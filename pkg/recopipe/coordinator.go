package recopipe

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/askarn/go-recopipe/pkg/recopipe/model"
)

// Coordinator drives one full pipeline run: a gather phase that joins
// the item source and the filter-data registry, then an apply phase
// that feeds the gathered pair into the engine.
type Coordinator struct {
	source    ItemSource
	registry  *DataRegistry
	engine    *Engine
	presenter Presenter
}

// NewCoordinator creates a new coordinator.
func NewCoordinator(source ItemSource, registry *DataRegistry, engine *Engine, opts ...CoordinatorOption) (*Coordinator, error) {
	if source == nil {
		return nil, ErrSourceMustBeSet
	}
	if registry == nil {
		return nil, ErrRegistryMustBeSet
	}
	if engine == nil {
		return nil, ErrEngineMustBeSet
	}

	coord := &Coordinator{
		source:   source,
		registry: registry,
		engine:   engine,
	}
	for _, opt := range opts {
		opt(coord)
	}

	return coord, nil
}

// Run performs the two phases and returns the final item collection.
// The gather tasks may complete in either order, but the apply phase
// only starts once both have completed. The first error encountered in
// either phase aborts the run; the presenter is never invoked for a
// failed run.
func (c *Coordinator) Run(ctx context.Context) ([]model.ItemID, error) {
	var (
		items  []model.ItemID
		params []model.Entry
	)

	errGrp, dCtx := errgroup.WithContext(ctx)
	errGrp.Go(func() error {
		provided, err := c.source.Provide(dCtx)
		if err != nil {
			return errors.Wrap(err, "unable to provide items")
		}
		items = provided

		return nil
	})
	errGrp.Go(func() error {
		params = c.registry.Entries()

		return nil
	})

	err := errGrp.Wait()
	if err != nil {
		return nil, errors.Wrap(err, "unable to gather pipeline inputs")
	}

	c.engine.SetParameters(items, params)

	res, err := c.engine.Execute(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to execute pipeline")
	}

	if c.presenter != nil {
		err = c.presenter.Present(ctx, res)
		if err != nil {
			return nil, errors.Wrap(err, "unable to present result")
		}
	}

	return res, nil
}
