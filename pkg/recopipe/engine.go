package recopipe

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/askarn/go-recopipe/pkg/recopipe/model"
)

// Engine holds the ordered logic list and the state of the current
// run. Registration order is execution order.
//
// The engine assumes a single writer: running Execute concurrently
// against the same instance is unsupported.
type Engine struct {
	mu     sync.Mutex
	opts   []model.PipelineOption
	logics []*Logic
	items  []model.ItemID
	params []model.Entry
}

// New creates a new engine.
func New(opts ...model.PipelineOption) (*Engine, error) {
	eng := &Engine{
		opts: opts,
	}

	for _, opt := range opts {
		err := opt.New()
		if err != nil {
			return nil, errors.Wrap(err, "unable to apply pipeline option")
		}
	}

	return eng, nil
}

// RegisterLogic appends a unit to the logic list. Units run in
// registration order; this ordering is load-bearing whenever two units
// do not commute.
func (e *Engine) RegisterLogic(logic *Logic) error {
	if logic == nil {
		return ErrLogicMustBeSet
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	parent := model.SourceInfo
	if total := len(e.logics); total > 0 {
		parent = e.logics[total-1].details
	}
	logic.details.Index = len(e.logics)

	for _, opt := range e.opts {
		err := opt.PrepareLogic(parent, logic.details)
		if err != nil {
			return errors.Wrapf(err, "unable to prepare logic unit %s", logic.details.Label)
		}
	}

	e.logics = append(e.logics, logic)

	return nil
}

// SetParameters replaces the run state wholesale. It must be called
// before Execute for the run to see any input; executing first runs
// over empty collections.
func (e *Engine) SetParameters(items []model.ItemID, params []model.Entry) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.items = items
	e.params = params
}

// Execute applies every registered unit in order, threading each
// unit's output into the next one. No unit is skipped, reordered or
// run concurrently. Execute returns the final collection once the last
// unit has run; completion is the return.
func (e *Engine) Execute(ctx context.Context) ([]model.ItemID, error) {
	e.mu.Lock()
	logics := e.logics
	items := e.items
	params := e.params
	e.mu.Unlock()

	start := time.Now()

	for _, opt := range e.opts {
		err := opt.BeforeRun(items)
		if err != nil {
			return nil, errors.Wrap(err, "unable to run before run function")
		}
	}

	parent := model.SourceInfo
	for _, logic := range logics {
		startIter := time.Now()
		select {
		case <-ctx.Done():
			return nil, errors.Wrapf(ctx.Err(), "logic unit %s", logic.details.Label)
		default:
		}

		startFn := time.Now()
		out, err := logic.Apply(params, items)
		if err != nil {
			return nil, errors.Wrapf(err, "logic unit %s", logic.details.Label)
		}
		endFn := time.Since(startFn)
		items = out

		for _, opt := range e.opts {
			err := opt.OnLogicOutput(parent, logic.details, items, time.Since(startIter)-endFn, endFn)
			if err != nil {
				return nil, errors.Wrap(err, "unable to run logic output function")
			}
		}
		parent = logic.details
	}

	for _, opt := range e.opts {
		err := opt.AfterRun(parent, items, time.Since(start))
		if err != nil {
			return nil, errors.Wrap(err, "unable to run after run function")
		}
	}

	e.mu.Lock()
	e.items = items
	e.mu.Unlock()

	return items, nil
}

// Finish runs the Finish hook of every option. Call it once, after the
// last run.
func (e *Engine) Finish() error {
	for _, opt := range e.opts {
		err := opt.Finish()
		if err != nil {
			return errors.Wrap(err, "unable to finish pipeline option")
		}
	}

	return nil
}
