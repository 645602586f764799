package recopipe

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/askarn/go-recopipe/pkg/recopipe/model"
)

// TraceSink receives one diagnostic line per trace point.
type TraceSink func(msg string)

// SlogSink adapts a structured logger to the TraceSink contract.
func SlogSink(logger *slog.Logger) TraceSink {
	return func(msg string) {
		logger.Info(msg)
	}
}

type pipelineTrace struct {
	sink TraceSink
}

// PipelineTrace emits a serialized snapshot of the item collection
// before the first unit, after each unit, and once the run completes.
// Leaving the option out disables tracing entirely.
func PipelineTrace(sink TraceSink) model.PipelineOption {
	return &pipelineTrace{sink: sink}
}

func (pt *pipelineTrace) New() error {
	return nil
}

func (pt *pipelineTrace) PrepareLogic(parent, logic *model.LogicInfo) error {
	return nil
}

func (pt *pipelineTrace) BeforeRun(items []model.ItemID) error {
	return pt.emit(model.SourceInfo.Label, items)
}

func (pt *pipelineTrace) OnLogicOutput(parent, logic *model.LogicInfo, items []model.ItemID, iterationDuration, computationDuration time.Duration) error {
	return pt.emit(logic.Label, items)
}

func (pt *pipelineTrace) AfterRun(last *model.LogicInfo, items []model.ItemID, totalDuration time.Duration) error {
	return pt.emit(model.ResultInfo.Label, items)
}

func (pt *pipelineTrace) Finish() error {
	return nil
}

func (pt *pipelineTrace) emit(stage string, items []model.ItemID) error {
	snapshot, err := json.Marshal(items)
	if err != nil {
		return errors.Wrap(err, "unable to serialize item snapshot")
	}
	pt.sink(fmt.Sprintf("%s: %s", stage, snapshot))

	return nil
}

var _ model.PipelineOption = (*pipelineTrace)(nil)
