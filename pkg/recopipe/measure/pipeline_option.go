package measure

import (
	"time"

	"github.com/askarn/go-recopipe/pkg/recopipe/model"
)

type pipelineMeasure struct {
	Measure
}

// PipelineMeasure records per-unit computation and hand-off durations
// into measure.
func PipelineMeasure(measure Measure) model.PipelineOption {
	return &pipelineMeasure{measure}
}

func (pm *pipelineMeasure) New() error {
	pm.AddMetric(model.SourceInfo.Label)
	pm.AddMetric(model.ResultInfo.Label)

	return nil
}

func (pm *pipelineMeasure) PrepareLogic(parent, logic *model.LogicInfo) error {
	pm.AddMetric(logic.Label)

	return nil
}

func (pm *pipelineMeasure) BeforeRun(items []model.ItemID) error {
	return nil
}

func (pm *pipelineMeasure) OnLogicOutput(parent, logic *model.LogicInfo, items []model.ItemID, iterationDuration, computationDuration time.Duration) error {
	pm.GetMetric(logic.Label).AddDuration(computationDuration)
	pm.GetMetric(logic.Label).AddHandoffDuration(parent.Label, iterationDuration)

	return nil
}

func (pm *pipelineMeasure) AfterRun(last *model.LogicInfo, items []model.ItemID, totalDuration time.Duration) error {
	pm.GetMetric(last.Label).SetTotalDuration(totalDuration)

	return nil
}

func (pm *pipelineMeasure) Finish() error {
	return nil
}
