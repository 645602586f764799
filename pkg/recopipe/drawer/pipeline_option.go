package drawer

import (
	"time"

	"github.com/pkg/errors"

	"github.com/askarn/go-recopipe/pkg/recopipe/measure"
	"github.com/askarn/go-recopipe/pkg/recopipe/model"
)

type pipelineDrawer struct {
	Drawer
	m         measure.Measure
	startTime time.Time
}

// PipelineDrawer renders the registered pipeline into drawer when the
// engine finishes. With a non-nil measure the drawing is annotated
// with its timings.
func PipelineDrawer(drawer Drawer, m measure.Measure) model.PipelineOption {
	return &pipelineDrawer{drawer, m, time.Now()}
}

func (pd *pipelineDrawer) New() error {
	err := pd.AddUnit(model.SourceInfo.Label)
	if err != nil {
		return errors.Wrap(err, "unable to add source unit")
	}

	err = pd.AddUnit(model.ResultInfo.Label)
	if err != nil {
		return errors.Wrap(err, "unable to add result unit")
	}

	return nil
}

func (pd *pipelineDrawer) PrepareLogic(parent, logic *model.LogicInfo) error {
	err := pd.AddUnit(logic.Label)
	if err != nil {
		return errors.Wrapf(err, "unable to add unit %s", logic.Label)
	}

	err = pd.AddLink(parent.Label, logic.Label)
	if err != nil {
		return errors.Wrapf(err, "unable to link %s to %s", parent.Label, logic.Label)
	}

	return nil
}

func (pd *pipelineDrawer) BeforeRun(items []model.ItemID) error {
	return nil
}

func (pd *pipelineDrawer) OnLogicOutput(parent, logic *model.LogicInfo, items []model.ItemID, iterationDuration, computationDuration time.Duration) error {
	return nil
}

func (pd *pipelineDrawer) AfterRun(last *model.LogicInfo, items []model.ItemID, totalDuration time.Duration) error {
	err := pd.AddLink(last.Label, model.ResultInfo.Label)
	if err != nil {
		return errors.Wrapf(err, "unable to link %s to %s", last.Label, model.ResultInfo.Label)
	}

	return nil
}

func (pd *pipelineDrawer) Finish() error {
	err := pd.SetTotalTime(model.ResultInfo.Label, pd.startTime)
	if err != nil {
		return errors.Wrap(err, "unable to set total time")
	}

	if pd.m != nil {
		err = pd.AddMeasure(pd.m)
		if err != nil {
			return errors.Wrap(err, "unable to add measure")
		}
	}

	err = pd.Draw()
	if err != nil {
		return errors.Wrap(err, "unable to draw pipeline")
	}

	return nil
}
