package model

import "time"

// PipelineOption defines the interface for pipeline options.
type PipelineOption interface {
	// New initialises the pipeline option.
	New() error

	// PrepareLogic runs when a logic unit is registered. parent is the
	// previously registered unit, or SourceInfo for the first one.
	PrepareLogic(parent, logic *LogicInfo) error

	// BeforeRun runs at the start of a run with the initial item
	// collection.
	BeforeRun(items []ItemID) error

	// OnLogicOutput runs after each logic unit with the collection it
	// produced.
	OnLogicOutput(parent, logic *LogicInfo, items []ItemID, iterationDuration, computationDuration time.Duration) error

	// AfterRun runs once the last unit has been applied. last is the
	// final unit, or SourceInfo when no unit is registered.
	AfterRun(last *LogicInfo, items []ItemID, totalDuration time.Duration) error

	// Finish runs after the pipeline is finished.
	Finish() error
}
