package model

// ItemID identifies one recommendable item. The engine assumes no
// internal structure beyond comparability.
type ItemID string

// Entry is one named filter-parameter dataset. Data is opaque to the
// engine and is interpreted by the logic units that consume it.
type Entry struct {
	Data any
	Key  string
}

// LogicInfo describes one registered logic unit. The label is
// diagnostic only and has no behavioural effect.
type LogicInfo struct {
	Label string
	Index int
}

// SourceInfo and ResultInfo bracket the logic chain in option hooks and
// in the drawn topology.
var (
	SourceInfo = &LogicInfo{Label: "source", Index: -1}
	ResultInfo = &LogicInfo{Label: "result", Index: -1}
)
