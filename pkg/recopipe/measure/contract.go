package measure

import "time"

// Measure collects one Metric per pipeline stage.
type Measure interface {
	AddMetric(label string) Metric
	GetMetric(label string) Metric
	AllMetrics() map[string]Metric
}

// Metric accumulates timing information for one logic unit.
type Metric interface {
	AddDuration(elapsed time.Duration)
	AddHandoffDuration(parentLabel string, elapsed time.Duration)
	AVGDuration() time.Duration
	AVGHandoffDuration() map[string]*HandoffInfo
	SetTotalDuration(endDuration time.Duration)
	GetTotalDuration() time.Duration
	AllHandoffs() map[string]*HandoffInfo
}
