package measure

import (
	"sync"
)

// DefaultMeasure keeps the metrics of every pipeline stage in memory.
type DefaultMeasure struct {
	Units map[string]Metric
}

// NewDefaultMeasure creates an empty measure.
func NewDefaultMeasure() *DefaultMeasure {
	return &DefaultMeasure{
		Units: make(map[string]Metric),
	}
}

// AddMetric creates and stores the metric for one stage.
func (m *DefaultMeasure) AddMetric(label string) Metric {
	mt := &DefaultMetric{
		mu:          &sync.Mutex{},
		allHandoffs: make(map[string]*HandoffInfo),
	}
	m.Units[label] = mt

	return mt
}

// GetMetric returns the metric of one stage.
func (m *DefaultMeasure) GetMetric(label string) Metric {
	return m.Units[label]
}

// AllMetrics returns the metrics of every stage.
func (m *DefaultMeasure) AllMetrics() map[string]Metric {
	return m.Units
}

var _ Measure = (*DefaultMeasure)(nil)
