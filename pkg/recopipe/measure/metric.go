package measure

import (
	"sync"
	"time"
)

// HandoffInfo accumulates the time spent handing a collection over
// from one stage to the next.
type HandoffInfo struct {
	Elapsed time.Duration
	total   int64
}

// DefaultMetric is the in-memory Metric implementation.
type DefaultMetric struct {
	allHandoffs map[string]*HandoffInfo
	mu          *sync.Mutex
	EndDuration time.Duration
	unitElapsed time.Duration
	total       int64
}

// AddDuration records one application of the unit.
func (mt *DefaultMetric) AddDuration(elapsed time.Duration) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.total++
	mt.unitElapsed += elapsed
}

// SetTotalDuration records the duration of the whole run.
func (mt *DefaultMetric) SetTotalDuration(endDuration time.Duration) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.EndDuration = endDuration
}

// GetTotalDuration returns the duration of the whole run.
func (mt *DefaultMetric) GetTotalDuration() time.Duration {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.EndDuration
}

// AddHandoffDuration records the time spent between the parent unit
// finishing and this unit's output being observed.
func (mt *DefaultMetric) AddHandoffDuration(parentLabel string, elapsed time.Duration) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	if mt.allHandoffs[parentLabel] == nil {
		mt.allHandoffs[parentLabel] = &HandoffInfo{}
	}
	info := mt.allHandoffs[parentLabel]
	info.Elapsed += elapsed
	info.total++
}

// AVGDuration returns the average duration of one application.
func (mt *DefaultMetric) AVGDuration() time.Duration {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	if mt.total == 0 {
		return time.Duration(0)
	}

	return round(time.Duration(float64(mt.unitElapsed) / float64(mt.total)))
}

// AVGHandoffDuration averages the recorded hand-off durations in place
// and returns them.
func (mt *DefaultMetric) AVGHandoffDuration() map[string]*HandoffInfo {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	for label, info := range mt.allHandoffs {
		if info.Elapsed == 0 {
			continue
		}
		mt.allHandoffs[label].Elapsed = round(time.Duration(float64(info.Elapsed) / float64(info.total)))
	}

	return mt.allHandoffs
}

// AllHandoffs returns the raw hand-off durations.
func (mt *DefaultMetric) AllHandoffs() map[string]*HandoffInfo {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.allHandoffs
}

func round(d time.Duration) time.Duration {
	switch {
	case d > time.Second:
		d = d.Round(time.Second)
	case d > time.Millisecond:
		d = d.Round(time.Millisecond)
	case d > time.Microsecond:
		d = d.Round(time.Microsecond)
	}

	return d
}

var _ Metric = (*DefaultMetric)(nil)
