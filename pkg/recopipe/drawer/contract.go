package drawer

import (
	"time"

	"github.com/askarn/go-recopipe/pkg/recopipe/measure"
)

// Drawer is an interface that defines the methods for drawing a pipeline.
type Drawer interface {
	// AddUnit adds a logic unit to the pipeline drawer.
	AddUnit(label string) error
	// AddLink adds a link between a parent unit and its child unit.
	AddLink(parentLabel, childLabel string) error
	// Draw creates a file with the pipeline graph.
	Draw() error
	// SetTotalTime annotates the unit with the time elapsed since startTime.
	SetTotalTime(label string, startTime time.Time) error
	// AddMeasure annotates the pipeline graph with recorded timings.
	AddMeasure(measure measure.Measure) error
}
