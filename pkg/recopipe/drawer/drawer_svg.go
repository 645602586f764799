package drawer

import (
	"fmt"
	"io"
	"os"
	"sort"
	"text/template"
	"time"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/askarn/go-recopipe/internal/store"
	"github.com/askarn/go-recopipe/pkg/recopipe/measure"
)

// SVGDrawer renders the pipeline topology into a SVG (DOT) file. The
// topology of a filter pipeline is a single chain from the source unit
// to the result unit; cycle prevention on the underlying graph keeps a
// mis-registered link from corrupting it.
type SVGDrawer struct {
	graph       graph.Graph[string, string]
	store       store.CustomStore[string, string]
	units       map[string]struct{}
	svgFileName string
}

// NewSVGDrawer creates a new SVG drawer.
func NewSVGDrawer(svgFileName string) *SVGDrawer {
	st := store.NewMemoryStore[string, string]()

	return &SVGDrawer{
		svgFileName: svgFileName,
		store:       st,
		graph:       graph.NewWithStore(graph.StringHash, st, graph.Directed(), graph.PreventCycles()),
		units:       make(map[string]struct{}),
	}
}

// AddUnit adds a logic unit to the pipeline graph.
func (d *SVGDrawer) AddUnit(label string) error {
	err := d.graph.AddVertex(label)
	if err != nil {
		return errors.Wrapf(err, "unable to add unit %s", label)
	}

	d.units[label] = struct{}{}

	return nil
}

// AddLink adds a link between a parent unit and its child unit. Adding
// the same link twice is a no-op.
func (d *SVGDrawer) AddLink(parentLabel, childLabel string) error {
	err := d.graph.AddEdge(parentLabel, childLabel)
	if errors.Is(err, graph.ErrEdgeAlreadyExists) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "unable to add edge from %s to %s", parentLabel, childLabel)
	}

	return nil
}

// Draw creates a SVG file with the pipeline graph.
func (d *SVGDrawer) Draw() error {
	file, err := os.Create(d.svgFileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", d.svgFileName)
	}
	defer file.Close()

	err = dot(d.graph, file)
	if err != nil {
		return errors.Wrapf(err, "unable to create dot file %s", d.svgFileName)
	}

	return nil
}

// SetTotalTime annotates the unit with the time elapsed since startTime.
func (d *SVGDrawer) SetTotalTime(label string, startTime time.Time) error {
	_, _, err := d.graph.VertexWithProperties(label)
	if err != nil {
		return errors.Wrapf(err, "unable to get unit %s", label)
	}

	d.store.UpdateVertex(label, func(p *graph.VertexProperties) {
		if p.Attributes == nil {
			p.Attributes = make(map[string]string)
		}
		p.Attributes["xlabel"] = time.Since(startTime).String()
	})

	return nil
}

const maxRGB = 240

// AddMeasure annotates the pipeline graph with recorded timings. The
// hand-off edges are coloured on a blue-to-red scale relative to the
// slowest one.
func (d *SVGDrawer) AddMeasure(msr measure.Measure) error {
	sortedElapsed := []time.Duration{}
	heat := make(map[time.Duration]string)

	for _, unit := range msr.AllMetrics() {
		for _, info := range unit.AVGHandoffDuration() {
			if info.Elapsed == 0 {
				continue
			}
			if _, ok := heat[info.Elapsed]; ok {
				continue
			}

			heat[info.Elapsed] = ""
			sortedElapsed = append(sortedElapsed, info.Elapsed)
		}
	}

	if len(sortedElapsed) == 0 {
		return nil
	}

	sort.Slice(sortedElapsed, func(i, j int) bool {
		return sortedElapsed[i] > sortedElapsed[j]
	})

	maxValue := sortedElapsed[0]
	minValue := sortedElapsed[len(sortedElapsed)-1]

	for curr := range heat {
		fraction := 1.0
		if maxValue > minValue {
			fraction = float64(curr-minValue) / float64(maxValue-minValue)
		}

		heatColor, err := colors.RGB(uint8(maxRGB*fraction), 0, uint8(maxRGB*(1-fraction))) //nolint
		if err != nil {
			return errors.Wrap(err, "unable to get colour")
		}

		heat[curr] = heatColor.ToHEX().String()
	}

	err := d.updateMetrics(msr, heat)
	if err != nil {
		return errors.Wrap(err, "unable to update metrics")
	}

	return nil
}

func (d *SVGDrawer) updateMetrics(msr measure.Measure, heat map[time.Duration]string) error {
	for label, unit := range msr.AllMetrics() {
		if _, ok := d.units[label]; !ok {
			continue
		}

		unitAvg := unit.AVGDuration()
		totalDuration := unit.GetTotalDuration()

		d.store.UpdateVertex(label, func(p *graph.VertexProperties) {
			if p.Attributes == nil {
				p.Attributes = make(map[string]string)
			}
			if unitAvg != 0 {
				p.Attributes["xlabel"] = unitAvg.String()
			}
			if totalDuration > 0 {
				p.Attributes["xlabel"] += ", end: " + totalDuration.String()
			}
		})

		for parentLabel, info := range unit.AllHandoffs() {
			if info.Elapsed == 0 {
				continue
			}

			err := d.graph.UpdateEdge(parentLabel, label,
				graph.EdgeAttribute("label", info.Elapsed.String()),
				graph.EdgeAttribute("fontcolor", "blue"),
				graph.EdgeAttribute("color", heat[info.Elapsed]), //nolint
			)
			if err != nil {
				return errors.Wrap(err, "unable to update edge")
			}
		}
	}

	return nil
}

//nolint:lll //this is a template
const dotTemplate = `strict digraph {
	{{range $k, $v := .Attributes}}
		{{$k}}="{{$v}}";
	{{end}}
	{{range $s := .Statements}}
		"{{.Source}}" {{if .Target}}-> "{{.Target}}" [ {{range $k, $v := .EdgeAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.EdgeWeight}} ]{{else}}[ {{range $k, $v := .HTMLAttributes}}{{$k}}={{$v}}, {{end}} {{range $k, $v := .SourceAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.SourceWeight}} ]{{end}};
	{{end}}
	}
	`

type description struct {
	Attributes map[string]string
	Statements []statement
}

type statement struct {
	Source           interface{}
	Target           interface{}
	SourceAttributes map[string]string
	HTMLAttributes   map[string]string
	EdgeAttributes   map[string]string
	SourceWeight     int
	EdgeWeight       int
}

func dot[K comparable, T any](g graph.Graph[K, T], wrt io.Writer, options ...func(*description)) error {
	desc, err := generateDOT(g, options...)
	if err != nil {
		return errors.Wrap(err, "failed to generate DOT description")
	}

	return renderDOT(wrt, desc)
}

// GraphAttribute is a functional option for the [dot] method.
func GraphAttribute(key, value string) func(*description) {
	return func(d *description) {
		d.Attributes[key] = value
	}
}

func generateDOT[K comparable, T any](gra graph.Graph[K, T], options ...func(*description)) (description, error) {
	desc := description{
		Attributes: make(map[string]string),
		Statements: make([]statement, 0),
	}

	for _, option := range options {
		option(&desc)
	}

	adjacencyMap, err := gra.AdjacencyMap()
	if err != nil {
		return desc, errors.Wrap(err, "unable to get adjacency map")
	}

	for vertex, adjacencies := range adjacencyMap {
		_, sourceProperties, err := gra.VertexWithProperties(vertex)
		if err != nil {
			return desc, errors.Wrap(err, "unable to get vertex properties")
		}

		htmlAttributes := make(map[string]string)

		if xlabel, ok := sourceProperties.Attributes["xlabel"]; ok {
			htmlAttributes["label"] = fmt.Sprintf(`<%+v <BR /> <FONT POINT-SIZE="12">%s</FONT>>`, vertex, xlabel)

			delete(sourceProperties.Attributes, "xlabel")
		}

		desc.Statements = append(desc.Statements, statement{
			Source:           vertex,
			SourceWeight:     sourceProperties.Weight,
			SourceAttributes: sourceProperties.Attributes,
			HTMLAttributes:   htmlAttributes,
		})

		for adjacency, edge := range adjacencies {
			desc.Statements = append(desc.Statements, statement{
				Source:         vertex,
				Target:         adjacency,
				EdgeWeight:     edge.Properties.Weight,
				EdgeAttributes: edge.Properties.Attributes,
			})
		}
	}

	return desc, nil
}

func renderDOT(wrt io.Writer, desc description) error {
	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return errors.Wrap(err, "failed to parse template")
	}

	err = tpl.Execute(wrt, desc)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}

var _ Drawer = (*SVGDrawer)(nil)
