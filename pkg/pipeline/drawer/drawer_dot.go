package drawer

import (
	"fmt"
	"html"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/askiada/go-componentpipe/pkg/pipeline/measure"
	"github.com/askiada/go-componentpipe/pkg/pipeline/model"
)

// DOTDrawer renders the stage chain of a pipeline in the DOT language.
type DOTDrawer struct {
	graph    graph.Graph[string, string]
	fileName string
	wrt      io.Writer
}

// NewDOTDrawer creates a drawer writing to fileName. The file is truncated on every draw.
func NewDOTDrawer(fileName string) *DOTDrawer {
	return &DOTDrawer{
		fileName: fileName,
		graph:    newGraph(),
	}
}

// NewDOTWriterDrawer creates a drawer writing to wrt.
func NewDOTWriterDrawer(wrt io.Writer) *DOTDrawer {
	return &DOTDrawer{
		wrt:   wrt,
		graph: newGraph(),
	}
}

func newGraph() graph.Graph[string, string] {
	return graph.New(graph.StringHash, graph.Directed())
}

func (d *DOTDrawer) Reset() {
	d.graph = newGraph()
}

const stagePrefix = "_"

// vertexKey returns the vertex of stage. Stage names that read as the start or end vertex,
// or that carry the prefix, are prefixed so every stage keeps a vertex of its own.
func vertexKey(stage *model.StageInfo) string {
	if stage.Type != model.NormalStageType {
		return string(stage.Type)
	}

	switch {
	case stage.Name == string(model.StartStageType),
		stage.Name == string(model.EndStageType),
		strings.HasPrefix(stage.Name, stagePrefix):
		return stagePrefix + stage.Name
	default:
		return stage.Name
	}
}

// AddStep adds a step to the pipeline graph.
func (d *DOTDrawer) AddStep(stage *model.StageInfo) error {
	key := vertexKey(stage)

	var options []func(*graph.VertexProperties)
	if key != stage.Name {
		options = append(options, graph.VertexAttribute("label", stage.Name))
	}

	err := d.graph.AddVertex(key, options...)
	if err != nil {
		return errors.Wrapf(err, "unable to add vertex %s", stage.Name)
	}

	return nil
}

// AddLink adds a link between parent and children steps.
func (d *DOTDrawer) AddLink(parent, children *model.StageInfo) error {
	err := d.graph.AddEdge(vertexKey(parent), vertexKey(children))
	if err != nil {
		return errors.Wrapf(err, "unable to add edge from %s to %s", parent.Name, children.Name)
	}

	return nil
}

// Draw writes the pipeline graph.
func (d *DOTDrawer) Draw() error {
	if d.wrt != nil {
		return d.draw(d.wrt)
	}

	file, err := os.Create(d.fileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", d.fileName)
	}
	defer file.Close()

	return d.draw(file)
}

func (d *DOTDrawer) draw(wrt io.Writer) error {
	err := dot(d.graph, wrt)
	if err != nil {
		return errors.Wrap(err, "unable to create dot description")
	}

	return nil
}

const maxRGB = 240

// AddMeasure labels every step with its average duration and colours the link entering it,
// from blue for the fastest step to red for the slowest. The run metric labels the end step.
func (d *DOTDrawer) AddMeasure(msr measure.Measure) error {
	stageMetrics := msr.AllMetrics()
	all := make(map[string]measure.Metric, len(stageMetrics)+1)

	for name, mt := range stageMetrics {
		all[vertexKey(&model.StageInfo{Type: model.NormalStageType, Name: name})] = mt
	}

	if run := msr.RunMetric(); run != nil {
		all[vertexKey(model.EndStage)] = run
	}

	var minValue, maxValue time.Duration

	first := true

	for _, mt := range all {
		avg := mt.AVGDuration()
		if avg == 0 {
			continue
		}

		if first || avg < minValue {
			minValue = avg
		}

		if first || avg > maxValue {
			maxValue = avg
		}

		first = false
	}

	for name, mt := range all {
		_, properties, err := d.graph.VertexWithProperties(name)
		if errors.Is(err, graph.ErrVertexNotFound) {
			continue
		}

		if err != nil {
			return errors.Wrap(err, "unable to get vertex properties")
		}

		avg := mt.AVGDuration()
		if avg != 0 {
			properties.Attributes["xlabel"] = avg.String()
		}

		if mt.GetTotalDuration() > 0 {
			properties.Attributes["xlabel"] = "total: " + mt.GetTotalDuration().String()
		}

		if avg == 0 {
			continue
		}

		colour, err := durationColour(avg, minValue, maxValue)
		if err != nil {
			return err
		}

		err = d.colourIncomingEdges(name, avg, colour)
		if err != nil {
			return err
		}
	}

	return nil
}

func (d *DOTDrawer) colourIncomingEdges(name string, avg time.Duration, colour string) error {
	predecessors, err := d.graph.PredecessorMap()
	if err != nil {
		return errors.Wrap(err, "unable to get predecessor map")
	}

	for parent := range predecessors[name] {
		err := d.graph.UpdateEdge(parent, name,
			graph.EdgeAttribute("label", avg.String()),
			graph.EdgeAttribute("fontcolor", "blue"),
			graph.EdgeAttribute("color", colour),
		)
		if err != nil {
			return errors.Wrap(err, "unable to update edge")
		}
	}

	return nil
}

func durationColour(value, minValue, maxValue time.Duration) (string, error) {
	fraction := 1.0
	if maxValue > minValue {
		fraction = float64(value-minValue) / float64(maxValue-minValue)
	}

	red := maxRGB * fraction
	blue := maxRGB - red

	rgb, err := colors.RGB(uint8(red), 0, uint8(blue)) //nolint
	if err != nil {
		return "", errors.Wrap(err, "unable to get colour")
	}

	return rgb.ToHEX().String(), nil
}

//nolint:lll //this is a template
const dotTemplate = `strict {{.GraphType}} {
	{{range $k, $v := .Attributes}}
		{{$k}}={{quote $v}};
	{{end}}
	{{range $s := .Statements}}
		{{quote .Source}} {{if .Target}}{{$.EdgeOperator}} {{quote .Target}} [ {{range $k, $v := .EdgeAttributes}}{{$k}}={{quote $v}}, {{end}} weight={{.EdgeWeight}} ]{{else}}[ {{range $k, $v := .HTMLAttributes}}{{$k}}={{$v}}, {{end}} {{range $k, $v := .SourceAttributes}}{{$k}}={{quote $v}}, {{end}} weight={{.SourceWeight}} ]{{end}};
	{{end}}
	}
	`

type description struct {
	GraphType    string
	Attributes   map[string]string
	EdgeOperator string
	Statements   []statement
}

type statement struct {
	Source           string
	Target           string
	SourceAttributes map[string]string
	HTMLAttributes   map[string]string
	EdgeAttributes   map[string]string
	SourceWeight     int
	EdgeWeight       int
}

func dot(gra graph.Graph[string, string], wrt io.Writer, options ...func(*description)) error {
	desc, err := generateDOT(gra, options...)
	if err != nil {
		return fmt.Errorf("failed to generate DOT description: %w", err)
	}

	return renderDOT(wrt, desc)
}

// GraphAttribute is a functional option for the [dot] function.
func GraphAttribute(key, value string) func(*description) {
	return func(d *description) {
		d.Attributes[key] = value
	}
}

func generateDOT(gra graph.Graph[string, string], options ...func(*description)) (description, error) {
	desc := description{
		GraphType:    "graph",
		Attributes:   make(map[string]string),
		EdgeOperator: "--",
		Statements:   make([]statement, 0),
	}

	for _, option := range options {
		option(&desc)
	}

	if gra.Traits().IsDirected {
		desc.GraphType = "digraph"
		desc.EdgeOperator = "->"
	}

	adjacencyMap, err := gra.AdjacencyMap()
	if err != nil {
		return desc, errors.Wrap(err, "unable to get adjacency map")
	}

	vertices := make([]string, 0, len(adjacencyMap))
	for vertex := range adjacencyMap {
		vertices = append(vertices, vertex)
	}

	sort.Strings(vertices)

	for _, vertex := range vertices {
		_, sourceProperties, err := gra.VertexWithProperties(vertex)
		if err != nil {
			return desc, errors.Wrap(err, "unable to get vertex properties")
		}

		htmlAttributes := make(map[string]string)
		sourceAttributes := make(map[string]string, len(sourceProperties.Attributes))

		for k, v := range sourceProperties.Attributes {
			sourceAttributes[k] = v
		}

		if xlabel, ok := sourceAttributes["xlabel"]; ok {
			name := vertex
			if label, ok := sourceAttributes["label"]; ok {
				name = label
			}

			htmlAttributes["label"] = fmt.Sprintf(`<%s <BR /> <FONT POINT-SIZE="12">%s</FONT>>`,
				html.EscapeString(name), html.EscapeString(xlabel))

			delete(sourceAttributes, "xlabel")
			delete(sourceAttributes, "label")
		}

		stmt := statement{
			Source:           vertex,
			SourceWeight:     sourceProperties.Weight,
			SourceAttributes: sourceAttributes,
			HTMLAttributes:   htmlAttributes,
		}
		desc.Statements = append(desc.Statements, stmt)

		targets := make([]string, 0, len(adjacencyMap[vertex]))
		for target := range adjacencyMap[vertex] {
			targets = append(targets, target)
		}

		sort.Strings(targets)

		for _, target := range targets {
			edge := adjacencyMap[vertex][target]
			stmt := statement{
				Source:         vertex,
				Target:         target,
				EdgeWeight:     edge.Properties.Weight,
				EdgeAttributes: edge.Properties.Attributes,
			}
			desc.Statements = append(desc.Statements, stmt)
		}
	}

	return desc, nil
}

func renderDOT(wrt io.Writer, desc description) error {
	tpl, err := template.New("dotTemplate").Funcs(template.FuncMap{"quote": strconv.Quote}).Parse(dotTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	err = tpl.Execute(wrt, desc)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}

var _ Drawer = (*DOTDrawer)(nil)
