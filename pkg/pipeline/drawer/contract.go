package drawer

import (
	"github.com/askiada/go-componentpipe/pkg/pipeline/measure"
	"github.com/askiada/go-componentpipe/pkg/pipeline/model"
)

// Drawer is an interface that defines the methods for drawing a pipeline.
type Drawer interface {
	// Reset drops every step and link.
	Reset()
	// AddStep adds a step to the pipeline drawer.
	AddStep(stage *model.StageInfo) error
	// AddLink adds a link between parent and children steps.
	AddLink(parent, children *model.StageInfo) error
	// AddMeasure labels and colours steps with the durations held by measure.
	AddMeasure(measure measure.Measure) error
	// Draw writes the pipeline graph.
	Draw() error
}
