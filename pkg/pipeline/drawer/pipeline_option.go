package drawer

import (
	"sync"
	"time"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"

	"github.com/askiada/go-componentpipe/pkg/pipeline/measure"
	"github.com/askiada/go-componentpipe/pkg/pipeline/model"
)

type pipelineDrawer struct {
	Drawer
	m  measure.Measure
	mu sync.Mutex
}

func (pd *pipelineDrawer) New() error {
	return nil
}

func (pd *pipelineDrawer) PrepareStage(stage *model.StageInfo) error {
	return nil
}

func (pd *pipelineDrawer) RemoveStage(stage *model.StageInfo) error {
	return nil
}

func (pd *pipelineDrawer) OnStageOutput(run *model.RunInfo, stage *model.StageInfo, computationDuration time.Duration) error {
	return nil
}

// Finish draws the stage chain as it stood for the run that just ended.
func (pd *pipelineDrawer) Finish(_ *model.RunInfo, stages []*model.StageInfo, _ time.Duration) error {
	pd.mu.Lock()
	defer pd.mu.Unlock()

	pd.Reset()

	err := pd.AddStep(model.StartStage)
	if err != nil {
		return errors.Wrap(err, "unable to add start step to drawer")
	}

	parent := model.StartStage
	chain := make([]*model.StageInfo, 0, len(stages)+1)
	chain = append(chain, stages...)

	for _, stage := range append(chain, model.EndStage) {
		err = pd.AddStep(stage)
		if err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
			return err
		}

		err = pd.AddLink(parent, stage)
		if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
			return err
		}

		parent = stage
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

// PipelineDrawer draws the pipeline after every run. When measure is not nil, the drawing
// carries the durations it holds.
func PipelineDrawer(drawer Drawer, measure measure.Measure) model.PipelineOption {
	return &pipelineDrawer{Drawer: drawer, m: measure}
}
