package measure

import (
	"time"

	"github.com/askiada/go-componentpipe/pkg/pipeline/model"
)

type pipelineMeasure struct {
	Measure
}

func (pm *pipelineMeasure) New() error {
	return nil
}

func (pm *pipelineMeasure) PrepareStage(stage *model.StageInfo) error {
	pm.AddMetric(stage.Name)

	return nil
}

func (pm *pipelineMeasure) RemoveStage(stage *model.StageInfo) error {
	pm.RemoveMetric(stage.Name)

	return nil
}

func (pm *pipelineMeasure) OnStageOutput(_ *model.RunInfo, stage *model.StageInfo, computationDuration time.Duration) error {
	mt := pm.GetMetric(stage.Name)
	if mt == nil {
		mt = pm.AddMetric(stage.Name)
	}

	mt.AddDuration(computationDuration)

	return nil
}

func (pm *pipelineMeasure) Finish(_ *model.RunInfo, _ []*model.StageInfo, totalDuration time.Duration) error {
	mt := pm.RunMetric()
	mt.AddDuration(totalDuration)
	mt.SetTotalDuration(totalDuration)

	return nil
}

// PipelineMeasure records stage durations into measure.
func PipelineMeasure(measure Measure) model.PipelineOption {
	return &pipelineMeasure{measure}
}
