package logger

import (
	"time"

	"github.com/askiada/go-componentpipe/pkg/pipeline/model"
)

type pipelineLogger struct {
	Logger
}

func (pl *pipelineLogger) New() error {
	pl.Debug("pipeline created")

	return nil
}

func (pl *pipelineLogger) PrepareStage(stage *model.StageInfo) error {
	pl.Debug("stage %s registered", stage.Name)

	return nil
}

func (pl *pipelineLogger) RemoveStage(stage *model.StageInfo) error {
	pl.Debug("stage %s removed", stage.Name)

	return nil
}

func (pl *pipelineLogger) OnStageOutput(run *model.RunInfo, stage *model.StageInfo, computationDuration time.Duration) error {
	pl.Debug("run %s: stage %s done in %s", run.ID, stage.Name, computationDuration)

	return nil
}

func (pl *pipelineLogger) Finish(run *model.RunInfo, stages []*model.StageInfo, totalDuration time.Duration) error {
	pl.Info("run %s: %d stages done in %s", run.ID, len(stages), totalDuration)

	return nil
}

// PipelineLogger logs stage registration and run progress.
func PipelineLogger(l Logger) model.PipelineOption {
	return &pipelineLogger{l.WithComponent("pipeline")}
}
