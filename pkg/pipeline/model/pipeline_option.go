package model

import "time"

// PipelineOption defines the interface for pipeline options.
type PipelineOption interface {
	// New initialises the pipeline option.
	New() error

	pipelineStageOption

	// Finish runs after every successful run of the pipeline.
	Finish(run *RunInfo, stages []*StageInfo, totalDuration time.Duration) error
}

// pipelineStageOption defines the interface for stage options at the pipeline level.
type pipelineStageOption interface {
	// PrepareStage runs when a stage is registered.
	PrepareStage(stage *StageInfo) error
	// RemoveStage runs when a stage is popped or removed.
	RemoveStage(stage *StageInfo) error
	// OnStageOutput runs every time a stage returns during a run.
	OnStageOutput(run *RunInfo, stage *StageInfo, computationDuration time.Duration) error
}
