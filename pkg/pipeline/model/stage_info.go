package model

import (
	"time"

	"github.com/google/uuid"
)

type stageType string

const (
	StartStageType  stageType = "start"
	NormalStageType stageType = "stage"
	EndStageType    stageType = "end"
)

// StageInfo describes a registered stage.
type StageInfo struct {
	Type stageType
	Name string
}

var (
	StartStage = &StageInfo{Type: StartStageType, Name: "start"}
	EndStage   = &StageInfo{Type: EndStageType, Name: "end"}
)

// RunInfo describes a single execution of a pipeline.
type RunInfo struct {
	ID        uuid.UUID
	StartedAt time.Time
}

// NewRunInfo creates the description of a run starting now.
func NewRunInfo() *RunInfo {
	return &RunInfo{
		ID:        uuid.New(),
		StartedAt: time.Now().UTC(),
	}
}
