package pipeline

import (
	"github.com/pkg/errors"

	"github.com/askiada/go-componentpipe/pkg/component"
)

var (
	ErrPipelineMustBeSet  = errors.New("pipeline must be set")
	ErrStageFuncMustBeSet = errors.New("stage function must be set")
	ErrInputNotBound      = errors.New("pipeline input not bound")
	ErrDuplicateID        = errors.New("stage id already registered")
	ErrNotFound           = errors.New("stage not found")
	ErrTypeMismatch       = component.ErrTypeMismatch
)
