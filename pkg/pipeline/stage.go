package pipeline

import (
	"github.com/askiada/go-componentpipe/pkg/component"
	"github.com/askiada/go-componentpipe/pkg/pipeline/model"
)

// StageFunc mutates the working copy of a run in place.
// Returning an error stops the run.
type StageFunc func(c *component.Container) error

// Mutation adapts a function that cannot fail to a StageFunc.
func Mutation(fn func(c *component.Container)) StageFunc {
	if fn == nil {
		return nil
	}

	return func(c *component.Container) error {
		fn(c)

		return nil
	}
}

type stage struct {
	info *model.StageInfo
	fn   StageFunc
}
