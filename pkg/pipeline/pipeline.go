package pipeline

import (
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-componentpipe/internal/store"
	"github.com/askiada/go-componentpipe/pkg/component"
	"github.com/askiada/go-componentpipe/pkg/pipeline/model"
)

// Pipeline is an ordered chain of stages bound to an input container.
//
// A Pipeline is not safe for concurrent use, except that ProcessAll may run while no stage is
// being registered or removed.
type Pipeline struct {
	stages *store.Sequence[string, *stage]
	input  *component.Container
	opts   []model.PipelineOption
}

// New creates a new pipeline.
func New(opts ...model.PipelineOption) (*Pipeline, error) {
	pipe := &Pipeline{
		stages: store.NewSequence[string, *stage](),
		opts:   opts,
	}

	for _, opt := range opts {
		err := opt.New()
		if err != nil {
			return nil, errors.Wrap(err, "unable to apply pipeline option")
		}
	}

	return pipe, nil
}

// SetInput binds the container the next runs read from. It replaces any previous binding and
// does not affect results already returned. Binding nil unbinds the pipeline.
func (p *Pipeline) SetInput(c *component.Container) {
	p.input = c
}

// Input returns the bound container, or nil.
func (p *Pipeline) Input() *component.Container {
	return p.input
}

// PushStage appends a stage. The pipeline is left untouched when id is already registered.
// When an option fails to prepare the stage, the options that already prepared it are told
// to remove it and the stage is dropped.
func (p *Pipeline) PushStage(id string, fn StageFunc) error {
	if fn == nil {
		return errors.Wrapf(ErrStageFuncMustBeSet, "stage %s", id)
	}

	st := &stage{
		info: &model.StageInfo{Type: model.NormalStageType, Name: id},
		fn:   fn,
	}

	err := p.stages.PushBack(id, st)
	if errors.Is(err, store.ErrKeyExists) {
		return errors.Wrapf(ErrDuplicateID, "stage %s", id)
	}

	if err != nil {
		return errors.Wrapf(err, "unable to push stage %s", id)
	}

	for i, opt := range p.opts {
		err := opt.PrepareStage(st.info)
		if err != nil {
			_, _ = p.stages.Remove(id)

			for _, prepared := range p.opts[:i] {
				_ = prepared.RemoveStage(st.info)
			}

			return errors.Wrapf(err, "unable to prepare stage %s", id)
		}
	}

	return nil
}

// PopStage removes the most recently pushed stage. It is a no-op on an empty pipeline.
func (p *Pipeline) PopStage() error {
	_, st, ok := p.stages.PopBack()
	if !ok {
		return nil
	}

	return p.removed(st)
}

// RemoveStage removes the stage registered under id, wherever it sits in the chain.
func (p *Pipeline) RemoveStage(id string) error {
	st, err := p.stages.Remove(id)
	if errors.Is(err, store.ErrKeyNotFound) {
		return errors.Wrapf(ErrNotFound, "stage %s", id)
	}

	if err != nil {
		return errors.Wrapf(err, "unable to remove stage %s", id)
	}

	return p.removed(st)
}

func (p *Pipeline) removed(st *stage) error {
	for _, opt := range p.opts {
		err := opt.RemoveStage(st.info)
		if err != nil {
			return errors.Wrapf(err, "unable to run remove stage option for %s", st.info.Name)
		}
	}

	return nil
}

// Size returns the number of registered stages.
func (p *Pipeline) Size() int {
	return p.stages.Len()
}

// Stages returns the stage ids in execution order.
func (p *Pipeline) Stages() []string {
	return p.stages.Keys()
}

// Process runs every stage, in registration order, against a deep clone of the bound input
// and returns that clone.
//
// A stage error stops the run. It is returned wrapped with the stage id, so compare it with
// errors.Is or unwrap it with errors.Cause rather than with ==.
func (p *Pipeline) Process() (*component.Container, error) {
	if p.input == nil {
		return nil, ErrInputNotBound
	}

	return p.run(p.input)
}

// ProcessAs runs pipe and converts the result to T, which is usually an interface
// *component.Container satisfies.
func ProcessAs[T any](pipe *Pipeline) (T, error) {
	var zero T

	if pipe == nil {
		return zero, ErrPipelineMustBeSet
	}

	res, err := pipe.Process()
	if err != nil {
		return zero, err
	}

	return component.As[T](res)
}

func (p *Pipeline) run(input *component.Container) (*component.Container, error) {
	run := model.NewRunInfo()
	start := time.Now()
	working := input.Clone()
	infos := make([]*model.StageInfo, 0, p.stages.Len())

	var runErr error

	p.stages.Each(func(id string, st *stage) bool {
		infos = append(infos, st.info)

		startFn := time.Now()

		err := st.fn(working)
		if err != nil {
			runErr = errors.Wrapf(err, "stage %s", id)

			return false
		}

		endFn := time.Since(startFn)

		for _, opt := range p.opts {
			err := opt.OnStageOutput(run, st.info, endFn)
			if err != nil {
				runErr = errors.Wrapf(err, "unable to run stage output option for %s", id)

				return false
			}
		}

		return true
	})

	if runErr != nil {
		return nil, runErr
	}

	err := p.finishRun(run, infos, time.Since(start))
	if err != nil {
		return nil, err
	}

	return working, nil
}

func (p *Pipeline) finishRun(run *model.RunInfo, infos []*model.StageInfo, totalDuration time.Duration) error {
	for _, opt := range p.opts {
		err := opt.Finish(run, infos, totalDuration)
		if err != nil {
			return errors.Wrap(err, "unable to finish pipeline option")
		}
	}

	return nil
}
