package pipeline

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/askiada/go-componentpipe/pkg/component"
)

// ProcessAll runs the pipeline once per input, ignoring the bound input, with at most concurrent
// runs in flight. Each run is sequential and works on its own clone, so stage functions only need
// to be safe for concurrent use when they share state outside the container they are given.
// It returns on the first error or when ctx is done. Results are index aligned with inputs.
func (p *Pipeline) ProcessAll(ctx context.Context, inputs []*component.Container, concurrent int) ([]*component.Container, error) {
	for idx, input := range inputs {
		if input == nil {
			return nil, errors.Wrapf(ErrInputNotBound, "input %d", idx)
		}
	}

	if concurrent < 1 {
		concurrent = 1
	}

	results := make([]*component.Container, len(inputs))
	errGrp, dCtx := errgroup.WithContext(ctx)
	errGrp.SetLimit(concurrent)

	for idx, input := range inputs {
		errGrp.Go(func() error {
			select {
			case <-dCtx.Done():
				return errors.Wrapf(dCtx.Err(), "input %d", idx)
			default:
			}

			res, err := p.run(input)
			if err != nil {
				return errors.Wrapf(err, "input %d", idx)
			}

			results[idx] = res

			return nil
		})
	}

	err := errGrp.Wait()
	if err != nil {
		return nil, err
	}

	return results, nil
}
