package component_test

import (
	"fmt"

	"github.com/askiada/go-componentpipe/pkg/component"
)

type transform struct {
	position []float64
	rotation []float64
}

func newTransform() *transform {
	return &transform{
		position: make([]float64, 3),
		rotation: make([]float64, 3),
	}
}

func (t *transform) String() string {
	return fmt.Sprintf("Position: %v\nRotation: %v", t.position, t.rotation)
}

func (t *transform) Clone() component.Component {
	return &transform{
		position: append([]float64(nil), t.position...),
		rotation: append([]float64(nil), t.rotation...),
	}
}

type info struct {
	desc string
}

func (i *info) String() string {
	return i.desc
}

func (i *info) Clone() component.Component {
	c := *i

	return &c
}

type detached struct{}

func (detached) String() string { return "detached" }

func (detached) Clone() component.Component { return nil }
