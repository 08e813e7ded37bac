package pipeline_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/askiada/go-componentpipe/pkg/component"
)

type transform struct {
	position []float64
	rotation []float64
	scale    []float64
}

func newTransform() *transform {
	return &transform{
		position: make([]float64, 3),
		rotation: make([]float64, 3),
		scale:    make([]float64, 3),
	}
}

func (t *transform) String() string {
	return fmt.Sprintf("Position: %v\nRotation: %v\nScale: %v", t.position, t.rotation, t.scale)
}

func (t *transform) Clone() component.Component {
	return &transform{
		position: append([]float64(nil), t.position...),
		rotation: append([]float64(nil), t.rotation...),
		scale:    append([]float64(nil), t.scale...),
	}
}

type rigidbody struct {
	mass    float64
	drag    float64
	gravity bool
}

func (r *rigidbody) String() string {
	return fmt.Sprintf("mass=%v drag=%v gravity=%v", r.mass, r.drag, r.gravity)
}

func (r *rigidbody) Clone() component.Component {
	c := *r

	return &c
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

// counter records the order stages observe.
type counter struct {
	seen []string
}

func (c *counter) String() string {
	return fmt.Sprint(c.seen)
}

func (c *counter) Clone() component.Component {
	return &counter{seen: append([]string(nil), c.seen...)}
}

func newGameObject(t *testing.T) *component.Container {
	t.Helper()

	c := component.NewContainer()
	c.SetComponent("Transform", newTransform())
	c.SetComponent("Rigidbody", &rigidbody{})
	c.SetComponent("Info", &info{desc: "Testing game object"})
	require.Equal(t, 3, c.Len())

	return c
}

func move(c *component.Container) {
	if !c.Has("Transform") {
		return
	}

	tr := component.MustGet[*transform](c, "Transform")
	tr.position[0] = 10
	tr.position[2] = 5
}

func record(name string) func(c *component.Container) {
	return func(c *component.Container) {
		c.SetComponent("Counter", &counter{})
		cnt := component.MustGet[*counter](c, "Counter")
		cnt.seen = append(cnt.seen, name)
	}
}
