package component

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Container maps string ids to components. An id maps to at most one component.
//
// A Container is not safe for concurrent use.
type Container struct {
	components map[string]Component
}

// NewContainer creates an empty container.
func NewContainer() *Container {
	return &Container{
		components: make(map[string]Component),
	}
}

func (c *Container) lazyInit() {
	if c.components == nil {
		c.components = make(map[string]Component)
	}
}

// SetComponent stores comp under id only if id is not already present.
// The first registration wins: a later call with the same id is ignored. A nil component is ignored.
func (c *Container) SetComponent(id string, comp Component) {
	if comp == nil {
		return
	}

	if _, ok := c.components[id]; ok {
		return
	}

	c.lazyInit()
	c.components[id] = comp
}

// Put stores comp under id, replacing any component already there.
// Putting a nil component removes id.
func (c *Container) Put(id string, comp Component) {
	if comp == nil {
		delete(c.components, id)

		return
	}

	c.lazyInit()
	c.components[id] = comp
}

// Component returns the component stored under id.
func (c *Container) Component(id string) (Component, error) {
	comp, ok := c.components[id]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "id %q", id)
	}

	return comp, nil
}

// RemoveComponent removes id. It is a no-op when id is absent.
func (c *Container) RemoveComponent(id string) {
	delete(c.components, id)
}

func (c *Container) Has(id string) bool {
	_, ok := c.components[id]

	return ok
}

func (c *Container) Len() int {
	return len(c.components)
}

// Range calls fn for every entry until fn returns false.
// The order is unspecified and may change between calls.
func (c *Container) Range(fn func(id string, comp Component) bool) {
	for id, comp := range c.components {
		if !fn(id, comp) {
			return
		}
	}
}

// IDs returns the stored ids in lexicographic order.
func (c *Container) IDs() []string {
	ids := make([]string, 0, len(c.components))
	for id := range c.components {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

// Clone returns a container with the same ids where every component has been cloned.
// Mutating a component of the clone never affects the receiver. A component whose Clone
// returns nil is left out, the same way Put drops a nil component.
func (c *Container) Clone() *Container {
	cloned := &Container{
		components: make(map[string]Component, len(c.components)),
	}

	for id, comp := range c.components {
		cc := comp.Clone()
		if cc == nil {
			continue
		}

		cloned.components[id] = cc
	}

	return cloned
}

// Dump writes a delimiter line with the id followed by the component description, for each entry
// in id order.
func (c *Container) Dump(wrt io.Writer) error {
	for _, id := range c.IDs() {
		_, err := fmt.Fprintf(wrt, "****%s****\n%s\n", id, c.components[id].String())
		if err != nil {
			return errors.Wrapf(err, "unable to dump component %q", id)
		}
	}

	return nil
}

func (c *Container) String() string {
	var sb strings.Builder

	_ = c.Dump(&sb)

	return sb.String()
}

// Get returns the component stored under id as a T.
// It fails with ErrNotFound when id is absent and with ErrTypeMismatch when the component is not a T.
func Get[T any](c *Container, id string) (T, error) {
	var zero T

	comp, err := c.Component(id)
	if err != nil {
		return zero, err
	}

	typed, ok := comp.(T)
	if !ok {
		return zero, errors.Wrapf(ErrTypeMismatch, "id %q holds %T, want %s", id, comp, typeName[T]())
	}

	return typed, nil
}

// MustGet is like Get but panics on failure.
func MustGet[T any](c *Container, id string) T {
	typed, err := Get[T](c, id)
	if err != nil {
		panic(err)
	}

	return typed
}

// As converts the container to T, which is usually an interface *Container satisfies.
func As[T any](c *Container) (T, error) {
	typed, ok := any(c).(T)
	if !ok {
		var zero T

		return zero, errors.Wrapf(ErrTypeMismatch, "container is not a %s", typeName[T]())
	}

	return typed, nil
}

func typeName[T any]() string {
	return strings.TrimPrefix(fmt.Sprintf("%T", (*T)(nil)), "*")
}
