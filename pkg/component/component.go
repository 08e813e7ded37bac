package component

// Component is a record that can be stored in a Container.
type Component interface {
	// String renders a textual description of the component.
	String() string
	// Clone returns a copy of the component that shares no mutable state with the receiver.
	Clone() Component
}
