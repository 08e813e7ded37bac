// Package component provides a heterogeneous, dynamically keyed store of user defined records.
//
// A component is any value that can describe itself as text and produce an independent copy of
// itself. Components are stored in a Container under a string id and retrieved either untyped or
// through the generic Get helper, which checks the stored type instead of trusting the caller.
//
// Cloning a Container clones every component it holds, so a clone never shares mutable state
// with its source.
package component
