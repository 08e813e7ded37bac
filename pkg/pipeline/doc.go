// Package pipeline applies an ordered chain of named stages to a working copy of a component container.
//
// Stages are registered with PushStage and run in registration order. Every stage sees the mutations
// of the stages before it: a run is sequential and happens entirely on the calling goroutine.
// Stages can be added and removed at any time between runs, in O(1).
//
// Each run starts from a deep clone of the bound input container, so neither the input nor the
// results of earlier runs are ever mutated by a stage. Calling Process twice returns two independent
// containers.
//
// Errors are reported with sentinel values that can be tested with errors.Is: ErrInputNotBound when
// Process runs without an input, ErrDuplicateID and ErrNotFound for stage registration, and
// ErrTypeMismatch when a result cannot be converted to the requested type. An error returned by a
// stage stops the run and is returned wrapped with the stage name.
//
// Options such as measure, drawer and logger hook into stage registration and runs.
package pipeline
