// Package model provides the data structures shared by the pipeline package and its options.
// It defines the description of a stage, the description of a single run,
// and the hooks a pipeline option can implement.
package model
