package measure

import "time"

// Measure holds one metric per stage, plus a run metric covering whole runs.
// The run metric is not keyed by name, so no stage can shadow it.
type Measure interface {
	AddMetric(name string) Metric
	RemoveMetric(name string)
	GetMetric(name string) Metric
	AllMetrics() map[string]Metric
	RunMetric() Metric
}

// Metric records the durations of a stage across runs.
type Metric interface {
	AddDuration(elapsed time.Duration)
	AVGDuration() time.Duration
	Total() int64
	SetTotalDuration(endDuration time.Duration)
	GetTotalDuration() time.Duration
}
