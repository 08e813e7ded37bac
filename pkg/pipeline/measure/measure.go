package measure

import (
	"sync"
)

// DefaultMeasure is an in-memory Measure safe for concurrent use.
type DefaultMeasure struct {
	mu    sync.RWMutex
	steps map[string]Metric
	run   Metric
}

func NewDefaultMeasure() *DefaultMeasure {
	return &DefaultMeasure{
		steps: make(map[string]Metric),
		run:   newDefaultMetric(),
	}
}

// AddMetric registers a metric for name, or returns the existing one.
func (m *DefaultMeasure) AddMetric(name string) Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	if mt, ok := m.steps[name]; ok {
		return mt
	}

	mt := newDefaultMetric()
	m.steps[name] = mt

	return mt
}

func (m *DefaultMeasure) RemoveMetric(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.steps, name)
}

// GetMetric returns nil when no metric is registered for name.
func (m *DefaultMeasure) GetMetric(name string) Metric {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.steps[name]
}

// RunMetric returns the metric holding whole-run durations.
func (m *DefaultMeasure) RunMetric() Metric {
	return m.run
}

// AllMetrics returns a snapshot of the registered stage metrics.
func (m *DefaultMeasure) AllMetrics() map[string]Metric {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := make(map[string]Metric, len(m.steps))
	for name, mt := range m.steps {
		all[name] = mt
	}

	return all
}

var _ Measure = (*DefaultMeasure)(nil)
