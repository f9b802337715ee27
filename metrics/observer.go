package metrics

import (
	"github.com/aalemi-dev/convert-lab/observability"
)

// ObserveOperation implements observability.Observer.
//
// The outcome label is OperationContext.Outcome(), which for the converter
// registry is "ok" or the error kind code. "register" events add their Size
// to the registered gauge and "clear" events subtract it.
func (m *Metrics) ObserveOperation(op observability.OperationContext) {
	component := op.Component
	if component == "" {
		component = "unknown"
	}

	m.operations.WithLabelValues(component, op.Operation, op.Outcome()).Inc()
	m.durations.WithLabelValues(component, op.Operation).Observe(op.Duration.Seconds())

	switch op.Operation {
	case "register":
		if op.Size > 0 {
			m.registered.WithLabelValues(component).Add(float64(op.Size))
		}
	case "clear":
		m.registered.WithLabelValues(component).Sub(float64(op.Size))
	}
}
