package observability

// NoOpObserver discards every event.
type NoOpObserver struct{}

// ObserveOperation does nothing.
func (n *NoOpObserver) ObserveOperation(ctx OperationContext) {}

// NewNoOpObserver creates a NoOpObserver.
func NewNoOpObserver() Observer {
	return &NoOpObserver{}
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(ctx OperationContext)

// ObserveOperation calls f.
func (f ObserverFunc) ObserveOperation(ctx OperationContext) {
	f(ctx)
}

// Multi fans events out to several observers in order. Nil entries are
// skipped; with no usable observer it returns a NoOpObserver.
//
//	registry.WithObserver(observability.Multi(promMetrics, auditTrail))
func Multi(observers ...Observer) Observer {
	var list []Observer
	for _, o := range observers {
		if o != nil {
			list = append(list, o)
		}
	}

	switch len(list) {
	case 0:
		return NewNoOpObserver()
	case 1:
		return list[0]
	}
	return multiObserver(list)
}

type multiObserver []Observer

func (m multiObserver) ObserveOperation(ctx OperationContext) {
	for _, o := range m {
		o.ObserveOperation(ctx)
	}
}
