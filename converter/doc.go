// Package converter is a runtime type-conversion registry.
//
// Callers register candidates, values whose converters are functions of
// the form
//
//	func(S, extra...) T
//	func(S, extra...) (T, error)
//
// and later ask the registry to turn a source value into a target type.
// Each (S, T) TypePair maps to exactly one converter: registering a second
// one fails with KindDuplicateRegistration (same candidate type) or
// KindConflictingConverter (a different one).
//
// # Discovery
//
// The registry does not care how converters are found. A Discoverer turns a
// candidate into an ordered list of Descriptors. The default,
// ProviderDiscoverer, asks candidates implementing Provider; the discovery
// package adds method-name scanning and function binding.
//
// # Resolution
//
// Convert looks for a converter in three tiers, first match wins:
//
//  1. the exact type of the source value;
//  2. registered interface source types the value implements, in the order
//     they were first registered;
//  3. the value's parent: the element of a pointer, or the exported struct
//     embedded as its first field. The parent, not the original value, is
//     passed to the converter. Only one level is tried.
//
// # Errors
//
// Every failure is an *Error with a Kind. Kinds have stable codes used by
// the messages package as catalog keys, and each Kind has a sentinel for
// errors.Is:
//
//	_, err := registry.Convert("x", converter.TypeOf[int64]())
//	if errors.Is(err, converter.ErrNoConverterFound) {
//	    ...
//	}
//
// A converter reports its own classified failure by returning Fail; that
// error reaches the caller unchanged. Any other error or panic is wrapped
// as KindConversionFailed with the original as cause.
//
// # Partial state
//
// Register has no rollback: converters stored before a failing descriptor
// stay registered. SetConverters clears the registry and registers each
// candidate in order, so a failure leaves the earlier candidates in place.
//
// # Concurrency
//
// A *Registry guards its map with a sync.RWMutex. Registration and Clear
// are exclusive, lookups are shared, and converters run outside the lock.
//
// # FX Module Integration
//
//	app := fx.New(
//		config.FXModule,
//		logger.FXModule,
//		tracer.FXModule,
//		metrics.FXModule,
//		converter.FXModule,
//		converter.AsCandidate(builtin.NewText(time.UTC)),
//	)
package converter
