package discovery

// Annotated is implemented by candidates that name their converter methods
// explicitly instead of relying on the prefix convention.
//
// A listed name that does not resolve to an exported method of the
// candidate (unexported, misspelled, or declared on the pointer receiver
// while the candidate is passed by value) yields an unreachable descriptor,
// which registration rejects as converter.KindMethodNotAccessible.
type Annotated interface {
	ConverterMethods() []string
}
