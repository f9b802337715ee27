package converter

import (
	"reflect"
)

var errorType = reflect.TypeFor[error]()

// TypePair identifies a conversion direction. It is comparable and used as
// the registry key.
type TypePair struct {
	Source reflect.Type
	Target reflect.Type
}

// Descriptor is one converter exposed by a candidate, as produced by a
// Discoverer. Func is the callable; its first parameter is the source, any
// further parameters are extra arguments, and its first result is the target.
// A second result, if present, must be an error.
//
// An invalid (zero) Func means discovery found the converter but could not
// reach it, which Register reports as KindMethodNotAccessible.
type Descriptor struct {
	Name string
	Func reflect.Value
}

// Func builds a Descriptor from a function or method value.
//
//	func (c *Numbers) ConverterDescriptors() []converter.Descriptor {
//	    return []converter.Descriptor{
//	        converter.Func("ParseInt64", c.ParseInt64),
//	        converter.Func("FormatInt64", c.FormatInt64),
//	    }
//	}
func Func(name string, fn any) Descriptor {
	return Descriptor{Name: name, Func: reflect.ValueOf(fn)}
}

// Provider is implemented by candidates that list their converters
// explicitly.
type Provider interface {
	ConverterDescriptors() []Descriptor
}

// Discoverer turns a candidate into its ordered list of descriptors.
type Discoverer interface {
	Discover(candidate any) []Descriptor
}

// ProviderDiscoverer is the default Discoverer. Candidates implementing
// Provider expose their own table; any other candidate exposes nothing.
type ProviderDiscoverer struct{}

// Discover implements Discoverer.
func (ProviderDiscoverer) Discover(candidate any) []Descriptor {
	if p, ok := candidate.(Provider); ok {
		return p.ConverterDescriptors()
	}
	return nil
}

// EntryInfo is a read-only snapshot of a registered converter.
type EntryInfo struct {
	Source      reflect.Type
	Target      reflect.Type
	Owner       reflect.Type
	Name        string
	ExtraParams []reflect.Type
}

// entry is a validated descriptor owned by the registry.
type entry struct {
	pair         TypePair
	owner        reflect.Type
	name         string
	fn           reflect.Value
	params       []reflect.Type
	returnsError bool
}

func (e *entry) info() EntryInfo {
	params := make([]reflect.Type, len(e.params))
	copy(params, e.params)
	return EntryInfo{
		Source:      e.pair.Source,
		Target:      e.pair.Target,
		Owner:       e.owner,
		Name:        e.name,
		ExtraParams: params,
	}
}

// newEntry validates d against the converter signature rules and builds the
// entry. The returned error is always a *Error.
func newEntry(owner reflect.Type, d Descriptor) (*entry, error) {
	fail := func(kind Kind) (*entry, error) {
		return nil, &Error{Kind: kind, Owner: owner, Method: d.Name}
	}

	if !d.Func.IsValid() {
		return fail(KindMethodNotAccessible)
	}
	if d.Func.Kind() != reflect.Func {
		return fail(KindUnsupportedSignature)
	}
	if d.Func.IsNil() || !d.Func.CanInterface() {
		return fail(KindMethodNotAccessible)
	}

	ft := d.Func.Type()
	if ft.NumOut() == 0 || (ft.NumOut() == 1 && ft.Out(0) == errorType) {
		return fail(KindMissingReturnType)
	}
	if ft.NumIn() == 0 {
		return fail(KindMissingSourceParameter)
	}
	if ft.IsVariadic() || ft.NumOut() > 2 || (ft.NumOut() == 2 && ft.Out(1) != errorType) {
		return fail(KindUnsupportedSignature)
	}

	source, target := ft.In(0), ft.Out(0)
	if source == target {
		return nil, &Error{Kind: KindIdentityConversionRejected, Owner: owner, Method: d.Name, Source: source, Target: target}
	}

	params := make([]reflect.Type, 0, ft.NumIn()-1)
	for i := 1; i < ft.NumIn(); i++ {
		params = append(params, ft.In(i))
	}

	return &entry{
		pair:         TypePair{Source: source, Target: target},
		owner:        owner,
		name:         d.Name,
		fn:           d.Func,
		params:       params,
		returnsError: ft.NumOut() == 2,
	}, nil
}
