package discovery

import (
	"reflect"
	"runtime"
	"strings"

	"github.com/aalemi-dev/convert-lab/converter"
)

// Bound is a candidate made of loose functions. It implements
// converter.Provider; its descriptors are named after the functions.
//
// Every Bound value shares the owner type discovery.Bound, so binding the
// same conversion twice is reported as a duplicate registration.
type Bound []converter.Descriptor

// Bind turns functions and method values into a candidate.
//
//	err := registry.Register(discovery.Bind(strconv.Itoa, strconv.FormatBool))
//
// Non-function arguments are kept so that registration reports them as an
// unsupported signature.
func Bind(fns ...any) Bound {
	out := make(Bound, 0, len(fns))
	for _, fn := range fns {
		out = append(out, converter.Descriptor{Name: funcName(fn), Func: reflect.ValueOf(fn)})
	}
	return out
}

// ConverterDescriptors implements converter.Provider.
func (b Bound) ConverterDescriptors() []converter.Descriptor {
	out := make([]converter.Descriptor, len(b))
	copy(out, b)
	return out
}

// funcName returns the package-qualified name of fn from the runtime symbol
// table, e.g. "strconv.Itoa" or "builtin.(*Text).ParseInt".
func funcName(fn any) string {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		return "<invalid>"
	}

	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return "<anonymous>"
	}

	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}
