package discovery

import (
	"reflect"
	"strings"

	"github.com/aalemi-dev/convert-lab/converter"
)

// MethodScanner discovers converters by reflecting over a candidate's
// method set. It implements converter.Discoverer.
//
// For each candidate, in order of precedence:
//   - a converter.Provider supplies its own descriptors;
//   - an Annotated candidate contributes the methods it lists, in list order;
//   - any other candidate contributes its exported methods whose name starts
//     with Config.Prefix, in lexicographic order.
type MethodScanner struct {
	prefix string
}

// NewMethodScanner creates a scanner from cfg.
func NewMethodScanner(cfg Config) *MethodScanner {
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &MethodScanner{prefix: prefix}
}

// Discover implements converter.Discoverer.
func (s *MethodScanner) Discover(candidate any) []converter.Descriptor {
	if candidate == nil {
		return nil
	}

	switch c := candidate.(type) {
	case converter.Provider:
		return c.ConverterDescriptors()
	case Annotated:
		return s.listed(c)
	}
	return s.prefixed(candidate)
}

func (s *MethodScanner) listed(c Annotated) []converter.Descriptor {
	v := reflect.ValueOf(c)
	names := c.ConverterMethods()

	out := make([]converter.Descriptor, 0, len(names))
	for _, name := range names {
		// MethodByName only sees exported methods; anything else stays a
		// zero Value and is rejected at registration.
		out = append(out, converter.Descriptor{Name: name, Func: v.MethodByName(name)})
	}
	return out
}

func (s *MethodScanner) prefixed(candidate any) []converter.Descriptor {
	v := reflect.ValueOf(candidate)
	t := v.Type()

	var out []converter.Descriptor
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		if !strings.HasPrefix(m.Name, s.prefix) {
			continue
		}
		out = append(out, converter.Descriptor{Name: m.Name, Func: v.Method(i)})
	}
	return out
}

// Chain returns a Discoverer that asks each discoverer in turn and returns
// the first non-empty result.
//
//	registry.WithDiscoverer(discovery.Chain(
//	    converter.ProviderDiscoverer{},
//	    discovery.NewMethodScanner(discovery.Config{Prefix: "To"}),
//	))
func Chain(discoverers ...converter.Discoverer) converter.Discoverer {
	return chain(discoverers)
}

type chain []converter.Discoverer

func (c chain) Discover(candidate any) []converter.Descriptor {
	for _, d := range c {
		if d == nil {
			continue
		}
		if found := d.Discover(candidate); len(found) > 0 {
			return found
		}
	}
	return nil
}
