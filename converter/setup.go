package converter

import (
	"context"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/aalemi-dev/convert-lab/observability"
)

// Registry maps TypePairs to converters and performs conversions.
// It implements the Converter interface.
//
// A Registry is safe for concurrent use: registration and Clear take an
// exclusive lock, lookups take a shared one, and converters run outside the
// lock. Converters are trusted to return; one that blocks blocks its caller.
type Registry struct {
	cfg Config

	mu      sync.RWMutex
	entries map[TypePair]*entry

	// ifaces lists interface source types in first-registration order. It is
	// the ordered capability list walked by the second resolution tier.
	ifaces []reflect.Type

	discoverer Discoverer
	observer   observability.Observer
	logger     Logger
	tracer     trace.Tracer
}

// NewRegistry creates an empty registry.
//
// Candidates are discovered with ProviderDiscoverer unless WithDiscoverer is
// used; logging, observation and tracing are off until their With* setters
// are called (the fx module wires them from the container).
//
// Example:
//
//	registry := converter.NewRegistry(converter.Config{ServiceName: "billing"})
//	if err := registry.Register(&builtin.Text{}); err != nil {
//	    return err
//	}
//	n, err := registry.Convert("20", converter.TypeOf[int64]())
func NewRegistry(cfg Config) *Registry {
	if cfg.TracerName == "" {
		cfg.TracerName = DefaultTracerName
	}

	return &Registry{
		cfg:        cfg,
		entries:    make(map[TypePair]*entry),
		discoverer: ProviderDiscoverer{},
		tracer:     noop.NewTracerProvider().Tracer(cfg.TracerName),
	}
}

// WithDiscoverer replaces the candidate discoverer and returns the registry
// for chaining. A nil discoverer restores ProviderDiscoverer.
func (r *Registry) WithDiscoverer(d Discoverer) *Registry {
	if d == nil {
		d = ProviderDiscoverer{}
	}
	r.discoverer = d
	return r
}

// WithTracer sets the tracer used for conversion spans and returns the
// registry for chaining.
func (r *Registry) WithTracer(t trace.Tracer) *Registry {
	if t != nil {
		r.tracer = t
	}
	return r
}

// Register validates and stores every converter the candidate exposes.
//
// The checks run in this order: the candidate must be non-nil and of an
// exported named type; every descriptor must be reachable, return a value,
// take a source parameter, have a supported signature and convert between
// two different types; its TypePair must be free. A candidate exposing no
// descriptor at all fails with KindNoConvertersFound.
//
// There is no rollback: descriptors stored before a failing one remain
// registered.
func (r *Registry) Register(candidate any) error {
	return r.register(context.Background(), candidate)
}

func (r *Registry) register(ctx context.Context, candidate any) error {
	start := time.Now()

	if isNil(candidate) {
		err := &Error{Kind: KindCandidateRequired}
		r.observeRegistration("", 0, time.Since(start), err)
		r.logError(ctx, "converter registration failed", err, nil)
		return err
	}

	owner := reflect.TypeOf(candidate)
	added, err := r.registerDescriptors(owner, candidate)
	r.observeRegistration(typeName(owner), added, time.Since(start), err)
	if err != nil {
		r.logError(ctx, "converter registration failed", err, map[string]interface{}{
			"owner": typeName(owner),
			"added": added,
		})
		return err
	}

	r.logInfo(ctx, "converter registered", map[string]interface{}{
		"owner":      typeName(owner),
		"converters": added,
	})
	return nil
}

func (r *Registry) registerDescriptors(owner reflect.Type, candidate any) (int, error) {
	if !accessible(owner) {
		return 0, &Error{Kind: KindCandidateNotAccessible, Owner: owner}
	}

	descriptors := r.discoverer.Discover(candidate)

	r.mu.Lock()
	defer r.mu.Unlock()

	added := 0
	for _, d := range descriptors {
		e, err := newEntry(owner, d)
		if err != nil {
			return added, err
		}

		if existing, ok := r.entries[e.pair]; ok {
			if existing.owner == owner {
				return added, &Error{
					Kind:   KindDuplicateRegistration,
					Source: e.pair.Source,
					Target: e.pair.Target,
					Owner:  owner,
					Method: d.Name,
				}
			}
			return added, &Error{
				Kind:     KindConflictingConverter,
				Source:   e.pair.Source,
				Target:   e.pair.Target,
				Owner:    owner,
				Existing: existing.owner,
				Method:   d.Name,
			}
		}

		r.entries[e.pair] = e
		if e.pair.Source.Kind() == reflect.Interface && !r.hasInterface(e.pair.Source) {
			r.ifaces = append(r.ifaces, e.pair.Source)
		}
		added++
	}

	if added == 0 {
		return 0, &Error{Kind: KindNoConvertersFound, Owner: owner}
	}
	return added, nil
}

// hasInterface must be called with r.mu held.
func (r *Registry) hasInterface(t reflect.Type) bool {
	for _, known := range r.ifaces {
		if known == t {
			return true
		}
	}
	return false
}

// SetConverters clears the registry and registers each candidate in order.
// The first failure is returned immediately and the candidates registered
// before it remain in place; the registry is not restored.
func (r *Registry) SetConverters(candidates ...any) error {
	r.Clear()
	for _, candidate := range candidates {
		if err := r.Register(candidate); err != nil {
			return err
		}
	}
	return nil
}

// Clear removes every registered converter.
func (r *Registry) Clear() {
	start := time.Now()

	r.mu.Lock()
	removed := len(r.entries)
	r.entries = make(map[TypePair]*entry)
	r.ifaces = nil
	r.mu.Unlock()

	r.observeOperation("clear", "", "", time.Since(start), nil, int64(removed), nil)
}

// Len returns the number of registered converters.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Entries returns the registered converters sorted by source, target, owner
// and converter name.
func (r *Registry) Entries() []EntryInfo {
	r.mu.RLock()
	out := make([]EntryInfo, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.info())
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if c := compareTypes(out[i].Source, out[j].Source); c != 0 {
			return c < 0
		}
		if c := compareTypes(out[i].Target, out[j].Target); c != 0 {
			return c < 0
		}
		if c := compareTypes(out[i].Owner, out[j].Owner); c != 0 {
			return c < 0
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// compareTypes orders types by printed name, then by package path.
func compareTypes(a, b reflect.Type) int {
	if c := strings.Compare(a.String(), b.String()); c != 0 {
		return c
	}
	return strings.Compare(pkgPath(a), pkgPath(b))
}

// pkgPath returns the package path of t, looking through unnamed
// composite types such as pointers and slices.
func pkgPath(t reflect.Type) string {
	for t.Name() == "" {
		switch t.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Array, reflect.Chan:
			t = t.Elem()
		case reflect.Map:
			if p := pkgPath(t.Key()); p != "" {
				return p
			}
			t = t.Elem()
		default:
			return ""
		}
	}
	return t.PkgPath()
}
