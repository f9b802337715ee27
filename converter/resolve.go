package converter

import (
	"reflect"
)

// CanConvert reports whether a converter is registered for exactly
// (source, target). Interfaces and parents are not considered; use
// CanConvertValue for that.
func (r *Registry) CanConvert(source, target reflect.Type) bool {
	if source == nil || target == nil {
		return false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[TypePair{Source: source, Target: target}]
	return ok
}

// CanConvertValue reports whether Convert would find a converter for value.
// Unlike CanConvert it applies the full resolution order, so a value whose
// dynamic type has no exact entry may still report true through an
// interface or parent converter. It returns false for nil values and nil
// targets.
func (r *Registry) CanConvertValue(value any, target reflect.Type) bool {
	if target == nil || isNil(value) {
		return false
	}
	_, _, ok := r.resolve(reflect.ValueOf(value), target)
	return ok
}

// resolve finds the converter for source, trying in order:
//
//  1. the exact pair (TypeOf(source), target);
//  2. each registered interface source type that TypeOf(source) implements,
//     in first-registration order;
//  3. the single-level parent of source (see parentOf).
//
// It returns the entry and the value to pass as the converter's source
// argument, which differs from source only for the parent tier.
func (r *Registry) resolve(source reflect.Value, target reflect.Type) (*entry, reflect.Value, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sourceType := source.Type()
	if e, ok := r.entries[TypePair{Source: sourceType, Target: target}]; ok {
		return e, source, true
	}

	for _, iface := range r.ifaces {
		if !sourceType.Implements(iface) {
			continue
		}
		if e, ok := r.entries[TypePair{Source: iface, Target: target}]; ok {
			return e, source, true
		}
	}

	if parent, ok := parentOf(source); ok {
		if e, ok := r.entries[TypePair{Source: parent.Type(), Target: target}]; ok {
			return e, parent, true
		}
	}

	return nil, reflect.Value{}, false
}
