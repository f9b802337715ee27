package converter

import (
	"go/token"
	"reflect"
)

// TypeOf returns the reflect.Type of T. It also works for interface types,
// which reflect.TypeOf cannot express from a value.
//
//	registry.Convert("20", converter.TypeOf[int64]())
func TypeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// typeName renders a type for messages, "<nil>" when absent.
func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// isNil reports whether v is an untyped nil or a typed nil of a nilable kind.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// nilable reports whether a nil argument can stand for a parameter of type t.
func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return true
	}
	return false
}

// accessible reports whether the candidate's type, after one pointer
// dereference, is an exported named type.
func accessible(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name() != "" && token.IsExported(t.Name())
}

// parentOf returns the single-level parent of v: the element of a non-nil
// pointer, or the exported embedded first field of a struct.
func parentOf(v reflect.Value) (reflect.Value, bool) {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return reflect.Value{}, false
		}
		return v.Elem(), true
	case reflect.Struct:
		t := v.Type()
		if t.NumField() == 0 {
			return reflect.Value{}, false
		}
		f := t.Field(0)
		if !f.Anonymous || !f.IsExported() {
			return reflect.Value{}, false
		}
		return v.Field(0), true
	}
	return reflect.Value{}, false
}
