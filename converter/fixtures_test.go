package converter_test

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/aalemi-dev/convert-lab/converter"
)

// Numbers converts between decimal text and int64.
type Numbers struct{}

func (n Numbers) ConverterDescriptors() []converter.Descriptor {
	return []converter.Descriptor{
		converter.Func("ParseInt64", n.ParseInt64),
		converter.Func("FormatInt64", n.FormatInt64),
	}
}

func (Numbers) ParseInt64(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, converter.Fail("Long conversion failed", err)
	}
	return v, nil
}

func (Numbers) FormatInt64(v int64) string {
	return strconv.FormatInt(v, 10)
}

// OtherNumbers claims string to int64 as well.
type OtherNumbers struct{}

func (o OtherNumbers) ConverterDescriptors() []converter.Descriptor {
	return []converter.Descriptor{converter.Func("Atoi", o.Atoi)}
}

func (OtherNumbers) Atoi(s string) (int64, error) {
	v, err := strconv.Atoi(s)
	return int64(v), err
}

// Flags formats an int, optionally in a signed form.
type Flags struct{}

func (f Flags) ConverterDescriptors() []converter.Descriptor {
	return []converter.Descriptor{converter.Func("Format", f.Format)}
}

func (Flags) Format(n int, signed bool) string {
	if signed && n >= 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// Table exposes whatever descriptors it holds.
type Table []converter.Descriptor

func (t Table) ConverterDescriptors() []converter.Descriptor { return t }

// OtherTable is a Table of a different owner type.
type OtherTable []converter.Descriptor

func (t OtherTable) ConverterDescriptors() []converter.Descriptor { return t }

// Plain exposes no converters.
type Plain struct{}

type hidden struct{}

func (hidden) ConverterDescriptors() []converter.Descriptor {
	return []converter.Descriptor{converter.Func("Len", func(s string) int { return len(s) })}
}

// funcHolder keeps a converter func behind an unexported field, where
// reflection can see it but not call it.
type funcHolder struct {
	fn func(string) int64
}

func unexportedFunc() reflect.Value {
	h := funcHolder{fn: func(s string) int64 { return int64(len(s)) }}
	return reflect.ValueOf(h).Field(0)
}

// Fruit, Apple and GrannySmith form a two-level embedding chain.
type Fruit struct {
	Kind string
}

type Apple struct {
	Fruit
	Variety string
}

func (a Apple) Name() string { return "apple " + a.Variety }
func (a Apple) Label() string { return strings.ToUpper(a.Variety) }

type GrannySmith struct {
	Apple
}

type Named interface {
	Name() string
}

type Labeled interface {
	Label() string
}

var errClassified = converter.Fail("Long conversion failed", nil)

var errUpstream = errors.New("upstream unavailable")

func describeFruit(f Fruit) string { return "fruit:" + f.Kind }
func describeApple(a Apple) string { return "apple:" + a.Variety }
func describeNamed(n Named) string { return "named:" + n.Name() }
func describeLabel(l Labeled) string { return "label:" + l.Label() }
