package converter_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalemi-dev/convert-lab/converter"
)

var (
	stringType = converter.TypeOf[string]()
	int64Type  = converter.TypeOf[int64]()
)

func newRegistry(t *testing.T, candidates ...any) *converter.Registry {
	t.Helper()
	r := converter.NewRegistry(converter.Config{})
	for _, c := range candidates {
		require.NoError(t, r.Register(c))
	}
	return r
}

func requireKind(t *testing.T, err error, kind converter.Kind) *converter.Error {
	t.Helper()
	require.Error(t, err)
	var classified *converter.Error
	require.True(t, errors.As(err, &classified), "expected *converter.Error, got %T: %v", err, err)
	require.Equal(t, kind, classified.Kind, "unexpected kind for %v", err)
	return classified
}

func TestRegister_StoresEveryDescriptor(t *testing.T) {
	r := newRegistry(t, Numbers{})

	assert.Equal(t, 2, r.Len())
	assert.True(t, r.CanConvert(stringType, int64Type))
	assert.True(t, r.CanConvert(int64Type, stringType))
	assert.False(t, r.CanConvert(stringType, converter.TypeOf[float64]()))
}

func TestRegister_PointerCandidate(t *testing.T) {
	r := newRegistry(t, &Numbers{})

	entries := r.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, reflect.TypeOf(&Numbers{}), entries[0].Owner)
}

func TestRegister_Failures(t *testing.T) {
	cases := []struct {
		name      string
		candidate any
		kind      converter.Kind
		sentinel  error
	}{
		{"nil candidate", nil, converter.KindCandidateRequired, converter.ErrCandidateRequired},
		{"typed nil candidate", (*Numbers)(nil), converter.KindCandidateRequired, converter.ErrCandidateRequired},
		{"unexported type", hidden{}, converter.KindCandidateNotAccessible, converter.ErrCandidateNotAccessible},
		{"unexported pointer type", &hidden{}, converter.KindCandidateNotAccessible, converter.ErrCandidateNotAccessible},
		{
			"unreachable method",
			Table{{Name: "convertSecretly"}},
			converter.KindMethodNotAccessible, converter.ErrMethodNotAccessible,
		},
		{
			"nil func",
			Table{converter.Func("Nil", (func(string) int)(nil))},
			converter.KindMethodNotAccessible, converter.ErrMethodNotAccessible,
		},
		{
			"unexported field func",
			Table{{Name: "Length", Func: unexportedFunc()}},
			converter.KindMethodNotAccessible, converter.ErrMethodNotAccessible,
		},
		{
			"no result",
			Table{converter.Func("Notify", func(string) {})},
			converter.KindMissingReturnType, converter.ErrMissingReturnType,
		},
		{
			"error only result",
			Table{converter.Func("Validate", func(string) error { return nil })},
			converter.KindMissingReturnType, converter.ErrMissingReturnType,
		},
		{
			"no source parameter",
			Table{converter.Func("Now", func() int64 { return 0 })},
			converter.KindMissingSourceParameter, converter.ErrMissingSourceParameter,
		},
		{
			"identity",
			Table{converter.Func("Trim", func(s string) string { return s })},
			converter.KindIdentityConversionRejected, converter.ErrIdentityConversionRejected,
		},
		{
			"second result is not an error",
			Table{converter.Func("Split", func(s string) (int, string) { return 0, s })},
			converter.KindUnsupportedSignature, converter.ErrUnsupportedSignature,
		},
		{
			"variadic",
			Table{converter.Func("Sum", func(s string, xs ...int) int { return len(xs) })},
			converter.KindUnsupportedSignature, converter.ErrUnsupportedSignature,
		},
		{
			"not a function",
			Table{{Name: "Answer", Func: reflect.ValueOf(42)}},
			converter.KindUnsupportedSignature, converter.ErrUnsupportedSignature,
		},
		{"empty table", Table{}, converter.KindNoConvertersFound, converter.ErrNoConvertersFound},
		{"no provider", Plain{}, converter.KindNoConvertersFound, converter.ErrNoConvertersFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := converter.NewRegistry(converter.Config{})
			err := r.Register(tc.candidate)

			classified := requireKind(t, err, tc.kind)
			assert.ErrorIs(t, err, tc.sentinel)
			assert.True(t, classified.Kind.RegistrationTime())
			assert.False(t, classified.Kind.ConversionTime())
			assert.Equal(t, 0, r.Len())
		})
	}
}

func TestRegister_FailureNamesMethodAndOwner(t *testing.T) {
	r := converter.NewRegistry(converter.Config{})
	err := r.Register(Table{converter.Func("Notify", func(string) {})})

	classified := requireKind(t, err, converter.KindMissingReturnType)
	assert.Equal(t, "Notify", classified.Method)
	assert.Equal(t, reflect.TypeOf(Table{}), classified.Owner)
	assert.Contains(t, err.Error(), "Notify")
	assert.Contains(t, err.Error(), "converter_test.Table")
}

func TestRegister_Duplicate(t *testing.T) {
	r := newRegistry(t, Numbers{})

	err := r.Register(Numbers{})
	classified := requireKind(t, err, converter.KindDuplicateRegistration)
	assert.ErrorIs(t, err, converter.ErrDuplicateRegistration)
	assert.Equal(t, reflect.TypeOf(Numbers{}), classified.Owner)
	assert.Equal(t, stringType, classified.Source)
	assert.Equal(t, int64Type, classified.Target)
	assert.Equal(t, 2, r.Len())
}

func TestRegister_Conflict(t *testing.T) {
	r := newRegistry(t, Numbers{})

	err := r.Register(OtherNumbers{})
	classified := requireKind(t, err, converter.KindConflictingConverter)
	assert.ErrorIs(t, err, converter.ErrConflictingConverter)
	assert.Equal(t, reflect.TypeOf(OtherNumbers{}), classified.Owner)
	assert.Equal(t, reflect.TypeOf(Numbers{}), classified.Existing)
	assert.Contains(t, err.Error(), "converter_test.OtherNumbers")
	assert.Contains(t, err.Error(), "converter_test.Numbers")

	// The stored converter is untouched.
	out, err := r.Convert("20", int64Type)
	require.NoError(t, err)
	assert.Equal(t, int64(20), out)
}

func TestRegister_NoRollback(t *testing.T) {
	r := converter.NewRegistry(converter.Config{})

	err := r.Register(Table{
		converter.Func("Len", func(s string) int { return len(s) }),
		converter.Func("Notify", func(string) {}),
	})
	requireKind(t, err, converter.KindMissingReturnType)

	assert.Equal(t, 1, r.Len())
	assert.True(t, r.CanConvert(stringType, converter.TypeOf[int]()))
}

func TestRegister_DuplicateWithinCandidate(t *testing.T) {
	r := converter.NewRegistry(converter.Config{})

	err := r.Register(Table{
		converter.Func("Len", func(s string) int { return len(s) }),
		converter.Func("Count", func(s string) int { return 1 }),
	})
	classified := requireKind(t, err, converter.KindDuplicateRegistration)
	assert.Equal(t, "Count", classified.Method)
	assert.Equal(t, 1, r.Len())
}

func TestRegister_SameTableTypeIsDuplicate(t *testing.T) {
	length := converter.Func("Len", func(s string) int { return len(s) })
	r := newRegistry(t, Table{length})

	requireKind(t, r.Register(Table{length}), converter.KindDuplicateRegistration)
	requireKind(t, r.Register(OtherTable{length}), converter.KindConflictingConverter)
}

func TestSetConverters(t *testing.T) {
	r := newRegistry(t, OtherNumbers{})

	require.NoError(t, r.SetConverters(Numbers{}, Flags{}))
	assert.Equal(t, 3, r.Len())

	entries := r.Entries()
	for _, e := range entries {
		assert.NotEqual(t, reflect.TypeOf(OtherNumbers{}), e.Owner)
	}
}

func TestSetConverters_PartialOnFailure(t *testing.T) {
	r := newRegistry(t, booleanTable())

	err := r.SetConverters(Numbers{}, nil, Flags{})
	requireKind(t, err, converter.KindCandidateRequired)

	assert.True(t, r.CanConvert(stringType, int64Type))
	assert.False(t, r.CanConvert(converter.TypeOf[int](), stringType))
	assert.False(t, r.CanConvert(converter.TypeOf[bool](), stringType))
}

// booleanTable holds a bool formatter.
func booleanTable() Table {
	return Table{converter.Func("FormatBool", func(b bool) string {
		if b {
			return "yes"
		}
		return "no"
	})}
}

func TestClear(t *testing.T) {
	r := newRegistry(t, Numbers{}, Flags{})
	require.True(t, r.CanConvert(stringType, int64Type))

	r.Clear()

	assert.Equal(t, 0, r.Len())
	assert.False(t, r.CanConvert(stringType, int64Type))
	assert.False(t, r.CanConvert(converter.TypeOf[int](), stringType))
	assert.Empty(t, r.Entries())

	// The registry is reusable.
	require.NoError(t, r.Register(Numbers{}))
}

func TestCanConvert_NilTypes(t *testing.T) {
	r := newRegistry(t, Numbers{})

	assert.False(t, r.CanConvert(nil, int64Type))
	assert.False(t, r.CanConvert(stringType, nil))
}

func TestEntries_Sorted(t *testing.T) {
	r := newRegistry(t, Flags{}, Numbers{})

	entries := r.Entries()
	require.Len(t, entries, 3)

	assert.Equal(t, "int", entries[0].Source.String())
	assert.Equal(t, "Format", entries[0].Name)
	assert.Equal(t, []reflect.Type{converter.TypeOf[bool]()}, entries[0].ExtraParams)

	assert.Equal(t, int64Type, entries[1].Source)
	assert.Equal(t, stringType, entries[1].Target)
	assert.Equal(t, "FormatInt64", entries[1].Name)
	assert.Empty(t, entries[1].ExtraParams)

	assert.Equal(t, stringType, entries[2].Source)
	assert.Equal(t, reflect.TypeOf(Numbers{}), entries[2].Owner)
}

func TestEntries_SamePrintedNameIsStable(t *testing.T) {
	first := func() reflect.Value {
		type User struct{ ID int }
		return reflect.ValueOf(func(User) string { return "first" })
	}()
	second := func() reflect.Value {
		type User struct{ Name string }
		return reflect.ValueOf(func(User) string { return "second" })
	}()
	require.Equal(t, first.Type().In(0).String(), second.Type().In(0).String())

	r := newRegistry(t, Table{{Name: "Second", Func: first}, {Name: "First", Func: second}})

	for i := 0; i < 20; i++ {
		entries := r.Entries()
		require.Len(t, entries, 2)
		assert.Equal(t, "First", entries[0].Name)
		assert.Equal(t, "Second", entries[1].Name)
	}
}

func TestEntries_IsSnapshot(t *testing.T) {
	r := newRegistry(t, Flags{})

	entries := r.Entries()
	entries[0].ExtraParams[0] = stringType

	assert.Equal(t, converter.TypeOf[bool](), r.Entries()[0].ExtraParams[0])
}
