package discovery

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalemi-dev/convert-lab/converter"
)

type shouter struct{}

func (shouter) Shout(s string) []byte { return []byte(strings.ToUpper(s)) }

func TestBind_Names(t *testing.T) {
	b := Bind(strconv.Itoa, shouter{}.Shout)
	require.Len(t, b, 2)
	assert.Equal(t, "strconv.Itoa", b[0].Name)
	assert.True(t, strings.HasSuffix(b[1].Name, "shouter.Shout"), b[1].Name)
}

func TestBind_Invalid(t *testing.T) {
	var nilFunc func(string) int
	b := Bind(nil, nilFunc, 42)
	require.Len(t, b, 3)
	for _, d := range b {
		assert.Equal(t, "<invalid>", d.Name)
	}
	assert.False(t, b[0].Func.IsValid())
}

func TestBind_Register(t *testing.T) {
	registry := converter.NewRegistry(converter.Config{})

	require.NoError(t, registry.Register(Bind(strconv.Itoa, strconv.FormatBool)))

	out, err := registry.Convert(7, converter.TypeOf[string]())
	require.NoError(t, err)
	assert.Equal(t, "7", out)

	entries := registry.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, converter.TypeOf[Bound](), entries[0].Owner)

	// Same owner type, same pair.
	err = registry.Register(Bind(strconv.Itoa))
	assert.Equal(t, converter.KindDuplicateRegistration, converter.KindOf(err))

	err = registry.Register(Bind(42))
	assert.Equal(t, converter.KindUnsupportedSignature, converter.KindOf(err))
}

func TestBound_DescriptorsAreCopied(t *testing.T) {
	b := Bind(strconv.Itoa)
	d := b.ConverterDescriptors()
	d[0].Name = "changed"
	assert.Equal(t, "strconv.Itoa", b[0].Name)
}
