package builtin

import (
	"encoding"
	"encoding/json"

	"github.com/aalemi-dev/convert-lab/converter"
)

// Encoding converts between raw bytes, text and JSON documents. Two of its
// converters take interface sources, so any value implementing
// encoding.TextMarshaler or json.Marshaler is covered without registering
// its type.
//
// Registered converters:
//   - []byte <-> string
//   - []byte <-> map[string]any (a JSON object)
//   - encoding.TextMarshaler -> string
//   - json.Marshaler -> json.RawMessage
type Encoding struct{}

// ConverterDescriptors implements converter.Provider.
func (e Encoding) ConverterDescriptors() []converter.Descriptor {
	return []converter.Descriptor{
		converter.Func("BytesToString", e.BytesToString),
		converter.Func("StringToBytes", e.StringToBytes),
		converter.Func("DecodeObject", e.DecodeObject),
		converter.Func("EncodeObject", e.EncodeObject),
		converter.Func("MarshalText", e.MarshalText),
		converter.Func("MarshalJSON", e.MarshalJSON),
	}
}

// BytesToString interprets b as UTF-8 text.
func (Encoding) BytesToString(b []byte) string {
	return string(b)
}

// StringToBytes returns the UTF-8 bytes of s.
func (Encoding) StringToBytes(s string) []byte {
	return []byte(s)
}

// DecodeObject parses a JSON object.
func (Encoding) DecodeObject(b []byte) (map[string]any, error) {
	var obj map[string]any
	if err := json.Unmarshal(b, &obj); err != nil {
		return nil, converter.Fail("JSON object conversion failed", err)
	}
	return obj, nil
}

// EncodeObject renders obj as compact JSON with sorted keys.
func (Encoding) EncodeObject(obj map[string]any) ([]byte, error) {
	b, err := json.Marshal(obj)
	if err != nil {
		return nil, converter.Fail("JSON encoding failed", err)
	}
	return b, nil
}

// MarshalText renders any encoding.TextMarshaler.
func (Encoding) MarshalText(m encoding.TextMarshaler) (string, error) {
	b, err := m.MarshalText()
	if err != nil {
		return "", converter.Fail("text encoding failed", err)
	}
	return string(b), nil
}

// MarshalJSON renders any json.Marshaler, validating its output.
func (Encoding) MarshalJSON(m json.Marshaler) (json.RawMessage, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, converter.Fail("JSON encoding failed", err)
	}
	return json.RawMessage(b), nil
}
