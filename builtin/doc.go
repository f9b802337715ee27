// Package builtin holds ready-made converter candidates.
//
// Text covers string <-> int64, float64, bool, time.Duration and time.Time:
//
//	registry := converter.NewRegistry(converter.Config{})
//	if err := registry.Register(builtin.NewText(time.UTC)); err != nil {
//	    return err
//	}
//
//	n, err := converter.To[int64](registry, "42")
//	s, err := converter.To[string](registry, 90*time.Minute) // "1h30m0s"
//	ts, err := converter.To[time.Time](registry, "2024-05-01", time.DateOnly)
//
// Encoding covers []byte <-> string and JSON objects, and renders any
// encoding.TextMarshaler or json.Marshaler through interface converters:
//
//	_ = registry.Register(builtin.Encoding{})
//	s, err := converter.To[string](registry, net.IPv4(10, 0, 0, 1)) // "10.0.0.1"
package builtin
