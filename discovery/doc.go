// Package discovery turns converter candidates into descriptors for the
// converter registry.
//
// The registry itself only understands converter.Provider. This package adds
// reflection-based discovery:
//
//   - MethodScanner picks converter methods by listing (Annotated) or by
//     name prefix ("Convert" by default);
//   - Bind wraps loose functions such as strconv.Itoa into a candidate;
//   - Chain combines discoverers, first non-empty result wins.
//
// # Example
//
//	type Temperatures struct{}
//
//	func (Temperatures) ConvertCelsius(c Celsius) Fahrenheit { return Fahrenheit(c*9/5 + 32) }
//	func (Temperatures) ConvertFahrenheit(f Fahrenheit) Celsius { return Celsius((f - 32) * 5 / 9) }
//
//	registry := converter.NewRegistry(converter.Config{}).
//	    WithDiscoverer(discovery.NewMethodScanner(discovery.Config{}))
//	err := registry.Register(Temperatures{})
package discovery
