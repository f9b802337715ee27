// Package messages renders converter errors for people.
//
// converter.Error carries a Kind with a stable code and the types involved;
// its Error() text is an English fallback meant for logs. Renderer looks the
// code up in a golang.org/x/text catalog and formats it for the requested
// locale (en-US, de-DE and es-ES are built in):
//
//	r, err := messages.NewRenderer(messages.Config{DefaultLocale: "en-US"})
//	...
//	_, err = registry.Convert(3.5, converter.TypeOf[time.Duration]())
//	fmt.Println(r.Render(err, "de-CH"))
//	// Kein Konverter von float64 nach time.Duration gefunden.
package messages
