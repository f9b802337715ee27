package messages

import (
	"go.uber.org/fx"
)

// FXModule provides the *Renderer. A messages.Config must be available in
// the container.
//
// Usage:
//
//	app := fx.New(
//	    config.FXModule,
//	    messages.FXModule,
//	    fx.Invoke(func(r *messages.Renderer, c converter.Converter) {
//	        _, err := c.Convert("x", converter.TypeOf[int64]())
//	        fmt.Println(r.Render(err, "de"))
//	    }),
//	)
var FXModule = fx.Module("messages",
	fx.Provide(NewRenderer),
)
