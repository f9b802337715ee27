package tracer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestFXModule_Provides(t *testing.T) {
	var (
		client   *TracerClient
		tr       Tracer
		provider trace.TracerProvider
	)

	app := fxtest.New(t,
		FXModule,
		fx.Supply(Config{ServiceName: "fx-test", AppEnv: "test"}),
		fx.Populate(&client, &tr, &provider),
	)
	app.RequireStart()
	defer app.RequireStop()

	assert.NotNil(t, client)
	assert.Same(t, client, tr)
	assert.Same(t, client.provider, provider)
}

func TestRegisterTracerLifecycle_NilProvider(t *testing.T) {
	app := fxtest.New(t,
		fx.Supply(&TracerClient{}),
		fx.Invoke(RegisterTracerLifecycle),
	)
	app.RequireStart()
	assert.NotPanics(t, func() { app.RequireStop() })
}
