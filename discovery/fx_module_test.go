package discovery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/aalemi-dev/convert-lab/converter"
	"github.com/aalemi-dev/convert-lab/discovery"
)

func TestFXModule_DrivesRegistry(t *testing.T) {
	var registry converter.Converter

	app := fxtest.New(t,
		discovery.FXModule,
		converter.FXModule,
		fx.Supply(discovery.Config{}, converter.Config{}),
		converter.AsCandidate(Numbers{}),
		fx.Populate(&registry),
	)
	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, registry)
	assert.True(t, registry.CanConvert(converter.TypeOf[string](), converter.TypeOf[int64]()))
}

func TestFXModule_ProvidesDiscoverer(t *testing.T) {
	var d converter.Discoverer

	app := fxtest.New(t,
		discovery.FXModule,
		fx.Supply(discovery.Config{Prefix: "Describe"}),
		fx.Populate(&d),
	)
	app.RequireStart()
	defer app.RequireStop()

	assert.Len(t, d.Discover(Numbers{}), 1)
}
