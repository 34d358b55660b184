package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/log/global"
)

func Test_NewObservabilityProviders_InstallsLoggerProvider(t *testing.T) {
	// setup
	ctx := context.Background()

	// act
	providers, err := NewObservabilityProviders(ctx, "localhost:4317", "locallibrary", "test")

	// assert
	require.NoError(t, err)
	assert.NotNil(t, providers.TracerProvider)
	assert.NotNil(t, providers.MeterProvider)
	require.NotNil(t, providers.LoggerProvider)
	assert.Same(t, providers.LoggerProvider, global.GetLoggerProvider())

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_ = providers.Shutdown(canceled)
}
