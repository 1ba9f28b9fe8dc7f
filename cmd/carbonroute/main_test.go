package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonroute/internal/calculator"
	"github.com/rshade/carbonroute/internal/config"
	"github.com/rshade/carbonroute/internal/emission"
	"github.com/rshade/carbonroute/internal/routes"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"route not found", fmt.Errorf("x: %w", routes.ErrRouteNotFound), exitInput},
		{"invalid distance", calculator.ErrInvalidDistance, exitInput},
		{"unknown mode", fmt.Errorf("mode: %w", emission.ErrUnknownMode), exitInput},
		{"config", config.ErrInvalidConfig, exitError},
		{"generic", errors.New("boom"), exitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	code := report(&buf, routes.ErrRouteNotFound)
	assert.Equal(t, exitInput, code)
	assert.Contains(t, buf.String(), "Error: ")
}

func TestRun(t *testing.T) {
	t.Setenv(config.EnvHome, t.TempDir())
	t.Setenv(config.EnvLogLevel, "error")
	t.Cleanup(config.ResetGlobalConfigForTest)

	require.NoError(t, run(context.Background(), []string{"routes", "find", "Recife, PE", "Olinda, PE", "-o", "json"}))

	err := run(context.Background(), []string{"trip", "--distance", "0"})
	require.ErrorIs(t, err, calculator.ErrInvalidDistance)
}
