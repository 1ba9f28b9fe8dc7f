package cli_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonroute/internal/routes"
)

// openHandles counts this process's file descriptors that point at path.
func openHandles(t *testing.T, path string) int {
	t.Helper()
	entries, err := os.ReadDir("/proc/self/fd")
	require.NoError(t, err)

	n := 0
	for _, e := range entries {
		target, linkErr := os.Readlink(filepath.Join("/proc/self/fd", e.Name()))
		if linkErr == nil && target == path {
			n++
		}
	}
	return n
}

func TestRoot_ClosesLogFile(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("descriptor inspection needs /proc")
	}

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{
			name: "success",
			args: []string{"trip", "--distance", "10", "--mode", "car"},
		},
		{
			name:    "command error",
			args:    []string{"trip", "--from", "São Paulo, SP", "--to", "Atlantis"},
			wantErr: routes.ErrRouteNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := isolate(t)
			logPath := filepath.Join(home, "logs", "carbonroute.log")
			overlay := filepath.Join(home, "overlay.yaml")
			require.NoError(t, os.WriteFile(overlay, []byte(`logging:
  level: error
  format: json
  file: `+logPath+`
`), 0o600))

			_, stderr, err := run(t, append(tt.args, "--config", overlay)...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			assert.Contains(t, stderr, "Logging to "+logPath)
			assert.FileExists(t, logPath)
			assert.Zero(t, openHandles(t, logPath))
		})
	}
}
