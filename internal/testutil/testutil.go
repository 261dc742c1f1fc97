// Package testutil provides shared test helpers for creating config files.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestConfig creates a config file whose translation endpoint is endpoint and whose
// dictionary fallback answers without delay. The file cache directory is created under tmpDir.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir, endpoint string) string {
	t.Helper()

	cacheDir := filepath.Join(tmpDir, "cache")
	require.NoError(t, os.MkdirAll(cacheDir, 0755))

	configContent := fmt.Sprintf(`translation:
  endpoint: %s
  fallback_delay: 0s
  fallback_jitter: 0s
  source_language: en
  target_language: es
cache:
  backend: file
  directory: %s
`,
		endpoint,
		cacheDir,
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SetupBrokenConfig creates a config file that cannot be parsed.
func SetupBrokenConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("translation:\n  endpoint: [[[\n"), 0644))
	return cfgPath
}
