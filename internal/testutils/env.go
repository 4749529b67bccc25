package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// ConfigEnvVars lists every environment variable the config loader reads.
var ConfigEnvVars = []string{"SCRY_STORAGE_PATH", "SCRY_LOG_LEVEL", "SCRY_LOG_FORMAT"}

// SetupEnv sets the given environment variables for the duration of the test.
// Every variable in ConfigEnvVars not named in envVars is cleared, so ambient
// settings never leak into a test. Original values are restored automatically.
func SetupEnv(t *testing.T, envVars map[string]string) {
	t.Helper()

	for _, name := range ConfigEnvVars {
		if _, ok := envVars[name]; !ok {
			t.Setenv(name, "")
		}
	}
	for name, value := range envVars {
		t.Setenv(name, value)
	}
}

// CreateTempConfigFile writes content to a config.yaml in a fresh temp dir
// and returns the file path.
func CreateTempConfigFile(t *testing.T, content string) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(configPath, []byte(content), 0o600)
	require.NoError(t, err, "Failed to create temporary config file")
	return configPath
}
