package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	viper.Reset()
	t.Cleanup(viper.Reset)
	return home
}

func TestCurrentDefaults(t *testing.T) {
	withHome(t)
	Load()

	s := Current()
	assert.Equal(t, "docker", s.Runner)
	assert.Equal(t, ".", s.OutputDir)
	assert.False(t, s.Verbose)
	assert.Equal(t, "/app", s.ContainerWorkdir)
}

func TestEnvOverride(t *testing.T) {
	withHome(t)
	t.Setenv("ZYGOKIT_RUNNER", "host")
	Load()

	assert.Equal(t, "host", Current().Runner)
}

func TestSetPersists(t *testing.T) {
	home := withHome(t)
	Load()

	require.NoError(t, Set(KeyRunner, "podman"))

	data, err := os.ReadFile(filepath.Join(home, ".zygokit", "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "runner: podman")

	viper.Reset()
	Load()
	assert.Equal(t, "podman", Get(KeyRunner))
}

func TestSetRejectsUnknownKey(t *testing.T) {
	withHome(t)
	Load()

	err := Set("mirror", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config key")
}
