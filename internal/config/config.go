package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nogeniuss/ZygoKit/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyRunner           = "runner"
	KeyOutputDir        = "output_dir"
	KeyVerbose          = "verbose"
	KeyContainerWorkdir = "container_workdir"
)

// Settings is a typed snapshot of the loaded configuration.
type Settings struct {
	Runner           string
	OutputDir        string
	Verbose          bool
	ContainerWorkdir string
}

// Dir returns the path to the ZygoKit config directory (~/.zygokit/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.zygokit/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	setDefaults()
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

func setDefaults() {
	viper.SetDefault(KeyRunner, "docker")
	viper.SetDefault(KeyOutputDir, ".")
	viper.SetDefault(KeyVerbose, false)
	viper.SetDefault(KeyContainerWorkdir, "/app")
}

// Current returns the settings as currently resolved by Viper.
func Current() Settings {
	setDefaults()
	return Settings{
		Runner:           viper.GetString(KeyRunner),
		OutputDir:        viper.GetString(KeyOutputDir),
		Verbose:          viper.GetBool(KeyVerbose),
		ContainerWorkdir: viper.GetString(KeyContainerWorkdir),
	}
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q", key)
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// IsKnownKey reports whether key is one of the recognized settings.
func IsKnownKey(key string) bool {
	switch key {
	case KeyRunner, KeyOutputDir, KeyVerbose, KeyContainerWorkdir:
		return true
	}
	return false
}
