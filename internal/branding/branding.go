// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed, so a fork only needs to edit that file.
package branding

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	GitHubRepo  string `yaml:"github_repo"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "zygokit",
			DisplayName: "ZygoKit",
			Description: "Interactive project scaffolding wizard",
			HomeDir:     ".zygokit",
			EnvPrefix:   "ZYGOKIT",
			GoModule:    "github.com/nogeniuss/ZygoKit",
			GitHubRepo:  "nogeniuss/ZygoKit",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "zygokit").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "ZygoKit").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".zygokit").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "ZYGOKIT").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the module path the binary is built from.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// RepoURL returns the project's GitHub URL.
func RepoURL() string { return "https://github.com/" + GitHubRepo() }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("RUNNER") → "ZYGOKIT_RUNNER".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}

// Banner returns the boxed title printed when the wizard starts.
func Banner() string {
	load()
	title := strings.ToUpper(defaults.DisplayName)
	width := max(len(title), len(defaults.Description)) + 6
	pad := func(s string) string {
		left := (width - len(s)) / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
	}
	line := strings.Repeat("═", width)
	return fmt.Sprintf("╔%s╗\n║%s║\n║%s║\n╚%s╝\n", line, pad(title), pad(defaults.Description), line)
}
