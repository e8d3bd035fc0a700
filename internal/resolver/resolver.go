package resolver

import (
	"strings"

	"github.com/nogeniuss/ZygoKit/internal/answers"
	"github.com/nogeniuss/ZygoKit/internal/catalog"
)

// Default values filled in by enrichment.
const (
	DefaultAPIStyle          = "REST"
	DefaultRenderingStrategy = "CSR"
)

// Config is a resolved project configuration. It shares no memory with the
// answers or catalog it was built from.
type Config struct {
	Language     string `json:"language" yaml:"language"`
	ProjectName  string `json:"projectName" yaml:"projectName"`
	Domain       string `json:"domain" yaml:"domain"`
	Architecture string `json:"architecture,omitempty" yaml:"architecture,omitempty"`
	Framework    string `json:"framework,omitempty" yaml:"framework,omitempty"`

	LanguageInfo catalog.Language `json:"languageInfo" yaml:"languageInfo"`
	Patterns     []string         `json:"patterns" yaml:"patterns"`

	// APIStyle is set for backend projects only.
	APIStyle string `json:"apiStyle,omitempty" yaml:"apiStyle,omitempty"`
	// RenderingStrategy is set for frontend and fullstack projects only.
	RenderingStrategy string `json:"renderingStrategy,omitempty" yaml:"renderingStrategy,omitempty"`
	PackageManager    string `json:"packageManager" yaml:"packageManager"`

	Features answers.Features `json:"features" yaml:"features"`
}

// ValidationError carries every hard rule the answers violated.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	return "invalid configuration:\n  - " + strings.Join(e.Issues, "\n  - ")
}

// Resolve validates raw against cat. On success it returns the enriched
// configuration and any warnings; on a hard-rule violation it returns a
// *ValidationError listing all of them.
func Resolve(cat *catalog.Catalog, raw answers.RawAnswers) (*Config, []string, error) {
	if issues := checkHard(cat, raw); len(issues) > 0 {
		return nil, nil, &ValidationError{Issues: issues}
	}
	warnings := checkSoft(cat, raw)
	return enrich(cat, raw), warnings, nil
}

func enrich(cat *catalog.Catalog, raw answers.RawAnswers) *Config {
	lang := cat.Languages[raw.Language]
	domain := cat.Domains[raw.Domain]

	cfg := &Config{
		Language:     raw.Language,
		ProjectName:  raw.ProjectName,
		Domain:       raw.Domain,
		Architecture: raw.Architecture,
		Framework:    raw.Framework,
		LanguageInfo: copyLanguage(lang),
		Patterns:     copyStrings(domain.Patterns),
	}
	if cfg.Patterns == nil {
		cfg.Patterns = []string{}
	}

	if raw.Domain == "backend" {
		cfg.APIStyle = orDefault(raw.APIStyle, DefaultAPIStyle)
	}
	if hasRendering(raw.Domain) {
		cfg.RenderingStrategy = orDefault(raw.RenderingStrategy, DefaultRenderingStrategy)
	}
	if raw.Language == "py" {
		cfg.PackageManager = orDefault(raw.PackageManager, "pip")
	} else {
		cfg.PackageManager = orDefault(raw.PackageManager, "npm")
	}

	if f := raw.Features.Clone(); f != nil {
		cfg.Features.Authentication = f.Authentication
		cfg.Features.Database = f.Database
		cfg.Features.Styling = f.Styling
		cfg.Features.Testing = f.Testing
		cfg.Features.Quality = f.Quality
		cfg.Features.Containerization = f.Containerization
	}
	return cfg
}

func hasRendering(domain string) bool {
	return domain == "frontend" || domain == "fullstack"
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func copyStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

func copyLanguage(l catalog.Language) catalog.Language {
	l.Extensions = copyStrings(l.Extensions)
	l.Runtimes = copyStrings(l.Runtimes)
	l.PackageManagers = copyStrings(l.PackageManagers)
	l.Versions = copyStrings(l.Versions)
	return l
}
