package plan

import (
	"strings"

	"github.com/nogeniuss/ZygoKit/internal/resolver"
)

type readmeData struct {
	ProjectName    string
	Language       string
	Domain         string
	Architecture   string
	Framework      string
	APIStyle       string
	Rendering      string
	PackageManager string
	Features       []string
	Docker         bool
	Python         bool
}

func readme(cfg *resolver.Config) Action {
	data := readmeData{
		ProjectName:    cfg.ProjectName,
		Language:       strings.ToUpper(cfg.Language),
		Domain:         cfg.Domain,
		Architecture:   orNone(cfg.Architecture),
		Framework:      orNone(cfg.Framework),
		APIStyle:       cfg.APIStyle,
		Rendering:      cfg.RenderingStrategy,
		PackageManager: cfg.PackageManager,
		Features:       featureBullets(cfg),
		Docker:         cfg.Features.UsesDocker(),
		Python:         cfg.Language == "py",
	}
	return File("README.md", render("readme.md", data))
}

func featureBullets(cfg *resolver.Config) []string {
	f := cfg.Features
	var bullets []string
	if f.Authentication != nil {
		bullets = append(bullets, "Authentication: "+f.Authentication.Strategy)
	}
	if f.Database != nil && f.Database.SQL != nil {
		b := "Database SQL: " + f.Database.SQL.Type
		if f.Database.SQL.ORM != "" {
			b += " + " + f.Database.SQL.ORM
		}
		bullets = append(bullets, b)
	}
	if f.Database != nil && f.Database.NoSQL != nil {
		bullets = append(bullets, "Database NoSQL: "+f.Database.NoSQL.Type)
	}
	if f.Styling != "" {
		bullets = append(bullets, "Styling: "+f.Styling)
	}
	if f.Testing != nil {
		bullets = append(bullets, "Testing: "+f.Testing.UnitTest)
	}
	if f.Quality != nil {
		bullets = append(bullets, "Linting: "+orNone(f.Quality.Linter)+", Formatting: "+orNone(f.Quality.Formatter))
	}
	if f.Containerization != "" {
		bullets = append(bullets, "Containerization: "+f.Containerization)
	}
	return bullets
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
