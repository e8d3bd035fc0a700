package resolver

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/nogeniuss/ZygoKit/internal/answers"
	"github.com/nogeniuss/ZygoKit/internal/catalog"
)

// FrameworkNone is the framework answer meaning "no framework".
const FrameworkNone = "none"

// invalidNameChars are the characters a project name may not contain, in
// addition to whitespace.
const invalidNameChars = `<>:"/\|?*`

// ValidProjectName reports the first problem with name, or "" when it is
// usable as a directory name.
func ValidProjectName(name string) string {
	if issues := projectNameIssues(name); len(issues) > 0 {
		return issues[0]
	}
	return ""
}

func projectNameIssues(name string) []string {
	var issues []string
	if strings.TrimSpace(name) == "" {
		issues = append(issues, "project name must not be empty")
	}
	if strings.ContainsAny(name, invalidNameChars) || strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		issues = append(issues, fmt.Sprintf("project name %q contains invalid characters; use letters, numbers, hyphens and underscores", name))
	}
	// "." and ".." would resolve to the output directory or its parent.
	if name == "." || name == ".." {
		issues = append(issues, fmt.Sprintf("project name %q is reserved", name))
	}
	return issues
}

func checkHard(cat *catalog.Catalog, raw answers.RawAnswers) []string {
	var issues []string

	_, langOK := cat.Language(raw.Language)
	if !langOK {
		issues = append(issues, fmt.Sprintf("invalid language %q (options: %s)", raw.Language, strings.Join(cat.LanguageOrder, ", ")))
	}

	domain, domainOK := cat.Domain(raw.Domain)
	if !domainOK {
		issues = append(issues, fmt.Sprintf("invalid domain %q (options: %s)", raw.Domain, strings.Join(cat.DomainOrder, ", ")))
	}

	if domainOK && raw.Architecture != "" && !domain.HasArchitecture(raw.Architecture) {
		issues = append(issues, fmt.Sprintf("architecture %q is not valid for domain %q (options: %s)",
			raw.Architecture, raw.Domain, strings.Join(domain.Architectures, ", ")))
	}

	if domainOK && langOK && raw.Framework != "" && raw.Framework != FrameworkNone {
		valid := domain.Frameworks.Effective(raw.Language)
		if len(valid) > 0 && !catalog.Contains(valid, raw.Framework) {
			issues = append(issues, fmt.Sprintf("framework %q is not valid for domain %q with language %q (options: %s)",
				raw.Framework, raw.Domain, raw.Language, strings.Join(valid, ", ")))
		}
	}

	issues = append(issues, projectNameIssues(raw.ProjectName)...)

	return issues
}

func checkSoft(cat *catalog.Catalog, raw answers.RawAnswers) []string {
	var warnings []string
	warn := func(format string, args ...interface{}) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	if raw.Architecture == "" {
		warn("no architecture specified; no layout will be generated")
	}
	if raw.Framework == "" || raw.Framework == FrameworkNone {
		warn("no framework specified; the project will be set up without one")
	}

	domain, _ := cat.Domain(raw.Domain)
	if raw.APIStyle != "" && raw.Domain == "backend" && !catalog.Contains(domain.APIStyles, raw.APIStyle) {
		warn("API style %q may not be supported (options: %s)", raw.APIStyle, strings.Join(domain.APIStyles, ", "))
	}
	if raw.RenderingStrategy != "" && hasRendering(raw.Domain) && !catalog.Contains(domain.Rendering, raw.RenderingStrategy) {
		warn("rendering strategy %q may not be supported (options: %s)", raw.RenderingStrategy, strings.Join(domain.Rendering, ", "))
	}

	f := raw.Features
	if f == nil {
		return warnings
	}
	fc := cat.Features

	if f.Authentication != nil && !catalog.Contains(fc.Authentication.Strategies, f.Authentication.Strategy) {
		warn("authentication strategy %q may not be supported (options: %s)",
			f.Authentication.Strategy, strings.Join(fc.Authentication.Strategies, ", "))
	}

	if f.Database != nil && f.Database.SQL != nil {
		sql := f.Database.SQL
		if !catalog.Contains(fc.Database.SQL.Databases, sql.Type) {
			warn("SQL database %q may not be supported (options: %s)", sql.Type, strings.Join(fc.Database.SQL.Databases, ", "))
		}
		orms := cat.ORMs(raw.Language)
		if sql.ORM != "" && !catalog.Contains(orms, sql.ORM) {
			warn("ORM %q may not be compatible with %s (options: %s)", sql.ORM, raw.Language, strings.Join(orms, ", "))
		}
	}
	if f.Database != nil && f.Database.NoSQL != nil && !catalog.Contains(fc.Database.NoSQL.Databases, f.Database.NoSQL.Type) {
		warn("NoSQL database %q may not be supported (options: %s)",
			f.Database.NoSQL.Type, strings.Join(fc.Database.NoSQL.Databases, ", "))
	}

	if f.Styling != "" {
		if !hasRendering(raw.Domain) {
			warn("CSS framework %q specified but domain is %q; styling only applies to frontend and fullstack", f.Styling, raw.Domain)
		} else if !catalog.Contains(fc.Styling.CSSFrameworks, f.Styling) {
			warn("CSS framework %q may not be supported (options include: %s...)", f.Styling, strings.Join(head(fc.Styling.CSSFrameworks, 5), ", "))
		}
	}

	if f.Testing != nil && f.Testing.UnitTest != "" {
		valid := cat.UnitTestFrameworks(raw.Language)
		if !catalog.Contains(valid, f.Testing.UnitTest) {
			warn("test framework %q may not be compatible with %s (options: %s)", f.Testing.UnitTest, raw.Language, strings.Join(valid, ", "))
		}
	}

	if f.Quality != nil {
		if linters := cat.Linters(raw.Language); f.Quality.Linter != "" && !catalog.Contains(linters, f.Quality.Linter) {
			warn("linter %q may not be compatible with %s (options: %s)", f.Quality.Linter, raw.Language, strings.Join(linters, ", "))
		}
		if formatters := cat.Formatters(raw.Language); f.Quality.Formatter != "" && !catalog.Contains(formatters, f.Quality.Formatter) {
			warn("formatter %q may not be compatible with %s (options: %s)", f.Quality.Formatter, raw.Language, strings.Join(formatters, ", "))
		}
	}

	if f.Containerization != "" && !catalog.Contains(fc.Containerization.Tools, f.Containerization) {
		warn("containerization tool %q may not be supported (options: %s)",
			f.Containerization, strings.Join(fc.Containerization.Tools, ", "))
	}

	return warnings
}

func head(list []string, n int) []string {
	if len(list) < n {
		return list
	}
	return list[:n]
}
