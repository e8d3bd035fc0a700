package plan

import (
	"log/slog"

	"github.com/nogeniuss/ZygoKit/internal/resolver"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Placeholder names used by the generated layouts.
var (
	backendFeatures  = []string{"users", "auth"}
	boundedContexts  = []string{"sales", "inventory"}
	frontendFeatures = []string{"auth", "dashboard"}
)

func architectureLayout(cfg *resolver.Config, l layout) []Action {
	root := l.archTarget(cfg.Domain)
	var actions []Action
	switch cfg.Domain {
	case "backend":
		actions = backendLayout(cfg.Architecture, cfg.Language, root)
	case "frontend":
		actions = frontendLayout(cfg.Architecture, root)
	case "fullstack":
		actions = fullstackLayout(cfg.Architecture, root)
	}
	if len(actions) == 0 && cfg.Architecture != "" {
		slog.Debug("no layout for architecture", "domain", cfg.Domain, "architecture", cfg.Architecture)
	}
	return actions
}

func backendLayout(arch, lang, root string) []Action {
	var actions []Action
	index := indexFile(lang)

	switch arch {
	case "Feature-based (modular)":
		for _, feature := range backendFeatures {
			dir := join(root, "src", feature)
			actions = append(actions, Directory(dir))
			for _, stub := range featureStubs(lang) {
				actions = append(actions, File(join(dir, stub.file), stub.render(feature)))
			}
		}

	case "Layer-based (MVC/traditional)":
		layers := []string{"models", "controllers", "services", "routes", "middlewares"}
		if lang == "py" {
			layers = []string{"models", "views", "controllers", "services"}
		}
		for _, layer := range layers {
			dir := join(root, "src", layer)
			actions = append(actions, Directory(dir), File(join(dir, index), "# "+layer+" layer\n"))
		}

	case "Clean Architecture", "Hexagonal Architecture (Ports & Adapters)":
		dirs := []string{"domain/entities", "domain/use-cases", "infrastructure/repositories", "infrastructure/database", "interfaces/controllers"}
		if lang == "py" {
			dirs = []string{"domain/entities", "domain/use_cases", "infrastructure/repositories", "infrastructure/database", "interfaces/api"}
		}
		for _, d := range dirs {
			dir := join(root, "src", d)
			actions = append(actions, Directory(dir), File(join(dir, index), ""))
		}

	case "DDD (Domain-Driven Design)":
		dirs := []string{"domain/entities", "domain/value-objects", "domain/repositories", "application/services", "infrastructure"}
		if lang == "py" {
			dirs = []string{"domain/entities", "domain/value_objects", "domain/repositories", "application/services", "infrastructure"}
		}
		for _, ctx := range boundedContexts {
			for _, d := range dirs {
				dir := join(root, "src", "bounded-contexts", ctx, d)
				actions = append(actions, Directory(dir), File(join(dir, index), ""))
			}
		}
	}
	return actions
}

// Feature-sliced index files are always TypeScript, whatever the language.
func frontendLayout(arch, root string) []Action {
	var actions []Action
	src := join(root, "src")

	switch arch {
	case "Feature-based (Feature-Sliced Design)":
		for _, feature := range frontendFeatures {
			for _, d := range []string{"components", "hooks", "services", "types", "utils"} {
				dir := join(src, "features", feature, d)
				actions = append(actions, Directory(dir), File(join(dir, "index.ts"), ""))
			}
		}
		for _, d := range []string{"components", "hooks", "utils", "types"} {
			actions = append(actions, Directory(join(src, "shared", d)))
		}

	case "Atomic Design":
		for _, d := range []string{"atoms", "molecules", "organisms", "templates", "pages"} {
			actions = append(actions, Directory(join(src, "components", d)))
		}

	case "Layer-based (traditional)":
		for _, d := range []string{"components", "pages", "services", "hooks", "utils", "contexts", "styles"} {
			actions = append(actions, Directory(join(src, d)))
		}

	case "Next.js App Router (moderna)":
		for _, d := range []string{"app/(auth)", "app/dashboard", "components", "lib"} {
			actions = append(actions, Directory(join(root, d)))
		}
	}
	return actions
}

func fullstackLayout(arch, root string) []Action {
	if arch != "Monolithic Unified" {
		return nil
	}
	return []Action{
		Directory(join(root, "src", "server")),
		Directory(join(root, "src", "client")),
		Directory(join(root, "src", "shared")),
	}
}

// stub is one placeholder file of a backend feature module.
type stub struct {
	file     string
	template string
}

type stubData struct {
	Feature string
	Type    string
}

func (s stub) render(feature string) string {
	if s.template == "" {
		return ""
	}
	// A cases.Caser is not safe for concurrent use.
	typeName := cases.Title(language.English).String(feature)
	return render(s.template, stubData{Feature: feature, Type: typeName})
}

func featureStubs(lang string) []stub {
	if lang == "py" {
		return []stub{
			{file: "__init__.py"},
			{file: "models.py", template: "stub-py-models"},
			{file: "services.py", template: "stub-py-services"},
			{file: "routes.py", template: "stub-py-routes"},
		}
	}
	return []stub{
		{file: "index.ts", template: "stub-ts-index"},
		{file: "controller.ts", template: "stub-ts-controller"},
		{file: "service.ts", template: "stub-ts-service"},
		{file: "model.ts", template: "stub-ts-model"},
		{file: "routes.ts", template: "stub-ts-routes"},
	}
}
