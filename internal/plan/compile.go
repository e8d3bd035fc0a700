package plan

import (
	"path"
	"strings"

	"github.com/nogeniuss/ZygoKit/internal/resolver"
)

// Compile derives the ordered action list for cfg.
//
// The list is, in order: the monorepo root prerequisites (when the
// architecture is a monorepo), the domain scaffolding command, the
// architecture layout, feature tool configs, .gitignore, .env.example, the
// docker files (when docker is selected), and README.md.
func Compile(cfg *resolver.Config) []Action {
	l := newLayout(cfg)

	var actions []Action
	if l.monorepo {
		actions = append(actions, monorepoRoot(cfg)...)
	}
	if cmd, ok := scaffoldCommand(cfg, l); ok {
		actions = append(actions, cmd)
	}
	actions = append(actions, architectureLayout(cfg, l)...)
	actions = append(actions, toolConfigs(cfg)...)
	actions = append(actions, gitignore(cfg), envExample(cfg))
	if cfg.Features.UsesDocker() {
		actions = append(actions, dockerFiles(cfg, l)...)
	}
	actions = append(actions, readme(cfg))
	return actions
}

// layout holds the directories a configuration scaffolds into.
type layout struct {
	monorepo bool
	// base is "apps" for monorepos, "." otherwise.
	base string
}

func newLayout(cfg *resolver.Config) layout {
	l := layout{monorepo: IsMonorepoArchitecture(cfg.Architecture), base: "."}
	if l.monorepo {
		l.base = "apps"
	}
	return l
}

// commandTarget is where the domain scaffolding command runs. It keeps the
// "./api" form for non-monorepo projects.
func (l layout) commandTarget(domain string) string {
	switch domain {
	case "backend":
		return l.base + "/api"
	case "frontend":
		return l.base + "/web"
	case "fullstack":
		if l.monorepo {
			return "apps/web"
		}
		return "."
	}
	return ""
}

// archTarget is the directory the architecture layout is written under.
func (l layout) archTarget(domain string) string {
	switch domain {
	case "backend":
		return path.Join(l.base, "api")
	case "frontend":
		return path.Join(l.base, "web")
	}
	return l.base
}

func isJSFamily(lang string) bool {
	return lang == "js" || lang == "ts"
}

func indexFile(lang string) string {
	if lang == "py" {
		return "__init__.py"
	}
	return "index.ts"
}

func imageFor(lang string) string {
	if lang == "py" {
		return PythonImage
	}
	return NodeImage
}

// dbName is the project name as a database identifier.
func dbName(projectName string) string {
	return strings.ReplaceAll(projectName, "-", "_")
}

// join builds a plan target from slash-separated parts.
func join(parts ...string) string {
	return path.Join(parts...)
}
