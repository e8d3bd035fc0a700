package plan

import "github.com/nogeniuss/ZygoKit/internal/resolver"

type turboConfig struct {
	Schema   string        `json:"$schema"`
	Pipeline turboPipeline `json:"pipeline"`
}

type turboPipeline struct {
	Dev   turboTask `json:"dev"`
	Build turboTask `json:"build"`
	Lint  turboTask `json:"lint"`
}

type turboTask struct {
	Cache      *bool    `json:"cache,omitempty"`
	Persistent bool     `json:"persistent,omitempty"`
	DependsOn  []string `json:"dependsOn,omitempty"`
	Outputs    []string `json:"outputs,omitempty"`
}

type rootPackage struct {
	Name            string            `json:"name"`
	Private         bool              `json:"private"`
	Workspaces      []string          `json:"workspaces"`
	Scripts         rootScripts       `json:"scripts"`
	DevDependencies map[string]string `json:"devDependencies"`
}

type rootScripts struct {
	Dev   string `json:"dev"`
	Build string `json:"build"`
	Lint  string `json:"lint"`
}

// monorepoRoot returns the workspace skeleton that must exist before any app
// is scaffolded under apps/.
func monorepoRoot(cfg *resolver.Config) []Action {
	noCache := false
	turbo := turboConfig{
		Schema: "https://turbo.build/schema.json",
		Pipeline: turboPipeline{
			Dev:   turboTask{Cache: &noCache, Persistent: true},
			Build: turboTask{DependsOn: []string{"^build"}, Outputs: []string{".next/**", "dist/**", "build/**"}},
		},
	}
	pkg := rootPackage{
		Name:       cfg.ProjectName,
		Private:    true,
		Workspaces: []string{"apps/*", "packages/*"},
		Scripts: rootScripts{
			Dev:   "turbo run dev",
			Build: "turbo run build",
			Lint:  "turbo run lint",
		},
		DevDependencies: map[string]string{"turbo": "latest"},
	}
	return []Action{
		Directory("packages"),
		Directory("apps"),
		File("turbo.json", marshalJSON(turbo)),
		File("package.json", marshalJSON(pkg)),
	}
}
