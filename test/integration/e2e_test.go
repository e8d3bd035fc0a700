//go:build integration

package integration_test

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/nogeniuss/ZygoKit/internal/generator"
	"github.com/nogeniuss/ZygoKit/internal/plan"
	"github.com/nogeniuss/ZygoKit/internal/runner"
)

// TestBackendWithDocker generates a TypeScript API with Postgres and Docker
// and checks the tree on disk.
func TestBackendWithDocker(t *testing.T) {
	rec := &recordingRunner{}
	g := generate(t, `
language: ts
projectName: shop-api
domain: backend
architecture: Feature-based (modular)
framework: Express.js
features:
  database:
    sql: {type: PostgreSQL, orm: Prisma}
  containerization: docker
`, rec)

	if len(g.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", g.Warnings)
	}
	if got := g.Result.Total(); got != len(g.Actions) {
		t.Errorf("applied %d actions, plan has %d", got, len(g.Actions))
	}

	if len(rec.calls) != 1 {
		t.Fatalf("expected 1 command, got %d", len(rec.calls))
	}
	if want := filepath.Join(g.Root, "api"); rec.calls[0].Dir != want {
		t.Errorf("command dir = %s, want %s", rec.calls[0].Dir, want)
	}
	if rec.calls[0].Image != plan.NodeImage {
		t.Errorf("command image = %s, want %s", rec.calls[0].Image, plan.NodeImage)
	}

	for _, f := range []string{"users", "auth"} {
		for _, stub := range []string{"index", "controller", "service", "model", "routes"} {
			assertFileExists(t, filepath.Join(g.Root, "api", "src", f, stub+".ts"))
		}
	}
	assertFileContains(t, filepath.Join(g.Root, ".env.example"), "shop_api")
	assertFileContains(t, filepath.Join(g.Root, "prisma", "schema.prisma"), `provider = "postgresql"`)
	assertFileContains(t, filepath.Join(g.Root, "docker-compose.yml"), "postgres:16-alpine")
	assertFileExists(t, filepath.Join(g.Root, "api", "Dockerfile"))
	assertFileExists(t, filepath.Join(g.Root, ".dockerignore"))
	assertFileContains(t, filepath.Join(g.Root, "README.md"), "docker-compose up")
	assertFileNotExists(t, filepath.Join(g.Root, "turbo.json"))
}

// TestFullstackMonorepo checks the workspace root files and the app command
// target.
func TestFullstackMonorepo(t *testing.T) {
	rec := &recordingRunner{}
	g := generate(t, `
language: ts
projectName: acme
domain: fullstack
architecture: Monorepo
framework: Next.js
`, rec)

	assertDirExists(t, filepath.Join(g.Root, "packages"))
	assertDirExists(t, filepath.Join(g.Root, "apps"))
	assertFileContains(t, filepath.Join(g.Root, "turbo.json"), `"pipeline"`)
	assertFileContains(t, filepath.Join(g.Root, "package.json"), `"apps/*"`)

	if len(rec.calls) != 1 || rec.calls[0].Dir != filepath.Join(g.Root, "apps", "web") {
		t.Errorf("expected one command in apps/web, got %+v", rec.calls)
	}
}

// TestPythonFrontendTooling checks Python tool configs land at the root.
func TestPythonFrontendTooling(t *testing.T) {
	g := generate(t, `
language: py
projectName: insights
domain: frontend
framework: Streamlit
features:
  testing: {unitTest: pytest}
  quality: {linter: Flake8, formatter: Black}
`, &recordingRunner{})

	assertFileExists(t, filepath.Join(g.Root, "pytest.ini"))
	assertFileExists(t, filepath.Join(g.Root, "tests", "__init__.py"))
	assertFileExists(t, filepath.Join(g.Root, ".flake8"))
	assertFileContains(t, filepath.Join(g.Root, "pyproject.toml"), "[tool.black]")
	assertFileContains(t, filepath.Join(g.Root, ".gitignore"), "__pycache__")
}

// TestHostRunnerExecutesCommands runs a hand-built plan through the host
// shell.
func TestHostRunnerExecutesCommands(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	root := t.TempDir()
	r := &runner.HostRunner{Options: runner.Options{Stdout: io.Discard, Stderr: io.Discard}}
	ex, err := generator.New(root, r, io.Discard, nil)
	if err != nil {
		t.Fatalf("generator.New: %v", err)
	}

	actions := []plan.Action{
		plan.Command("./api", "echo ok > marker.txt", plan.NodeImage),
		plan.File("README.md", "# demo\n"),
		plan.Command(".", "exit 4", ""),
		plan.File("never.txt", "x"),
	}
	_, err = ex.Execute(context.Background(), actions)

	var cmdErr *runner.CommandError
	if !errors.As(err, &cmdErr) || cmdErr.ExitCode != 4 {
		t.Fatalf("expected exit code 4, got %v", err)
	}
	assertFileContains(t, filepath.Join(root, "api", "marker.txt"), "ok")
	assertFileExists(t, filepath.Join(root, "README.md"))
	assertFileNotExists(t, filepath.Join(root, "never.txt"))
}
