//go:build integration

package integration_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nogeniuss/ZygoKit/internal/answers"
	"github.com/nogeniuss/ZygoKit/internal/catalog"
	"github.com/nogeniuss/ZygoKit/internal/generator"
	"github.com/nogeniuss/ZygoKit/internal/plan"
	"github.com/nogeniuss/ZygoKit/internal/resolver"
	"github.com/nogeniuss/ZygoKit/internal/runner"
)

// recordingRunner stands in for the container runner and records every
// invocation it receives.
type recordingRunner struct {
	calls []runner.Invocation
}

func (r *recordingRunner) Run(_ context.Context, inv runner.Invocation) error {
	r.calls = append(r.calls, inv)
	return nil
}

// generated is the outcome of one pipeline run.
type generated struct {
	Root     string
	Config   *resolver.Config
	Warnings []string
	Actions  []plan.Action
	Result   *generator.Result
}

// generate parses an answers document, resolves, compiles and executes it into
// a temp directory with r.
func generate(t *testing.T, doc string, r runner.Runner) *generated {
	t.Helper()

	raw, err := answers.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default: %v", err)
	}
	cfg, warnings, err := resolver.Resolve(cat, *raw)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	actions := plan.Compile(cfg)

	root := filepath.Join(t.TempDir(), cfg.ProjectName)
	ex, err := generator.New(root, r, io.Discard, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("generator.New: %v", err)
	}
	res, err := ex.Execute(context.Background(), actions)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	return &generated{Root: root, Config: cfg, Warnings: warnings, Actions: actions, Result: res}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
