package cli

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nogeniuss/ZygoKit/internal/answers"
	"github.com/nogeniuss/ZygoKit/internal/catalog"
	"github.com/nogeniuss/ZygoKit/internal/config"
	"github.com/nogeniuss/ZygoKit/internal/generator"
	"github.com/nogeniuss/ZygoKit/internal/plan"
	"github.com/nogeniuss/ZygoKit/internal/resolver"
	"github.com/nogeniuss/ZygoKit/internal/runner"
)

// compile resolves raw answers and compiles the plan. Warnings are printed to
// the command's error stream.
func (a *app) compile(cmd *cobra.Command, cat *catalog.Catalog, raw answers.RawAnswers, s config.Settings) (*resolver.Config, []plan.Action, error) {
	cfg, warnings, err := resolver.Resolve(cat, raw)
	if err != nil {
		return nil, nil, err
	}
	printWarnings(cmd.ErrOrStderr(), warnings)
	slog.Debug("configuration resolved", "project", cfg.ProjectName, "warnings", len(warnings))

	actions := plan.Compile(cfg)
	plan.ApplyWorkdir(actions, s.ContainerWorkdir)
	return cfg, actions, nil
}

// generate runs the full pipeline and writes the project to
// <output_dir>/<projectName>.
func (a *app) generate(cmd *cobra.Command, cat *catalog.Catalog, raw answers.RawAnswers) error {
	s := a.settings()
	cfg, actions, err := a.compile(cmd, cat, raw, s)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	logger := slog.Default().With("run", runID)
	out := cmd.OutOrStdout()
	r := a.newRunner(s.Runner, runner.Options{Stdout: out, Stderr: cmd.ErrOrStderr(), Logger: logger})

	root := filepath.Join(s.OutputDir, cfg.ProjectName)
	ex, err := generator.New(root, r, out, logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nGenerating %s in %s\n\n", cfg.ProjectName, ex.Root)
	logger.Info("generating project", "project", cfg.ProjectName, "dir", ex.Root, "actions", len(actions), "runner", s.Runner)

	res, err := ex.Execute(cmd.Context(), actions)
	if err != nil {
		return WrapExitError(ExitFailure, fmt.Sprintf("generating %s", cfg.ProjectName), err)
	}

	fmt.Fprintf(out, "\nProject %q generated: %d directories, %d files, %d commands.\n",
		cfg.ProjectName, len(res.Directories), len(res.Files), len(res.Commands))
	printNextSteps(out, cfg)
	return nil
}

func printNextSteps(w io.Writer, cfg *resolver.Config) {
	fmt.Fprintf(w, "\nNext steps:\n\n  cd %s\n", cfg.ProjectName)
	switch {
	case cfg.Features.UsesDocker():
		fmt.Fprintln(w, "  docker-compose up")
	case cfg.Language == "py":
		fmt.Fprintln(w, "  python -m venv venv")
		fmt.Fprintln(w, "  source venv/bin/activate")
		fmt.Fprintln(w, "  pip install -r requirements.txt")
	default:
		fmt.Fprintf(w, "  %s install\n", cfg.PackageManager)
		fmt.Fprintf(w, "  %s run dev\n", cfg.PackageManager)
	}
}
