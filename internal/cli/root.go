package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/nogeniuss/ZygoKit/internal/branding"
	"github.com/nogeniuss/ZygoKit/internal/catalog"
	"github.com/nogeniuss/ZygoKit/internal/config"
	"github.com/nogeniuss/ZygoKit/internal/runner"
	"github.com/nogeniuss/ZygoKit/internal/wizard"
)

// BuildInfo is injected via ldflags at build time.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// app holds state shared by every command of one invocation.
type app struct {
	build BuildInfo

	verbose   bool
	runner    string
	outputDir string

	// newRunner builds the command runner; tests replace it.
	newRunner func(name string, opts runner.Options) runner.Runner
}

// NewRootCommand returns the zygokit command tree.
func NewRootCommand(build BuildInfo) *cobra.Command {
	return newRootCommand(&app{build: build, newRunner: runner.Dispatch})
}

func newRootCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` asks a few questions (language, project type, architecture,
framework and optional features), validates the answers against its catalog
and generates the project directory.

Run without arguments to start the wizard, or use "generate" with an
answers file to skip it.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			config.Load()
			a.setupLogging(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprint(cmd.OutOrStdout(), branding.Banner())

			cat, err := catalog.Default()
			if err != nil {
				return err
			}
			raw, err := wizard.Run(wizard.NewPrompter(cat, cmd.InOrStdin(), cmd.OutOrStdout()))
			if err != nil {
				return WrapExitError(ExitFailure, "wizard aborted", err)
			}
			return a.generate(cmd, cat, raw)
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log debug output")
	flags.StringVar(&a.runner, "runner", "", "command runner: docker, podman, host or skip (default from config)")
	flags.StringVarP(&a.outputDir, "output-dir", "o", "", "directory the project is created in (default from config)")

	cmd.AddCommand(newGenerateCommand(a))
	cmd.AddCommand(newPlanCommand(a))
	cmd.AddCommand(newCatalogCommand())
	cmd.AddCommand(newConfigCommand())
	cmd.AddCommand(newDoctorCommand(a))
	cmd.AddCommand(newVersionCommand(a))
	return cmd
}

// settings returns the loaded config with flag overrides applied.
func (a *app) settings() config.Settings {
	s := config.Current()
	if a.runner != "" {
		s.Runner = a.runner
	}
	if a.outputDir != "" {
		s.OutputDir = a.outputDir
	}
	if a.verbose {
		s.Verbose = true
	}
	return s
}

func (a *app) setupLogging(cmd *cobra.Command) {
	level := slog.LevelInfo
	if a.settings().Verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// Execute runs the root command with build info injected via ldflags. An
// interrupt cancels the running command.
func Execute(version, commit, date string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return NewRootCommand(BuildInfo{Version: version, Commit: commit, Date: date}).ExecuteContext(ctx)
}
