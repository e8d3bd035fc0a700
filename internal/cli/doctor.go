package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nogeniuss/ZygoKit/internal/catalog"
	"github.com/nogeniuss/ZygoKit/internal/config"
	"github.com/nogeniuss/ZygoKit/internal/runner"
)

func newDoctorCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that projects can be generated",
		Long: `Run diagnostic checks: the configured command runner is available, the
embedded catalog loads, and the config file is readable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			s := a.settings()
			failed := 0

			fmt.Fprintln(w, "Runner check:")
			path, err := runner.Check(s.Runner)
			switch {
			case err != nil:
				fmt.Fprintf(w, "  [MISS] %v\n", err)
				failed++
			case path == "":
				fmt.Fprintf(w, "  [ OK ] %s runner executes nothing\n", s.Runner)
			default:
				fmt.Fprintf(w, "  [ OK ] %s runner uses %s\n", s.Runner, path)
			}

			fmt.Fprintln(w, "Catalog check:")
			if cat, err := catalog.Default(); err != nil {
				fmt.Fprintf(w, "  [FAIL] %v\n", err)
				failed++
			} else {
				fmt.Fprintf(w, "  [ OK ] catalog %s: %d languages, %d domains\n", cat.Version, len(cat.LanguageOrder), len(cat.DomainOrder))
			}

			fmt.Fprintln(w, "Config check:")
			checkConfigFile(w, config.FilePath())

			if failed > 0 {
				return &ExitError{Code: ExitFailure, Message: fmt.Sprintf("%d check(s) failed", failed)}
			}
			return nil
		},
	}
}

func checkConfigFile(w io.Writer, path string) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(w, "  [MISS] %s does not exist (defaults in use)\n", path)
		return
	} else if err != nil {
		fmt.Fprintf(w, "  [WARN] %s: %v\n", path, err)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s\n", path)
}
