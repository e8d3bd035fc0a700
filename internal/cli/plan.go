package cli

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nogeniuss/ZygoKit/internal/answers"
	"github.com/nogeniuss/ZygoKit/internal/catalog"
	"github.com/nogeniuss/ZygoKit/internal/plan"
)

var planFormats = []string{plan.FormatText, plan.FormatJSON, plan.FormatYAML}

func newPlanCommand(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "plan <answers.yaml>",
		Short: "Print the actions a generate run would apply",
		Long: `Resolve an answers file and print the compiled plan without touching the
filesystem or running any command.`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(_ *cobra.Command, _ []string) error {
			if !slices.Contains(planFormats, format) {
				return fmt.Errorf("invalid format %q: must be one of %v", format, planFormats)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := answers.ParseFile(args[0])
			if err != nil {
				return err
			}
			cat, err := catalog.Default()
			if err != nil {
				return err
			}
			cfg, actions, err := a.compile(cmd, cat, *raw, a.settings())
			if err != nil {
				return err
			}
			return plan.Encode(cmd.OutOrStdout(), format, plan.Dump{
				RunID:   uuid.NewString(),
				Project: cfg.ProjectName,
				Actions: actions,
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", plan.FormatText, "output format (text|json|yaml)")
	return cmd
}
