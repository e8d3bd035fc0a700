package cli

import (
	"github.com/spf13/cobra"

	"github.com/nogeniuss/ZygoKit/internal/answers"
	"github.com/nogeniuss/ZygoKit/internal/catalog"
)

func newGenerateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "generate <answers.yaml>",
		Short: "Generate a project from an answers file",
		Long: `Generate a project without the wizard. The answers file is YAML or JSON
with the same fields the wizard asks for:

  language: ts
  projectName: shop-api
  domain: backend
  architecture: Feature-based (modular)
  framework: Express.js
  features:
    containerization: docker`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := answers.ParseFile(args[0])
			if err != nil {
				return err
			}
			cat, err := catalog.Default()
			if err != nil {
				return err
			}
			return a.generate(cmd, cat, *raw)
		},
	}
}
