package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nogeniuss/ZygoKit/internal/catalog"
)

func newCatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the languages, project types and frameworks on offer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := catalog.Default()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Catalog version %s\n\n", cat.Version)
			printLanguages(w, cat)
			fmt.Fprintln(w)
			printDomains(w, cat)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "languages",
		Short: "List supported languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := catalog.Default()
			if err != nil {
				return err
			}
			printLanguages(cmd.OutOrStdout(), cat)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "domains",
		Short: "List project types and their architectures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := catalog.Default()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, id := range cat.DomainOrder {
				d := cat.Domains[id]
				fmt.Fprintf(w, "%s\n", id)
				for _, arch := range d.Architectures {
					fmt.Fprintf(w, "  - %s\n", arch)
				}
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "frameworks <domain> [language]",
		Short: "List the frameworks offered for a project type, per language or for one",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Default()
			if err != nil {
				return err
			}
			domain := args[0]
			d, ok := cat.Domain(domain)
			if !ok {
				return fmt.Errorf("unknown domain %q (options: %s)", domain, strings.Join(cat.DomainOrder, ", "))
			}
			w := cmd.OutOrStdout()
			if len(args) == 1 {
				printFrameworkTable(w, d.Frameworks)
				return nil
			}
			lang := args[1]
			if _, ok := cat.Language(lang); !ok {
				return fmt.Errorf("unknown language %q (options: %s)", lang, strings.Join(cat.LanguageOrder, ", "))
			}
			for _, name := range cat.Frameworks(domain, lang) {
				fmt.Fprintln(w, name)
			}
			return nil
		},
	})

	return cmd
}

func printLanguages(w io.Writer, cat *catalog.Catalog) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEXTENSIONS\tPACKAGE MANAGERS")
	for _, id := range cat.LanguageOrder {
		l := cat.Languages[id]
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", id, l.Name, strings.Join(l.Extensions, ", "), strings.Join(l.PackageManagers, ", "))
	}
	tw.Flush()
}

func printDomains(w io.Writer, cat *catalog.Catalog) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DOMAIN\tARCHITECTURES\tFRAMEWORKS")
	for _, id := range cat.DomainOrder {
		d := cat.Domains[id]
		total := 0
		for _, lang := range cat.LanguageOrder {
			total += len(d.Frameworks.Effective(lang))
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\n", id, len(d.Architectures), total)
	}
	tw.Flush()
}

// printFrameworkTable writes one row per language, or a single "*" row when
// the list is shared by every language.
func printFrameworkTable(w io.Writer, src catalog.FrameworkSource) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LANGUAGE\tFRAMEWORKS")
	if src.IsFlat() {
		fmt.Fprintf(tw, "*\t%s\n", strings.Join(src.Effective(""), ", "))
	}
	for _, lang := range src.Languages() {
		names, _ := src.For(lang)
		fmt.Fprintf(tw, "%s\t%s\n", lang, strings.Join(names, ", "))
	}
	tw.Flush()
}
