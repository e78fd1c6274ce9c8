package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"placeholder-expander/internal/lint"
	"placeholder-expander/provider"
)

func newLintCmd(a *app) *cobra.Command {
	var (
		dataPath string
		rootID   string
	)

	cmd := &cobra.Command{
		Use:   "lint [template]",
		Short: "Check a template for mistakes",
		Long: "Check group structure and path syntax of a template. With --data,\n" +
			"also check fields and relations against the schemas of the document.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			tmpl, err := a.readTemplate(args)
			if err != nil {
				return err
			}

			var (
				root   *provider.Schema
				lookup lint.SchemaLookup
			)

			if dataPath != "" {
				set, p, err := loadRoot(dataPath, rootID)
				if err != nil {
					return err
				}

				root = p.Schema()
				lookup = set.Schema
			}

			diags := lint.Check(tmpl, root, lookup)
			for _, d := range diags.All() {
				fmt.Fprintf(a.stdout, "%s: %s\n", d.Severity, d)
			}

			a.log.V(1).Info("linted template",
				"errors", len(diags.Errors), "warnings", len(diags.Warnings), "infos", len(diags.Infos))

			if diags.HasErrors() {
				return fmt.Errorf("template has %d error(s)", len(diags.Errors))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&dataPath, "data", "d", "", "YAML document providing schemas")
	cmd.Flags().StringVar(&rootID, "root", "", "id of the object the template is rendered against")

	return cmd
}
