package main

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"placeholder-expander/internal/analyze"
	"placeholder-expander/internal/common"
)

func newFieldsCmd(a *app) *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "fields [packages]",
		Short: "List the placeholders of tagged Go structs",
		Long: "Load Go packages (default ./...) and list, per struct type, the\n" +
			"fields and relations exposed through placeholder struct tags.",
		RunE: func(_ *cobra.Command, args []string) error {
			patterns := args
			if common.IsEmpty(patterns) {
				patterns = []string{"./..."}
			}

			schemas, err := analyze.NewAnalyzer().LoadPackages(patterns...)
			if err != nil {
				return err
			}

			a.log.V(1).Info("loaded packages", "patterns", patterns, "types", len(schemas))

			if dump {
				spew.Fdump(a.stdout, schemas)
				return nil
			}

			return printSchemas(a, schemas)
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "dump the raw schema model")

	return cmd
}

func printSchemas(a *app, schemas []*analyze.SchemaInfo) error {
	w := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)

	for i, s := range schemas {
		if i > 0 {
			fmt.Fprintln(w)
		}

		fmt.Fprintf(w, "%s\t(%s.%s, %s:%d)\n",
			s.TypeName, common.PkgAlias(s.ID.PkgPath), s.ID.Name, filepath.Base(s.Pos.Filename), s.Pos.Line)

		for _, f := range s.Fields {
			goType := f.GoType
			if f.Computed {
				goType = "computed"
			}

			fmt.Fprintf(w, "  [%s]\t%s\n", f.Name, goType)
		}

		for _, r := range s.Relations {
			target := "?"
			if !r.Target.IsZero() {
				target = r.Target.Name
			}

			fmt.Fprintf(w, "  [%s]\t%s -> %s\n", r.Name, r.Kind, target)
		}
	}

	return w.Flush()
}
