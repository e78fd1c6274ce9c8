package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"placeholder-expander/internal/analyze"
	"placeholder-expander/internal/common"
	"placeholder-expander/internal/gen"
)

func newGenCmd(a *app) *cobra.Command {
	var (
		check      bool
		noComments bool
	)

	cfg := gen.DefaultGeneratorConfig()

	cmd := &cobra.Command{
		Use:   "gen [packages]",
		Short: "Generate reflection-free providers for tagged structs",
		Long: "Load Go packages (default .) and write one provider adapter per\n" +
			"tagged struct into a separate output package. With --check, only\n" +
			"report files that are out of date.",
		RunE: func(_ *cobra.Command, args []string) error {
			patterns := args
			if common.IsEmpty(patterns) {
				patterns = []string{"."}
			}

			cfg.GenerateComments = !noComments

			schemas, err := analyze.NewAnalyzer().LoadPackages(patterns...)
			if err != nil {
				return err
			}

			files, err := gen.NewGenerator(cfg).Generate(schemas)
			if err != nil {
				return err
			}

			if check {
				changed, err := gen.Diff(files, cfg.OutputDir)
				if err != nil {
					return err
				}

				for _, name := range changed {
					fmt.Fprintln(a.stdout, filepath.Join(cfg.OutputDir, name))
				}

				if !common.IsEmpty(changed) {
					return fmt.Errorf("%d generated file(s) out of date", len(changed))
				}

				return nil
			}

			if err := gen.WriteFiles(files, cfg.OutputDir); err != nil {
				return err
			}

			a.log.Info("generated providers", "dir", cfg.OutputDir, "package", cfg.PackageName, "files", len(files))

			return nil
		},
	}

	cmd.Flags().StringVarP(&cfg.OutputDir, "out", "o", cfg.OutputDir, "output directory")
	cmd.Flags().StringVar(&cfg.PackageName, "package", cfg.PackageName, "name of the generated package")
	cmd.Flags().BoolVar(&noComments, "no-comments", false, "omit doc comments on constructors")
	cmd.Flags().BoolVar(&check, "check", false, "report out-of-date files instead of writing")

	return cmd
}
