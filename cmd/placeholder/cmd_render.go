package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"placeholder-expander/expand"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		dataPath string
		rootID   string
		locale   string
		currency string
		plain    bool
		maxDepth int
	)

	cmd := &cobra.Command{
		Use:   "render [template]",
		Short: "Expand a template against a YAML document",
		Long: "Expand a template against the root object of a YAML document and\n" +
			"write the result to stdout. The template is read from stdin when no\n" +
			"file is given.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("locale") {
				a.cfg.Format.Locale = locale
			}
			if flags.Changed("currency") {
				a.cfg.Format.Currency = currency
			}
			if flags.Changed("plain") {
				a.cfg.Format.Plain = plain
			}
			if flags.Changed("max-depth") {
				a.cfg.Expand.MaxDepth = maxDepth
			}

			if err := a.cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			tmpl, err := a.readTemplate(args)
			if err != nil {
				return err
			}

			_, root, err := loadRoot(dataPath, rootID)
			if err != nil {
				return err
			}

			opts := append(a.cfg.ExpandOptions(), expand.WithLogger(a.log))

			out, err := expand.New(opts...).String(root, tmpl)
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}

			a.log.V(1).Info("rendered template", "root", root.TypeName(), "bytes", len(out))

			_, err = fmt.Fprint(a.stdout, out)

			return err
		},
	}

	cmd.Flags().StringVarP(&dataPath, "data", "d", "", "YAML document with the objects to render (required)")
	cmd.Flags().StringVar(&rootID, "root", "", "id of the object to render against (default: document root)")
	cmd.Flags().StringVar(&locale, "locale", "", "BCP 47 locale for numbers and money, e.g. de-DE")
	cmd.Flags().StringVar(&currency, "currency", "", "ISO 4217 currency for money fields, e.g. EUR")
	cmd.Flags().BoolVar(&plain, "plain", false, "format values without locale rules")
	cmd.Flags().IntVar(&maxDepth, "max-depth", expand.DefaultMaxDepth, "maximum relation nesting")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}
