// Package main provides the CLI entrypoint for placeholder.
//
// placeholder expands bracketed placeholders in templates:
//   - render: expands a template against a YAML object graph
//   - lint: reports template mistakes without rendering
//   - fields: lists the placeholders Go types expose through struct tags
//   - gen: writes reflection-free providers for those types
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"placeholder-expander/internal/config"
)

func main() {
	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

// app holds state shared by all commands.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configPath string
	logLevel   string
	logFormat  string

	cfg *config.Config
	log logr.Logger
}

// run executes the CLI with the given streams and arguments.
func run(stdin io.Reader, stdout, stderr io.Writer, args []string) error {
	root := newRootCmd(&app{stdin: stdin, stdout: stdout, stderr: stderr, log: logr.Discard()})
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return err
	}

	return nil
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "placeholder",
		Short:         "Expand [placeholders] in templates",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	cmd.SetIn(a.stdin)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML config file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: text, json")

	cmd.AddCommand(newRenderCmd(a))
	cmd.AddCommand(newLintCmd(a))
	cmd.AddCommand(newFieldsCmd(a))
	cmd.AddCommand(newGenCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setup loads the config file and applies the logging flags on top of it.
func (a *app) setup(cmd *cobra.Command) error {
	a.cfg = config.Default()

	if a.configPath != "" {
		cfg, err := config.LoadFile(a.configPath)
		if err != nil {
			return err
		}

		a.cfg = cfg
	}

	if cmd.Flags().Changed("log-level") {
		a.cfg.Log.Level = a.logLevel
	}

	if cmd.Flags().Changed("log-format") {
		a.cfg.Log.Format = a.logFormat
	}

	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	a.log = newLogger(a.cfg.Log.Level, a.cfg.Log.Format, a.stderr)

	return nil
}
