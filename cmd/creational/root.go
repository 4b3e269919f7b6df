package main

import (
	"io"
	"log"

	"github.com/sghaida/creational/builder"
	"github.com/sghaida/creational/factory"
	"github.com/spf13/cobra"
)

// defaultLines is the factory sequence run when no lines are named.
var defaultLines = []string{"normal", "super", "normal"}

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "creational",
		Short: "Run the abstract factory and builder demonstrations.",
		Long: `Run the abstract factory and builder demonstrations. ` +
			`Without a subcommand both run in a fixed sequence.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(cmd.OutOrStdout())
			if err := runFactories(logger, factory.Default(), defaultLines); err != nil {
				return err
			}
			runBuilders(logger)
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(out)

	root.AddCommand(newFactoryCmd(), newBuilderCmd())
	return root
}

func newFactoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "factory [line...]",
		Short: "Create products A and B with each named product line.",
		Long: `Create products A and B with each named product line. ` +
			`Registered lines: normal, super. Defaults to normal super normal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = defaultLines
			}
			return runFactories(newLogger(cmd.OutOrStdout()), factory.Default(), args)
		},
	}
}

func newBuilderCmd() *cobra.Command {
	var withoutC bool

	cmd := &cobra.Command{
		Use:   "builder",
		Short: "Assemble an App with a SuperBuilder.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(cmd.OutOrStdout())
			b := builder.NewSuperBuilder(logger)
			if withoutC {
				logger.Println(builder.BuildWithoutC(b))
			} else {
				logger.Println(builder.BuildAll(b))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&withoutC, "without-c", false, "skip building part C")
	return cmd
}

// newLogger writes each logged value as a bare line.
func newLogger(out io.Writer) *log.Logger {
	return log.New(out, "", 0)
}

// runFactories resolves every line before running any of them, so an unknown
// name produces no partial output.
func runFactories(logger *log.Logger, reg factory.Resolver, lines []string) error {
	factories := make([]factory.Factory, 0, len(lines))
	for _, name := range lines {
		f, err := reg.Resolve(name)
		if err != nil {
			return err
		}
		factories = append(factories, f)
	}
	for _, f := range factories {
		factory.Run(logger, f)
	}
	return nil
}

// runBuilders runs the full build and the build without C, then logs both
// results.
func runBuilders(logger *log.Logger) {
	full := builder.BuildAll(builder.NewSuperBuilder(logger))
	withoutC := builder.BuildWithoutC(builder.NewSuperBuilder(logger))
	logger.Println(full)
	logger.Println(withoutC)
}
