package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/debuglog/pkg/logger"
)

type commandContext struct {
	verbose   bool
	logFormat string
	log       *slog.Logger
}

func (c *commandContext) logger(cmd *cobra.Command) (*slog.Logger, error) {
	if c.log != nil {
		return c.log, nil
	}
	format, err := logger.ParseFormat(c.logFormat)
	if err != nil {
		return nil, err
	}
	c.log = logger.New(
		logger.WithFormat(format),
		logger.WithVerbose(c.verbose),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithAttr(logger.Component(cmd.Name())),
	)
	return c.log, nil
}

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "debuglog",
		Short:         "Tooling for the debuglog test logger",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := ctx.logger(cmd)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&ctx.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&ctx.logFormat, "log-format", string(logger.FormatText), "Log format: text or json")

	rootCmd.AddCommand(newValidateCommand(ctx))
	rootCmd.AddCommand(newDocsCommand(ctx))
	rootCmd.AddCommand(newEnvCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
