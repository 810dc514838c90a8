package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/debuglog/pkg/docs"
	"github.com/dmitrymomot/debuglog/pkg/logger"
)

func newDocsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "docs [dir]",
		Short: "Copy the debuglog usage guide into a directory",
		Long:  "Copy the debuglog usage guide into a directory (default " + docs.DefaultTarget + ").",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := docs.DefaultTarget
			if len(args) == 1 {
				dir = args[0]
			}

			log, err := ctx.logger(cmd)
			if err != nil {
				return err
			}

			written, err := docs.Copy(dir, log)
			if err != nil {
				return err
			}
			for _, path := range written {
				fmt.Fprintf(cmd.OutOrStdout(), "  -> %s\n", path)
			}
			log.Info("docs saved", logger.Path(dir), logger.Count("files", len(written)))
			return nil
		},
	}
}
