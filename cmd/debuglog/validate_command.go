package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/debuglog/pkg/logger"
	"github.com/dmitrymomot/debuglog/pkg/scan"
)

const (
	outputAuto  = "auto"
	outputTable = "table"
	outputPlain = "plain"
	outputJSON  = "json"
)

func newValidateCommand(ctx *commandContext) *cobra.Command {
	var modulePath string
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "validate [dir]",
		Short: "Report non-test Go files that import debuglog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			log, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			log.Info("scanning", logger.Path(dir))

			violations, err := scan.Scan(cmd.Context(), dir,
				scan.WithModulePath(modulePath),
				scan.WithLogger(log),
			)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := renderViolations(out, violations, resolveOutput(outputFormat, out)); err != nil {
				return err
			}
			if len(violations) > 0 {
				return fmt.Errorf("%w: %d violation(s)", scan.ErrViolationsFound, len(violations))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&modulePath, "module", scan.DefaultModulePath, "Import path to flag")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", outputAuto, "Output: auto, table, plain or json")
	return cmd
}

// resolveOutput turns "auto" into a table on terminals and plain otherwise.
func resolveOutput(format string, w io.Writer) string {
	if format != outputAuto {
		return format
	}
	if f, ok := w.(*os.File); ok && isTerminal(f.Fd()) {
		return outputTable
	}
	return outputPlain
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func renderViolations(w io.Writer, violations []scan.Violation, format string) error {
	switch format {
	case outputJSON:
		if violations == nil {
			violations = []scan.Violation{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(violations)
	case outputTable:
		if len(violations) == 0 {
			_, err := fmt.Fprintln(w, "No violations found.")
			return err
		}
		rows := make([][]string, 0, len(violations))
		for _, v := range violations {
			rows = append(rows, []string{v.File, strconv.Itoa(v.Line), v.ImportPath})
		}
		_, err := fmt.Fprintln(w, renderTable(
			[]string{"File", "Line", "Import"},
			rows,
			[]columnAlignment{alignLeft, alignRight, alignLeft},
		))
		return err
	case outputPlain:
		if len(violations) == 0 {
			_, err := fmt.Fprintln(w, "No violations found.")
			return err
		}
		for _, v := range violations {
			if _, err := fmt.Fprintf(w, "VIOLATION: %s\n", v); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
