package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/debuglog/pkg/config"
	"github.com/dmitrymomot/debuglog/pkg/format"
)

func newEnvCommand() *cobra.Command {
	var envFiles []string

	cmd := &cobra.Command{
		Use:   "env",
		Short: "Show the logger settings the current environment produces",
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []config.LoadOption
			if len(envFiles) > 0 {
				vars := map[string]string{}
				for _, file := range envFiles {
					fileVars, err := config.ReadEnvFile(file)
					if err != nil {
						return err
					}
					for k, v := range fileVars {
						vars[k] = v
					}
				}
				opts = append(opts, config.WithEnvironment(vars))
			}

			s := config.Read(opts...)
			renderSettings(cmd, s)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&envFiles, "env-file", nil, "Read settings from .env files instead of the environment")
	return cmd
}

func renderSettings(cmd *cobra.Command, s config.Settings) {
	maxLength := "unbounded"
	if n := s.MaxLength(); n != format.Unbounded {
		maxLength = fmt.Sprintf("%d", n)
	}

	keys := "(all)"
	if len(s.AllowedKeys) > 0 {
		quoted := make([]string, len(s.AllowedKeys))
		for i, k := range s.AllowedKeys {
			quoted[i] = fmt.Sprintf("%q", k)
		}
		keys = strings.Join(quoted, ", ")
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"Setting", "Variable", "Value"},
		[][]string{
			{"threshold", config.EnvLevel, s.Threshold.String()},
			{"length", config.EnvLength, fmt.Sprintf("%s (%s)", s.Length, maxLength)},
			{"allowed keys", config.EnvKeys, keys},
			{"force test mode", config.EnvForceTest, fmt.Sprintf("%t", s.ForceTest)},
		},
		nil,
	))
}
