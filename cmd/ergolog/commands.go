package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbukum/ergolog/version"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective logger configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.cfg
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "root: %s\n", cfg.Root)
			fmt.Fprintf(out, "level: %s\n", cfg.Level)
			fmt.Fprintf(out, "output: %s\n", cfg.Output)
			fmt.Fprintf(out, "no_colors: %t\n", cfg.NoColors)
			fmt.Fprintf(out, "force_colors: %t\n", cfg.ForceColors)
			fmt.Fprintf(out, "no_time: %t\n", cfg.NoTime)
			fmt.Fprintf(out, "time_format: %s\n", cfg.TimeFormat)
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), info.Short())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ergolog "+info.String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "Print only version and commit")
	return cmd
}
