package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMetricsCommand(ctx *appContext) *cobra.Command {
	return &cobra.Command{
		Use:    "metrics",
		Short:  "Dump the engine's metric counters for this invocation",
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := ctx.monitor.Snapshot()
			if err != nil {
				return err
			}
			for _, value := range values {
				if value.Labels != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "%s{%s} %g\n", value.Name, value.Labels, value.Value)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %g\n", value.Name, value.Value)
			}
			return nil
		},
	}
}
