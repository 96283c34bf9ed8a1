package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newAppContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "larder",
		Short:         "Household pantry, recipe and shopping list reconciliation",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.ensure()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "larder.yaml", "Configuration file path")

	rootCmd.AddCommand(newInventoryCommand(ctx))
	rootCmd.AddCommand(newShoppingCommand(ctx))
	rootCmd.AddCommand(newPrepareCommand(ctx))
	rootCmd.AddCommand(newRecipesCommand(ctx))
	rootCmd.AddCommand(newMetricsCommand(ctx))

	return rootCmd
}
