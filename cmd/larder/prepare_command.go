package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"larder/internal/planner"
)

func newPrepareCommand(ctx *appContext) *cobra.Command {
	var (
		servings int
		commit   bool
	)

	cmd := &cobra.Command{
		Use:   "prepare <recipe>",
		Short: "Check whether a recipe can be prepared, and deduct with --commit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recipe, err := ctx.findRecipe(args[0])
			if err != nil {
				return err
			}
			if servings <= 0 {
				servings = recipe.DefaultServings
			}

			p := planner.New(ctx.ledger, ctx.monitor, ctx.log)
			out := cmd.OutOrStdout()

			if !commit {
				validation := p.Validate(recipe, servings)
				for _, warning := range validation.Warnings {
					fmt.Fprintln(cmd.ErrOrStderr(), "warning:", warning)
				}
				if validation.CanPrepare {
					fmt.Fprintf(out, "%s can be prepared for %d servings\n", recipe.Name, servings)
					return nil
				}
				fmt.Fprintf(out, "%s cannot be prepared for %d servings, missing:\n", recipe.Name, servings)
				for _, missing := range validation.Missing {
					fmt.Fprintln(out, "  -", missing)
				}
				return nil
			}

			result := p.Commit(recipe, servings)
			for _, deducted := range result.Deducted {
				fmt.Fprintf(out, "deducted %s %s of %s, %s %s left\n",
					formatQuantity(deducted.Amount), deducted.Unit, deducted.Name,
					formatQuantity(deducted.Remaining), deducted.Unit)
			}
			for _, commitErr := range result.Errors {
				fmt.Fprintln(cmd.ErrOrStderr(), "error:", commitErr)
			}
			if !result.Success && len(result.Deducted) == 0 {
				return fmt.Errorf("cannot prepare %s for %d servings", recipe.Name, servings)
			}
			return ctx.savePantry()
		},
	}

	cmd.Flags().IntVarP(&servings, "servings", "s", 0, "Servings to prepare (default: recipe default)")
	cmd.Flags().BoolVar(&commit, "commit", false, "Apply the deductions instead of only validating")
	return cmd
}
