package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newRecipesCommand(ctx *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "recipes",
		Short: "List the recipe collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(ctx.recipes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no recipes loaded")
				return nil
			}
			rows := make([][]string, 0, len(ctx.recipes))
			for _, recipe := range ctx.recipes {
				optional := 0
				for _, ing := range recipe.Ingredients {
					if ing.IsOptional {
						optional++
					}
				}
				rows = append(rows, []string{
					recipe.Name,
					strconv.Itoa(recipe.DefaultServings),
					strconv.Itoa(len(recipe.Ingredients)),
					strconv.Itoa(optional),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(),
				renderTable([]string{"Recipe", "Servings", "Ingredients", "Optional"}, rows, 2, 3, 4))
			return nil
		},
	}
}
