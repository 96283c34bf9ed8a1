package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"larder/internal/normalize"
	"larder/internal/shopping"
)

func newShoppingCommand(ctx *appContext) *cobra.Command {
	var optionals []string

	cmd := &cobra.Command{
		Use:   "shopping <recipe[:servings]>...",
		Short: "Compute what to buy for a set of recipes",
		Long: `Aggregates the ingredients of the selected recipes, scaled to the
requested servings, subtracts what the pantry already holds and prints the
net shopping list. Optional ingredients are skipped unless included with
--optional "Recipe:ingredient".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			selections, err := buildSelections(ctx, args, optionals)
			if err != nil {
				return err
			}

			aggregator := shopping.NewAggregator(ctx.ledger, ctx.monitor)
			items, warnings := aggregator.Aggregate(selections)

			for _, warning := range warnings {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", warning)
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "nothing to buy")
				return nil
			}

			rows := make([][]string, 0, len(items))
			for _, item := range items {
				sources := make([]string, 0, len(item.RecipeSources))
				for _, src := range item.RecipeSources {
					sources = append(sources, src.RecipeName)
				}
				rows = append(rows, []string{
					item.IngredientName,
					formatQuantity(item.NeededQuantity),
					string(item.Unit),
					strings.Join(sources, ", "),
					item.StoreID,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(),
				renderTable([]string{"Ingredient", "Needed", "Unit", "For", "Store"}, rows, 2))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&optionals, "optional", nil,
		`Include an optional ingredient, as "Recipe:ingredient" (repeatable)`)
	return cmd
}

// buildSelections resolves the recipe arguments and distributes the
// --optional choices onto their recipes.
func buildSelections(ctx *appContext, args, optionals []string) ([]shopping.Selection, error) {
	include := make(map[string]map[string]bool)
	for _, opt := range optionals {
		parts := strings.SplitN(opt, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf(`invalid --optional %q, want "Recipe:ingredient"`, opt)
		}
		recipe, err := ctx.findRecipe(parts[0])
		if err != nil {
			return nil, err
		}
		if include[recipe.Name] == nil {
			include[recipe.Name] = make(map[string]bool)
		}
		include[recipe.Name][normalize.Key(parts[1])] = true
	}

	selections := make([]shopping.Selection, 0, len(args))
	for _, arg := range args {
		name, servings, err := parseRecipeArg(arg)
		if err != nil {
			return nil, err
		}
		recipe, err := ctx.findRecipe(name)
		if err != nil {
			return nil, err
		}
		if servings == 0 {
			servings = recipe.DefaultServings
		}
		selections = append(selections, shopping.Selection{
			Recipe:          recipe,
			Servings:        servings,
			IncludeOptional: include[recipe.Name],
		})
	}
	return selections, nil
}
