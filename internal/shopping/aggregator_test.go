package shopping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"larder/internal/ledger"
	"larder/internal/models"
)

func soupRecipe() models.Recipe {
	return models.Recipe{
		ID:              "r-soup",
		Name:            "Soup",
		DefaultServings: 4,
		Ingredients: []models.RecipeIngredient{
			{Name: "broth", Quantity: 2, Unit: models.UnitCup},
		},
	}
}

func aggregate(t *testing.T, l *ledger.Ledger, selections ...Selection) ([]models.ShoppingListItem, []Warning) {
	t.Helper()
	if l == nil {
		l = ledger.New()
	}
	return NewAggregator(l, nil).Aggregate(selections)
}

func TestAggregateSingleRecipeEmptyPantry(t *testing.T) {
	items, warnings := aggregate(t, nil, Selection{Recipe: soupRecipe(), Servings: 4})

	require.Len(t, items, 1)
	assert.Empty(t, warnings)
	assert.Equal(t, "broth", items[0].IngredientName)
	assert.Equal(t, 2.0, items[0].NeededQuantity)
	assert.Equal(t, models.UnitCup, items[0].Unit)
	assert.NotEmpty(t, items[0].ID)
	require.Len(t, items[0].RecipeSources, 1)
	assert.Equal(t, "Soup", items[0].RecipeSources[0].RecipeName)
}

func TestAggregateScalesServingsAndSubtractsStock(t *testing.T) {
	l := ledger.New()
	l.Upsert("broth", 1, models.UnitCup, ledger.Metadata{})

	items, _ := aggregate(t, l, Selection{Recipe: soupRecipe(), Servings: 8})

	require.Len(t, items, 1)
	assert.InDelta(t, 3.0, items[0].NeededQuantity, 1e-9)
	assert.Equal(t, models.UnitCup, items[0].Unit)
}

func TestAggregateConvertsStockUnits(t *testing.T) {
	l := ledger.New()
	l.Upsert("flour", 1, models.UnitPound, ledger.Metadata{})

	recipe := models.Recipe{
		Name:            "Bread",
		DefaultServings: 1,
		Ingredients: []models.RecipeIngredient{
			{Name: "flour", Quantity: 500, Unit: models.UnitGram},
		},
	}
	items, _ := aggregate(t, l, Selection{Recipe: recipe, Servings: 1})

	require.Len(t, items, 1)
	assert.InDelta(t, 46.41, items[0].NeededQuantity, 0.01)
}

func TestAggregateMergesAcrossRecipes(t *testing.T) {
	pasta := models.Recipe{
		Name:            "Pasta",
		DefaultServings: 2,
		Ingredients: []models.RecipeIngredient{
			{Name: "Olive Oil", Quantity: 2, Unit: models.UnitTablespoon},
		},
	}
	dressing := models.Recipe{
		Name:            "Dressing",
		DefaultServings: 1,
		Ingredients: []models.RecipeIngredient{
			{Name: "olive oil", Quantity: 30, Unit: models.UnitMilliliter},
		},
	}

	items, warnings := aggregate(t, nil,
		Selection{Recipe: pasta, Servings: 2},
		Selection{Recipe: dressing, Servings: 1},
	)

	require.Len(t, items, 1)
	assert.Empty(t, warnings)
	item := items[0]
	assert.Equal(t, "olive oil", item.IngredientName)
	// First contributor fixes the unit: 2 tbsp + 30 ml in tablespoons.
	assert.Equal(t, models.UnitTablespoon, item.Unit)
	assert.InDelta(t, 2+30/14.7868, item.NeededQuantity, 0.01)
	require.Len(t, item.RecipeSources, 2)
	assert.Equal(t, "Pasta", item.RecipeSources[0].RecipeName)
	assert.Equal(t, "Dressing", item.RecipeSources[1].RecipeName)
}

func TestAggregateSkipsUnselectedOptionals(t *testing.T) {
	recipe := models.Recipe{
		Name:            "Salad",
		DefaultServings: 2,
		Ingredients: []models.RecipeIngredient{
			{Name: "lettuce", Quantity: 1, Unit: models.UnitPiece},
			{Name: "croutons", Quantity: 50, Unit: models.UnitGram, IsOptional: true},
		},
	}

	items, _ := aggregate(t, nil, Selection{Recipe: recipe, Servings: 2})
	require.Len(t, items, 1)
	assert.Equal(t, "lettuce", items[0].IngredientName)

	items, _ = aggregate(t, nil, Selection{
		Recipe:          recipe,
		Servings:        2,
		IncludeOptional: map[string]bool{"crouton": true},
	})
	require.Len(t, items, 2)
}

func TestAggregateRebaselinesZeroTotal(t *testing.T) {
	// The first contributor uses an unconvertible unit; the second then
	// re-baselines the key because the running total is still zero.
	pinch := models.Recipe{
		Name:            "Seasoning",
		DefaultServings: 1,
		Ingredients: []models.RecipeIngredient{
			{Name: "salt", Quantity: 0, Unit: models.UnitNone},
		},
	}
	dough := models.Recipe{
		Name:            "Dough",
		DefaultServings: 1,
		Ingredients: []models.RecipeIngredient{
			{Name: "salt", Quantity: 10, Unit: models.UnitGram},
		},
	}

	items, warnings := aggregate(t, nil,
		Selection{Recipe: pinch, Servings: 1},
		Selection{Recipe: dough, Servings: 1},
	)

	assert.Empty(t, warnings)
	require.Len(t, items, 1)
	assert.Equal(t, models.UnitGram, items[0].Unit)
	assert.Equal(t, 10.0, items[0].NeededQuantity)
	// Traceability survives the re-baseline.
	require.Len(t, items[0].RecipeSources, 2)
}

func TestAggregateDropsAndWarnsOnIncompatibleContribution(t *testing.T) {
	bread := models.Recipe{
		Name:            "Bread",
		DefaultServings: 1,
		Ingredients: []models.RecipeIngredient{
			{Name: "flour", Quantity: 500, Unit: models.UnitGram},
		},
	}
	odd := models.Recipe{
		Name:            "Odd",
		DefaultServings: 1,
		Ingredients: []models.RecipeIngredient{
			{Name: "flour", Quantity: 2, Unit: models.UnitCup},
		},
	}

	items, warnings := aggregate(t, nil,
		Selection{Recipe: bread, Servings: 1},
		Selection{Recipe: odd, Servings: 1},
	)

	require.Len(t, items, 1)
	assert.Equal(t, 500.0, items[0].NeededQuantity)
	assert.Equal(t, models.UnitGram, items[0].Unit)
	// The dropped contribution is still traceable and warned about.
	require.Len(t, items[0].RecipeSources, 2)
	require.Len(t, warnings, 1)
	assert.Equal(t, "flour", warnings[0].Ingredient)
	assert.Equal(t, "Odd", warnings[0].RecipeName)
	assert.Equal(t, models.UnitCup, warnings[0].Unit)
	assert.Equal(t, models.UnitGram, warnings[0].SumUnit)
}

func TestAggregateUnconvertibleStockCountsAsZero(t *testing.T) {
	l := ledger.New()
	l.Upsert("flour", 2, models.UnitCup, ledger.Metadata{})

	recipe := models.Recipe{
		Name:            "Bread",
		DefaultServings: 1,
		Ingredients: []models.RecipeIngredient{
			{Name: "flour", Quantity: 500, Unit: models.UnitGram},
		},
	}
	items, _ := aggregate(t, l, Selection{Recipe: recipe, Servings: 1})

	// Volume stock cannot satisfy a weight need, so the full amount is
	// recommended rather than blocking the purchase.
	require.Len(t, items, 1)
	assert.Equal(t, 500.0, items[0].NeededQuantity)
}

func TestAggregateSuppressesNegligibleNeeds(t *testing.T) {
	l := ledger.New()
	l.Upsert("broth", 2, models.UnitCup, ledger.Metadata{})

	items, _ := aggregate(t, l, Selection{Recipe: soupRecipe(), Servings: 4})
	assert.Empty(t, items)

	// Slightly more stock than needed must not produce a negative need.
	l2 := ledger.New()
	l2.Upsert("broth", 3, models.UnitCup, ledger.Metadata{})
	items, _ = aggregate(t, l2, Selection{Recipe: soupRecipe(), Servings: 4})
	assert.Empty(t, items)
}

func TestAggregateEpsilonFloor(t *testing.T) {
	recipe := models.Recipe{
		Name:            "Trace",
		DefaultServings: 1,
		Ingredients: []models.RecipeIngredient{
			{Name: "vanilla", Quantity: 0.01, Unit: models.UnitTeaspoon},
		},
	}
	items, _ := aggregate(t, nil, Selection{Recipe: recipe, Servings: 1})
	assert.Empty(t, items, "needs at or below the epsilon are noise")
}

func TestAggregateTracksStoreHint(t *testing.T) {
	l := ledger.New()
	store := "greengrocer"
	l.Upsert("broth", 0.5, models.UnitCup, ledger.Metadata{DefaultStoreID: &store})

	items, _ := aggregate(t, l, Selection{Recipe: soupRecipe(), Servings: 4})
	require.Len(t, items, 1)
	assert.Equal(t, "greengrocer", items[0].StoreID)
}

func TestAggregateNothingSelected(t *testing.T) {
	items, warnings := aggregate(t, nil)
	assert.Empty(t, items)
	assert.Empty(t, warnings)
}
