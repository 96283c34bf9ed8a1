package pantryfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"larder/internal/models"
)

func TestPantryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pantry.yaml")
	expiry := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	items := []*models.InventoryItem{
		{
			ID:             "id-1",
			IngredientName: "flour",
			Quantity:       500,
			Unit:           models.UnitGram,
			AddedDate:      time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
			ExpirationDate: &expiry,
			DefaultStoreID: "mill",
			Brand:          "stoneground",
			CustomTags:     []string{"baking"},
			TimesRestocked: 2,
		},
		{
			ID:               "id-2",
			IngredientName:   "saffron",
			Unit:             models.UnitGram,
			IsArchived:       true,
			OriginalQuantity: 1,
		},
	}

	require.NoError(t, SavePantry(path, items))

	loaded, err := LoadPantry(path)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	flour := loaded[0]
	assert.Equal(t, "id-1", flour.ID)
	assert.Equal(t, "flour", flour.IngredientName)
	assert.Equal(t, 500.0, flour.Quantity)
	assert.Equal(t, models.UnitGram, flour.Unit)
	require.NotNil(t, flour.ExpirationDate)
	assert.True(t, expiry.Equal(*flour.ExpirationDate))
	assert.Equal(t, "mill", flour.DefaultStoreID)
	assert.Equal(t, []string{"baking"}, flour.CustomTags)
	assert.Equal(t, 2, flour.TimesRestocked)

	saffron := loaded[1]
	assert.True(t, saffron.IsArchived)
	assert.Equal(t, 1.0, saffron.OriginalQuantity)
}

func TestLoadPantryMissingFile(t *testing.T) {
	items, err := LoadPantry(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestLoadPantryParsesAliasedUnits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pantry.yaml")
	doc := `items:
  - name: milk
    quantity: 1
    unit: l
  - name: eggs
    quantity: 12
    unit: pcs
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	items, err := LoadPantry(path)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, models.UnitLiter, items[0].Unit)
	assert.Equal(t, models.UnitPiece, items[1].Unit)
}

func TestLoadRecipes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.yaml")
	doc := `recipes:
  - name: Soup
    servings: 4
    prep_minutes: 10
    ingredients:
      - name: broth
        quantity: 2
        unit: cup
      - name: parsley
        quantity: 1
        unit: tbsp
        optional: true
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	recipes, err := LoadRecipes(path)
	require.NoError(t, err)
	require.Len(t, recipes, 1)

	soup := recipes[0]
	assert.Equal(t, "Soup", soup.Name)
	assert.Equal(t, 4, soup.DefaultServings)
	assert.Equal(t, 10*time.Minute, soup.PrepTime)
	require.Len(t, soup.Ingredients, 2)
	assert.Equal(t, models.UnitCup, soup.Ingredients[0].Unit)
	assert.False(t, soup.Ingredients[0].IsOptional)
	assert.Equal(t, models.UnitTablespoon, soup.Ingredients[1].Unit)
	assert.True(t, soup.Ingredients[1].IsOptional)
}

func TestLoadRecipesMissingFile(t *testing.T) {
	recipes, err := LoadRecipes(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Empty(t, recipes)
}
