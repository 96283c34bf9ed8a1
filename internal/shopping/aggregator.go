// Package shopping computes the net shopping list for a set of recipes
// against the current pantry. The pipeline is a fold over a keyed mapping:
// scale each recipe's ingredients, merge same-ingredient contributions into
// one unit, subtract what is on hand, and emit only what still needs buying.
package shopping

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"larder/internal/models"
	"larder/internal/monitoring"
	"larder/internal/normalize"
	"larder/internal/units"
)

// Epsilon is the minimum needed quantity worth recommending; anything at or
// below it is treated as floating-point noise.
const Epsilon = 0.01

// InventoryView is the read access the aggregator needs. *ledger.Ledger
// satisfies it.
type InventoryView interface {
	LookupActive(name string) (*models.InventoryItem, bool)
}

// Selection pairs a recipe with the servings to cook and the optional
// ingredients the user chose to include. IncludeOptional is keyed by
// normalized ingredient name.
type Selection struct {
	Recipe          models.Recipe
	Servings        int
	IncludeOptional map[string]bool
}

// Warning reports a contribution that could not join its ingredient's
// running sum because the units were incompatible. The contribution is still
// recorded in the item's RecipeSources.
type Warning struct {
	Ingredient string
	RecipeName string
	Quantity   float64
	Unit       models.Unit
	SumUnit    models.Unit
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %.2f %s from %q not added, sum is kept in %s",
		w.Ingredient, w.Quantity, w.Unit, w.RecipeName, w.SumUnit)
}

// Aggregator merges recipe needs and subtracts pantry stock.
type Aggregator struct {
	inventory InventoryView
	monitor   *monitoring.Monitor
}

// NewAggregator creates an aggregator reading from the given inventory view.
// The monitor may be nil.
func NewAggregator(inventory InventoryView, monitor *monitoring.Monitor) *Aggregator {
	return &Aggregator{inventory: inventory, monitor: monitor}
}

// bucket is the running aggregation state for one normalized ingredient.
type bucket struct {
	key       string
	unit      models.Unit
	total     float64
	sources   []models.RecipeSource
	storeHint string
}

// Aggregate computes the items still needed to buy for the given recipe
// selections. An empty result means nothing to buy; the caller decides
// whether that becomes a list at all.
func (a *Aggregator) Aggregate(selections []Selection) ([]models.ShoppingListItem, []Warning) {
	var order []string
	buckets := make(map[string]*bucket)
	var warnings []Warning

	for _, sel := range selections {
		scale := sel.Recipe.ScaleFactor(sel.Servings)
		for _, ing := range sel.Recipe.Ingredients {
			key := normalize.Key(ing.Name)
			if ing.IsOptional && !sel.IncludeOptional[key] {
				continue
			}
			scaled := ing.Quantity * scale

			b, ok := buckets[key]
			if !ok {
				b = &bucket{key: key, unit: ing.Unit}
				buckets[key] = b
				order = append(order, key)
			}

			if warn := b.add(sel.Recipe.Name, scaled, ing.Unit, a.monitor); warn != nil {
				warnings = append(warnings, *warn)
			}

			if b.storeHint == "" {
				if stock, found := a.inventory.LookupActive(key); found && stock.DefaultStoreID != "" {
					b.storeHint = stock.DefaultStoreID
				}
			}
		}
	}

	var items []models.ShoppingListItem
	for _, key := range order {
		b := buckets[key]

		onHand := 0.0
		if stock, found := a.inventory.LookupActive(key); found {
			converted, err := units.Convert(stock.Quantity, stock.Unit, b.unit)
			a.monitor.RecordConversion("aggregator", err != nil)
			if err == nil {
				onHand = converted
			}
			// Unconvertible stock counts as zero on hand; a purchase
			// recommendation is never blocked by a unit mismatch.
		}

		needed := b.total - onHand
		if needed <= Epsilon {
			continue
		}

		items = append(items, models.ShoppingListItem{
			ID:             uuid.New().String(),
			IngredientName: key,
			NeededQuantity: round2(needed),
			Unit:           b.unit,
			RecipeSources:  b.sources,
			StoreID:        b.storeHint,
		})
	}

	a.monitor.RecordAggregation(len(items), len(warnings))
	return items, warnings
}

// add folds one scaled contribution into the bucket. The first contribution
// fixes the bucket's unit; later ones are converted into it. When conversion
// fails with a still-zero total the bucket re-baselines onto the new unit,
// otherwise the amount is dropped from the sum and reported. The source is
// recorded either way so traceability survives conversion failures.
func (b *bucket) add(recipeName string, quantity float64, unit models.Unit, monitor *monitoring.Monitor) *Warning {
	b.sources = append(b.sources, models.RecipeSource{RecipeName: recipeName, Quantity: quantity})

	if unit == b.unit {
		b.total += quantity
		return nil
	}

	converted, err := units.Convert(quantity, unit, b.unit)
	monitor.RecordConversion("aggregator", err != nil)
	if err == nil {
		b.total += converted
		return nil
	}

	if b.total == 0 {
		b.unit = unit
		b.total = quantity
		return nil
	}

	return &Warning{
		Ingredient: b.key,
		RecipeName: recipeName,
		Quantity:   quantity,
		Unit:       unit,
		SumUnit:    b.unit,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
