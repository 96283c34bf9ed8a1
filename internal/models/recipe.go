package models

import "time"

// Recipe represents a cooking recipe in the household collection
type Recipe struct {
	ID              string
	Name            string
	DefaultServings int
	Ingredients     []RecipeIngredient
	Instructions    string

	// Optional timing/source metadata
	PrepTime  time.Duration
	CookTime  time.Duration
	SourceURL string
	Tags      []string
}

// RecipeIngredient represents a required ingredient for a recipe. Quantity is
// expressed for the recipe's DefaultServings; Name holds the raw text as
// written in the recipe, normalization happens at matching time.
type RecipeIngredient struct {
	Name       string
	Quantity   float64
	Unit       Unit
	IsOptional bool
}

// RequiredIngredients returns the non-optional ingredients of the recipe.
func (r *Recipe) RequiredIngredients() []RecipeIngredient {
	required := make([]RecipeIngredient, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		if !ing.IsOptional {
			required = append(required, ing)
		}
	}
	return required
}

// ScaleFactor returns the multiplier that converts per-default-servings
// quantities to the requested serving count.
func (r *Recipe) ScaleFactor(servings int) float64 {
	if r.DefaultServings <= 0 {
		return 1
	}
	return float64(servings) / float64(r.DefaultServings)
}
