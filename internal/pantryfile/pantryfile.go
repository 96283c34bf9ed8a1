// Package pantryfile reads and writes the YAML files the CLI uses to carry
// the pantry and the recipe collection between sessions. It stands in for
// the application's real storage; the reconciliation engine itself never
// touches it and treats the loaded ledger as the source of truth.
package pantryfile

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"larder/internal/models"
)

type pantryDocument struct {
	Items []pantryItem `yaml:"items"`
}

type pantryItem struct {
	ID                string     `yaml:"id,omitempty"`
	Name              string     `yaml:"name"`
	Quantity          float64    `yaml:"quantity"`
	Unit              string     `yaml:"unit"`
	Archived          bool       `yaml:"archived,omitempty"`
	OriginalQuantity  float64    `yaml:"original_quantity,omitempty"`
	ArchivedDate      *time.Time `yaml:"archived_date,omitempty"`
	AddedDate         time.Time  `yaml:"added_date,omitempty"`
	LastUpdated       time.Time  `yaml:"last_updated,omitempty"`
	LowStockThreshold float64    `yaml:"low_stock_threshold,omitempty"`
	ExpirationDate    *time.Time `yaml:"expiration_date,omitempty"`
	FrequencyOfUse    string     `yaml:"frequency_of_use,omitempty"`
	DefaultStoreID    string     `yaml:"default_store,omitempty"`
	Brand             string     `yaml:"brand,omitempty"`
	Notes             string     `yaml:"notes,omitempty"`
	CustomTags        []string   `yaml:"tags,omitempty"`
	TimesRestocked    int        `yaml:"times_restocked,omitempty"`
	TotalConsumed     float64    `yaml:"total_consumed,omitempty"`
	AvgConsumption    float64    `yaml:"avg_consumption_rate,omitempty"`
	LastUsedDate      *time.Time `yaml:"last_used_date,omitempty"`
}

type recipeDocument struct {
	Recipes []recipeEntry `yaml:"recipes"`
}

type recipeEntry struct {
	ID           string            `yaml:"id,omitempty"`
	Name         string            `yaml:"name"`
	Servings     int               `yaml:"servings"`
	Ingredients  []ingredientEntry `yaml:"ingredients"`
	Instructions string            `yaml:"instructions,omitempty"`
	PrepMinutes  int               `yaml:"prep_minutes,omitempty"`
	CookMinutes  int               `yaml:"cook_minutes,omitempty"`
	Source       string            `yaml:"source,omitempty"`
	Tags         []string          `yaml:"tags,omitempty"`
}

type ingredientEntry struct {
	Name     string  `yaml:"name"`
	Quantity float64 `yaml:"quantity"`
	Unit     string  `yaml:"unit,omitempty"`
	Optional bool    `yaml:"optional,omitempty"`
}

// LoadPantry reads a pantry snapshot. A missing file yields an empty pantry.
func LoadPantry(path string) ([]*models.InventoryItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read pantry %s: %w", path, err)
	}

	var doc pantryDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse pantry %s: %w", path, err)
	}

	items := make([]*models.InventoryItem, 0, len(doc.Items))
	for _, entry := range doc.Items {
		items = append(items, &models.InventoryItem{
			ID:                entry.ID,
			IngredientName:    entry.Name,
			Quantity:          entry.Quantity,
			Unit:              models.ParseUnit(entry.Unit),
			IsArchived:        entry.Archived,
			OriginalQuantity:  entry.OriginalQuantity,
			ArchivedDate:      entry.ArchivedDate,
			AddedDate:         entry.AddedDate,
			LastUpdated:       entry.LastUpdated,
			LowStockThreshold: entry.LowStockThreshold,
			ExpirationDate:    entry.ExpirationDate,
			FrequencyOfUse:    entry.FrequencyOfUse,
			DefaultStoreID:    entry.DefaultStoreID,
			Brand:             entry.Brand,
			Notes:             entry.Notes,
			CustomTags:        entry.CustomTags,
			TimesRestocked:    entry.TimesRestocked,
			TotalConsumed:     entry.TotalConsumed,

			AverageConsumptionRate: entry.AvgConsumption,
			LastUsedDate:           entry.LastUsedDate,
		})
	}
	return items, nil
}

// SavePantry writes the pantry snapshot, creating parent directories as
// needed.
func SavePantry(path string, items []*models.InventoryItem) error {
	doc := pantryDocument{Items: make([]pantryItem, 0, len(items))}
	for _, item := range items {
		doc.Items = append(doc.Items, pantryItem{
			ID:                item.ID,
			Name:              item.IngredientName,
			Quantity:          item.Quantity,
			Unit:              string(item.Unit),
			Archived:          item.IsArchived,
			OriginalQuantity:  item.OriginalQuantity,
			ArchivedDate:      item.ArchivedDate,
			AddedDate:         item.AddedDate,
			LastUpdated:       item.LastUpdated,
			LowStockThreshold: item.LowStockThreshold,
			ExpirationDate:    item.ExpirationDate,
			FrequencyOfUse:    item.FrequencyOfUse,
			DefaultStoreID:    item.DefaultStoreID,
			Brand:             item.Brand,
			Notes:             item.Notes,
			CustomTags:        item.CustomTags,
			TimesRestocked:    item.TimesRestocked,
			TotalConsumed:     item.TotalConsumed,
			AvgConsumption:    item.AverageConsumptionRate,
			LastUsedDate:      item.LastUsedDate,
		})
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("encode pantry: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create pantry dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write pantry %s: %w", path, err)
	}
	return nil
}

// LoadRecipes reads the recipe collection. A missing file yields an empty
// collection.
func LoadRecipes(path string) ([]models.Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read recipes %s: %w", path, err)
	}

	var doc recipeDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse recipes %s: %w", path, err)
	}

	recipes := make([]models.Recipe, 0, len(doc.Recipes))
	for _, entry := range doc.Recipes {
		recipe := models.Recipe{
			ID:              entry.ID,
			Name:            entry.Name,
			DefaultServings: entry.Servings,
			Instructions:    entry.Instructions,
			PrepTime:        time.Duration(entry.PrepMinutes) * time.Minute,
			CookTime:        time.Duration(entry.CookMinutes) * time.Minute,
			SourceURL:       entry.Source,
			Tags:            entry.Tags,
		}
		for _, ing := range entry.Ingredients {
			recipe.Ingredients = append(recipe.Ingredients, models.RecipeIngredient{
				Name:       ing.Name,
				Quantity:   ing.Quantity,
				Unit:       models.ParseUnit(ing.Unit),
				IsOptional: ing.Optional,
			})
		}
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}
