package main

import (
	"fmt"
	"log/slog"

	"larder/internal/config"
	"larder/internal/ledger"
	"larder/internal/logging"
	"larder/internal/models"
	"larder/internal/monitoring"
	"larder/internal/pantryfile"
)

// appContext wires the engine together for one CLI invocation: config,
// logger, monitor, the ledger loaded from the pantry file, and the recipe
// collection.
type appContext struct {
	configFlag *string

	cfg     config.Config
	log     *slog.Logger
	monitor *monitoring.Monitor
	ledger  *ledger.Ledger
	recipes []models.Recipe

	loaded bool
}

func newAppContext(configFlag *string) *appContext {
	return &appContext{configFlag: configFlag}
}

// ensure loads everything on first use so commands share one session state.
func (a *appContext) ensure() error {
	if a.loaded {
		return nil
	}

	cfg, err := config.Load(*a.configFlag)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.New(cfg.Environment)
	a.monitor = monitoring.NewMonitor()

	items, err := pantryfile.LoadPantry(cfg.PantryFile)
	if err != nil {
		return err
	}
	a.ledger = ledger.New(ledger.WithLogger(a.log), ledger.WithMonitor(a.monitor))
	a.ledger.Load(items)

	recipes, err := pantryfile.LoadRecipes(cfg.RecipesFile)
	if err != nil {
		return err
	}
	a.recipes = recipes

	a.loaded = true
	return nil
}

// savePantry writes the ledger's current state back to the pantry file.
func (a *appContext) savePantry() error {
	return pantryfile.SavePantry(a.cfg.PantryFile, a.ledger.Items())
}

// findRecipe resolves a recipe by exact name, then by unique prefix.
func (a *appContext) findRecipe(name string) (models.Recipe, error) {
	for _, r := range a.recipes {
		if r.Name == name {
			return r, nil
		}
	}
	var match *models.Recipe
	for i := range a.recipes {
		if hasFold(a.recipes[i].Name, name) {
			if match != nil {
				return models.Recipe{}, fmt.Errorf("recipe name %q is ambiguous", name)
			}
			match = &a.recipes[i]
		}
	}
	if match == nil {
		return models.Recipe{}, fmt.Errorf("recipe %q not found", name)
	}
	return *match, nil
}
