// Package planner guards recipe preparation behind a two-phase protocol:
// validate sufficiency against the pantry first, then deduct. Validation is
// all-or-nothing; the deduction phase mutates one record per ingredient and
// tolerates a late failure on a single ingredient without rolling back the
// others.
package planner

import (
	"fmt"
	"io"
	"log/slog"

	"larder/internal/ledger"
	"larder/internal/models"
	"larder/internal/monitoring"
	"larder/internal/units"
)

// MissingIngredient describes one ingredient blocking preparation.
type MissingIngredient struct {
	Name      string
	Needed    float64
	Available float64
	Unit      models.Unit
}

func (m MissingIngredient) String() string {
	return fmt.Sprintf("%s: need %.2f %s, have %.2f", m.Name, m.Needed, m.Unit, m.Available)
}

// Validation is the result of a sufficiency check.
type Validation struct {
	CanPrepare bool
	Missing    []MissingIngredient
	Warnings   []string
}

// DeductedIngredient records one applied deduction. Amount is in the
// recipe ingredient's unit; Remaining is the record's balance converted back
// into that same unit.
type DeductedIngredient struct {
	Name      string
	Amount    float64
	Unit      models.Unit
	Remaining float64
}

// CommitResult is the outcome of a preparation commit.
type CommitResult struct {
	Success  bool
	Deducted []DeductedIngredient
	Errors   []string
}

// Planner validates and commits recipe preparations against the ledger.
type Planner struct {
	inventory *ledger.Ledger
	monitor   *monitoring.Monitor
	log       *slog.Logger
}

// New creates a planner over the given ledger. Monitor and logger may be nil.
func New(inventory *ledger.Ledger, monitor *monitoring.Monitor, log *slog.Logger) *Planner {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Planner{inventory: inventory, monitor: monitor, log: log}
}

// sufficiencySlack absorbs floating-point noise when comparing available
// stock against the needed amount, so an exactly-sufficient pantry passes.
const sufficiencySlack = 1e-9

// Validate checks whether every non-optional ingredient of the recipe is
// available in sufficient quantity for the requested servings. Optional
// ingredients never block preparation.
func (p *Planner) Validate(recipe models.Recipe, requestedServings int) Validation {
	result := Validation{CanPrepare: true}
	scale := recipe.ScaleFactor(requestedServings)

	for _, ing := range recipe.RequiredIngredients() {
		needed := ing.Quantity * scale

		stock, found := p.inventory.LookupActive(ing.Name)
		if !found {
			result.Missing = append(result.Missing, MissingIngredient{
				Name: ing.Name, Needed: needed, Available: 0, Unit: ing.Unit,
			})
			continue
		}

		available := stock.Quantity
		if stock.Unit != ing.Unit {
			converted, err := units.Convert(stock.Quantity, stock.Unit, ing.Unit)
			p.monitor.RecordConversion("planner", err != nil)
			if err != nil {
				result.Warnings = append(result.Warnings, fmt.Sprintf(
					"%s: stock unit %s cannot satisfy recipe unit %s", ing.Name, stock.Unit, ing.Unit))
				result.Missing = append(result.Missing, MissingIngredient{
					Name: ing.Name, Needed: needed, Available: 0, Unit: ing.Unit,
				})
				continue
			}
			available = converted
		}

		if available+sufficiencySlack < needed {
			result.Missing = append(result.Missing, MissingIngredient{
				Name: ing.Name, Needed: needed, Available: available, Unit: ing.Unit,
			})
		}
	}

	result.CanPrepare = len(result.Missing) == 0
	return result
}

// Commit re-validates and, if the pantry is sufficient, deducts every
// non-optional ingredient scaled to the prepared servings. A failed
// validation performs no mutation at all. After validation has passed, each
// ingredient's deduction is an independent record mutation: a late failure
// is recorded per ingredient and the remaining deductions still run.
func (p *Planner) Commit(recipe models.Recipe, preparedServings int) CommitResult {
	validation := p.Validate(recipe, preparedServings)
	if !validation.CanPrepare {
		result := CommitResult{Success: false}
		for _, missing := range validation.Missing {
			result.Errors = append(result.Errors, missing.String())
		}
		return result
	}

	result := CommitResult{Success: true}
	scale := recipe.ScaleFactor(preparedServings)

	for _, ing := range recipe.RequiredIngredients() {
		needed := ing.Quantity * scale

		item, _, err := p.inventory.Deduct(ing.Name, needed, ing.Unit)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", ing.Name, err))
			p.log.Warn("deduction failed after validation",
				"recipe", recipe.Name, "ingredient", ing.Name, "error", err)
			continue
		}

		remaining := item.Quantity
		if item.Unit != ing.Unit {
			if converted, convErr := units.Convert(item.Quantity, item.Unit, ing.Unit); convErr == nil {
				remaining = converted
			}
		}
		result.Deducted = append(result.Deducted, DeductedIngredient{
			Name:      ing.Name,
			Amount:    needed,
			Unit:      ing.Unit,
			Remaining: remaining,
		})
	}

	if len(result.Errors) > 0 {
		result.Success = false
	}
	p.log.Info("recipe prepared",
		"recipe", recipe.Name, "servings", preparedServings,
		"deducted", len(result.Deducted), "errors", len(result.Errors))
	return result
}
