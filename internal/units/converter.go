// Package units converts ingredient quantities between measurement units of
// the same physical category. Cross-category conversion is reported as an
// explicit failure; callers own the fallback policy.
package units

import (
	"errors"
	"fmt"

	"larder/internal/models"
)

// ErrIncompatibleUnits is returned when the source and target units measure
// different physical categories.
var ErrIncompatibleUnits = errors.New("incompatible units")

// Base factors per category: milliliters for volume, grams for weight,
// pieces for count. US customary values.
var factors = map[models.Unit]float64{
	models.UnitMilliliter: 1,
	models.UnitLiter:      1000,
	models.UnitTeaspoon:   4.92892,
	models.UnitTablespoon: 14.7868,
	models.UnitCup:        236.588,
	models.UnitFluidOunce: 29.5735,
	models.UnitPint:       473.176,
	models.UnitQuart:      946.353,
	models.UnitGallon:     3785.41,

	models.UnitGram:     1,
	models.UnitKilogram: 1000,
	models.UnitOunce:    28.3495,
	models.UnitPound:    453.592,

	models.UnitPiece: 1,
	models.UnitDozen: 12,
}

// Convert transforms quantity from one unit to another. Identity conversions
// always succeed, UnitNone converts only to itself, and any category mismatch
// returns ErrIncompatibleUnits with both units in the message.
func Convert(quantity float64, from, to models.Unit) (float64, error) {
	if from == to {
		return quantity, nil
	}
	fromCat, toCat := from.Category(), to.Category()
	if fromCat != toCat || fromCat == models.CategoryNone {
		return 0, fmt.Errorf("%w: %s -> %s", ErrIncompatibleUnits, from, to)
	}
	return quantity * factors[from] / factors[to], nil
}

// Compatible reports whether a conversion between the two units would succeed.
func Compatible(from, to models.Unit) bool {
	if from == to {
		return true
	}
	return from.Category() == to.Category() && from.Category() != models.CategoryNone
}
