package models

import "strings"

// Unit represents a unit of measurement for an ingredient quantity
type Unit string

const (
	// Volume units
	UnitMilliliter Unit = "milliliter"
	UnitLiter      Unit = "liter"
	UnitTeaspoon   Unit = "teaspoon"
	UnitTablespoon Unit = "tablespoon"
	UnitCup        Unit = "cup"
	UnitFluidOunce Unit = "fluid-ounce"
	UnitPint       Unit = "pint"
	UnitQuart      Unit = "quart"
	UnitGallon     Unit = "gallon"

	// Weight units
	UnitGram     Unit = "gram"
	UnitKilogram Unit = "kilogram"
	UnitOunce    Unit = "ounce"
	UnitPound    Unit = "pound"

	// Count units
	UnitPiece Unit = "piece"
	UnitDozen Unit = "dozen"

	// UnitNone marks an unspecified or uncountable quantity
	UnitNone Unit = "none"
)

// UnitCategory represents the physical dimension a unit measures
type UnitCategory string

const (
	CategoryVolume UnitCategory = "volume"
	CategoryWeight UnitCategory = "weight"
	CategoryCount  UnitCategory = "count"
	CategoryNone   UnitCategory = "none"
)

var unitCategories = map[Unit]UnitCategory{
	UnitMilliliter: CategoryVolume,
	UnitLiter:      CategoryVolume,
	UnitTeaspoon:   CategoryVolume,
	UnitTablespoon: CategoryVolume,
	UnitCup:        CategoryVolume,
	UnitFluidOunce: CategoryVolume,
	UnitPint:       CategoryVolume,
	UnitQuart:      CategoryVolume,
	UnitGallon:     CategoryVolume,
	UnitGram:       CategoryWeight,
	UnitKilogram:   CategoryWeight,
	UnitOunce:      CategoryWeight,
	UnitPound:      CategoryWeight,
	UnitPiece:      CategoryCount,
	UnitDozen:      CategoryCount,
	UnitNone:       CategoryNone,
}

// Category returns the physical category of the unit. Unknown units are
// treated as uncountable.
func (u Unit) Category() UnitCategory {
	if c, ok := unitCategories[u]; ok {
		return c
	}
	return CategoryNone
}

// IsValid reports whether the unit is one of the known enumeration values.
func (u Unit) IsValid() bool {
	_, ok := unitCategories[u]
	return ok
}

var unitAliases = map[string]Unit{
	"ml":          UnitMilliliter,
	"milliliters": UnitMilliliter,
	"l":           UnitLiter,
	"liters":      UnitLiter,
	"litre":       UnitLiter,
	"litres":      UnitLiter,
	"tsp":         UnitTeaspoon,
	"teaspoons":   UnitTeaspoon,
	"tbsp":        UnitTablespoon,
	"tablespoons": UnitTablespoon,
	"cups":        UnitCup,
	"fl oz":       UnitFluidOunce,
	"fl-oz":       UnitFluidOunce,
	"floz":        UnitFluidOunce,
	"fluid ounce": UnitFluidOunce,
	"pints":       UnitPint,
	"pt":          UnitPint,
	"quarts":      UnitQuart,
	"qt":          UnitQuart,
	"gallons":     UnitGallon,
	"gal":         UnitGallon,
	"g":           UnitGram,
	"grams":       UnitGram,
	"kg":          UnitKilogram,
	"kilograms":   UnitKilogram,
	"oz":          UnitOunce,
	"ounces":      UnitOunce,
	"lb":          UnitPound,
	"lbs":         UnitPound,
	"pounds":      UnitPound,
	"pieces":      UnitPiece,
	"pc":          UnitPiece,
	"pcs":         UnitPiece,
	"each":        UnitPiece,
	"dozens":      UnitDozen,
	"doz":         UnitDozen,
	"":            UnitNone,
}

// ParseUnit maps free-form unit text onto the closed enumeration. It accepts
// the canonical names plus the common abbreviations used in recipe and pantry
// files. Text that matches nothing parses as UnitNone.
func ParseUnit(s string) Unit {
	t := strings.ToLower(strings.TrimSpace(s))
	if u := Unit(t); u.IsValid() {
		return u
	}
	if u, ok := unitAliases[t]; ok {
		return u
	}
	return UnitNone
}
