// Package normalize produces the canonical matching key for ingredient
// names. The key is the sole identity used across inventory, recipes and
// shopping lists; unit compatibility is handled separately by the units
// package.
package normalize

import "strings"

// Key canonicalizes a free-text ingredient name: case-folded, trimmed,
// internal whitespace collapsed, and trivially pluralized forms reduced to a
// single form. The function is idempotent.
func Key(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	name = strings.Join(strings.Fields(name), " ")
	return singularize(name)
}

// singularize applies a conservative trailing-s heuristic. It only touches
// endings that are near-certainly plural markers, so short words like "bus"
// and words ending in "ss" like "glass" pass through unchanged.
func singularize(word string) string {
	switch {
	case strings.HasSuffix(word, "ies") && len(word) > 4:
		// berries -> berry
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(word, "oes") && len(word) > 4,
		strings.HasSuffix(word, "ches") && len(word) > 5,
		strings.HasSuffix(word, "shes") && len(word) > 5,
		strings.HasSuffix(word, "sses") && len(word) > 5,
		strings.HasSuffix(word, "xes") && len(word) > 4,
		strings.HasSuffix(word, "zes") && len(word) > 4:
		// tomatoes -> tomato, radishes -> radish
		return word[:len(word)-2]
	case strings.HasSuffix(word, "ss"), strings.HasSuffix(word, "us"):
		// glass, asparagus
		return word
	case strings.HasSuffix(word, "s") && len(word) > 3:
		// eggs -> egg
		return word[:len(word)-1]
	default:
		return word
	}
}
