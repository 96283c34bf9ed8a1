package main

import (
	"fmt"
	"strconv"
	"strings"
)

// hasFold reports whether name starts with prefix, case-insensitively.
func hasFold(name, prefix string) bool {
	return strings.HasPrefix(strings.ToLower(name), strings.ToLower(prefix))
}

// parseRecipeArg splits a "Name:servings" argument. The servings part is
// optional; 0 means "use the recipe default".
func parseRecipeArg(arg string) (string, int, error) {
	idx := strings.LastIndex(arg, ":")
	if idx < 0 {
		return arg, 0, nil
	}
	servings, err := strconv.Atoi(arg[idx+1:])
	if err != nil || servings <= 0 {
		return "", 0, fmt.Errorf("invalid servings in %q", arg)
	}
	return arg[:idx], servings, nil
}

// formatQuantity trims trailing zeros from a two-decimal rendering.
func formatQuantity(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
