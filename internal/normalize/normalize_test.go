package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Flour", "flour"},
		{"  Olive Oil  ", "olive oil"},
		{"green\t beans", "green bean"},
		{"EGGS", "egg"},
		{"Tomatoes", "tomato"},
		{"berries", "berry"},
		{"radishes", "radish"},
		{"glasses", "glass"},
		{"boxes", "box"},
		{"carrots", "carrot"},
		{"bus", "bus"},
		{"glass", "glass"},
		{"asparagus", "asparagus"},
		{"hummus", "hummus"},
		{"peas", "pea"},
		{"cheese", "cheese"},
		{"rice", "rice"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, Key(tt.raw))
		})
	}
}

func TestKeyIdempotent(t *testing.T) {
	inputs := []string{
		"Tomatoes", "berries", "  Green  Beans ", "glass", "bus",
		"eggs", "molasses", "chickpeas", "baking soda",
	}
	for _, raw := range inputs {
		once := Key(raw)
		assert.Equal(t, once, Key(once), "Key is not idempotent for %q", raw)
	}
}

func TestKeyMergesPluralWithSingular(t *testing.T) {
	assert.Equal(t, Key("egg"), Key("Eggs"))
	assert.Equal(t, Key("tomato"), Key("tomatoes"))
	assert.NotEqual(t, Key("bus"), "bu")
}
