package models

import (
	"errors"
	"time"
)

// ShoppingListStatus represents the lifecycle state of a shopping list
type ShoppingListStatus string

const (
	// Shopping list statuses
	ListStatusActive    ShoppingListStatus = "active"
	ListStatusCompleted ShoppingListStatus = "completed"
	ListStatusArchived  ShoppingListStatus = "archived"
)

var (
	// ErrListNotComplete is returned when completing a list that still has
	// unpurchased items, or an empty list.
	ErrListNotComplete = errors.New("shopping list is not fully purchased")
	// ErrListNotCompleted is returned when archiving a list that has not
	// been completed first.
	ErrListNotCompleted = errors.New("shopping list has not been completed")
	// ErrListItemNotFound is returned when a purchased toggle references an
	// unknown item id.
	ErrListItemNotFound = errors.New("shopping list item not found")
)

// RecipeSource records which recipe contributed how much of an item's need,
// so a shopping list entry stays traceable after aggregation.
type RecipeSource struct {
	RecipeName string
	Quantity   float64
}

// ShoppingListItem represents one line of a shopping list. IngredientName is
// normalized; RecipeSources may be empty for manually-added items.
type ShoppingListItem struct {
	ID             string
	IngredientName string
	NeededQuantity float64
	Unit           Unit
	RecipeSources  []RecipeSource
	Purchased      bool
	StoreID        string
}

// ShoppingList wraps a set of aggregated items with a lifecycle:
// active -> completed -> archived. A list is completed only when it is
// non-empty and every item is purchased; archiving requires completion.
type ShoppingList struct {
	ID          string
	Name        string
	CreatedAt   time.Time
	Items       []ShoppingListItem
	Status      ShoppingListStatus
	CompletedAt *time.Time
	ArchivedAt  *time.Time
}

// MarkPurchased sets the purchased flag on one item.
func (l *ShoppingList) MarkPurchased(itemID string, purchased bool) error {
	for i := range l.Items {
		if l.Items[i].ID == itemID {
			l.Items[i].Purchased = purchased
			return nil
		}
	}
	return ErrListItemNotFound
}

// FullyPurchased reports whether the list is non-empty and every item has
// been purchased.
func (l *ShoppingList) FullyPurchased() bool {
	if len(l.Items) == 0 {
		return false
	}
	for _, item := range l.Items {
		if !item.Purchased {
			return false
		}
	}
	return true
}

// Complete transitions the list to completed. It fails unless the list is
// fully purchased.
func (l *ShoppingList) Complete(now time.Time) error {
	if !l.FullyPurchased() {
		return ErrListNotComplete
	}
	l.Status = ListStatusCompleted
	l.CompletedAt = &now
	return nil
}

// Archive transitions a completed list to archived.
func (l *ShoppingList) Archive(now time.Time) error {
	if l.Status != ListStatusCompleted {
		return ErrListNotCompleted
	}
	l.Status = ListStatusArchived
	l.ArchivedAt = &now
	return nil
}
