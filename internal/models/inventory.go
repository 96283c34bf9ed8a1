package models

import "time"

// InventoryItem represents one stocked ingredient in the pantry.
//
// IngredientName always holds the normalized matching key, never the raw
// text the user typed. Timestamps and the usage statistics are maintained by
// the ledger; callers never set them directly.
type InventoryItem struct {
	ID             string
	IngredientName string
	Quantity       float64
	Unit           Unit

	// Lifecycle. An archived item always has Quantity == 0;
	// OriginalQuantity snapshots the last positive quantity at the moment
	// of archiving and is cleared on unarchive.
	IsArchived       bool
	OriginalQuantity float64
	ArchivedDate     *time.Time
	AddedDate        time.Time
	LastUpdated      time.Time

	// Descriptive metadata, opaque to the reconciliation algorithms.
	LowStockThreshold float64
	ExpirationDate    *time.Time
	FrequencyOfUse    string
	DefaultStoreID    string
	Brand             string
	Notes             string
	CustomTags        []string

	// Usage statistics, informational only.
	TimesRestocked         int
	TotalConsumed          float64
	AverageConsumptionRate float64
	LastUsedDate           *time.Time
}

// IsLowStock reports whether an active item has fallen to or below its
// configured threshold. Items without a threshold never report low.
func (i *InventoryItem) IsLowStock() bool {
	if i.IsArchived || i.LowStockThreshold <= 0 {
		return false
	}
	return i.Quantity <= i.LowStockThreshold
}

// IsExpired reports whether the item has passed its expiration date.
func (i *InventoryItem) IsExpired(now time.Time) bool {
	return i.ExpirationDate != nil && now.After(*i.ExpirationDate)
}

// Clone returns a deep copy so callers can hand out snapshots without
// exposing the ledger's records to direct mutation.
func (i *InventoryItem) Clone() *InventoryItem {
	c := *i
	if i.ArchivedDate != nil {
		d := *i.ArchivedDate
		c.ArchivedDate = &d
	}
	if i.ExpirationDate != nil {
		d := *i.ExpirationDate
		c.ExpirationDate = &d
	}
	if i.LastUsedDate != nil {
		d := *i.LastUsedDate
		c.LastUsedDate = &d
	}
	if i.CustomTags != nil {
		c.CustomTags = append([]string(nil), i.CustomTags...)
	}
	return &c
}
