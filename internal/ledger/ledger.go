// Package ledger owns the pantry's inventory records and their
// active/archived lifecycle. All mutation goes through the ledger's
// operations; callers only ever see cloned snapshots. The in-memory
// collection is the source of truth during a session, saving it anywhere is
// the embedding application's concern.
package ledger

import (
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"larder/internal/models"
	"larder/internal/monitoring"
	"larder/internal/normalize"
	"larder/internal/units"
)

// Metadata carries the descriptive fields a caller may set on upsert. Nil
// pointers leave the stored value untouched, so a purchase-driven restock can
// add quantity without clobbering thresholds a manual edit configured.
type Metadata struct {
	LowStockThreshold *float64
	ExpirationDate    *time.Time
	FrequencyOfUse    *string
	DefaultStoreID    *string
	Brand             *string
	Notes             *string
	CustomTags        []string
}

// Ledger is the owned collection of inventory records with an id index.
// Operations are synchronous and complete before returning; there is no
// internal concurrency.
type Ledger struct {
	items []*models.InventoryItem
	byID  map[string]*models.InventoryItem

	log     *slog.Logger
	monitor *monitoring.Monitor
	now     func() time.Time
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithLogger attaches a structured logger for mutation logging.
func WithLogger(log *slog.Logger) Option {
	return func(l *Ledger) { l.log = log }
}

// WithMonitor attaches metric collection.
func WithMonitor(m *monitoring.Monitor) Option {
	return func(l *Ledger) { l.monitor = m }
}

// WithClock overrides the time source, used by tests.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// New creates an empty ledger.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		byID: make(map[string]*models.InventoryItem),
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load replaces the ledger's contents with the supplied records, cloning
// them so the caller's slice stays independent. Ingredient names are
// re-normalized defensively.
func (l *Ledger) Load(items []*models.InventoryItem) {
	l.items = l.items[:0]
	l.byID = make(map[string]*models.InventoryItem, len(items))
	for _, item := range items {
		c := item.Clone()
		c.IngredientName = normalize.Key(c.IngredientName)
		if c.ID == "" {
			c.ID = uuid.New().String()
		}
		l.items = append(l.items, c)
		l.byID[c.ID] = c
	}
}

// Items returns snapshots of every record, active and archived, in insertion
// order.
func (l *Ledger) Items() []*models.InventoryItem {
	out := make([]*models.InventoryItem, 0, len(l.items))
	for _, item := range l.items {
		out = append(out, item.Clone())
	}
	return out
}

// ActiveItems returns snapshots of the active records only.
func (l *Ledger) ActiveItems() []*models.InventoryItem {
	out := make([]*models.InventoryItem, 0, len(l.items))
	for _, item := range l.items {
		if !item.IsArchived {
			out = append(out, item.Clone())
		}
	}
	return out
}

// Get returns a snapshot of the record with the given id.
func (l *Ledger) Get(id string) (*models.InventoryItem, error) {
	item, ok := l.byID[id]
	if !ok {
		return nil, ErrUnknownID
	}
	return item.Clone(), nil
}

// LookupActive returns a snapshot of the first active record whose
// normalized name matches, or false when none exists.
func (l *Ledger) LookupActive(name string) (*models.InventoryItem, bool) {
	if item := l.findActive(normalize.Key(name)); item != nil {
		return item.Clone(), true
	}
	return nil, false
}

// LookupAny returns a snapshot of a record matching the normalized name,
// preferring an active match over an archived one.
func (l *Ledger) LookupAny(name string) (*models.InventoryItem, bool) {
	key := normalize.Key(name)
	if item := l.findActive(key); item != nil {
		return item.Clone(), true
	}
	for _, item := range l.items {
		if item.IsArchived && item.IngredientName == key {
			return item.Clone(), true
		}
	}
	return nil, false
}

// Upsert adds stock under the given name and unit, merging with an existing
// record for the same (normalized name, unit) pair. An archived record is
// reactivated when the resulting quantity is positive. A brand new record
// with non-positive quantity is created directly in the archived state
// rather than rejected, and a negative adjustment that drains an active
// record clamps it to zero and archives it, as Deduct does. It returns a
// snapshot of the resulting record.
func (l *Ledger) Upsert(name string, quantity float64, unit models.Unit, meta Metadata) *models.InventoryItem {
	key := normalize.Key(name)
	now := l.now()

	item := l.findMatch(key, unit, false)
	if item == nil {
		item = l.findMatch(key, unit, true)
	}

	switch {
	case item == nil:
		item = &models.InventoryItem{
			ID:             uuid.New().String(),
			IngredientName: key,
			Unit:           unit,
			AddedDate:      now,
		}
		if quantity > 0 {
			item.Quantity = quantity
		} else {
			item.IsArchived = true
			item.OriginalQuantity = 0
			item.ArchivedDate = &now
		}
		l.items = append(l.items, item)
		l.byID[item.ID] = item
		l.log.Debug("inventory item created",
			"ingredient", key, "unit", unit, "quantity", item.Quantity, "archived", item.IsArchived)

	case item.IsArchived:
		if item.Quantity+quantity > 0 {
			item.Quantity += quantity
			item.IsArchived = false
			item.ArchivedDate = nil
			item.OriginalQuantity = 0
			item.TimesRestocked++
			l.monitor.RecordArchiveTransition("unarchived")
			l.log.Info("inventory item restocked from archive",
				"ingredient", key, "unit", unit, "quantity", item.Quantity)
		}

	default:
		before := item.Quantity
		item.Quantity += quantity
		if item.Quantity <= 0 {
			// A negative adjustment can drain the record; an active
			// record never holds negative stock.
			item.Quantity = 0
			item.IsArchived = true
			if before > 0 {
				item.OriginalQuantity = before
			} else {
				item.OriginalQuantity = 0
			}
			item.ArchivedDate = &now
			l.monitor.RecordArchiveTransition("archived")
			l.log.Info("inventory item drained by adjustment",
				"ingredient", key, "unit", unit, "adjustment", quantity)
		} else {
			l.log.Debug("inventory item restocked",
				"ingredient", key, "unit", unit, "quantity", item.Quantity)
		}
	}

	applyMetadata(item, meta)
	item.LastUpdated = now
	return item.Clone()
}

// Deduct removes the given amount from the active record matching the
// normalized name. The requested amount is converted into the record's unit
// when they differ; an impossible conversion fails the deduction with no
// effect. An insufficient balance does not fail the deduction, the quantity
// clamps at zero and the record is archived. It returns a snapshot of the
// updated record and the amount actually converted into the record's unit.
func (l *Ledger) Deduct(name string, quantity float64, unit models.Unit) (*models.InventoryItem, float64, error) {
	key := normalize.Key(name)
	item := l.findActive(key)
	if item == nil {
		return nil, 0, ErrNotFound
	}

	amount := quantity
	if unit != item.Unit {
		converted, err := units.Convert(quantity, unit, item.Unit)
		l.monitor.RecordConversion("ledger", err != nil)
		if err != nil {
			return nil, 0, err
		}
		amount = converted
	}

	now := l.now()
	before := item.Quantity
	item.Quantity = before - amount
	item.TotalConsumed += amount
	item.LastUsedDate = &now
	item.LastUpdated = now
	if days := now.Sub(item.AddedDate).Hours() / 24; days >= 1 {
		item.AverageConsumptionRate = item.TotalConsumed / days
	} else {
		item.AverageConsumptionRate = item.TotalConsumed
	}
	l.monitor.RecordDeduction()

	if item.Quantity <= 0 {
		item.Quantity = 0
		item.IsArchived = true
		item.OriginalQuantity = before
		item.ArchivedDate = &now
		l.monitor.RecordArchiveTransition("archived")
		l.log.Info("inventory item depleted",
			"ingredient", key, "unit", item.Unit, "deducted", amount)
	} else {
		l.log.Debug("inventory item deducted",
			"ingredient", key, "unit", item.Unit, "deducted", amount, "remaining", item.Quantity)
	}

	return item.Clone(), amount, nil
}

// Archive forces a record into the archived state, snapshotting the last
// positive quantity. Archiving an already-archived record is a no-op.
func (l *Ledger) Archive(id string) (*models.InventoryItem, error) {
	item, ok := l.byID[id]
	if !ok {
		return nil, ErrUnknownID
	}
	if item.IsArchived {
		return item.Clone(), nil
	}

	now := l.now()
	if item.Quantity > 0 {
		item.OriginalQuantity = item.Quantity
	} else {
		item.OriginalQuantity = 0
	}
	item.Quantity = 0
	item.IsArchived = true
	item.ArchivedDate = &now
	item.LastUpdated = now
	l.monitor.RecordArchiveTransition("archived")
	l.log.Info("inventory item archived", "ingredient", item.IngredientName, "unit", item.Unit)
	return item.Clone(), nil
}

// Unarchive restores an archived record to active. The new quantity is the
// supplied value when positive, else the archived snapshot, else 1.
func (l *Ledger) Unarchive(id string, quantity *float64) (*models.InventoryItem, error) {
	item, ok := l.byID[id]
	if !ok {
		return nil, ErrUnknownID
	}
	if !item.IsArchived {
		return nil, ErrNotArchived
	}

	switch {
	case quantity != nil && *quantity > 0:
		item.Quantity = *quantity
	case item.OriginalQuantity > 0:
		item.Quantity = item.OriginalQuantity
	default:
		item.Quantity = 1
	}

	now := l.now()
	item.IsArchived = false
	item.ArchivedDate = nil
	item.OriginalQuantity = 0
	item.TimesRestocked++
	item.LastUpdated = now
	l.monitor.RecordArchiveTransition("unarchived")
	l.log.Info("inventory item unarchived",
		"ingredient", item.IngredientName, "unit", item.Unit, "quantity", item.Quantity)
	return item.Clone(), nil
}

func (l *Ledger) findActive(key string) *models.InventoryItem {
	for _, item := range l.items {
		if !item.IsArchived && item.IngredientName == key {
			return item
		}
	}
	return nil
}

func (l *Ledger) findMatch(key string, unit models.Unit, archived bool) *models.InventoryItem {
	for _, item := range l.items {
		if item.IsArchived == archived && item.IngredientName == key && item.Unit == unit {
			return item
		}
	}
	return nil
}

func applyMetadata(item *models.InventoryItem, meta Metadata) {
	if meta.LowStockThreshold != nil {
		item.LowStockThreshold = *meta.LowStockThreshold
	}
	if meta.ExpirationDate != nil {
		item.ExpirationDate = meta.ExpirationDate
	}
	if meta.FrequencyOfUse != nil {
		item.FrequencyOfUse = *meta.FrequencyOfUse
	}
	if meta.DefaultStoreID != nil {
		item.DefaultStoreID = *meta.DefaultStoreID
	}
	if meta.Brand != nil {
		item.Brand = *meta.Brand
	}
	if meta.Notes != nil {
		item.Notes = *meta.Notes
	}
	if meta.CustomTags != nil {
		item.CustomTags = append([]string(nil), meta.CustomTags...)
	}
}
