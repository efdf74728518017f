package ledger

import "stockledger/pkg/models"

// Tx is an isolated working copy of committed state. Reads and writes act on
// the copy only; nothing is visible to other callers until the enclosing
// WithTransaction commits.
type Tx struct {
	state *state
}

// WithTransaction runs fn against a private deep copy of committed state.
// When fn returns nil the copy replaces committed state atomically; on error
// the copy is discarded, committed state is untouched and the error is
// returned unmodified. Writers are serialized, so the ledger is effectively
// single-writer: a transaction body runs to completion before the next
// commit can interleave.
func (s *Store) WithTransaction(fn func(tx *Tx) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	working := s.snapshot().clone()
	if err := fn(&Tx{state: working}); err != nil {
		return err
	}
	s.swap(working)
	return nil
}

func (t *Tx) Item(id int) (models.Item, bool) {
	item, ok := t.state.items[id]
	return item, ok
}

// ItemByBarcode returns the first item registered with the given barcode.
// Catalog creation rejects duplicate barcodes, so ties can only come from
// hydrated legacy data; which duplicate wins is unspecified beyond
// "insertion order".
func (t *Tx) ItemByBarcode(barcode string) (models.Item, bool) {
	for _, id := range t.state.itemOrder {
		if item := t.state.items[id]; item.Barcode == barcode {
			return item, true
		}
	}
	return models.Item{}, false
}

func (t *Tx) Location(id int) (models.Location, bool) {
	location, ok := t.state.locations[id]
	return location, ok
}

func (t *Tx) InventoryLevel(itemID, locationID int) (models.InventoryLevel, bool) {
	level, ok := t.state.levels[models.LevelKey{ItemID: itemID, LocationID: locationID}]
	return level, ok
}

// SaveInventoryLevel upserts a level by its (item, location) key.
func (t *Tx) SaveInventoryLevel(level models.InventoryLevel) {
	key := level.Key()
	if _, exists := t.state.levels[key]; !exists {
		t.state.levelOrder = append(t.state.levelOrder, key)
	}
	t.state.levels[key] = level
}

// SaveItem upserts a catalog item. Hydration may supply explicit IDs, so the
// ID counter is bumped to stay ahead of them.
func (t *Tx) SaveItem(item models.Item) {
	if _, exists := t.state.items[item.ID]; !exists {
		t.state.itemOrder = append(t.state.itemOrder, item.ID)
	}
	t.state.items[item.ID] = item
	if item.ID > t.state.itemSeq {
		t.state.itemSeq = item.ID
	}
}

func (t *Tx) SaveLocation(location models.Location) {
	if _, exists := t.state.locations[location.ID]; !exists {
		t.state.locationOrder = append(t.state.locationOrder, location.ID)
	}
	t.state.locations[location.ID] = location
	if location.ID > t.state.locationSeq {
		t.state.locationSeq = location.ID
	}
}

func (t *Tx) NextItemID() int {
	t.state.itemSeq++
	return t.state.itemSeq
}

func (t *Tx) NextLocationID() int {
	t.state.locationSeq++
	return t.state.locationSeq
}

// NextMovementSequence allocates the next movement sequence number. The
// allocation only becomes durable if the transaction commits.
func (t *Tx) NextMovementSequence() int64 {
	t.state.movementSeq++
	return t.state.movementSeq
}

func (t *Tx) NextAuditSequence() int64 {
	t.state.auditSeq++
	return t.state.auditSeq
}

func (t *Tx) AppendStockMovement(movement models.StockMovement) {
	t.state.movements = append(t.state.movements, movement)
}

func (t *Tx) AppendAuditLog(entry models.AuditLogEntry) {
	t.state.auditLogs = append(t.state.auditLogs, entry)
}
