package ledger

import (
	"sync"

	"stockledger/pkg/models"
)

// state is one version of committed ledger data. Versions are treated as
// immutable: transactions work on a deep copy and the Store swaps the whole
// pointer on commit, so a reader holding an older snapshot keeps a
// consistent point-in-time view. Pointer fields and metadata maps inside
// records are never mutated in place, which is what makes struct copies in
// clone sufficient.
type state struct {
	items         map[int]models.Item
	itemOrder     []int
	locations     map[int]models.Location
	locationOrder []int
	levels        map[models.LevelKey]models.InventoryLevel
	levelOrder    []models.LevelKey
	movements     []models.StockMovement
	auditLogs     []models.AuditLogEntry

	itemSeq     int
	locationSeq int
	movementSeq int64
	auditSeq    int64
}

func newState() *state {
	return &state{
		items:     make(map[int]models.Item),
		locations: make(map[int]models.Location),
		levels:    make(map[models.LevelKey]models.InventoryLevel),
	}
}

func (s *state) clone() *state {
	next := &state{
		items:         make(map[int]models.Item, len(s.items)),
		itemOrder:     append([]int(nil), s.itemOrder...),
		locations:     make(map[int]models.Location, len(s.locations)),
		locationOrder: append([]int(nil), s.locationOrder...),
		levels:        make(map[models.LevelKey]models.InventoryLevel, len(s.levels)),
		levelOrder:    append([]models.LevelKey(nil), s.levelOrder...),
		movements:     append([]models.StockMovement(nil), s.movements...),
		auditLogs:     append([]models.AuditLogEntry(nil), s.auditLogs...),
		itemSeq:       s.itemSeq,
		locationSeq:   s.locationSeq,
		movementSeq:   s.movementSeq,
		auditSeq:      s.auditSeq,
	}
	for id, item := range s.items {
		next.items[id] = item
	}
	for id, location := range s.locations {
		next.locations[id] = location
	}
	for key, level := range s.levels {
		next.levels[key] = level
	}
	return next
}

// Store holds the committed ledger state: catalog items and locations,
// inventory levels, the movement log, the audit log and the sequence
// counters. All mutations go through WithTransaction.
type Store struct {
	txMu sync.Mutex // serializes clone -> callback -> swap

	mu        sync.RWMutex
	committed *state
}

func NewStore() *Store {
	return &Store{committed: newState()}
}

func (s *Store) snapshot() *state {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.committed
}

func (s *Store) swap(next *state) {
	s.mu.Lock()
	s.committed = next
	s.mu.Unlock()
}

// Items returns catalog items in insertion order.
func (s *Store) Items() []models.Item {
	st := s.snapshot()
	items := make([]models.Item, 0, len(st.itemOrder))
	for _, id := range st.itemOrder {
		items = append(items, st.items[id])
	}
	return items
}

// Locations returns catalog locations in insertion order.
func (s *Store) Locations() []models.Location {
	st := s.snapshot()
	locations := make([]models.Location, 0, len(st.locationOrder))
	for _, id := range st.locationOrder {
		locations = append(locations, st.locations[id])
	}
	return locations
}

// InventoryLevels returns committed levels in creation order.
func (s *Store) InventoryLevels() []models.InventoryLevel {
	st := s.snapshot()
	levels := make([]models.InventoryLevel, 0, len(st.levelOrder))
	for _, key := range st.levelOrder {
		levels = append(levels, st.levels[key])
	}
	return levels
}

// StockMovements returns the committed movement log in append order.
func (s *Store) StockMovements() []models.StockMovement {
	st := s.snapshot()
	return append([]models.StockMovement(nil), st.movements...)
}

// AuditLogs returns the committed audit log in append order.
func (s *Store) AuditLogs() []models.AuditLogEntry {
	st := s.snapshot()
	return append([]models.AuditLogEntry(nil), st.auditLogs...)
}
