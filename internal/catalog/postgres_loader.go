package catalog

import (
	"fmt"

	"stockledger/internal/ledger"
	"stockledger/internal/repository"
	"stockledger/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"go.uber.org/zap"
)

// Loader hydrates the in-memory store from the durable catalog database at
// startup. The ledger never touches the database afterwards; it only works
// against committed in-memory state.
type Loader struct {
	repository *repository.Repository
	log        *zap.Logger
}

func NewLoader(r *repository.Repository, log *zap.Logger) *Loader {
	return &Loader{repository: r, log: log}
}

type flatItemRecord struct {
	ID           int      `db:"id"`
	Name         string   `db:"name"`
	Barcode      string   `db:"barcode"`
	Unit         *string  `db:"unit"`
	Category     *string  `db:"category"`
	ReorderPoint *float64 `db:"reorder_point"`
}

type flatLocationRecord struct {
	ID                       int      `db:"id"`
	Name                     string   `db:"name"`
	Address                  *string  `db:"address"`
	DefaultLowStockThreshold *float64 `db:"default_low_stock_threshold"`
	LowStockMultiplier       *float64 `db:"low_stock_multiplier"`
}

// Hydrate loads all catalog rows into the store in one transaction.
func (l *Loader) Hydrate(store *ledger.Store) error {
	items, err := l.loadItems()
	if err != nil {
		return err
	}
	locations, err := l.loadLocations()
	if err != nil {
		return err
	}

	err = store.WithTransaction(func(tx *ledger.Tx) error {
		for _, item := range items {
			tx.SaveItem(item)
		}
		for _, location := range locations {
			tx.SaveLocation(location)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to hydrate catalog: %w", err)
	}

	l.log.Info("catalog hydrated from database",
		zap.Int("items", len(items)),
		zap.Int("locations", len(locations)),
	)
	return nil
}

func (l *Loader) loadItems() ([]models.Item, error) {
	var flat []flatItemRecord
	query := l.repository.GoquDBWrapper.
		Select("id", "name", "barcode", "unit", "category", "reorder_point").
		From("items").
		Order(goqu.I("id").Asc())

	if err := query.Executor().ScanStructs(&flat); err != nil {
		return nil, fmt.Errorf("unable to select items from database: %w", err)
	}

	items := make([]models.Item, 0, len(flat))
	for _, record := range flat {
		items = append(items, transformToItem(record))
	}
	return items, nil
}

func (l *Loader) loadLocations() ([]models.Location, error) {
	var flat []flatLocationRecord
	query := l.repository.GoquDBWrapper.
		Select("id", "name", "address", "default_low_stock_threshold", "low_stock_multiplier").
		From("locations").
		Order(goqu.I("id").Asc())

	if err := query.Executor().ScanStructs(&flat); err != nil {
		return nil, fmt.Errorf("unable to select locations from database: %w", err)
	}

	locations := make([]models.Location, 0, len(flat))
	for _, record := range flat {
		locations = append(locations, models.Location{
			ID:                       record.ID,
			Name:                     record.Name,
			Address:                  record.Address,
			DefaultLowStockThreshold: record.DefaultLowStockThreshold,
			LowStockMultiplier:       record.LowStockMultiplier,
		})
	}
	return locations, nil
}

func transformToItem(record flatItemRecord) models.Item {
	item := models.Item{
		ID:           record.ID,
		Name:         record.Name,
		Barcode:      record.Barcode,
		ReorderPoint: record.ReorderPoint,
	}
	if record.Unit != nil {
		item.Unit = *record.Unit
	}
	if record.Category != nil {
		item.Category = *record.Category
	}
	return item
}
