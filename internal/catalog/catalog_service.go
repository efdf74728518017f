package catalog

import (
	"stockledger/internal/ledger"
	"stockledger/pkg/apperrors"
	"stockledger/pkg/models"

	"go.uber.org/zap"
)

// Service manages the item and location catalog. Catalog records live in the
// same committed store as the ledger, so creations are transactional too.
type Service struct {
	store *ledger.Store
	log   *zap.Logger
}

func NewService(store *ledger.Store, log *zap.Logger) *Service {
	return &Service{store: store, log: log}
}

func (s *Service) CreateItem(req models.ItemRequest) (*models.Item, error) {
	var item models.Item
	err := s.store.WithTransaction(func(tx *ledger.Tx) error {
		if _, exists := tx.ItemByBarcode(req.Barcode); exists {
			return apperrors.InvalidArgument("barcode %q is already registered", req.Barcode)
		}
		item = models.Item{
			ID:           tx.NextItemID(),
			Name:         req.Name,
			Barcode:      req.Barcode,
			Unit:         req.Unit,
			Category:     req.Category,
			ReorderPoint: req.ReorderPoint,
		}
		tx.SaveItem(item)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("catalog item created", zap.Int("item_id", item.ID), zap.String("barcode", item.Barcode))
	return &item, nil
}

func (s *Service) CreateLocation(req models.LocationRequest) (*models.Location, error) {
	var location models.Location
	err := s.store.WithTransaction(func(tx *ledger.Tx) error {
		location = models.Location{
			ID:                       tx.NextLocationID(),
			Name:                     req.Name,
			Address:                  req.Address,
			DefaultLowStockThreshold: req.DefaultLowStockThreshold,
			LowStockMultiplier:       req.LowStockMultiplier,
		}
		tx.SaveLocation(location)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("catalog location created", zap.Int("location_id", location.ID))
	return &location, nil
}

func (s *Service) Items() []models.Item {
	return s.store.Items()
}

func (s *Service) Locations() []models.Location {
	return s.store.Locations()
}
