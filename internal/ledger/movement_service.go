package ledger

import (
	"math"
	"strconv"
	"strings"
	"time"

	"stockledger/pkg/apperrors"
	"stockledger/pkg/models"

	"go.uber.org/zap"
)

type MovementService struct {
	store *Store
	log   *zap.Logger
}

func NewMovementService(store *Store, log *zap.Logger) *MovementService {
	return &MovementService{store: store, log: log}
}

type ItemView struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Barcode  string `json:"barcode"`
	Unit     string `json:"unit,omitempty"`
	Category string `json:"category,omitempty"`
}

type LocationView struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type LevelView struct {
	Quantity          float64 `json:"quantity"`
	LowStockThreshold float64 `json:"low_stock_threshold"`
	IsLowStock        bool    `json:"is_low_stock"`
}

type MovementResult struct {
	Item             ItemView             `json:"item"`
	Location         LocationView         `json:"location"`
	Movement         models.StockMovement `json:"movement"`
	Level            LevelView            `json:"level"`
	PreviousQuantity float64              `json:"previous_quantity"`
	NewQuantity      float64              `json:"new_quantity"`
	Difference       float64              `json:"difference"`
	Threshold        float64              `json:"threshold"`
	IsLowStock       bool                 `json:"is_low_stock"`
}

// ProcessMovement applies one RECEIVE, CONSUME or ADJUST as a single
// transaction: the level update, the movement record and the matching audit
// entry commit together or not at all.
func (s *MovementService) ProcessMovement(req models.MovementRequest) (*MovementResult, error) {
	var result *MovementResult
	err := s.store.WithTransaction(func(tx *Tx) error {
		r, err := applyMovement(tx, req)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("stock movement committed",
		zap.Int64("sequence", result.Movement.Sequence),
		zap.String("movement_type", string(result.Movement.MovementType)),
		zap.Int("item_id", result.Movement.ItemID),
		zap.Int("location_id", result.Movement.LocationID),
		zap.Float64("new_quantity", result.NewQuantity),
	)
	return result, nil
}

func applyMovement(tx *Tx, req models.MovementRequest) (*MovementResult, error) {
	if !req.MovementType.Valid() {
		return nil, apperrors.InvalidArgument("unsupported movement type %q", string(req.MovementType))
	}
	if req.Quantity == nil {
		return nil, apperrors.InvalidArgument("quantity is required")
	}
	quantity := *req.Quantity
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return nil, apperrors.InvalidArgument("quantity must be a finite number")
	}
	switch req.MovementType {
	case models.MovementReceive, models.MovementConsume:
		if quantity <= 0 {
			return nil, apperrors.InvalidArgument("quantity must be greater than zero for %s", string(req.MovementType))
		}
	case models.MovementAdjust:
		if quantity < 0 {
			return nil, apperrors.InvalidArgument("quantity must not be negative for ADJUST")
		}
	}

	item, err := resolveItem(tx, req)
	if err != nil {
		return nil, err
	}
	location, ok := tx.Location(req.LocationID)
	if !ok {
		return nil, apperrors.NotFound("location", strconv.Itoa(req.LocationID))
	}

	now := time.Now().UTC()
	level, exists := tx.InventoryLevel(item.ID, location.ID)
	if !exists {
		if req.MovementType == models.MovementConsume {
			return nil, &apperrors.MissingInventoryLevelError{ItemID: item.ID, LocationID: location.ID}
		}
		level = models.InventoryLevel{
			ItemID:     item.ID,
			LocationID: location.ID,
			CreatedAt:  now,
		}
	}

	previous := level.Quantity
	var newQuantity float64
	switch req.MovementType {
	case models.MovementReceive:
		newQuantity = previous + quantity
	case models.MovementConsume:
		newQuantity = previous - quantity
		if newQuantity < 0 {
			return nil, &apperrors.InsufficientInventoryError{
				ItemID:     item.ID,
				LocationID: location.ID,
				Requested:  quantity,
				Available:  previous,
			}
		}
	case models.MovementAdjust:
		// ADJUST targets an absolute quantity; the recorded delta is derived.
		newQuantity = quantity
	}
	difference := newQuantity - previous

	// Recomputed on every movement rather than cached, so catalog and
	// location changes take effect going forward. An explicit per-level
	// override still wins inside DetermineLowStockThreshold.
	threshold := DetermineLowStockThreshold(item, location, &level)

	level.Quantity = newQuantity
	level.UpdatedAt = now
	tx.SaveInventoryLevel(level)

	movement := models.StockMovement{
		Sequence:         tx.NextMovementSequence(),
		ItemID:           item.ID,
		LocationID:       location.ID,
		MovementType:     req.MovementType,
		Quantity:         difference,
		PreviousQuantity: previous,
		NewQuantity:      newQuantity,
		Reason:           req.Reason,
		UserID:           req.UserID,
		ReferenceToken:   req.ReferenceToken,
		Metadata:         req.Metadata,
		CreatedAt:        now,
	}
	tx.AppendStockMovement(movement)

	changes := map[string]any{
		"movement_type":     string(req.MovementType),
		"previous_quantity": previous,
		"new_quantity":      newQuantity,
		"difference":        difference,
	}
	if req.Reason != "" {
		changes["reason"] = req.Reason
	}
	if req.ReferenceToken != "" {
		changes["reference_token"] = req.ReferenceToken
	}
	if len(req.Metadata) > 0 {
		changes["metadata"] = req.Metadata
	}

	tx.AppendAuditLog(models.AuditLogEntry{
		ID:         tx.NextAuditSequence(),
		EntityType: "inventory_item",
		EntityID:   item.ID,
		Action:     "stock_" + strings.ToLower(string(req.MovementType)),
		UserID:     req.UserID,
		Changes:    changes,
		IPAddress:  req.IPAddress,
		UserAgent:  req.UserAgent,
		CreatedAt:  now,
	})

	isLowStock := newQuantity < threshold
	return &MovementResult{
		Item: ItemView{
			ID:       item.ID,
			Name:     item.Name,
			Barcode:  item.Barcode,
			Unit:     item.Unit,
			Category: item.Category,
		},
		Location: LocationView{ID: location.ID, Name: location.Name},
		Movement: movement,
		Level: LevelView{
			Quantity:          newQuantity,
			LowStockThreshold: threshold,
			IsLowStock:        isLowStock,
		},
		PreviousQuantity: previous,
		NewQuantity:      newQuantity,
		Difference:       difference,
		Threshold:        threshold,
		IsLowStock:       isLowStock,
	}, nil
}

func resolveItem(tx *Tx, req models.MovementRequest) (models.Item, error) {
	if req.ItemID == nil && req.Barcode == "" {
		return models.Item{}, apperrors.InvalidArgument("item_id or barcode is required")
	}
	if req.ItemID != nil {
		item, ok := tx.Item(*req.ItemID)
		if !ok {
			return models.Item{}, apperrors.NotFound("item", strconv.Itoa(*req.ItemID))
		}
		return item, nil
	}
	item, ok := tx.ItemByBarcode(req.Barcode)
	if !ok {
		return models.Item{}, apperrors.NotFound("item", req.Barcode)
	}
	return item, nil
}
