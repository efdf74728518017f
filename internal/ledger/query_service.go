package ledger

import (
	"sort"
	"time"

	"stockledger/pkg/models"
)

// QueryService provides filtered read views over committed state. Each call
// reads one snapshot, so results are internally consistent even while
// transactions commit concurrently.
type QueryService struct {
	store *Store
}

func NewQueryService(store *Store) *QueryService {
	return &QueryService{store: store}
}

type MovementFilter struct {
	ItemID       *int
	LocationID   *int
	MovementType *models.MovementType
	UserID       *string
	Since        *time.Time
	Limit        *int
}

type StockMovementView struct {
	models.StockMovement
	ItemName     string `json:"item_name,omitempty"`
	LocationName string `json:"location_name,omitempty"`
}

// ListStockMovements returns movements matching the filter, newest first by
// sequence, truncated to the optional limit.
func (s *QueryService) ListStockMovements(filter MovementFilter) []StockMovementView {
	st := s.store.snapshot()
	views := []StockMovementView{}
	for i := len(st.movements) - 1; i >= 0; i-- {
		movement := st.movements[i]
		if filter.ItemID != nil && movement.ItemID != *filter.ItemID {
			continue
		}
		if filter.LocationID != nil && movement.LocationID != *filter.LocationID {
			continue
		}
		if filter.MovementType != nil && movement.MovementType != *filter.MovementType {
			continue
		}
		if filter.UserID != nil && movement.UserID != *filter.UserID {
			continue
		}
		if filter.Since != nil && movement.CreatedAt.Before(*filter.Since) {
			continue
		}

		view := StockMovementView{StockMovement: movement}
		if item, ok := st.items[movement.ItemID]; ok {
			view.ItemName = item.Name
		}
		if location, ok := st.locations[movement.LocationID]; ok {
			view.LocationName = location.Name
		}
		views = append(views, view)

		if filter.Limit != nil && len(views) >= *filter.Limit {
			break
		}
	}
	return views
}

type AuditLogFilter struct {
	EntityID *int
	UserID   *string
	Since    *time.Time
	Limit    *int
}

type AuditLogView struct {
	models.AuditLogEntry
	EntityName string `json:"entity_name,omitempty"`
}

// ListAuditLogs returns audit entries matching the filter, newest first.
func (s *QueryService) ListAuditLogs(filter AuditLogFilter) []AuditLogView {
	st := s.store.snapshot()
	views := []AuditLogView{}
	for i := len(st.auditLogs) - 1; i >= 0; i-- {
		entry := st.auditLogs[i]
		if filter.EntityID != nil && entry.EntityID != *filter.EntityID {
			continue
		}
		if filter.UserID != nil && entry.UserID != *filter.UserID {
			continue
		}
		if filter.Since != nil && entry.CreatedAt.Before(*filter.Since) {
			continue
		}

		view := AuditLogView{AuditLogEntry: entry}
		if item, ok := st.items[entry.EntityID]; ok {
			view.EntityName = item.Name
		}
		views = append(views, view)

		if filter.Limit != nil && len(views) >= *filter.Limit {
			break
		}
	}
	return views
}

type LowStockFilter struct {
	LocationID *int
}

type LowStockItem struct {
	ItemID              int     `json:"item_id"`
	ItemName            string  `json:"item_name"`
	LocationID          int     `json:"location_id"`
	LocationName        string  `json:"location_name"`
	Quantity            float64 `json:"quantity"`
	Threshold           float64 `json:"threshold"`
	UnitsBelowThreshold float64 `json:"units_below_threshold"`
}

// LowStockItems returns every level whose quantity is strictly below its
// threshold, most depleted first. The sort is stable so equally depleted
// levels keep their creation order.
func (s *QueryService) LowStockItems(filter LowStockFilter) []LowStockItem {
	st := s.store.snapshot()
	results := []LowStockItem{}
	for _, key := range st.levelOrder {
		level := st.levels[key]
		if filter.LocationID != nil && level.LocationID != *filter.LocationID {
			continue
		}
		item := st.items[level.ItemID]
		location := st.locations[level.LocationID]
		threshold := DetermineLowStockThreshold(item, location, &level)
		if level.Quantity >= threshold {
			continue
		}
		results = append(results, LowStockItem{
			ItemID:              level.ItemID,
			ItemName:            item.Name,
			LocationID:          level.LocationID,
			LocationName:        location.Name,
			Quantity:            level.Quantity,
			Threshold:           threshold,
			UnitsBelowThreshold: threshold - level.Quantity,
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].UnitsBelowThreshold > results[j].UnitsBelowThreshold
	})
	return results
}

type InventoryStatusFilter struct {
	LocationID *int
}

type InventoryStatusView struct {
	ItemID       int     `json:"item_id"`
	ItemName     string  `json:"item_name"`
	LocationID   int     `json:"location_id"`
	LocationName string  `json:"location_name"`
	Quantity     float64 `json:"quantity"`
	Threshold    float64 `json:"threshold"`
	IsLowStock   bool    `json:"is_low_stock"`
	StockStatus  string  `json:"stock_status"` // "low" or "adequate"
}

// InventoryStatus projects every matching level with its current threshold
// and a two-value stock status.
func (s *QueryService) InventoryStatus(filter InventoryStatusFilter) []InventoryStatusView {
	st := s.store.snapshot()
	views := []InventoryStatusView{}
	for _, key := range st.levelOrder {
		level := st.levels[key]
		if filter.LocationID != nil && level.LocationID != *filter.LocationID {
			continue
		}
		item := st.items[level.ItemID]
		location := st.locations[level.LocationID]
		threshold := DetermineLowStockThreshold(item, location, &level)
		isLow := level.Quantity < threshold
		status := "adequate"
		if isLow {
			status = "low"
		}
		views = append(views, InventoryStatusView{
			ItemID:       level.ItemID,
			ItemName:     item.Name,
			LocationID:   level.LocationID,
			LocationName: location.Name,
			Quantity:     level.Quantity,
			Threshold:    threshold,
			IsLowStock:   isLow,
			StockStatus:  status,
		})
	}
	return views
}
