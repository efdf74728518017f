package ledger

import (
	"math"

	"stockledger/pkg/models"
)

const defaultReorderPoint = 10

// DetermineLowStockThreshold resolves the threshold in effect for one
// item/location pair. An explicit override stored on the level always wins
// unchanged; otherwise the threshold is derived from the item's reorder
// point and the location's multiplier, rounded and floored at 1.
func DetermineLowStockThreshold(item models.Item, location models.Location, level *models.InventoryLevel) float64 {
	if level != nil && level.LowStockThreshold != nil {
		return *level.LowStockThreshold
	}

	reorderPoint := float64(defaultReorderPoint)
	if item.ReorderPoint != nil {
		reorderPoint = *item.ReorderPoint
	}
	multiplier := 1.0
	if location.LowStockMultiplier != nil {
		multiplier = *location.LowStockMultiplier
	}

	threshold := math.Round(reorderPoint * multiplier)
	if threshold < 1 {
		threshold = 1
	}
	return threshold
}

type ThresholdInput struct {
	ReorderPoint *float64 `json:"reorder_point" form:"reorder_point"`
	LeadTimeDays *float64 `json:"lead_time" form:"lead_time"`
	SafetyStock  *float64 `json:"safety_stock" form:"safety_stock"`
}

// ComputeLowStockThreshold is the standalone planning formula: the reorder
// point plus roughly two units of buffer per week of supplier lead time plus
// any safety stock. It is independent of stored levels.
func ComputeLowStockThreshold(in ThresholdInput) float64 {
	threshold := float64(defaultReorderPoint)
	if in.ReorderPoint != nil {
		threshold = *in.ReorderPoint
	}
	if in.LeadTimeDays != nil {
		threshold += math.Ceil(*in.LeadTimeDays/7) * 2
	}
	if in.SafetyStock != nil {
		threshold += *in.SafetyStock
	}
	return threshold
}
