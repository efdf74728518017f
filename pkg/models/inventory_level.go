package models

import "time"

// LevelKey identifies one inventory level. A struct key with value equality
// avoids the delimiter collisions of concatenated string keys.
type LevelKey struct {
	ItemID     int `json:"item_id"`
	LocationID int `json:"location_id"`
}

// InventoryLevel tracks the on-hand quantity of one item at one location.
// LowStockThreshold is an explicit override; nil means the threshold is
// derived from the item's reorder point and the location's multiplier on
// every movement.
type InventoryLevel struct {
	ItemID            int       `json:"item_id"`
	LocationID        int       `json:"location_id"`
	Quantity          float64   `json:"quantity"`
	LowStockThreshold *float64  `json:"low_stock_threshold,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (l InventoryLevel) Key() LevelKey {
	return LevelKey{ItemID: l.ItemID, LocationID: l.LocationID}
}
