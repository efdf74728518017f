package models

type MovementRequest struct {
	ItemID         *int           `json:"item_id"`
	Barcode        string         `json:"barcode"`
	LocationID     int            `json:"location_id" binding:"required"`
	MovementType   MovementType   `json:"movement_type" binding:"required"`
	Quantity       *float64       `json:"quantity"`
	Reason         string         `json:"reason"`
	ReferenceToken string         `json:"reference_token"`
	Metadata       map[string]any `json:"metadata"`

	// Filled by the handler from the authenticated request, never from the body.
	UserID    string `json:"-"`
	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}

type ItemRequest struct {
	Name         string   `json:"name" binding:"required"`
	Barcode      string   `json:"barcode" binding:"required"`
	Unit         string   `json:"unit"`
	Category     string   `json:"category"`
	ReorderPoint *float64 `json:"reorder_point"`
}

type LocationRequest struct {
	Name                     string   `json:"name" binding:"required"`
	Address                  *string  `json:"address"`
	DefaultLowStockThreshold *float64 `json:"default_low_stock_threshold"`
	LowStockMultiplier       *float64 `json:"low_stock_multiplier"`
}
