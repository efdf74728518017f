package models

type Location struct {
	ID                       int      `json:"id" db:"id"`
	Name                     string   `json:"name" db:"name"`
	Address                  *string  `json:"address,omitempty" db:"address"`
	DefaultLowStockThreshold *float64 `json:"default_low_stock_threshold,omitempty" db:"default_low_stock_threshold"`
	LowStockMultiplier       *float64 `json:"low_stock_multiplier,omitempty" db:"low_stock_multiplier"`
}
