package models

// Item is a catalog entry. Items are created through catalog management and
// are immutable while the ledger is applying movements against them.
type Item struct {
	ID           int      `json:"id" db:"id"`
	Name         string   `json:"name" db:"name"`
	Barcode      string   `json:"barcode" db:"barcode"`
	Unit         string   `json:"unit,omitempty" db:"unit"`
	Category     string   `json:"category,omitempty" db:"category"`
	ReorderPoint *float64 `json:"reorder_point,omitempty" db:"reorder_point"`
}
