package models

import "time"

type MovementType string

const (
	MovementReceive MovementType = "RECEIVE"
	MovementConsume MovementType = "CONSUME"
	MovementAdjust  MovementType = "ADJUST"
)

func (t MovementType) Valid() bool {
	switch t {
	case MovementReceive, MovementConsume, MovementAdjust:
		return true
	}
	return false
}

// StockMovement is one committed change to an inventory level. Movements are
// append-only; Sequence is assigned inside the transaction and only becomes
// durable on commit, so an aborted transaction never consumes a number.
type StockMovement struct {
	Sequence         int64          `json:"sequence"`
	ItemID           int            `json:"item_id"`
	LocationID       int            `json:"location_id"`
	MovementType     MovementType   `json:"movement_type"`
	Quantity         float64        `json:"quantity"` // signed delta
	PreviousQuantity float64        `json:"previous_quantity"`
	NewQuantity      float64        `json:"new_quantity"`
	Reason           string         `json:"reason,omitempty"`
	UserID           string         `json:"user_id,omitempty"`
	ReferenceToken   string         `json:"reference_token,omitempty"`
	Metadata         map[string]any `json:"metadata,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
}
