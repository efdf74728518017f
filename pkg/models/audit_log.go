package models

import "time"

// AuditLogEntry is written 1:1 with each StockMovement in the same
// transaction. Entries are append-only and never mutated after commit.
type AuditLogEntry struct {
	ID         int64          `json:"id"`
	EntityType string         `json:"entity_type"`
	EntityID   int            `json:"entity_id"`
	Action     string         `json:"action"` // e.g. stock_receive, stock_consume, stock_adjust
	UserID     string         `json:"user_id,omitempty"`
	Changes    map[string]any `json:"changes"`
	IPAddress  string         `json:"ip_address,omitempty"`
	UserAgent  string         `json:"user_agent,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}
