package models

import "time"

// Inventory event types recorded by the catalog.
const (
	EventProductAdded   = "PRODUCT_ADDED"
	EventQuantityMerged = "QUANTITY_MERGED"
	EventQuantitySet    = "QUANTITY_SET"
)

// InventoryEvent is a single audit log entry for a catalog mutation.
type InventoryEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // PRODUCT_ADDED | QUANTITY_MERGED | QUANTITY_SET
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
