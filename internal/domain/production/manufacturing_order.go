// Package production holds manufacturing order and BOM types. BOMs are
// read-only on the dashboard; production costing happens in the core API.
package production

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle status of a manufacturing order
type OrderStatus string

const (
	OrderStatusDraft      OrderStatus = "draft"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusDone       OrderStatus = "done"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ManufacturingOrder represents a production order for a manufactured product
type ManufacturingOrder struct {
	ID           uuid.UUID       `json:"id"`
	Number       string          `json:"number"`
	ProductID    uuid.UUID       `json:"product_id"`
	ProductName  string          `json:"product_name,omitempty"`
	BOMID        *uuid.UUID      `json:"bom_id,omitempty"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	Status       OrderStatus     `json:"status"`
	PlannedStart *time.Time      `json:"planned_start,omitempty"`
	PlannedEnd   *time.Time      `json:"planned_end,omitempty"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// IsOpen reports whether the order still accepts edits on the screen
func (o *ManufacturingOrder) IsOpen() bool {
	return o.Status == OrderStatusDraft || o.Status == OrderStatusConfirmed
}
