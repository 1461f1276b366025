package production

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest represents a request to create a manufacturing order
type CreateOrderRequest struct {
	ProductID    uuid.UUID        `json:"product_id" binding:"required"`
	BOMID        *uuid.UUID       `json:"bom_id"`
	Quantity     *decimal.Decimal `json:"quantity" binding:"required"`
	Unit         string           `json:"unit" binding:"max=20"`
	PlannedStart *time.Time       `json:"planned_start"`
	PlannedEnd   *time.Time       `json:"planned_end"`
	Notes        string           `json:"notes" binding:"max=2000"`
}

// UpdateOrderRequest represents a request to update a manufacturing order.
// Status transitions are validated upstream; the screen just sends them.
type UpdateOrderRequest struct {
	BOMID        *uuid.UUID       `json:"bom_id"`
	Quantity     *decimal.Decimal `json:"quantity"`
	Unit         *string          `json:"unit" binding:"omitempty,max=20"`
	Status       *string          `json:"status" binding:"omitempty,oneof=draft confirmed in_progress done cancelled"`
	PlannedStart *time.Time       `json:"planned_start"`
	PlannedEnd   *time.Time       `json:"planned_end"`
	Notes        *string          `json:"notes" binding:"omitempty,max=2000"`
}

// ListOrdersRequest represents the manufacturing order list query string
type ListOrdersRequest struct {
	Page      int        `form:"page" binding:"omitempty,min=1"`
	PageSize  int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy   string     `form:"order_by"`
	OrderDir  string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	Search    string     `form:"search"`
	Status    string     `form:"status" binding:"omitempty,oneof=draft confirmed in_progress done cancelled"`
	ProductID *uuid.UUID `form:"product_id"`
}

// ListBOMsRequest represents the BOM list query string
type ListBOMsRequest struct {
	Page      int        `form:"page" binding:"omitempty,min=1"`
	PageSize  int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	Search    string     `form:"search"`
	ProductID *uuid.UUID `form:"product_id"`
	Active    *bool      `form:"active"`
}
