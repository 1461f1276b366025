package production

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BOMLine represents one component of a bill of materials
type BOMLine struct {
	ID            uuid.UUID       `json:"id"`
	ComponentID   uuid.UUID       `json:"component_id"`
	ComponentName string          `json:"component_name,omitempty"`
	Quantity      decimal.Decimal `json:"quantity"`
	Unit          string          `json:"unit"`
	ScrapPercent  decimal.Decimal `json:"scrap_percent"`
}

// BOM represents a bill of materials. The dashboard lists and shows BOMs
// but never edits them.
type BOM struct {
	ID          uuid.UUID       `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	Lines       []BOMLine       `json:"lines"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
