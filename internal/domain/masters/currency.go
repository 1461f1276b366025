package masters

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Currency represents a currency master. The exchange rate shown is the
// latest one the core API published; revaluation happens upstream.
type Currency struct {
	ID            uuid.UUID       `json:"id"`
	Code          string          `json:"code"` // ISO 4217
	Name          string          `json:"name"`
	Symbol        string          `json:"symbol"`
	DecimalPlaces int             `json:"decimal_places"`
	ExchangeRate  decimal.Decimal `json:"exchange_rate"`
	RateDate      *time.Time      `json:"rate_date,omitempty"`
	IsBase        bool            `json:"is_base"`
	Active        bool            `json:"active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
