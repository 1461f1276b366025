package masters

import (
	"time"

	"github.com/google/uuid"
)

// FiscalYear represents an accounting period master
type FiscalYear struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Closed    bool      `json:"closed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Contains reports whether a date falls inside the fiscal year
func (f *FiscalYear) Contains(date time.Time) bool {
	return !date.Before(f.StartDate) && !date.After(f.EndDate)
}
