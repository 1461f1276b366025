package reports

import (
	"time"

	"github.com/google/uuid"
)

// PeriodRequest bounds a report to a date range. Zero bounds are omitted
// from the upstream query and the core API applies its defaults.
type PeriodRequest struct {
	From time.Time `form:"from" time_format:"2006-01-02"`
	To   time.Time `form:"to" time_format:"2006-01-02"`
}

// AsOfRequest asks for a point-in-time statement. Zero means "today" as
// far as the core API is concerned.
type AsOfRequest struct {
	AsOf time.Time `form:"as_of" time_format:"2006-01-02"`
}

// PartnerLedgerRequest identifies the partner and period of a statement
type PartnerLedgerRequest struct {
	PartnerID uuid.UUID `form:"partner_id" binding:"required"`
	From      time.Time `form:"from" time_format:"2006-01-02"`
	To        time.Time `form:"to" time_format:"2006-01-02"`
}
