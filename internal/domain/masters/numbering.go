package masters

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NumberingModule identifies which document family a scheme numbers
type NumberingModule string

const (
	NumberingModuleInvoice            NumberingModule = "invoice"
	NumberingModuleVoucher            NumberingModule = "voucher"
	NumberingModuleManufacturingOrder NumberingModule = "manufacturing_order"
	NumberingModulePartner            NumberingModule = "partner"
	NumberingModuleProduct            NumberingModule = "product"
)

// DefaultSeparator joins the parts of a previewed document number
const DefaultSeparator = "-"

// NumberingScheme represents a document numbering pattern. Sequence
// allocation is the core API's job; the dashboard only previews what the
// next number would look like.
type NumberingScheme struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Module          NumberingModule `json:"module"`
	Prefix          string          `json:"prefix"`
	DateFormat      string          `json:"date_format"` // Go reference layout, e.g. "200601"
	SequencePadding int             `json:"sequence_padding"`
	NextNumber      int64           `json:"next_number"`
	Suffix          string          `json:"suffix"`
	Separator       string          `json:"separator"`
	Active          bool            `json:"active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Preview builds the document number the scheme would produce at the given
// time. Empty parts are skipped; the separator defaults to "-". A sequence
// wider than the configured padding is kept whole.
func (s *NumberingScheme) Preview(at time.Time) string {
	sep := s.Separator
	if sep == "" {
		sep = DefaultSeparator
	}

	parts := make([]string, 0, 4)
	if s.Prefix != "" {
		parts = append(parts, s.Prefix)
	}
	if s.DateFormat != "" {
		parts = append(parts, at.Format(s.DateFormat))
	}
	parts = append(parts, formatSequence(s.NextNumber, s.SequencePadding))
	if s.Suffix != "" {
		parts = append(parts, s.Suffix)
	}

	return strings.Join(parts, sep)
}

// formatSequence left-pads a sequence number with zeros up to width.
// Width 0 disables padding, numbers wider than width are kept whole.
func formatSequence(n int64, width int) string {
	seq := strconv.FormatInt(n, 10)
	if width <= len(seq) {
		return seq
	}
	return strings.Repeat("0", width-len(seq)) + seq
}
