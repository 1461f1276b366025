package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
}

func printPageFooter(w io.Writer, page, totalPages int, total int64) {
	fmt.Fprintf(w, "page %d/%d, %d total\n", page, totalPages, total)
}

func money(v decimal.Decimal, currency string) string {
	if currency == "" {
		return v.String()
	}
	return v.String() + " " + currency
}

// parseWhen accepts a date or an RFC 3339 timestamp.
func parseWhen(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q (want YYYY-MM-DD or RFC 3339)", s)
	}
	return t, nil
}

// parseIDFlag turns an optional uuid flag into a pointer, nil when unset.
func parseIDFlag(name, value string) (*uuid.UUID, error) {
	if value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q: %w", name, value, err)
	}
	return &id, nil
}
