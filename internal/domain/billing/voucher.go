package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VoucherKind represents the accounting voucher type
type VoucherKind string

const (
	VoucherKindPayment VoucherKind = "payment"
	VoucherKindReceipt VoucherKind = "receipt"
	VoucherKindJournal VoucherKind = "journal"
)

// VoucherStatus represents the lifecycle status of a voucher
type VoucherStatus string

const (
	VoucherStatusDraft     VoucherStatus = "draft"
	VoucherStatusPosted    VoucherStatus = "posted"
	VoucherStatusCancelled VoucherStatus = "cancelled"
)

// VoucherLine represents one leg of a voucher. Debit/credit balance is
// validated by the core API at posting time, never here.
type VoucherLine struct {
	ID          uuid.UUID       `json:"id"`
	AccountID   uuid.UUID       `json:"account_id"`
	AccountCode string          `json:"account_code,omitempty"`
	AccountName string          `json:"account_name,omitempty"`
	Description string          `json:"description,omitempty"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// Voucher represents a payment, receipt or journal voucher
type Voucher struct {
	ID          uuid.UUID       `json:"id"`
	Number      string          `json:"number"`
	Kind        VoucherKind     `json:"kind"`
	Status      VoucherStatus   `json:"status"`
	Date        time.Time       `json:"date"`
	PartnerID   *uuid.UUID      `json:"partner_id,omitempty"`
	PartnerName string          `json:"partner_name,omitempty"`
	Currency    string          `json:"currency"`
	Amount      decimal.Decimal `json:"amount"`
	Reference   string          `json:"reference,omitempty"`
	Lines       []VoucherLine   `json:"lines"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// IsEditable reports whether the edit form should open for this voucher
func (v *Voucher) IsEditable() bool {
	return v.Status == VoucherStatusDraft
}
