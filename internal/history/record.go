// Package history stores completed multi-send submissions per sender wallet.
package history

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Klingon-tech/multisend/pkg/types"
)

// ErrNotFound is returned when no record exists for an ID.
var ErrNotFound = errors.New("history record not found")

// Status is the on-chain state of a submitted multi-send.
type Status string

// Record statuses.
const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusFailed    Status = "failed"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusFailed:
		return true
	}
	return false
}

// Record is one stored multi-send submission.
type Record struct {
	ID             string          `json:"id"`
	SenderWallet   string          `json:"sender_wallet"`
	TokenMint      string          `json:"token_mint"`
	RecipientCount int             `json:"recipient_count"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	DeveloperFee   decimal.Decimal `json:"developer_fee"`
	Status         Status          `json:"status"`
	Signatures     []string        `json:"signatures"`
	Timestamp      time.Time       `json:"timestamp"`
}

// Normalize fills the fields a client may omit: a fresh ID, the current
// time, pending status and an empty signature list.
func (r *Record) Normalize() {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Timestamp.IsZero() {
		r.Timestamp = time.Now().UTC()
	}
	if r.Status == "" {
		r.Status = StatusPending
	}
	if r.Signatures == nil {
		r.Signatures = []string{}
	}
}

// Validate checks a record before it is stored.
func (r *Record) Validate() error {
	if r.SenderWallet == "" {
		return errors.New("sender_wallet is required")
	}
	if r.TokenMint == "" {
		return errors.New("token_mint is required")
	}
	if r.RecipientCount < 0 {
		return fmt.Errorf("recipient_count must not be negative: %d", r.RecipientCount)
	}
	if r.TotalAmount.IsNegative() {
		return fmt.Errorf("total_amount must not be negative: %s", r.TotalAmount)
	}
	if r.DeveloperFee.IsNegative() {
		return fmt.Errorf("developer_fee must not be negative: %s", r.DeveloperFee)
	}
	if err := types.CheckAmountRange(r.TotalAmount); err != nil {
		return fmt.Errorf("total_amount: %w", err)
	}
	if err := types.CheckAmountRange(r.DeveloperFee); err != nil {
		return fmt.Errorf("developer_fee: %w", err)
	}
	if !r.Status.Valid() {
		return fmt.Errorf("unknown status %q (expected pending, confirmed or failed)", r.Status)
	}
	return nil
}
