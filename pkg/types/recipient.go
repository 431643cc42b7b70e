package types

import (
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts travel as JSON numbers, matching what wallet front-ends send.
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrNonPositiveAmount is returned when a transfer amount is zero or negative.
var ErrNonPositiveAmount = errors.New("amount must be greater than 0")

// ErrAmountOutOfRange is returned for amounts too large or too precise to be
// a real transfer. Such values would make fee rounding rescale huge integers.
var ErrAmountOutOfRange = errors.New("amount is out of range")

// Limits on the decimal representation of client-supplied amounts.
const (
	MaxAmountDigits   = 38
	MaxAmountExponent = 18
	MinAmountExponent = -38
)

// CheckAmountRange reports ErrAmountOutOfRange when d has more than
// MaxAmountDigits significant digits or an exponent outside
// [MinAmountExponent, MaxAmountExponent]. The exponent is checked first
// so that oversized values are rejected without formatting them.
func CheckAmountRange(d decimal.Decimal) error {
	if exp := d.Exponent(); exp > MaxAmountExponent || exp < MinAmountExponent {
		return ErrAmountOutOfRange
	}
	if d.NumDigits() > MaxAmountDigits {
		return ErrAmountOutOfRange
	}
	return nil
}

// Recipient is one (address, amount) transfer of a batch send.
// The zero value is not a valid recipient; use NewRecipient.
type Recipient struct {
	address string
	amount  decimal.Decimal
}

// NewRecipient builds a Recipient. The address is kept verbatim (format
// problems are reported by validation, not rejected here); the amount must
// be strictly positive and within CheckAmountRange.
func NewRecipient(address string, amount decimal.Decimal) (Recipient, error) {
	if !amount.IsPositive() {
		return Recipient{}, ErrNonPositiveAmount
	}
	if err := CheckAmountRange(amount); err != nil {
		return Recipient{}, err
	}
	return Recipient{address: address, amount: amount}, nil
}

// Address returns the recipient wallet address as given.
func (r Recipient) Address() string { return r.address }

// Amount returns the amount to transfer.
func (r Recipient) Amount() decimal.Decimal { return r.amount }

// MarshalJSON encodes the recipient in the request shape clients send back.
func (r Recipient) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		WalletAddress string          `json:"wallet_address"`
		Amount        decimal.Decimal `json:"amount"`
	}{r.address, r.amount})
}

// SumAmounts returns the total amount across recipients.
func SumAmounts(recipients []Recipient) decimal.Decimal {
	total := decimal.Zero
	for _, r := range recipients {
		total = total.Add(r.amount)
	}
	return total
}
