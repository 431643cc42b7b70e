package types

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewRecipient(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		wantErr error
	}{
		{"positive", "1.5", nil},
		{"tiny", "0.000000001", nil},
		{"largest exponent", "1e18", nil},
		{"38 digits", "12345678901234567890.123456789012345678", nil},
		{"zero", "0", ErrNonPositiveAmount},
		{"negative", "-1", ErrNonPositiveAmount},
		{"huge exponent", "1e100000000", ErrAmountOutOfRange},
		{"exponent above limit", "1e19", ErrAmountOutOfRange},
		{"too precise", "1e-100000000", ErrAmountOutOfRange},
		{"39 digits", "1.23456789012345678901234567890123456789", ErrAmountOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRecipient(devWallet, decimal.RequireFromString(tt.amount))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewRecipient: %v", err)
			}
			if r.Address() != devWallet {
				t.Errorf("Address() = %s", r.Address())
			}
			if !r.Amount().Equal(decimal.RequireFromString(tt.amount)) {
				t.Errorf("Amount() = %s, want %s", r.Amount(), tt.amount)
			}
		})
	}
}

func TestNewRecipient_KeepsMalformedAddress(t *testing.T) {
	r, err := NewRecipient("not-an-address", decimal.NewFromInt(1))
	if err != nil {
		t.Fatalf("NewRecipient: %v", err)
	}
	if r.Address() != "not-an-address" {
		t.Errorf("Address() = %q", r.Address())
	}
}

func TestRecipient_MarshalJSON(t *testing.T) {
	r, _ := NewRecipient(devWallet, decimal.RequireFromString("2.50"))
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"wallet_address":"` + devWallet + `","amount":2.5}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}

func TestSumAmounts(t *testing.T) {
	var rs []Recipient
	for _, a := range []string{"0.1", "0.2", "0.3"} {
		r, _ := NewRecipient(devWallet, decimal.RequireFromString(a))
		rs = append(rs, r)
	}
	if got := SumAmounts(rs); !got.Equal(decimal.RequireFromString("0.6")) {
		t.Errorf("SumAmounts = %s, want 0.6 exactly", got)
	}
	if !SumAmounts(nil).IsZero() {
		t.Error("SumAmounts(nil) should be zero")
	}
}

func TestCheckAmountRange_NegativeUsesMagnitude(t *testing.T) {
	if err := CheckAmountRange(decimal.RequireFromString("-4.5")); err != nil {
		t.Errorf("CheckAmountRange(-4.5) = %v", err)
	}
	if err := CheckAmountRange(decimal.RequireFromString("-1e40")); !errors.Is(err, ErrAmountOutOfRange) {
		t.Errorf("CheckAmountRange(-1e40) = %v, want ErrAmountOutOfRange", err)
	}
}
