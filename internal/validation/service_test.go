package validation

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Klingon-tech/multisend/pkg/types"
)

func recipient(t *testing.T, addr, amount string) types.Recipient {
	t.Helper()
	r, err := types.NewRecipient(addr, decimal.RequireFromString(amount))
	if err != nil {
		t.Fatalf("NewRecipient(%s, %s): %v", addr, amount, err)
	}
	return r
}

func TestValidate_AllValid(t *testing.T) {
	resp := NewService().Validate([]types.Recipient{
		recipient(t, "11111111111111111111111111111112", "1.5"),
		recipient(t, "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA", "2.0"),
	})

	if !resp.ReadyToSend {
		t.Error("ReadyToSend = false, want true")
	}
	if resp.InvalidRecipients != 0 || resp.ValidRecipients != 2 || resp.TotalRecipients != 2 {
		t.Errorf("counts = total %d valid %d invalid %d", resp.TotalRecipients, resp.ValidRecipients, resp.InvalidRecipients)
	}
	for _, r := range resp.Results {
		if !r.Valid || len(r.Issues) != 0 {
			t.Errorf("%s: valid=%v issues=%v", r.Address, r.Valid, r.Issues)
		}
	}
}

func TestValidate_MixedPreservesOrder(t *testing.T) {
	input := []types.Recipient{
		recipient(t, "invalid", "1"),
		recipient(t, "3ALfiR1TK2JqC18nfCE8vhGqBD86obX8AcV4YgjzmRij", "2"),
		recipient(t, "", "3"),
	}
	resp := NewService().Validate(input)

	if resp.ReadyToSend {
		t.Error("ReadyToSend = true with invalid recipients")
	}
	if resp.ValidRecipients != 1 || resp.InvalidRecipients != 2 {
		t.Errorf("valid=%d invalid=%d, want 1/2", resp.ValidRecipients, resp.InvalidRecipients)
	}
	for i, r := range resp.Results {
		if r.Address != input[i].Address() {
			t.Errorf("result %d address = %q, want %q", i, r.Address, input[i].Address())
		}
		if !r.Amount.Equal(input[i].Amount()) {
			t.Errorf("result %d amount = %s", i, r.Amount)
		}
	}
	if !strings.Contains(resp.Results[0].Issues[0], "length: 7") {
		t.Errorf("issues[0] = %v", resp.Results[0].Issues)
	}
	if resp.Results[2].Issues[0] != "address is empty" {
		t.Errorf("issues[2] = %v", resp.Results[2].Issues)
	}
}

func TestValidate_ZeroValueRecipientFlagsAmount(t *testing.T) {
	resp := NewService().Validate([]types.Recipient{{}})

	got := resp.Results[0]
	if got.Valid {
		t.Fatal("zero-value recipient reported valid")
	}
	if len(got.Issues) != 2 || got.Issues[1] != IssueNonPositiveAmount {
		t.Errorf("issues = %v, want address issue then %q", got.Issues, IssueNonPositiveAmount)
	}
}

func TestValidate_Empty(t *testing.T) {
	resp := NewService().Validate(nil)
	if resp.TotalRecipients != 0 || !resp.ReadyToSend || resp.Results == nil {
		t.Errorf("empty response = %+v", resp)
	}
}
