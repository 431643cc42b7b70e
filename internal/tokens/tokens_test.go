package tokens

import (
	"strings"
	"testing"

	"github.com/Klingon-tech/multisend/pkg/types"
)

func TestList(t *testing.T) {
	list := List()
	want := []string{"SOL", "USDC", "USDT"}
	if len(list) != len(want) {
		t.Fatalf("List() has %d tokens, want %d", len(list), len(want))
	}
	for i, sym := range want {
		tok := list[i]
		if tok.Symbol != sym {
			t.Errorf("token %d = %s, want %s", i, tok.Symbol, sym)
		}
		if !strings.HasPrefix(tok.LogoURI, "https://") {
			t.Errorf("%s logoURI = %q", sym, tok.LogoURI)
		}
		if tok.Mint == "SOL" {
			continue
		}
		if ok, issues := types.ValidateAddress(tok.Mint); !ok {
			t.Errorf("%s mint %s invalid: %v", sym, tok.Mint, issues)
		}
	}
	if list[0].Decimals != 9 || list[1].Decimals != 6 || list[2].Decimals != 6 {
		t.Errorf("decimals = %d/%d/%d", list[0].Decimals, list[1].Decimals, list[2].Decimals)
	}
}

func TestList_ReturnsCopy(t *testing.T) {
	a := List()
	a[0].Symbol = "XXX"
	if List()[0].Symbol != "SOL" {
		t.Error("List() exposes the package slice")
	}
}

func TestLookup(t *testing.T) {
	if tok, ok := BySymbol("usdc"); !ok || tok.Name != "USD Coin" {
		t.Errorf("BySymbol(usdc) = %+v, %v", tok, ok)
	}
	if tok, ok := ByMint("Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB"); !ok || tok.Symbol != "USDT" {
		t.Errorf("ByMint(USDT mint) = %+v, %v", tok, ok)
	}
	if _, ok := BySymbol("BONK"); ok {
		t.Error("BySymbol(BONK) found a token")
	}

	tests := map[string]string{
		"SOL":    "SOL",
		"usdt":   "Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB",
		"custom": "custom",
	}
	for in, want := range tests {
		if got := ResolveMint(in); got != want {
			t.Errorf("ResolveMint(%q) = %q, want %q", in, got, want)
		}
	}
}
