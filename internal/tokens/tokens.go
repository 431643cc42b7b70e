// Package tokens holds the list of tokens the multi-send front-end offers.
package tokens

import "strings"

const logoBase = "https://raw.githubusercontent.com/solana-labs/token-list/main/assets/mainnet/"

// Token describes one sendable token.
type Token struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Mint     string `json:"mint"`
	Decimals int    `json:"decimals"`
	LogoURI  string `json:"logoURI"`
}

var known = []Token{
	{
		Symbol:   "SOL",
		Name:     "Solana",
		Mint:     "SOL",
		Decimals: 9,
		LogoURI:  logoBase + "So11111111111111111111111111111111111111112/logo.png",
	},
	{
		Symbol:   "USDC",
		Name:     "USD Coin",
		Mint:     "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
		Decimals: 6,
		LogoURI:  logoBase + "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v/logo.png",
	},
	{
		Symbol:   "USDT",
		Name:     "Tether USD",
		Mint:     "Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB",
		Decimals: 6,
		LogoURI:  logoBase + "Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB/logo.svg",
	},
}

// List returns a copy of the known tokens in display order.
func List() []Token {
	out := make([]Token, len(known))
	copy(out, known)
	return out
}

// BySymbol looks a token up by symbol, ignoring case.
func BySymbol(symbol string) (Token, bool) {
	for _, t := range known {
		if strings.EqualFold(t.Symbol, symbol) {
			return t, true
		}
	}
	return Token{}, false
}

// ByMint looks a token up by mint address.
func ByMint(mint string) (Token, bool) {
	for _, t := range known {
		if t.Mint == mint {
			return t, true
		}
	}
	return Token{}, false
}

// ResolveMint maps a symbol or mint to the mint clients send as token_mint.
// Unknown values are returned unchanged.
func ResolveMint(s string) string {
	if t, ok := BySymbol(s); ok {
		return t.Mint
	}
	return s
}
