// Package fee computes batch counts and cost estimates for a multi-send.
//
// All arithmetic is exact decimal; results that are denominated in the native
// coin are rounded to 9 places (one lamport) with half-away-from-zero rounding.
package fee

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Klingon-tech/multisend/pkg/types"
)

const (
	// MaxPerBatch is the number of recipient transfers packed into one transaction.
	MaxPerBatch = 12

	BaseFeeLamports     int64 = 5000
	PriorityFeeLamports int64 = 10000
	LamportsPerSOL      int64 = 1_000_000_000

	// Precision is the number of decimal places kept for coin amounts.
	Precision int32 = 9

	// DeveloperWallet receives the developer fee unless overridden.
	DeveloperWallet = "3ALfiR1TK2JqC18nfCE8vhGqBD86obX8AcV4YgjzmRij"

	// NativeMint is the token_mint value meaning the native coin.
	NativeMint = "SOL"
)

// DeveloperFeeRate is the 0.1% surcharge on the transferred total.
var DeveloperFeeRate = decimal.New(1, -3)

// BatchCount returns ceil(recipientCount / maxPerBatch). A non-positive
// maxPerBatch falls back to MaxPerBatch.
func BatchCount(recipientCount, maxPerBatch int) int {
	if recipientCount <= 0 {
		return 0
	}
	if maxPerBatch <= 0 {
		maxPerBatch = MaxPerBatch
	}
	return (recipientCount + maxPerBatch - 1) / maxPerBatch
}

// TransactionCount returns the number of on-chain transactions for a send:
// one per batch plus one that pays the developer fee.
func TransactionCount(recipientCount int) int {
	return BatchCount(recipientCount, MaxPerBatch) + 1
}

// DeveloperFee returns round(total * 0.001, 9).
func DeveloperFee(total decimal.Decimal) decimal.Decimal {
	return total.Mul(DeveloperFeeRate).Round(Precision)
}

// LamportsPerTransaction is the estimated base + priority fee of one transaction.
func LamportsPerTransaction() int64 {
	return BaseFeeLamports + PriorityFeeLamports
}

// NetworkFee returns the estimated network fee in native coin for txCount
// transactions, rounded to 9 places.
func NetworkFee(txCount int) decimal.Decimal {
	lamports := decimal.NewFromInt(int64(txCount) * LamportsPerTransaction())
	return lamports.Div(decimal.NewFromInt(LamportsPerSOL)).Round(Precision)
}

// Estimate is the full cost breakdown of a multi-send.
type Estimate struct {
	TotalRecipients       int             `json:"total_recipients"`
	TotalAmount           decimal.Decimal `json:"total_amount"`
	DeveloperFee          decimal.Decimal `json:"developer_fee"`
	DeveloperFeeRecipient string          `json:"developer_fee_recipient"`
	TransactionCount      int             `json:"transaction_count"`
	EstimatedNetworkFee   decimal.Decimal `json:"estimated_network_fee_sol"`
	TotalCost             decimal.Decimal `json:"total_cost_including_fees"`
	Breakdown             string          `json:"breakdown"`
}

// Calculator produces estimates routed to a fixed developer wallet.
type Calculator struct {
	developerWallet string
}

// NewCalculator creates a calculator. An empty wallet selects DeveloperWallet.
func NewCalculator(developerWallet string) *Calculator {
	if developerWallet == "" {
		developerWallet = DeveloperWallet
	}
	return &Calculator{developerWallet: developerWallet}
}

// DeveloperWallet returns the address that receives the developer fee.
func (c *Calculator) DeveloperWallet() string {
	return c.developerWallet
}

// Estimate computes the cost of sending tokenMint to recipients.
func (c *Calculator) Estimate(tokenMint string, recipients []types.Recipient) *Estimate {
	return c.EstimateTotals(tokenMint, len(recipients), types.SumAmounts(recipients))
}

// EstimateTotals computes the cost from a recipient count and summed amount.
func (c *Calculator) EstimateTotals(tokenMint string, recipientCount int, total decimal.Decimal) *Estimate {
	devFee := DeveloperFee(total)
	txCount := TransactionCount(recipientCount)
	networkFee := NetworkFee(txCount)
	totalCost := total.Add(devFee).Add(networkFee)

	return &Estimate{
		TotalRecipients:       recipientCount,
		TotalAmount:           total,
		DeveloperFee:          devFee,
		DeveloperFeeRecipient: c.developerWallet,
		TransactionCount:      txCount,
		EstimatedNetworkFee:   networkFee,
		TotalCost:             totalCost,
		Breakdown:             breakdown(unitFor(tokenMint), total, devFee, networkFee, totalCost, txCount),
	}
}

func unitFor(tokenMint string) string {
	if tokenMint == "" {
		return NativeMint
	}
	return tokenMint
}

func breakdown(unit string, total, devFee, networkFee, totalCost decimal.Decimal, txCount int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Recipient Transfers: %s %s\n", total, unit)
	fmt.Fprintf(&b, "Developer Fee (0.1%%): %s %s\n", devFee, unit)
	fmt.Fprintf(&b, "Network Fees: ~%s %s (for %d transactions)\n", networkFee, NativeMint, txCount)
	b.WriteString("---\n")
	fmt.Fprintf(&b, "Total: %s %s + ~%s %s network fees\n", total.Add(devFee), unit, networkFee, NativeMint)
	fmt.Fprintf(&b, "Total Cost (all fees included): %s", totalCost)
	return b.String()
}
