package api

import (
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/Klingon-tech/multisend/internal/recipients"
	"github.com/Klingon-tech/multisend/internal/tokens"
	"github.com/Klingon-tech/multisend/pkg/types"
)

// MaxRecipients is the largest recipient list a single request may carry.
const MaxRecipients = 1000

// RequestError is a rejected request: an HTTP status and a detail message.
type RequestError struct {
	Status int
	Detail string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Detail)
}

func unprocessable(format string, args ...interface{}) *RequestError {
	return &RequestError{Status: http.StatusUnprocessableEntity, Detail: fmt.Sprintf(format, args...)}
}

// RecipientInput is one recipient as sent by clients.
type RecipientInput struct {
	WalletAddress string          `json:"wallet_address"`
	Amount        decimal.Decimal `json:"amount"`
}

// MultiSendRequest is the body of validate-recipients and estimate-fees.
type MultiSendRequest struct {
	TokenMint    string           `json:"token_mint"`
	SenderWallet string           `json:"sender_wallet"`
	Recipients   []RecipientInput `json:"recipients"`
}

// Validate enforces the request shape and converts the recipients. Address
// format is not checked here; that is reported by validation.
func (m *MultiSendRequest) Validate() ([]types.Recipient, error) {
	if m.TokenMint == "" {
		return nil, unprocessable("token_mint is required")
	}
	if m.SenderWallet == "" {
		return nil, unprocessable("sender_wallet is required")
	}
	if len(m.Recipients) == 0 {
		return nil, unprocessable("at least 1 recipient is required")
	}
	if len(m.Recipients) > MaxRecipients {
		return nil, unprocessable("at most %d recipients are allowed, got %d", MaxRecipients, len(m.Recipients))
	}

	out := make([]types.Recipient, 0, len(m.Recipients))
	for i, in := range m.Recipients {
		r, err := types.NewRecipient(in.WalletAddress, in.Amount)
		if err != nil {
			return nil, unprocessable("recipients[%d]: %v", i, err)
		}
		out = append(out, r)
	}
	return out, nil
}

// ToRecipientInputs converts recipients back to the request shape.
func ToRecipientInputs(rs []types.Recipient) []RecipientInput {
	out := make([]RecipientInput, len(rs))
	for i, r := range rs {
		out[i] = RecipientInput{WalletAddress: r.Address(), Amount: r.Amount()}
	}
	return out
}

// RootResult is returned by GET /api/.
type RootResult struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// ParseCSVResult is returned by parse-csv.
type ParseCSVResult struct {
	Success    bool             `json:"success"`
	Recipients []RecipientInput `json:"recipients"`
	Count      int              `json:"count"`
	Errors     []string         `json:"errors"`
}

func newParseCSVResult(res *recipients.Result) *ParseCSVResult {
	return &ParseCSVResult{
		Success:    true,
		Recipients: ToRecipientInputs(res.Recipients),
		Count:      len(res.Recipients),
		Errors:     res.Errors,
	}
}

// ErrorResult is the body of every non-2xx JSON response.
type ErrorResult struct {
	Detail string `json:"detail"`
}

// TokenListResult is returned by token-list.
type TokenListResult struct {
	Tokens []tokens.Token `json:"tokens"`
}
