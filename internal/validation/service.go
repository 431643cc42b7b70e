// Package validation checks a batch of recipients before a multi-send is built.
package validation

import (
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	klog "github.com/Klingon-tech/multisend/internal/log"
	"github.com/Klingon-tech/multisend/pkg/types"
)

// IssueNonPositiveAmount is reported for a recipient whose amount is not above zero.
const IssueNonPositiveAmount = "Amount must be greater than 0"

// Result is the validation outcome for one recipient.
type Result struct {
	Address string          `json:"address"`
	Amount  decimal.Decimal `json:"amount"`
	Valid   bool            `json:"valid"`
	Issues  []string        `json:"issues"`
}

// Response summarizes a whole recipient list, in input order.
type Response struct {
	TotalRecipients   int      `json:"total_recipients"`
	ValidRecipients   int      `json:"valid_recipients"`
	InvalidRecipients int      `json:"invalid_recipients"`
	Results           []Result `json:"validation_results"`
	ReadyToSend       bool     `json:"ready_to_send"`
}

// Service validates recipient lists.
type Service struct {
	logger zerolog.Logger
}

// NewService creates a validation service.
func NewService() *Service {
	return &Service{logger: klog.Validation}
}

// Validate checks every recipient's address format and amount. A bad
// recipient is reported, never returned as an error.
func (s *Service) Validate(recipients []types.Recipient) *Response {
	resp := &Response{
		TotalRecipients: len(recipients),
		Results:         make([]Result, 0, len(recipients)),
	}

	for _, r := range recipients {
		valid, issues := types.ValidateAddress(r.Address())
		// Recipients are built with a positive amount; the zero value is not.
		if !r.Amount().IsPositive() {
			valid = false
			issues = append(issues, IssueNonPositiveAmount)
		}
		if valid {
			resp.ValidRecipients++
		}
		resp.Results = append(resp.Results, Result{
			Address: r.Address(),
			Amount:  r.Amount(),
			Valid:   valid,
			Issues:  issues,
		})
	}

	resp.InvalidRecipients = resp.TotalRecipients - resp.ValidRecipients
	resp.ReadyToSend = resp.InvalidRecipients == 0

	s.logger.Debug().
		Int("total", resp.TotalRecipients).
		Int("invalid", resp.InvalidRecipients).
		Bool("ready", resp.ReadyToSend).
		Msg("Recipients validated")

	return resp
}
