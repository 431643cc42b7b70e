// Package recipients parses recipient lists uploaded as comma-separated text.
//
// Each data row is "address,amount[,ignored...]". Problems with a single row
// are collected as messages keyed by the row's line number; they never abort
// the rest of the parse.
//
// "Row N" is the 1-based physical line on which the row starts, counting the
// header and blank lines. A quoted field spanning several lines therefore
// advances the numbering by more than one, so N always points at the line a
// user sees in an editor.
package recipients

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/Klingon-tech/multisend/pkg/types"
)

// ErrNotText is returned when the upload is not valid UTF-8 text.
var ErrNotText = errors.New("input is not valid UTF-8 text")

// Result is the outcome of parsing a recipient list.
type Result struct {
	Recipients []types.Recipient `json:"recipients"`
	Errors     []string          `json:"errors"`
}

// Parse parses raw CSV bytes. A leading UTF-8 byte order mark is ignored.
func Parse(raw []byte) (*Result, error) {
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	if !utf8.Valid(raw) {
		return nil, ErrNotText
	}
	return ParseReader(bytes.NewReader(raw))
}

// ParseReader parses CSV text from r. Only a failure to read r is returned
// as an error; malformed rows are reported in Result.Errors.
func ParseReader(r io.Reader) (*Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	res := &Result{
		Recipients: []types.Recipient{},
		Errors:     []string{},
	}

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if !errors.As(err, &perr) {
				return nil, fmt.Errorf("read csv: %w", err)
			}
			res.Errors = append(res.Errors, fmt.Sprintf("Row %d: malformed row: %v", perr.StartLine, perr.Err))
			continue
		}

		line, _ := cr.FieldPos(0)
		if isBlank(row) {
			continue
		}
		if line == 1 && isHeader(row[0]) {
			continue
		}
		if len(row) < 2 {
			res.Errors = append(res.Errors, fmt.Sprintf("Row %d: missing amount column", line))
			continue
		}

		address := strings.TrimSpace(row[0])
		rawAmount := row[1]
		amount, err := decimal.NewFromString(strings.TrimSpace(rawAmount))
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("Row %d: invalid amount '%s'", line, rawAmount))
			continue
		}
		rcpt, err := types.NewRecipient(address, amount)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("Row %d: %v ('%s')", line, err, rawAmount))
			continue
		}
		res.Recipients = append(res.Recipients, rcpt)
	}

	return res, nil
}

func isBlank(row []string) bool {
	for _, col := range row {
		if col != "" {
			return false
		}
	}
	return true
}

func isHeader(first string) bool {
	s := strings.ToLower(first)
	return strings.Contains(s, "address") || strings.Contains(s, "wallet")
}
