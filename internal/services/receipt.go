// internal/services/receipt.go
package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrUnparseableReceipt = fmt.Errorf("%w: no amount found in receipt", ErrValidation)

var (
	receiptCodePattern     = regexp.MustCompile(`^\s*([A-Z0-9]{8,12})\b`)
	receiptAmountPattern   = regexp.MustCompile(`(?i)\b(?:ksh|kes)\.?\s*([0-9][0-9,]*(?:\.[0-9]{1,2})?)`)
	receiptFallbackPattern = regexp.MustCompile(`\b([0-9][0-9,]*\.[0-9]{2})\b`)
	receiptPayerPattern    = regexp.MustCompile(`(?i)\bfrom\s+(.+?)(?:\s+\+?[0-9]{9,}|\s+on\s|[.,]|$)`)
)

// Receipt is what could be read out of a mobile-money SMS. Code and PayerName may be empty.
type Receipt struct {
	Code      string          `json:"code,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	PayerName string          `json:"payer_name,omitempty"`
}

// ParseReceipt reads a confirmation message such as
// "QFT4XYZ12A Confirmed. Ksh1,500.00 received from JANE WANJIRU 0712345678 on 3/4/24 at 9:15 AM."
// The first amount in the message is the payment; later ones are usually balances.
func ParseReceipt(raw string) (Receipt, error) {
	var receipt Receipt

	match := receiptAmountPattern.FindStringSubmatch(raw)
	if match == nil {
		match = receiptFallbackPattern.FindStringSubmatch(raw)
	}
	if match == nil {
		return receipt, ErrUnparseableReceipt
	}
	amount, err := decimal.NewFromString(strings.ReplaceAll(match[1], ",", ""))
	if err != nil {
		return receipt, ErrUnparseableReceipt
	}
	receipt.Amount = amount

	if m := receiptCodePattern.FindStringSubmatch(raw); m != nil && strings.ContainsAny(m[1], "0123456789") {
		receipt.Code = m[1]
	}
	if m := receiptPayerPattern.FindStringSubmatch(raw); m != nil {
		receipt.PayerName = strings.TrimSpace(m[1])
	}

	return receipt, nil
}
