package normalize

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"payment-verifier/internal/domain"
)

var currencyTokens = regexp.MustCompile(`(?i)birr|etb`)

// ParseAmount turns a free-text amount ("600.00 Birr", "1,234.56 ETB")
// into a decimal. Unparsable input yields zero rather than an error: the
// pipeline stays available and the amount check downstream carries the
// consequence.
func ParseAmount(s string) decimal.Decimal {
	cleaned := strings.ReplaceAll(s, ",", "")
	cleaned = currencyTokens.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return decimal.Zero
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// receiptDateLayout is the fixed timestamp format printed on Telebirr
// receipts: DD-MM-YYYY HH:MM:SS.
const receiptDateLayout = "02-01-2006 15:04:05"

// genericDateLayouts are tried in order when the fixed receipt format
// does not match.
var genericDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"Jan 2, 2006 3:04:05 PM",
}

// ParseDate parses a source-reported date string. Empty or unparsable
// input falls back to now; a missing date is never a reason to fail the
// whole pipeline.
func ParseDate(s string, now time.Time) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return now
	}

	if t, err := time.Parse(receiptDateLayout, s); err == nil {
		return t
	}
	for _, layout := range genericDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return now
}

// ClassifyStatus maps a source's free-text status to the canonical
// enum by case-insensitive keyword match. Anything unrecognized,
// including an absent status, is pending.
func ClassifyStatus(raw string) domain.TransactionStatus {
	lower := strings.ToLower(raw)

	for _, kw := range []string{"success", "completed", "paid"} {
		if strings.Contains(lower, kw) {
			return domain.StatusSuccess
		}
	}
	for _, kw := range []string{"fail", "reject", "cancel"} {
		if strings.Contains(lower, kw) {
			return domain.StatusFailed
		}
	}
	return domain.StatusPending
}
