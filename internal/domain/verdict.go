package domain

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
)

// CheckResult is the tri-state outcome of an individual validation
// check. NotApplicable means the receiver profile does not configure the
// check; it is distinct from a pass and never contributes to failure.
type CheckResult int

const (
	CheckNotApplicable CheckResult = iota
	CheckPassed
	CheckFailed
)

// Applicable reports whether the profile configured this check at all.
func (c CheckResult) Applicable() bool { return c != CheckNotApplicable }

// Blocking reports whether this result prevents the overall verdict from
// passing.
func (c CheckResult) Blocking() bool { return c == CheckFailed }

func (c CheckResult) String() string {
	switch c {
	case CheckPassed:
		return "passed"
	case CheckFailed:
		return "failed"
	default:
		return "not_applicable"
	}
}

// MarshalJSON encodes the tri-state as true/false/null so verdicts stay
// wire-compatible with consumers expecting nullable booleans.
func (c CheckResult) MarshalJSON() ([]byte, error) {
	switch c {
	case CheckPassed:
		return []byte("true"), nil
	case CheckFailed:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

func (c *CheckResult) UnmarshalJSON(data []byte) error {
	switch {
	case bytes.Equal(data, []byte("true")):
		*c = CheckPassed
	case bytes.Equal(data, []byte("false")):
		*c = CheckFailed
	case bytes.Equal(data, []byte("null")):
		*c = CheckNotApplicable
	default:
		return fmt.Errorf("invalid check result %q", data)
	}
	return nil
}

// ValidationChecks holds the per-check detail of a verdict. Amount and
// date are always evaluated; the account and name checks are tri-state.
type ValidationChecks struct {
	AmountMatch          bool        `json:"amount_match"`
	ReceiverAccountMatch CheckResult `json:"receiver_account_match"`
	ReceiverNameMatch    CheckResult `json:"receiver_name_match"`
	DateWithinWindow     bool        `json:"date_within_window"`
}

// ValidationResult is the verdict produced by the validator: overall
// pass/fail, per-check detail, and one human-readable reason per failed
// check in check-evaluation order. FailedReasons is empty iff Passed.
type ValidationResult struct {
	Passed        bool             `json:"passed"`
	Checks        ValidationChecks `json:"checks"`
	FailedReasons []string         `json:"failed_reasons"`
}

// VerifyPaymentResponse is the envelope handed back to the orchestrating
// service for a single verification attempt.
type VerifyPaymentResponse struct {
	Success          bool              `json:"success"`
	Validated        bool              `json:"validated"`
	Amount           *decimal.Decimal  `json:"amount,omitempty"`
	ReceiptReference string            `json:"receipt_reference,omitempty"`
	Transaction      *Transaction      `json:"transaction,omitempty"`
	Validation       *ValidationResult `json:"validation,omitempty"`
	Error            string            `json:"error,omitempty"`
}
