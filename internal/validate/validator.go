// Package validate implements the reconciliation engine: it decides
// whether a canonical transaction satisfies an expected payment, using
// the receiver profile of its payment method and a fixed rule set.
package validate

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"payment-verifier/internal/domain"
	"payment-verifier/internal/profile"
)

// Validator applies the four payment checks. It holds no per-request
// state, so a single instance is safe for unbounded concurrent use.
type Validator struct {
	profiles *profile.Store
	cfg      profile.ValidationConfig
	logger   *log.Logger
	now      func() time.Time
}

// New builds a validator over the given profile store and config.
func New(profiles *profile.Store, cfg profile.ValidationConfig, logger *log.Logger) *Validator {
	return NewWithClock(profiles, cfg, logger, time.Now)
}

// NewWithClock injects the evaluation clock, for deterministic tests.
func NewWithClock(profiles *profile.Store, cfg profile.ValidationConfig, logger *log.Logger, now func() time.Time) *Validator {
	if logger == nil {
		logger = log.Default()
	}
	return &Validator{profiles: profiles, cfg: cfg, logger: logger, now: now}
}

// Validate evaluates all four checks against the expected amount and the
// profile for the given method. The checks always run in the same order
// and a failure never short-circuits the rest, so FailedReasons carries
// the complete diagnostic set.
func (v *Validator) Validate(tx domain.Transaction, expectedAmount decimal.Decimal, method domain.PaymentMethod) domain.ValidationResult {
	p := v.profiles.Lookup(method)
	now := v.now()

	checks := domain.ValidationChecks{}
	reasons := make([]string, 0)

	// 1. Amount: only underpayment beyond tolerance fails.
	minAmount := expectedAmount.Sub(v.cfg.AmountTolerance)
	checks.AmountMatch = tx.Amount.GreaterThanOrEqual(minAmount)
	if !checks.AmountMatch {
		reasons = append(reasons, fmt.Sprintf(
			"Amount too low: expected min %s ETB, but found %s ETB", minAmount, tx.Amount))
	}

	// 2. Receiver account.
	checks.ReceiverAccountMatch = accountsMatch(tx.ReceiverAccount, p.ReceiverAccount, v.cfg.ReceiverAccountSuffixDigits)
	if checks.ReceiverAccountMatch == domain.CheckFailed {
		expectedSuffix := lastN(normalizeAccount(p.ReceiverAccount), v.cfg.ReceiverAccountSuffixDigits)
		found := "not found"
		if tx.ReceiverAccount != nil {
			found = "..." + lastN(normalizeAccount(*tx.ReceiverAccount), v.cfg.ReceiverAccountSuffixDigits)
		}
		reasons = append(reasons, fmt.Sprintf(
			"Wrong account: expected suffix %s, but found %s", expectedSuffix, found))
	}

	// 3. Receiver name.
	checks.ReceiverNameMatch = namesMatch(tx.ReceiverName, p.ReceiverName, v.cfg.StrictNameMatch)
	if checks.ReceiverNameMatch == domain.CheckFailed {
		found := "none"
		if tx.ReceiverName != nil {
			found = *tx.ReceiverName
		}
		reasons = append(reasons, fmt.Sprintf(
			"Wrong receiver name: expected %q, but found %q", p.ReceiverName, found))
	}

	// 4. Date within window.
	checks.DateWithinWindow = v.dateWithinWindow(tx.Date, now)
	if !checks.DateWithinWindow {
		reasons = append(reasons, fmt.Sprintf(
			"Transaction date outside allowed window (±%dh): %s",
			v.cfg.TimeWindowHours, tx.Date.Format(time.RFC3339)))
	}

	passed := checks.AmountMatch &&
		checks.DateWithinWindow &&
		!checks.ReceiverAccountMatch.Blocking() &&
		!checks.ReceiverNameMatch.Blocking()

	if passed {
		v.logger.Info("validation passed",
			"method", method, "reference", tx.ReceiptReference, "amount", tx.Amount)
	} else {
		v.logger.Warn("validation failed",
			"method", method, "reference", tx.ReceiptReference, "reasons", reasons)
	}

	return domain.ValidationResult{
		Passed:        passed,
		Checks:        checks,
		FailedReasons: reasons,
	}
}

// dateWithinWindow accepts timestamps within ±TimeWindowHours of now. A
// zero timestamp is an invalid date surfaced by the normalizer and
// always fails.
func (v *Validator) dateWithinWindow(date time.Time, now time.Time) bool {
	if date.IsZero() {
		v.logger.Warn("invalid transaction date", "date", date)
		return false
	}

	diff := now.Sub(date)
	if diff < 0 {
		diff = -diff
	}
	return diff <= time.Duration(v.cfg.TimeWindowHours)*time.Hour
}

var accountStripper = strings.NewReplacer(" ", "", "-", "", ".", "")

func normalizeAccount(s string) string {
	return accountStripper.Replace(s)
}

func lastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

// accountsMatch compares only the trailing suffixDigits characters of
// the two normalized account numbers, so full account numbers match the
// masked forms some sources return. A '*' or 'x' in the transaction
// suffix is a wildcard for that position.
func accountsMatch(actual *string, expected string, suffixDigits int) domain.CheckResult {
	if expected == "" {
		return domain.CheckNotApplicable
	}
	if actual == nil {
		return domain.CheckFailed
	}

	actualNorm := normalizeAccount(*actual)
	expectedNorm := normalizeAccount(expected)
	actualSuffix := lastN(actualNorm, suffixDigits)
	expectedSuffix := lastN(expectedNorm, suffixDigits)

	required := suffixDigits
	if len(expectedNorm) < required {
		required = len(expectedNorm)
	}
	if len(actualSuffix) < required {
		return domain.CheckFailed
	}

	for i := 0; i < len(actualSuffix); i++ {
		c := actualSuffix[i]
		if c == '*' || c == 'x' || c == 'X' {
			continue
		}
		if i >= len(expectedSuffix) || c != expectedSuffix[i] {
			return domain.CheckFailed
		}
	}
	return domain.CheckPassed
}

func normalizeName(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// namesMatch compares receiver names case-insensitively with collapsed
// whitespace. Unless strict, a bidirectional substring match passes too,
// which tolerates sources that append suffixes like "PLC" or titles.
func namesMatch(actual *string, expected string, strict bool) domain.CheckResult {
	if expected == "" {
		return domain.CheckNotApplicable
	}
	if actual == nil || strings.TrimSpace(*actual) == "" {
		return domain.CheckFailed
	}

	actualNorm := normalizeName(*actual)
	expectedNorm := normalizeName(expected)

	if actualNorm == expectedNorm {
		return domain.CheckPassed
	}
	if strict {
		return domain.CheckFailed
	}
	if strings.Contains(actualNorm, expectedNorm) || strings.Contains(expectedNorm, actualNorm) {
		return domain.CheckPassed
	}
	return domain.CheckFailed
}
