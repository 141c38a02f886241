package normalize

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"payment-verifier/internal/domain"
)

// ErrMissingResult is returned when a collector hands over a nil result
// where a result object is required. That is a collector/core contract
// violation, not a data-quality issue, and aborts normalization.
var ErrMissingResult = errors.New("collector returned no result")

// Normalizer maps each source-specific raw result into the canonical
// Transaction. Every mapping is a pure, total function of its input and
// the clock; the clock only matters for the missing/unparsable-date
// fallback.
type Normalizer struct {
	now func() time.Time
}

// New returns a Normalizer on the wall clock.
func New() *Normalizer {
	return NewWithClock(time.Now)
}

// NewWithClock returns a Normalizer with an injected clock, for
// deterministic tests.
func NewWithClock(now func() time.Time) *Normalizer {
	return &Normalizer{now: now}
}

// failed builds the canonical shape for a collector-reported failure.
// The reference is best-effort: the collector's own reference when it
// produced one, otherwise the caller-supplied attempt reference.
func (n *Normalizer) failed(method domain.PaymentMethod, reference, errMsg string) domain.Transaction {
	return domain.Transaction{
		Success:          false,
		PaymentMethod:    method,
		Amount:           decimal.Zero,
		Date:             n.now(),
		ReceiptReference: reference,
		Status:           domain.StatusFailed,
		Error:            errMsg,
	}
}

// optional maps a collector string field to the canonical optional form:
// empty means the source did not expose the field.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

// Telebirr normalizes a Telebirr receipt. The telebirr collector
// returns nil when the receipt could not be fetched, so nil here is a
// collector failure rather than a contract violation.
func (n *Normalizer) Telebirr(data *domain.TelebirrReceipt, reference string) (domain.Transaction, error) {
	if data == nil {
		return n.failed(domain.MethodTelebirr, reference, "failed to fetch telebirr receipt"), nil
	}

	return domain.Transaction{
		Success:          true,
		PaymentMethod:    domain.MethodTelebirr,
		Amount:           ParseAmount(data.SettledAmount),
		ReceiverName:     optional(data.CreditedPartyName),
		ReceiverAccount:  optional(data.CreditedPartyAccountNo),
		PayerName:        optional(data.PayerName),
		PayerAccount:     optional(data.PayerTelebirrNo),
		Date:             ParseDate(data.PaymentDate, n.now()),
		ReceiptReference: firstNonEmpty(data.ReceiptNo, reference),
		Status:           ClassifyStatus(data.TransactionStatus),
		RawData:          data,
	}, nil
}

// CBE normalizes a CBE lookup result. CBE exposes no status field; a
// successful collector call is implicit confirmation, so status is the
// literal success.
func (n *Normalizer) CBE(data *domain.CBEVerifyResult, reference string) (domain.Transaction, error) {
	if data == nil {
		return domain.Transaction{}, ErrMissingResult
	}
	if !data.Success {
		ref := firstNonEmpty(data.Reference, reference)
		return n.failed(domain.MethodCBE, ref, firstNonEmpty(data.Error, "cbe verification failed")), nil
	}

	date := data.Date
	if date.IsZero() {
		date = n.now()
	}

	return domain.Transaction{
		Success:          true,
		PaymentMethod:    domain.MethodCBE,
		Amount:           decimal.NewFromFloat(data.Amount),
		ReceiverName:     optional(data.Receiver),
		ReceiverAccount:  optional(data.ReceiverAccount),
		PayerName:        optional(data.Payer),
		PayerAccount:     optional(data.PayerAccount),
		Date:             date,
		ReceiptReference: firstNonEmpty(data.Reference, reference),
		Status:           domain.StatusSuccess,
		RawData:          data,
	}, nil
}

// Dashen normalizes a Dashen receipt result. Like CBE, Dashen exposes no
// explicit status field.
func (n *Normalizer) Dashen(data *domain.DashenVerifyResult, reference string) (domain.Transaction, error) {
	if data == nil {
		return domain.Transaction{}, ErrMissingResult
	}
	if !data.Success {
		ref := firstNonEmpty(data.TransactionReference, reference)
		return n.failed(domain.MethodDashen, ref, firstNonEmpty(data.Error, "dashen verification failed")), nil
	}

	return domain.Transaction{
		Success:          true,
		PaymentMethod:    domain.MethodDashen,
		Amount:           ParseAmount(data.TransactionAmount),
		ReceiverName:     optional(data.ReceiverName),
		ReceiverAccount:  optional(data.ReceiverAccountNumber),
		PayerName:        optional(data.SenderName),
		PayerAccount:     optional(data.SenderAccountNumber),
		Date:             ParseDate(data.TransactionDate, n.now()),
		ReceiptReference: firstNonEmpty(data.TransactionReference, reference),
		Status:           domain.StatusSuccess,
		RawData:          data,
	}, nil
}

// Abyssinia normalizes a Bank of Abyssinia slip result. Abyssinia does
// report a status string, so the classifier's verdict is authoritative.
func (n *Normalizer) Abyssinia(data *domain.AbyssiniaVerifyResult, reference string) (domain.Transaction, error) {
	if data == nil {
		return domain.Transaction{}, ErrMissingResult
	}
	if !data.Success {
		ref := firstNonEmpty(data.TransactionReference, reference)
		return n.failed(domain.MethodAbyssinia, ref, firstNonEmpty(data.Error, "abyssinia verification failed")), nil
	}

	return domain.Transaction{
		Success:          true,
		PaymentMethod:    domain.MethodAbyssinia,
		Amount:           ParseAmount(data.Amount),
		ReceiverName:     optional(data.Receiver),
		ReceiverAccount:  optional(data.ReceiverAccount),
		PayerName:        optional(data.Payer),
		PayerAccount:     optional(data.PayerAccount),
		Date:             ParseDate(data.Date, n.now()),
		ReceiptReference: firstNonEmpty(data.TransactionReference, reference),
		Status:           ClassifyStatus(data.Status),
		RawData:          data,
	}, nil
}

// CBEBirr normalizes a CBE Birr wallet result.
func (n *Normalizer) CBEBirr(data *domain.CBEBirrVerifyResult, reference string) (domain.Transaction, error) {
	if data == nil {
		return domain.Transaction{}, ErrMissingResult
	}
	if !data.Success {
		ref := firstNonEmpty(data.ReceiptNumber, reference)
		return n.failed(domain.MethodCBEBirr, ref, firstNonEmpty(data.Error, "cbebirr verification failed")), nil
	}

	return domain.Transaction{
		Success:          true,
		PaymentMethod:    domain.MethodCBEBirr,
		Amount:           ParseAmount(data.Amount),
		ReceiverName:     optional(data.Receiver),
		ReceiverAccount:  optional(data.ReceiverAccount),
		PayerName:        optional(data.Payer),
		Date:             ParseDate(data.Timestamp, n.now()),
		ReceiptReference: firstNonEmpty(data.ReceiptNumber, reference),
		Status:           ClassifyStatus(data.Status),
		RawData:          data,
	}, nil
}
