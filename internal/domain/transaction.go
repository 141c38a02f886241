package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod identifies the source a receipt was collected from.
type PaymentMethod string

const (
	MethodTelebirr  PaymentMethod = "telebirr"
	MethodCBE       PaymentMethod = "cbe"
	MethodDashen    PaymentMethod = "dashen"
	MethodAbyssinia PaymentMethod = "abyssinia"
	MethodCBEBirr   PaymentMethod = "cbebirr"
)

// ParsePaymentMethod validates a caller-supplied method string.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch m := PaymentMethod(s); m {
	case MethodTelebirr, MethodCBE, MethodDashen, MethodAbyssinia, MethodCBEBirr:
		return m, nil
	default:
		return "", fmt.Errorf("unknown payment method %q", s)
	}
}

// TransactionStatus is the source-reported state of a transaction.
type TransactionStatus string

const (
	StatusSuccess TransactionStatus = "success"
	StatusFailed  TransactionStatus = "failed"
	StatusPending TransactionStatus = "pending"
)

// Transaction is the canonical record every source result is normalized
// into. Optional identity fields are pointers: absence means the source
// did not expose the field, which downstream checks must treat as
// "unknown" rather than empty.
//
// Invariant: Success == false implies Amount is zero and Status is failed.
type Transaction struct {
	Success          bool              `json:"success"`
	PaymentMethod    PaymentMethod     `json:"payment_method"`
	Amount           decimal.Decimal   `json:"amount"`
	PayerName        *string           `json:"payer_name,omitempty"`
	PayerAccount     *string           `json:"payer_account,omitempty"`
	ReceiverName     *string           `json:"receiver_name,omitempty"`
	ReceiverAccount  *string           `json:"receiver_account,omitempty"`
	Date             time.Time         `json:"date"`
	ReceiptReference string            `json:"receipt_reference"`
	Status           TransactionStatus `json:"status"`

	// RawData is the untouched source-specific record, kept for
	// debugging only. The validator never reads it.
	RawData any `json:"raw_data,omitempty"`

	// Error is set only when Success is false.
	Error string `json:"error,omitempty"`
}
