package domain

import "time"

// Raw result shapes produced by the external source collectors. Each
// source has its own page layout and field names; the normalizer maps
// every one of these into a Transaction. Fields are kept exactly as the
// collectors report them.

// TelebirrReceipt is the parsed Telebirr receipt page. The telebirr
// collector returns nil when the receipt could not be fetched, so there
// is no success flag on the shape itself.
type TelebirrReceipt struct {
	PayerName              string `json:"payerName"`
	PayerTelebirrNo        string `json:"payerTelebirrNo"`
	CreditedPartyName      string `json:"creditedPartyName"`
	CreditedPartyAccountNo string `json:"creditedPartyAccountNo"`
	TransactionStatus      string `json:"transactionStatus"`
	ReceiptNo              string `json:"receiptNo"`
	PaymentDate            string `json:"paymentDate"`
	SettledAmount          string `json:"settledAmount"`
	ServiceFee             string `json:"serviceFee"`
	ServiceFeeVAT          string `json:"serviceFeeVAT"`
	TotalPaidAmount        string `json:"totalPaidAmount"`
	BankName               string `json:"bankName"`
}

// CBEVerifyResult is the outcome of a CBE receipt lookup. CBE is the
// only source whose collector already types the amount and date.
type CBEVerifyResult struct {
	Success         bool      `json:"success"`
	Payer           string    `json:"payer,omitempty"`
	PayerAccount    string    `json:"payerAccount,omitempty"`
	Receiver        string    `json:"receiver,omitempty"`
	ReceiverAccount string    `json:"receiverAccount,omitempty"`
	Amount          float64   `json:"amount,omitempty"`
	Date            time.Time `json:"date,omitempty"`
	Reference       string    `json:"reference,omitempty"`
	Error           string    `json:"error,omitempty"`
}

// DashenVerifyResult is the outcome of a Dashen receipt lookup.
type DashenVerifyResult struct {
	Success               bool   `json:"success"`
	SenderName            string `json:"senderName,omitempty"`
	SenderAccountNumber   string `json:"senderAccountNumber,omitempty"`
	ReceiverName          string `json:"receiverName,omitempty"`
	ReceiverAccountNumber string `json:"receiverAccountNumber,omitempty"`
	TransactionAmount     string `json:"transactionAmount,omitempty"`
	ServiceCharge         string `json:"serviceCharge,omitempty"`
	Total                 string `json:"total,omitempty"`
	TransactionDate       string `json:"transactionDate,omitempty"`
	TransactionReference  string `json:"transactionReference,omitempty"`
	Narrative             string `json:"narrative,omitempty"`
	Error                 string `json:"error,omitempty"`
}

// AbyssiniaVerifyResult is the outcome of a Bank of Abyssinia slip
// lookup. Account numbers come back masked ("***816408").
type AbyssiniaVerifyResult struct {
	Success              bool   `json:"success"`
	TransactionReference string `json:"transactionReference,omitempty"`
	Payer                string `json:"payer,omitempty"`
	PayerAccount         string `json:"payerAccount,omitempty"`
	Receiver             string `json:"receiver,omitempty"`
	ReceiverAccount      string `json:"receiverAccount,omitempty"`
	Amount               string `json:"amount,omitempty"`
	Date                 string `json:"date,omitempty"`
	Status               string `json:"status,omitempty"`
	Reason               string `json:"reason,omitempty"`
	Error                string `json:"error,omitempty"`
}

// CBEBirrVerifyResult is the outcome of a CBE Birr wallet verification.
type CBEBirrVerifyResult struct {
	Success         bool   `json:"success"`
	ReceiptNumber   string `json:"receiptNumber,omitempty"`
	Payer           string `json:"payer,omitempty"`
	Receiver        string `json:"receiver,omitempty"`
	ReceiverAccount string `json:"receiverAccount,omitempty"`
	Amount          string `json:"amount,omitempty"`
	Fees            string `json:"fees,omitempty"`
	Status          string `json:"status,omitempty"`
	Timestamp       string `json:"timestamp,omitempty"`
	Error           string `json:"error,omitempty"`
}
