package usecase

import (
	"context"

	"payment-verifier/internal/domain"
)

// SourceCollector defines the interface to the external receipt
// collectors. The usecase layer depends on this interface, not on a
// concrete implementation; fetching, page scraping, and retries all live
// behind it.
//
//go:generate mockgen -destination=mocks/mock_collector.go -source=interface.go SourceCollector
type SourceCollector interface {
	// FetchTelebirr returns nil when the receipt could not be fetched.
	FetchTelebirr(ctx context.Context, reference string) (*domain.TelebirrReceipt, error)
	FetchCBE(ctx context.Context, reference, accountSuffix string) (*domain.CBEVerifyResult, error)
	FetchDashen(ctx context.Context, reference string) (*domain.DashenVerifyResult, error)
	FetchAbyssinia(ctx context.Context, reference, suffix string) (*domain.AbyssiniaVerifyResult, error)
	FetchCBEBirr(ctx context.Context, receiptNumber, phoneNumber string) (*domain.CBEBirrVerifyResult, error)
}
