package usecase

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"payment-verifier/internal/domain"
	"payment-verifier/internal/normalize"
	"payment-verifier/internal/validate"
)

// VerifyRequest describes one payment verification attempt.
type VerifyRequest struct {
	Method         domain.PaymentMethod
	Reference      string
	AccountSuffix  string // required by cbe and abyssinia lookups
	PhoneNumber    string // required by cbebirr lookups
	ExpectedAmount decimal.Decimal
}

// VerificationUseCase orchestrates one verification attempt: fetch the
// raw result from the source collector, normalize it into the canonical
// transaction, and validate it against the expected payment.
type VerificationUseCase struct {
	collector  SourceCollector
	normalizer *normalize.Normalizer
	validator  *validate.Validator
	logger     *log.Logger
}

// NewVerificationUseCase creates a new instance of the usecase.
func NewVerificationUseCase(collector SourceCollector, normalizer *normalize.Normalizer, validator *validate.Validator, logger *log.Logger) *VerificationUseCase {
	if logger == nil {
		logger = log.Default()
	}
	return &VerificationUseCase{
		collector:  collector,
		normalizer: normalizer,
		validator:  validator,
		logger:     logger,
	}
}

// VerifyPayment runs the full pipeline for a single claimed payment.
// Collector failures come back as a failed response envelope, never as
// an error; an error indicates a contract violation (unknown method, nil
// result from a collector that must produce one).
func (uc *VerificationUseCase) VerifyPayment(ctx context.Context, req VerifyRequest) (*domain.VerifyPaymentResponse, error) {
	attemptID := uuid.NewString()
	logger := uc.logger.With("attempt_id", attemptID, "method", req.Method, "reference", req.Reference)
	logger.Info("verifying payment", "expected_amount", req.ExpectedAmount)

	tx, err := uc.fetchAndNormalize(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("could not normalize %s result: %w", req.Method, err)
	}

	if !tx.Success {
		logger.Warn("collector reported failure", "error", tx.Error)
		return &domain.VerifyPaymentResponse{
			Success:          false,
			Validated:        false,
			ReceiptReference: tx.ReceiptReference,
			Transaction:      &tx,
			Error:            tx.Error,
		}, nil
	}

	validation := uc.validator.Validate(tx, req.ExpectedAmount, req.Method)

	return &domain.VerifyPaymentResponse{
		Success:          true,
		Validated:        validation.Passed,
		Amount:           &tx.Amount,
		ReceiptReference: tx.ReceiptReference,
		Transaction:      &tx,
		Validation:       &validation,
	}, nil
}

// fetchAndNormalize dispatches to the collector call and mapping
// function for the requested method. A collector transport error is
// folded into a failed raw result so it normalizes like any other
// collector failure.
func (uc *VerificationUseCase) fetchAndNormalize(ctx context.Context, req VerifyRequest) (domain.Transaction, error) {
	switch req.Method {
	case domain.MethodTelebirr:
		receipt, err := uc.collector.FetchTelebirr(ctx, req.Reference)
		if err != nil {
			receipt = nil
		}
		return uc.normalizer.Telebirr(receipt, req.Reference)

	case domain.MethodCBE:
		result, err := uc.collector.FetchCBE(ctx, req.Reference, req.AccountSuffix)
		if err != nil {
			result = &domain.CBEVerifyResult{Success: false, Error: err.Error()}
		}
		return uc.normalizer.CBE(result, req.Reference)

	case domain.MethodDashen:
		result, err := uc.collector.FetchDashen(ctx, req.Reference)
		if err != nil {
			result = &domain.DashenVerifyResult{Success: false, Error: err.Error()}
		}
		return uc.normalizer.Dashen(result, req.Reference)

	case domain.MethodAbyssinia:
		result, err := uc.collector.FetchAbyssinia(ctx, req.Reference, req.AccountSuffix)
		if err != nil {
			result = &domain.AbyssiniaVerifyResult{Success: false, Error: err.Error()}
		}
		return uc.normalizer.Abyssinia(result, req.Reference)

	case domain.MethodCBEBirr:
		result, err := uc.collector.FetchCBEBirr(ctx, req.Reference, req.PhoneNumber)
		if err != nil {
			result = &domain.CBEBirrVerifyResult{Success: false, Error: err.Error()}
		}
		return uc.normalizer.CBEBirr(result, req.Reference)

	default:
		return domain.Transaction{}, fmt.Errorf("unknown payment method %q", req.Method)
	}
}
