package profile

import (
	"github.com/shopspring/decimal"

	"payment-verifier/internal/domain"
)

// ReceiverProfile is the expected receiver identity for one payment
// method. An empty field means the profile does not configure that
// check, which makes the check not-applicable rather than requiring an
// empty value.
type ReceiverProfile struct {
	ReceiverName    string `yaml:"receiver_name"`
	ReceiverAccount string `yaml:"receiver_account"`
}

// ValidationConfig carries the tunable parameters of the validator.
// Loaded once at process start and immutable afterwards.
type ValidationConfig struct {
	// TimeWindowHours accepts transactions within ±N hours of now.
	TimeWindowHours int

	// AmountTolerance is the allowed underpayment in currency units.
	// Overpayments always pass.
	AmountTolerance decimal.Decimal

	// ReceiverAccountSuffixDigits is how many trailing characters of an
	// account number must match.
	ReceiverAccountSuffixDigits int

	// StrictNameMatch restricts the name check to exact normalized
	// equality instead of bidirectional substring matching.
	StrictNameMatch bool
}

// DefaultValidationConfig returns the production defaults.
func DefaultValidationConfig() ValidationConfig {
	return ValidationConfig{
		TimeWindowHours:             24,
		AmountTolerance:             decimal.NewFromInt(1),
		ReceiverAccountSuffixDigits: 6,
		StrictNameMatch:             false,
	}
}

// Store holds one receiver profile per payment method.
type Store struct {
	profiles map[domain.PaymentMethod]ReceiverProfile
}

// NewStore builds a store from an explicit profile map. The map is
// copied so the store stays immutable after construction.
func NewStore(profiles map[domain.PaymentMethod]ReceiverProfile) *Store {
	copied := make(map[domain.PaymentMethod]ReceiverProfile, len(profiles))
	for method, p := range profiles {
		copied[method] = p
	}
	return &Store{profiles: copied}
}

// DefaultStore returns the built-in business receiver profiles.
func DefaultStore() *Store {
	return NewStore(map[domain.PaymentMethod]ReceiverProfile{
		domain.MethodTelebirr: {
			ReceiverName:    "Zinet Selman Wabela",
			ReceiverAccount: "0962071522",
		},
		domain.MethodCBE: {
			ReceiverAccount: "1000356042704",
		},
		domain.MethodDashen: {
			ReceiverName: "SOSHA OS PLC",
		},
		domain.MethodAbyssinia: {
			ReceiverAccount: "138816408",
		},
		domain.MethodCBEBirr: {
			ReceiverName: "SOSHA OS PLC",
		},
	})
}

// Lookup returns the profile for a method. An unconfigured method gets
// the zero profile, which disables both identity checks.
func (s *Store) Lookup(method domain.PaymentMethod) ReceiverProfile {
	return s.profiles[method]
}
