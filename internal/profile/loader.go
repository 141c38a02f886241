package profile

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"payment-verifier/internal/domain"
)

// fileConfig is the YAML shape of a profile/validation config file.
type fileConfig struct {
	ReceiverProfiles map[string]ReceiverProfile `yaml:"receiver_profiles"`
	Validation       struct {
		TimeWindowHours             *int     `yaml:"time_window_hours"`
		AmountTolerance             *float64 `yaml:"amount_tolerance"`
		ReceiverAccountSuffixDigits *int     `yaml:"receiver_account_suffix_digits"`
		StrictNameMatch             *bool    `yaml:"strict_name_match"`
	} `yaml:"validation"`
}

// Load reads receiver profiles and validation parameters from a YAML
// file. Omitted validation fields keep their defaults; an omitted
// receiver_profiles block keeps the built-in profiles.
func Load(path string) (*Store, ValidationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ValidationConfig{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, ValidationConfig{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	store := DefaultStore()
	if fc.ReceiverProfiles != nil {
		profiles := make(map[domain.PaymentMethod]ReceiverProfile, len(fc.ReceiverProfiles))
		for name, p := range fc.ReceiverProfiles {
			method, err := domain.ParsePaymentMethod(name)
			if err != nil {
				return nil, ValidationConfig{}, fmt.Errorf("invalid profile entry: %w", err)
			}
			profiles[method] = p
		}
		store = NewStore(profiles)
	}

	cfg := DefaultValidationConfig()
	if v := fc.Validation.TimeWindowHours; v != nil {
		cfg.TimeWindowHours = *v
	}
	if v := fc.Validation.AmountTolerance; v != nil {
		cfg.AmountTolerance = decimal.NewFromFloat(*v)
	}
	if v := fc.Validation.ReceiverAccountSuffixDigits; v != nil {
		cfg.ReceiverAccountSuffixDigits = *v
	}
	if v := fc.Validation.StrictNameMatch; v != nil {
		cfg.StrictNameMatch = *v
	}

	return store, cfg, nil
}
