package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"payment-verifier/internal/domain"
)

// FixtureCollector implements the SourceCollector interface by replaying
// captured raw collector results from JSON files. It is used by the CLI
// and for offline debugging of normalization and validation; live
// collectors run in a separate service.
//
// Files are laid out as <dir>/<method>/<reference>.json, each holding
// one raw result in the source's own shape.
type FixtureCollector struct {
	dir string
}

// NewFixtureCollector creates a collector reading from dir.
func NewFixtureCollector(dir string) *FixtureCollector {
	return &FixtureCollector{dir: dir}
}

func readFixture(dir string, method domain.PaymentMethod, reference string, out any) error {
	path := filepath.Join(dir, string(method), reference+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read fixture %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse fixture %s: %w", path, err)
	}
	return nil
}

// FetchTelebirr replays a captured Telebirr receipt. A missing fixture
// maps to the collector's "receipt not found" outcome, which is nil.
func (c *FixtureCollector) FetchTelebirr(ctx context.Context, reference string) (*domain.TelebirrReceipt, error) {
	var receipt domain.TelebirrReceipt
	if err := readFixture(c.dir, domain.MethodTelebirr, reference, &receipt); err != nil {
		return nil, nil
	}
	return &receipt, nil
}

// FetchCBE replays a captured CBE lookup result.
func (c *FixtureCollector) FetchCBE(ctx context.Context, reference, accountSuffix string) (*domain.CBEVerifyResult, error) {
	var result domain.CBEVerifyResult
	if err := readFixture(c.dir, domain.MethodCBE, reference, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// FetchDashen replays a captured Dashen receipt result.
func (c *FixtureCollector) FetchDashen(ctx context.Context, reference string) (*domain.DashenVerifyResult, error) {
	var result domain.DashenVerifyResult
	if err := readFixture(c.dir, domain.MethodDashen, reference, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// FetchAbyssinia replays a captured Bank of Abyssinia slip result.
func (c *FixtureCollector) FetchAbyssinia(ctx context.Context, reference, suffix string) (*domain.AbyssiniaVerifyResult, error) {
	var result domain.AbyssiniaVerifyResult
	if err := readFixture(c.dir, domain.MethodAbyssinia, reference, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// FetchCBEBirr replays a captured CBE Birr wallet result.
func (c *FixtureCollector) FetchCBEBirr(ctx context.Context, receiptNumber, phoneNumber string) (*domain.CBEBirrVerifyResult, error) {
	var result domain.CBEBirrVerifyResult
	if err := readFixture(c.dir, domain.MethodCBEBirr, receiptNumber, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
