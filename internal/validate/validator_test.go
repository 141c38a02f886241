package validate_test

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"payment-verifier/internal/domain"
	"payment-verifier/internal/profile"
	"payment-verifier/internal/validate"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newValidator(t *testing.T, cfg profile.ValidationConfig) *validate.Validator {
	t.Helper()
	logger := log.New(io.Discard)
	return validate.NewWithClock(profile.DefaultStore(), cfg, logger, func() time.Time { return fixedNow })
}

func strPtr(s string) *string { return &s }

func TestValidator_Validate(t *testing.T) {
	defaultCfg := profile.DefaultValidationConfig()

	strictCfg := profile.DefaultValidationConfig()
	strictCfg.StrictNameMatch = true

	tests := []struct {
		name        string
		cfg         profile.ValidationConfig
		tx          domain.Transaction
		expected    string
		method      domain.PaymentMethod
		wantPassed  bool
		wantChecks  domain.ValidationChecks
		wantReasons []string
	}{
		{
			name: "cbe payment passes all checks",
			cfg:  defaultCfg,
			tx: domain.Transaction{
				Success:         true,
				PaymentMethod:   domain.MethodCBE,
				Amount:          decimal.NewFromInt(500),
				ReceiverAccount: strPtr("1000356042704"),
				Date:            fixedNow.Add(-1 * time.Hour),
			},
			expected:   "500",
			method:     domain.MethodCBE,
			wantPassed: true,
			wantChecks: domain.ValidationChecks{
				AmountMatch:          true,
				ReceiverAccountMatch: domain.CheckPassed,
				ReceiverNameMatch:    domain.CheckNotApplicable,
				DateWithinWindow:     true,
			},
			wantReasons: []string{},
		},
		{
			name: "underpayment beyond tolerance fails with minimum cited",
			cfg:  defaultCfg,
			tx: domain.Transaction{
				Success:         true,
				PaymentMethod:   domain.MethodCBE,
				Amount:          decimal.NewFromInt(480),
				ReceiverAccount: strPtr("1000356042704"),
				Date:            fixedNow.Add(-1 * time.Hour),
			},
			expected:   "500",
			method:     domain.MethodCBE,
			wantPassed: false,
			wantChecks: domain.ValidationChecks{
				AmountMatch:          false,
				ReceiverAccountMatch: domain.CheckPassed,
				ReceiverNameMatch:    domain.CheckNotApplicable,
				DateWithinWindow:     true,
			},
			wantReasons: []string{"Amount too low: expected min 499 ETB, but found 480 ETB"},
		},
		{
			name: "underpayment exactly at tolerance boundary passes",
			cfg:  defaultCfg,
			tx: domain.Transaction{
				Amount:          decimal.NewFromInt(499),
				ReceiverAccount: strPtr("1000356042704"),
				Date:            fixedNow,
			},
			expected:   "500",
			method:     domain.MethodCBE,
			wantPassed: true,
			wantChecks: domain.ValidationChecks{
				AmountMatch:          true,
				ReceiverAccountMatch: domain.CheckPassed,
				ReceiverNameMatch:    domain.CheckNotApplicable,
				DateWithinWindow:     true,
			},
			wantReasons: []string{},
		},
		{
			name: "one cent below tolerance boundary fails",
			cfg:  defaultCfg,
			tx: domain.Transaction{
				Amount:          decimal.RequireFromString("498.99"),
				ReceiverAccount: strPtr("1000356042704"),
				Date:            fixedNow,
			},
			expected:   "500",
			method:     domain.MethodCBE,
			wantPassed: false,
			wantChecks: domain.ValidationChecks{
				AmountMatch:          false,
				ReceiverAccountMatch: domain.CheckPassed,
				ReceiverNameMatch:    domain.CheckNotApplicable,
				DateWithinWindow:     true,
			},
			wantReasons: []string{"Amount too low: expected min 499 ETB, but found 498.99 ETB"},
		},
		{
			name: "overpayment always passes",
			cfg:  defaultCfg,
			tx: domain.Transaction{
				Amount:          decimal.NewFromInt(10000),
				ReceiverAccount: strPtr("1000356042704"),
				Date:            fixedNow,
			},
			expected:   "500",
			method:     domain.MethodCBE,
			wantPassed: true,
			wantChecks: domain.ValidationChecks{
				AmountMatch:          true,
				ReceiverAccountMatch: domain.CheckPassed,
				ReceiverNameMatch:    domain.CheckNotApplicable,
				DateWithinWindow:     true,
			},
			wantReasons: []string{},
		},
		{
			name: "masked abyssinia account matches via wildcards",
			cfg:  defaultCfg,
			tx: domain.Transaction{
				Amount:          decimal.NewFromInt(500),
				ReceiverAccount: strPtr("****6408"),
				Date:            fixedNow,
			},
			expected:   "500",
			method:     domain.MethodAbyssinia,
			wantPassed: true,
			wantChecks: domain.ValidationChecks{
				AmountMatch:          true,
				ReceiverAccountMatch: domain.CheckPassed,
				ReceiverNameMatch:    domain.CheckNotApplicable,
				DateWithinWindow:     true,
			},
			wantReasons: []string{},
		},
		{
			name: "masked account with wrong trailing digit fails",
			cfg:  defaultCfg,
			tx: domain.Transaction{
				Amount:          decimal.NewFromInt(500),
				ReceiverAccount: strPtr("****6409"),
				Date:            fixedNow,
			},
			expected:   "500",
			method:     domain.MethodAbyssinia,
			wantPassed: false,
			wantChecks: domain.ValidationChecks{
				AmountMatch:          true,
				ReceiverAccountMatch: domain.CheckFailed,
				ReceiverNameMatch:    domain.CheckNotApplicable,
				DateWithinWindow:     true,
			},
			wantReasons: []string{"Wrong account: expected suffix 816408, but found ...**6409"},
		},
		{
			name: "fully masked prefix with unmasked suffix matches",
			cfg:  defaultCfg,
			tx: domain.Transaction{
				Amount:          decimal.NewFromInt(500),
				ReceiverAccount: strPtr("***816408"),
				Date:            fixedNow,
			},
			expected:   "500",
			method:     domain.MethodAbyssinia,
			wantPassed: true,
			wantChecks: domain.ValidationChecks{
				AmountMatch:          true,
				ReceiverAccountMatch: domain.CheckPassed,
				ReceiverNameMatch:    domain.CheckNotApplicable,
				DateWithinWindow:     true,
			},
			wantReasons: []string{},
		},
		{
			name: "formatted account number is stripped before comparison",
			cfg:  defaultCfg,
			tx: domain.Transaction{
				Amount:          decimal.NewFromInt(500),
				ReceiverAccount: strPtr("1000-3560.427 04"),
				Date:            fixedNow,
			},
			expected:   "500",
			method:     domain.MethodCBE,
			wantPassed: true,
			wantChecks: domain.ValidationChecks{
				AmountMatch:          true,
				ReceiverAccountMatch: domain.CheckPassed,
				ReceiverNameMatch:    domain.CheckNotApplicable,
				DateWithinWindow:     true,
			},
			wantReasons: []string{},
		},
		{
			name: "account shorter than suffix fails",
			cfg:  defaultCfg,
			tx: domain.Transaction{
				Amount:          decimal.NewFromInt(500),
				ReceiverAccount: strPtr("408"),
				Date:            fixedNow,
			},
			expected:   "500",
			method:     domain.MethodAbyssinia,
			wantPassed: false,
			wantChecks: domain.ValidationChecks{
				AmountMatch:          true,
				ReceiverAccountMatch: domain.CheckFailed,
				ReceiverNameMatch:    domain.CheckNotApplicable,
				DateWithinWindow:     true,
			},
			wantReasons: []string{"Wrong account: expected suffix 816408, but found ...408"},
		},
		{
			name: "missing account with configured profile fails outright",
			cfg:  defaultCfg,
			tx: domain.Transaction{
				Amount: decimal.NewFromInt(500),
				Date:   fixedNow,
			},
			expected:   "500",
			method:     domain.MethodCBE,
			wantPassed: false,
			wantChecks: domain.ValidationChecks{
				AmountMatch:          true,
				ReceiverAccountMatch: domain.CheckFailed,
				ReceiverNameMatch:    domain.CheckNotApplicable,
				DateWithinWindow:     true,
			},
			wantReasons: []string{"Wrong account: expected suffix 042704, but found not found"},
		},
		{
			name: "receiver name with appended suffix passes",
			cfg:  defaultCfg,
			tx: domain.Transaction{
				Amount:       decimal.NewFromInt(500),
				ReceiverName: strPtr("Sosha Os Plc International"),
				Date:         fixedNow,
			},
			expected:   "500",
			method:     domain.MethodDashen,
			wantPassed: true,
			wantChecks: domain.ValidationChecks{
				AmountMatch:          true,
				ReceiverAccountMatch: domain.CheckNotApplicable,
				ReceiverNameMatch:    domain.CheckPassed,
				DateWithinWindow:     true,
			},
			wantReasons: []string{},
		},
		{
			name: "substring match works in both directions",
			cfg:  defaultCfg,
			tx: domain.Transaction{
				Amount:       decimal.NewFromInt(500),
				ReceiverName: strPtr("Sosha"),
				Date:         fixedNow,
			},
			expected:   "500",
			method:     domain.MethodDashen,
			wantPassed: true,
			wantChecks: domain.ValidationChecks{
				AmountMatch:          true,
				ReceiverAccountMatch: domain.CheckNotApplicable,
				ReceiverNameMatch:    domain.CheckPassed,
				DateWithinWindow:     true,
			},
			wantReasons: []string{},
		},
		{
			name: "wrong receiver name fails",
			cfg:  defaultCfg,
			tx: domain.Transaction{
				Amount:       decimal.NewFromInt(500),
				ReceiverName: strPtr("Other Entity"),
				Date:         fixedNow,
			},
			expected:   "500",
			method:     domain.MethodDashen,
			wantPassed: false,
			wantChecks: domain.ValidationChecks{
				AmountMatch:          true,
				ReceiverAccountMatch: domain.CheckNotApplicable,
				ReceiverNameMatch:    domain.CheckFailed,
				DateWithinWindow:     true,
			},
			wantReasons: []string{`Wrong receiver name: expected "SOSHA OS PLC", but found "Other Entity"`},
		},
		{
			name: "strict name match rejects substring",
			cfg:  strictCfg,
			tx: domain.Transaction{
				Amount:       decimal.NewFromInt(500),
				ReceiverName: strPtr("Sosha Os Plc International"),
				Date:         fixedNow,
			},
			expected:   "500",
			method:     domain.MethodDashen,
			wantPassed: false,
			wantChecks: domain.ValidationChecks{
				AmountMatch:          true,
				ReceiverAccountMatch: domain.CheckNotApplicable,
				ReceiverNameMatch:    domain.CheckFailed,
				DateWithinWindow:     true,
			},
			wantReasons: []string{`Wrong receiver name: expected "SOSHA OS PLC", but found "Sosha Os Plc International"`},
		},
		{
			name: "strict name match accepts exact modulo case and spacing",
			cfg:  strictCfg,
			tx: domain.Transaction{
				Amount:       decimal.NewFromInt(500),
				ReceiverName: strPtr("  sosha  os  plc "),
				Date:         fixedNow,
			},
			expected:   "500",
			method:     domain.MethodDashen,
			wantPassed: true,
			wantChecks: domain.ValidationChecks{
				AmountMatch:          true,
				ReceiverAccountMatch: domain.CheckNotApplicable,
				ReceiverNameMatch:    domain.CheckPassed,
				DateWithinWindow:     true,
			},
			wantReasons: []string{},
		},
		{
			name: "transaction two days old is outside the window",
			cfg:  defaultCfg,
			tx: domain.Transaction{
				Amount:          decimal.NewFromInt(500),
				ReceiverAccount: strPtr("1000356042704"),
				Date:            fixedNow.Add(-48 * time.Hour),
			},
			expected:   "500",
			method:     domain.MethodCBE,
			wantPassed: false,
			wantChecks: domain.ValidationChecks{
				AmountMatch:          true,
				ReceiverAccountMatch: domain.CheckPassed,
				ReceiverNameMatch:    domain.CheckNotApplicable,
				DateWithinWindow:     false,
			},
			wantReasons: []string{"Transaction date outside allowed window (±24h): 2025-05-30T12:00:00Z"},
		},
		{
			name: "future-dated transaction inside window passes",
			cfg:  defaultCfg,
			tx: domain.Transaction{
				Amount:          decimal.NewFromInt(500),
				ReceiverAccount: strPtr("1000356042704"),
				Date:            fixedNow.Add(3 * time.Hour),
			},
			expected:   "500",
			method:     domain.MethodCBE,
			wantPassed: true,
			wantChecks: domain.ValidationChecks{
				AmountMatch:          true,
				ReceiverAccountMatch: domain.CheckPassed,
				ReceiverNameMatch:    domain.CheckNotApplicable,
				DateWithinWindow:     true,
			},
			wantReasons: []string{},
		},
		{
			name: "telebirr profile checks both name and account",
			cfg:  defaultCfg,
			tx: domain.Transaction{
				Amount:          decimal.NewFromInt(600),
				ReceiverName:    strPtr("Zinet Selman Wabela"),
				ReceiverAccount: strPtr("0962071522"),
				Date:            fixedNow,
			},
			expected:   "600",
			method:     domain.MethodTelebirr,
			wantPassed: true,
			wantChecks: domain.ValidationChecks{
				AmountMatch:          true,
				ReceiverAccountMatch: domain.CheckPassed,
				ReceiverNameMatch:    domain.CheckPassed,
				DateWithinWindow:     true,
			},
			wantReasons: []string{},
		},
		{
			name: "every failing check contributes a reason in order",
			cfg:  defaultCfg,
			tx: domain.Transaction{
				Amount:          decimal.NewFromInt(100),
				ReceiverName:    strPtr("Other Entity"),
				ReceiverAccount: strPtr("0000000000"),
				Date:            fixedNow.Add(-72 * time.Hour),
			},
			expected:   "600",
			method:     domain.MethodTelebirr,
			wantPassed: false,
			wantChecks: domain.ValidationChecks{
				AmountMatch:          false,
				ReceiverAccountMatch: domain.CheckFailed,
				ReceiverNameMatch:    domain.CheckFailed,
				DateWithinWindow:     false,
			},
			wantReasons: []string{
				"Amount too low: expected min 599 ETB, but found 100 ETB",
				"Wrong account: expected suffix 071522, but found ...000000",
				`Wrong receiver name: expected "Zinet Selman Wabela", but found "Other Entity"`,
				"Transaction date outside allowed window (±24h): 2025-05-29T12:00:00Z",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newValidator(t, tt.cfg)
			got := v.Validate(tt.tx, decimal.RequireFromString(tt.expected), tt.method)

			assert.Equal(t, tt.wantPassed, got.Passed)
			assert.Equal(t, tt.wantChecks, got.Checks)
			assert.Equal(t, tt.wantReasons, got.FailedReasons)
		})
	}
}

func TestValidator_InvalidDateFailsWindowCheck(t *testing.T) {
	v := newValidator(t, profile.DefaultValidationConfig())

	tx := domain.Transaction{
		Amount:          decimal.NewFromInt(500),
		ReceiverAccount: strPtr("1000356042704"),
		// Zero value: the normalizer never produces this for parsable
		// input, it marks a date that is missing end to end.
	}

	got := v.Validate(tx, decimal.NewFromInt(500), domain.MethodCBE)

	assert.False(t, got.Passed)
	assert.False(t, got.Checks.DateWithinWindow)
	assert.Len(t, got.FailedReasons, 1)
}

func TestValidator_UnconfiguredMethodDisablesIdentityChecks(t *testing.T) {
	logger := log.New(io.Discard)
	store := profile.NewStore(map[domain.PaymentMethod]profile.ReceiverProfile{})
	v := validate.NewWithClock(store, profile.DefaultValidationConfig(), logger, func() time.Time { return fixedNow })

	tx := domain.Transaction{
		Amount: decimal.NewFromInt(500),
		Date:   fixedNow,
	}

	got := v.Validate(tx, decimal.NewFromInt(500), domain.MethodCBE)

	assert.True(t, got.Passed)
	assert.Equal(t, domain.CheckNotApplicable, got.Checks.ReceiverAccountMatch)
	assert.Equal(t, domain.CheckNotApplicable, got.Checks.ReceiverNameMatch)
	assert.Empty(t, got.FailedReasons)
}
