package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"payment-verifier/internal/domain"
	"payment-verifier/internal/gateway"
	"payment-verifier/internal/normalize"
	"payment-verifier/internal/profile"
	"payment-verifier/internal/usecase"
	"payment-verifier/internal/validate"
)

func main() {
	// .env is optional; env vars override nothing when absent.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "verifier",
		Short:        "Verify claimed payments against expected receiver profiles",
		SilenceUsage: true,
	}
	root.AddCommand(newVerifyCmd())
	return root
}

func newVerifyCmd() *cobra.Command {
	var (
		methodStr  string
		reference  string
		suffix     string
		phone      string
		amountStr  string
		fixtureDir string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a single payment from a captured raw result",
		RunE: func(cmd *cobra.Command, args []string) error {
			method, err := domain.ParsePaymentMethod(methodStr)
			if err != nil {
				return err
			}
			expectedAmount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("invalid expected amount %q: %w", amountStr, err)
			}

			if configPath == "" {
				configPath = os.Getenv("PAYMENT_VERIFIER_CONFIG")
			}

			store := profile.DefaultStore()
			cfg := profile.DefaultValidationConfig()
			if configPath != "" {
				store, cfg, err = profile.Load(configPath)
				if err != nil {
					return err
				}
			}

			logger := log.New(os.Stderr)

			// Manual dependency injection, outermost layer first.
			collector := gateway.NewFixtureCollector(fixtureDir)
			normalizer := normalize.New()
			validator := validate.New(store, cfg, logger)
			uc := usecase.NewVerificationUseCase(collector, normalizer, validator, logger)

			resp, err := uc.VerifyPayment(cmd.Context(), usecase.VerifyRequest{
				Method:         method,
				Reference:      reference,
				AccountSuffix:  suffix,
				PhoneNumber:    phone,
				ExpectedAmount: expectedAmount,
			})
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(resp, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal response: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))

			if !resp.Validated {
				os.Exit(2)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&methodStr, "method", "", "Payment method (telebirr, cbe, dashen, abyssinia, cbebirr)")
	cmd.Flags().StringVar(&reference, "reference", "", "Transaction reference supplied by the customer")
	cmd.Flags().StringVar(&suffix, "suffix", "", "Account suffix (cbe, abyssinia)")
	cmd.Flags().StringVar(&phone, "phone", "", "Payer phone number (cbebirr)")
	cmd.Flags().StringVar(&amountStr, "amount", "", "Expected payment amount in ETB")
	cmd.Flags().StringVar(&fixtureDir, "fixtures", "fixtures", "Directory of captured raw collector results")
	cmd.Flags().StringVar(&configPath, "config", "", "Receiver profile / validation config YAML (defaults to $PAYMENT_VERIFIER_CONFIG)")
	_ = cmd.MarkFlagRequired("method")
	_ = cmd.MarkFlagRequired("reference")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
