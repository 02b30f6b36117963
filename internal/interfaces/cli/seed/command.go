package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/safehub-io/safehub/internal/domain/pricing"
	"github.com/safehub-io/safehub/internal/infrastructure/config"
	"github.com/safehub-io/safehub/internal/infrastructure/database"
	"github.com/safehub-io/safehub/internal/infrastructure/migration"
	"github.com/safehub-io/safehub/internal/infrastructure/repository"
	"github.com/safehub-io/safehub/internal/shared/logger"
)

func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed reference data",
		Long:  `Insert the default discount codes. Existing codes with the same key are replaced.`,
		RunE:  run,
	}
}

// defaultDiscountCodes is the launch promotion set. Codes are stored
// case-insensitively, so the casing here is cosmetic.
func defaultDiscountCodes() []*pricing.DiscountCode {
	nextYear := time.Now().AddDate(1, 0, 0)
	return []*pricing.DiscountCode{
		{
			Code:  "WELCOME10",
			Type:  pricing.DiscountTypePercentage,
			Value: 10,
		},
		{
			Code:         "LAUNCH25",
			Type:         pricing.DiscountTypePercentage,
			Value:        25,
			ExpiresAt:    &nextYear,
			MinimumSpend: 5000,
			MaxDiscount:  10000,
		},
		{
			Code:              "SAFETYFIRST",
			Type:              pricing.DiscountTypeFixed,
			Value:             2500,
			ApplicableModules: []string{"incident_reporting", "emergency_broadcast"},
		},
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := migration.Run(database.Get()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log := logger.NewLogger()
	store := repository.NewDiscountCodeRepository(database.Get(), log)

	ctx := context.Background()
	for _, code := range defaultDiscountCodes() {
		if err := code.Validate(); err != nil {
			return fmt.Errorf("invalid seed code %s: %w", code.Code, err)
		}
		if err := store.Register(ctx, code); err != nil {
			log.Errorw("failed to seed discount code", "code", code.NormalizedCode(), "error", err)
			return fmt.Errorf("failed to seed discount code %s: %w", code.Code, err)
		}
		log.Infow("seeded discount code", "code", code.NormalizedCode(), "type", code.Type.String())
	}

	fmt.Printf("Seeded %d discount codes\n", len(defaultDiscountCodes()))
	return nil
}
