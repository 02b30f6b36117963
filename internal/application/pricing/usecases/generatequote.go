package usecases

import (
	"context"

	"github.com/safehub-io/safehub/internal/application/pricing/dto"
	"github.com/safehub-io/safehub/internal/domain/pricing"
	"github.com/safehub-io/safehub/internal/shared/logger"
)

// GenerateQuoteUseCase produces a quote document for a pricing configuration.
type GenerateQuoteUseCase struct {
	calculator *pricing.Calculator
	logger     logger.Interface
}

// NewGenerateQuoteUseCase creates a new generate quote use case
func NewGenerateQuoteUseCase(
	calculator *pricing.Calculator,
	logger logger.Interface,
) *GenerateQuoteUseCase {
	return &GenerateQuoteUseCase{
		calculator: calculator,
		logger:     logger,
	}
}

// Execute executes the generate quote use case
func (uc *GenerateQuoteUseCase) Execute(
	ctx context.Context,
	request dto.GenerateQuoteRequest,
) (*dto.QuoteResponse, error) {
	cfg, err := buildConfig(request.ModuleIDs, request.UserCount, request.BuildingCount, request.BillingCycle, request.DiscountCode)
	if err != nil {
		return nil, err
	}

	quote, err := uc.calculator.GenerateQuote(ctx, cfg)
	if err != nil {
		return nil, mapPricingError(uc.logger, err)
	}

	uc.logger.Infow("quote generated",
		"quote_id", quote.ID,
		"final_total", int64(quote.Breakdown.FinalTotal),
		"valid_until", quote.ValidUntil,
	)

	return &dto.QuoteResponse{
		ID:         quote.ID,
		CreatedAt:  quote.CreatedAt,
		ValidUntil: quote.ValidUntil,
		Breakdown:  toBreakdownResponse(&quote.Breakdown),
		Terms:      quote.Terms,
	}, nil
}
