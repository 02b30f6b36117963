package usecases

import (
	"context"

	"github.com/safehub-io/safehub/internal/application/pricing/dto"
	"github.com/safehub-io/safehub/internal/domain/pricing"
	"github.com/safehub-io/safehub/internal/shared/errors"
	"github.com/safehub-io/safehub/internal/shared/logger"
	"github.com/safehub-io/safehub/internal/shared/money"
)

// RegisterDiscountCodeUseCase registers a discount code for use in pricing
// calculations. Codes are matched case-insensitively.
type RegisterDiscountCodeUseCase struct {
	discounts pricing.DiscountStore
	logger    logger.Interface
}

// NewRegisterDiscountCodeUseCase creates a new register discount code use case
func NewRegisterDiscountCodeUseCase(
	discounts pricing.DiscountStore,
	logger logger.Interface,
) *RegisterDiscountCodeUseCase {
	return &RegisterDiscountCodeUseCase{
		discounts: discounts,
		logger:    logger,
	}
}

// Execute executes the register discount code use case
func (uc *RegisterDiscountCodeUseCase) Execute(
	ctx context.Context,
	request dto.RegisterDiscountCodeRequest,
) (*dto.DiscountCodeResponse, error) {
	code := &pricing.DiscountCode{
		Code:              request.Code,
		Type:              pricing.DiscountType(request.Type),
		Value:             request.Value,
		ExpiresAt:         request.ExpiresAt,
		ApplicableModules: request.ApplicableModules,
		MinimumSpend:      money.Cents(request.MinimumSpend),
		MaxDiscount:       money.Cents(request.MaxDiscount),
	}
	if err := code.Validate(); err != nil {
		uc.logger.Warnw("invalid discount code", "error", err, "code", request.Code)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.discounts.Register(ctx, code); err != nil {
		uc.logger.Errorw("failed to register discount code", "error", err, "code", request.Code)
		return nil, errors.NewInternalError("failed to register discount code", err.Error())
	}

	uc.logger.Infow("discount code registered",
		"code", code.NormalizedCode(),
		"type", code.Type.String(),
		"value", code.Value,
	)

	return &dto.DiscountCodeResponse{
		Code:              code.NormalizedCode(),
		Type:              code.Type.String(),
		Value:             code.Value,
		ExpiresAt:         code.ExpiresAt,
		ApplicableModules: code.ApplicableModules,
		MinimumSpend:      int64(code.MinimumSpend),
		MaxDiscount:       int64(code.MaxDiscount),
	}, nil
}
