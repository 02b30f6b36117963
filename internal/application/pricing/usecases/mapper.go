package usecases

import (
	"github.com/safehub-io/safehub/internal/application/pricing/dto"
	"github.com/safehub-io/safehub/internal/domain/pricing"
)

func toBreakdownResponse(b *pricing.Breakdown) dto.PricingBreakdownResponse {
	lines := make([]dto.LineItemResponse, 0, len(b.Lines))
	for _, line := range b.Lines {
		lines = append(lines, dto.LineItemResponse{
			ModuleID:    line.ModuleID,
			ModuleName:  line.ModuleName,
			MonthlyCost: int64(line.MonthlyCost),
		})
	}
	return dto.PricingBreakdownResponse{
		Lines:          lines,
		Subtotal:       int64(b.Subtotal),
		SetupFees:      int64(b.SetupFees),
		DiscountCode:   b.DiscountCode,
		DiscountAmount: int64(b.DiscountAmount),
		Total:          int64(b.Total),
		YearlyDiscount: int64(b.YearlyDiscount),
		FinalTotal:     int64(b.FinalTotal),
		BillingCycle:   b.BillingCycle.String(),
	}
}
