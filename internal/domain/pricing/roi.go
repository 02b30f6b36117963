package pricing

import (
	"context"
	"fmt"

	"github.com/safehub-io/safehub/internal/shared/money"
)

// ROIProjection relates a module's yearly cost to expected savings.
type ROIProjection struct {
	ModuleID               string
	MonthlyCost            money.Cents
	YearlyCost             money.Cents // with the prepayment discount applied
	ExpectedMonthlySavings money.Cents
	BreakEvenMonths        float64
	YearlyROIPercent       float64
}

// ROI projects break-even time and yearly return for one module at the given
// usage. The yearly cost uses the prepayment discount. Zero or negative
// expected savings is a validation error rather than an unguarded division.
func (c *Calculator) ROI(ctx context.Context, moduleID string, userCount, buildingCount int, expectedMonthlySavings money.Cents) (*ROIProjection, error) {
	if expectedMonthlySavings <= 0 {
		return nil, ErrZeroExpectedSavings
	}

	def, ok := c.catalog.Get(moduleID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrModuleNotFound, moduleID)
	}

	monthly := PriceModule(def, userCount, buildingCount)
	yearly := YearlyPrice(monthly)
	yearlySavings := expectedMonthlySavings * 12

	projection := &ROIProjection{
		ModuleID:               moduleID,
		MonthlyCost:            monthly,
		YearlyCost:             yearly,
		ExpectedMonthlySavings: expectedMonthlySavings,
		BreakEvenMonths:        float64(yearly) / float64(expectedMonthlySavings),
	}
	if yearly > 0 {
		projection.YearlyROIPercent = float64(yearlySavings-yearly) / float64(yearly) * 100
	}
	return projection, nil
}
