// Package pricing implements the multi-model pricing calculator: per-module
// prices, multi-module breakdowns with discount codes and the yearly
// prepayment discount, quotes and ROI projections. All calculations are pure;
// the only mutable collaborator is the injected DiscountStore.
package pricing

import (
	"context"
	"fmt"
	"time"

	"github.com/safehub-io/safehub/internal/domain/catalog"
	"github.com/safehub-io/safehub/internal/shared/money"
)

// YearlyDiscountPercent is the flat prepayment discount applied on top of an
// already-discounted total when billing yearly.
const YearlyDiscountPercent = 10

// BillingCycle represents how an order is billed
type BillingCycle string

const (
	BillingCycleMonthly BillingCycle = "monthly"
	BillingCycleYearly  BillingCycle = "yearly"
)

// IsValid checks if the billing cycle is valid
func (c BillingCycle) IsValid() bool {
	switch c {
	case BillingCycleMonthly, BillingCycleYearly:
		return true
	default:
		return false
	}
}

// String returns the string representation of the billing cycle
func (c BillingCycle) String() string {
	return string(c)
}

// PriceModule computes the monthly price of one module at the given usage.
// Dispatch is on the module's pricing model: fixed ignores usage, per_user
// resolves the rate through the optional tier table, per_building multiplies
// the flat building rate, hybrid sums all three contributions.
//
// Negative usage counts are not rejected; they flow through arithmetic as-is
// and yield negative prices. Callers quoting user input sanitize upstream.
func PriceModule(def *catalog.ModuleDefinition, userCount, buildingCount int) money.Cents {
	p := def.Pricing()
	switch p.Model {
	case catalog.PricingModelFixed:
		return p.BasePrice
	case catalog.PricingModelPerUser:
		return p.TieredRate(userCount) * money.Cents(userCount)
	case catalog.PricingModelPerBuilding:
		return p.PricePerBuilding * money.Cents(buildingCount)
	case catalog.PricingModelHybrid:
		return p.BasePrice +
			p.TieredRate(userCount)*money.Cents(userCount) +
			p.PricePerBuilding*money.Cents(buildingCount)
	default:
		return 0
	}
}

// YearlyPrice returns the yearly price for a monthly amount with the
// prepayment discount applied.
func YearlyPrice(monthly money.Cents) money.Cents {
	yearly := monthly * 12
	return yearly - yearly*YearlyDiscountPercent/100
}

// VolumeDiscountPercent returns the display-only volume discount ladder:
// 100+ users 15%, 50+ users 10%, 25+ users 5%. It is not folded into
// Calculate automatically.
func VolumeDiscountPercent(userCount int) int {
	switch {
	case userCount >= 100:
		return 15
	case userCount >= 50:
		return 10
	case userCount >= 25:
		return 5
	default:
		return 0
	}
}

// Config describes one pricing calculation.
type Config struct {
	ModuleIDs     []string
	UserCount     int
	BuildingCount int
	BillingCycle  BillingCycle
	DiscountCode  string
}

// LineItem is the monthly price of one module within a breakdown.
type LineItem struct {
	ModuleID    string
	ModuleName  string
	MonthlyCost money.Cents
}

// Breakdown is the result of a pricing calculation. The order of operations
// is fixed: subtotal, plus setup fees, minus code discount, then minus the
// yearly prepayment discount on the running total.
type Breakdown struct {
	Lines          []LineItem
	Subtotal       money.Cents
	SetupFees      money.Cents
	DiscountCode   string
	DiscountAmount money.Cents
	Total          money.Cents // subtotal + setup fees - code discount
	YearlyDiscount money.Cents // 10% of Total when billing yearly
	FinalTotal     money.Cents
	BillingCycle   BillingCycle
}

// Calculator prices module sets against a catalog and a discount store.
type Calculator struct {
	catalog   *catalog.Catalog
	discounts DiscountStore
}

// NewCalculator creates a calculator over the given catalog and discount store.
func NewCalculator(cat *catalog.Catalog, discounts DiscountStore) *Calculator {
	return &Calculator{
		catalog:   cat,
		discounts: discounts,
	}
}

// Calculate prices a set of modules. At most one discount code applies; a
// code that fails its gates (expired, below minimum spend, wrong modules)
// fails the calculation rather than being silently ignored.
func (c *Calculator) Calculate(ctx context.Context, cfg Config) (*Breakdown, error) {
	cycle := cfg.BillingCycle
	if cycle == "" {
		cycle = BillingCycleMonthly
	}
	if !cycle.IsValid() {
		return nil, fmt.Errorf("invalid billing cycle: %s", cfg.BillingCycle)
	}

	breakdown := &Breakdown{
		BillingCycle: cycle,
	}

	for _, moduleID := range cfg.ModuleIDs {
		def, ok := c.catalog.Get(moduleID)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrModuleNotFound, moduleID)
		}
		monthly := PriceModule(def, cfg.UserCount, cfg.BuildingCount)
		breakdown.Lines = append(breakdown.Lines, LineItem{
			ModuleID:    def.ID(),
			ModuleName:  def.Name(),
			MonthlyCost: monthly,
		})
		breakdown.Subtotal += monthly
		breakdown.SetupFees += def.Pricing().SetupFee
	}

	running := breakdown.Subtotal + breakdown.SetupFees

	if cfg.DiscountCode != "" {
		code, err := c.discounts.Get(ctx, cfg.DiscountCode)
		if err != nil {
			return nil, err
		}
		amount, err := code.AmountFor(running, cfg.ModuleIDs, time.Now())
		if err != nil {
			return nil, err
		}
		breakdown.DiscountCode = code.NormalizedCode()
		breakdown.DiscountAmount = amount
		running -= amount
	}

	breakdown.Total = running

	if cycle == BillingCycleYearly {
		breakdown.YearlyDiscount = running * YearlyDiscountPercent / 100
		running -= breakdown.YearlyDiscount
	}

	breakdown.FinalTotal = running
	return breakdown, nil
}
