package pricing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safehub-io/safehub/internal/domain/catalog"
	"github.com/safehub-io/safehub/internal/shared/money"
)

// --- helpers ---

type mapDiscountStore struct {
	codes map[string]*DiscountCode
}

func newMapDiscountStore() *mapDiscountStore {
	return &mapDiscountStore{codes: make(map[string]*DiscountCode)}
}

func (s *mapDiscountStore) Register(_ context.Context, code *DiscountCode) error {
	s.codes[code.NormalizedCode()] = code
	return nil
}

func (s *mapDiscountStore) Get(_ context.Context, code string) (*DiscountCode, error) {
	c, ok := s.codes[NormalizeCode(code)]
	if !ok {
		return nil, ErrDiscountNotFound
	}
	return c, nil
}

func mustModule(t *testing.T, id string, policy catalog.PricingPolicy) *catalog.ModuleDefinition {
	t.Helper()
	def, err := catalog.NewModuleDefinition(id, "Module "+id, "desc", catalog.CategoryPremium,
		catalog.TierProfessional, false, catalog.ModuleStatusActive, nil, policy)
	require.NoError(t, err)
	return def
}

func newTestCalculator(t *testing.T, store DiscountStore, defs ...*catalog.ModuleDefinition) *Calculator {
	t.Helper()
	cat, err := catalog.NewCatalog(defs)
	require.NoError(t, err)
	if store == nil {
		store = newMapDiscountStore()
	}
	return NewCalculator(cat, store)
}

// --- PriceModule ---

func TestPriceModule_Fixed(t *testing.T) {
	def := mustModule(t, "fixed", catalog.PricingPolicy{
		Model:     catalog.PricingModelFixed,
		BasePrice: 4900,
	})

	// fixed pricing ignores usage
	assert.Equal(t, money.Cents(4900), PriceModule(def, 10, 2))
	assert.Equal(t, money.Cents(4900), PriceModule(def, 0, 0))
	assert.Equal(t, money.Cents(4900), PriceModule(def, 500, 50))
}

func TestPriceModule_PerUser(t *testing.T) {
	def := mustModule(t, "peruser", catalog.PricingPolicy{
		Model:        catalog.PricingModelPerUser,
		PricePerUser: 200,
	})

	assert.Equal(t, money.Cents(5000), PriceModule(def, 25, 1))
}

func TestPriceModule_PerUserTiered(t *testing.T) {
	def := mustModule(t, "tiered", catalog.PricingPolicy{
		Model:        catalog.PricingModelPerUser,
		PricePerUser: 200,
		UserTiers: []catalog.UserTier{
			{MinUsers: 1, MaxUsers: 24, PricePerUser: 250},
			{MinUsers: 25, MaxUsers: 99, PricePerUser: 180},
		},
	})

	// first matching band wins
	assert.Equal(t, money.Cents(10*250), PriceModule(def, 10, 1))
	assert.Equal(t, money.Cents(25*180), PriceModule(def, 25, 1))
	// outside all bands falls back to the flat per-user rate
	assert.Equal(t, money.Cents(150*200), PriceModule(def, 150, 1))
}

func TestPriceModule_PerBuilding(t *testing.T) {
	def := mustModule(t, "perbuilding", catalog.PricingPolicy{
		Model:            catalog.PricingModelPerBuilding,
		PricePerBuilding: 1500,
	})

	assert.Equal(t, money.Cents(4500), PriceModule(def, 99, 3))
}

func TestPriceModule_HybridRoundTrip(t *testing.T) {
	def := mustModule(t, "hybrid", catalog.PricingPolicy{
		Model:            catalog.PricingModelHybrid,
		BasePrice:        5000,
		PricePerUser:     200,
		PricePerBuilding: 1500,
	})

	// 5000 + 200*10 + 1500*2 = 10000 cents exactly
	assert.Equal(t, money.Cents(10000), PriceModule(def, 10, 2))
}

func TestPriceModule_NegativeUsageFlowsThrough(t *testing.T) {
	def := mustModule(t, "peruser", catalog.PricingPolicy{
		Model:        catalog.PricingModelPerUser,
		PricePerUser: 200,
	})

	// negative counts are deliberately not rejected
	assert.Equal(t, money.Cents(-1000), PriceModule(def, -5, 1))
}

// --- Calculate ---

func TestCalculate_DiscountOrdering(t *testing.T) {
	def := mustModule(t, "hybrid", catalog.PricingPolicy{
		Model:     catalog.PricingModelFixed,
		BasePrice: 10000,
	})
	store := newMapDiscountStore()
	require.NoError(t, store.Register(context.Background(), &DiscountCode{
		Code:  "SAVE10",
		Type:  DiscountTypePercentage,
		Value: 10,
	}))
	calc := newTestCalculator(t, store, def)

	breakdown, err := calc.Calculate(context.Background(), Config{
		ModuleIDs:    []string{"hybrid"},
		UserCount:    25,
		BillingCycle: BillingCycleYearly,
		DiscountCode: "save10",
	})

	require.NoError(t, err)
	assert.Equal(t, money.Cents(10000), breakdown.Subtotal)
	assert.Equal(t, money.Cents(1000), breakdown.DiscountAmount)
	// code discount applies first: 10000 - 10% = 9000
	assert.Equal(t, money.Cents(9000), breakdown.Total)
	// yearly discount applies to the already-discounted total: 9000 - 10% = 8100,
	// not a single combined 19% off
	assert.Equal(t, money.Cents(900), breakdown.YearlyDiscount)
	assert.Equal(t, money.Cents(8100), breakdown.FinalTotal)
}

func TestCalculate_SetupFeesAddedBeforeDiscount(t *testing.T) {
	def := mustModule(t, "m", catalog.PricingPolicy{
		Model:     catalog.PricingModelFixed,
		BasePrice: 8000,
		SetupFee:  2000,
	})
	store := newMapDiscountStore()
	require.NoError(t, store.Register(context.Background(), &DiscountCode{
		Code:  "HALF",
		Type:  DiscountTypePercentage,
		Value: 50,
	}))
	calc := newTestCalculator(t, store, def)

	breakdown, err := calc.Calculate(context.Background(), Config{
		ModuleIDs:    []string{"m"},
		DiscountCode: "HALF",
	})

	require.NoError(t, err)
	assert.Equal(t, money.Cents(8000), breakdown.Subtotal)
	assert.Equal(t, money.Cents(2000), breakdown.SetupFees)
	// discount is computed over subtotal + setup fees
	assert.Equal(t, money.Cents(5000), breakdown.DiscountAmount)
	assert.Equal(t, money.Cents(5000), breakdown.FinalTotal)
}

func TestCalculate_FixedDiscountClippedToMax(t *testing.T) {
	def := mustModule(t, "m", catalog.PricingPolicy{
		Model:     catalog.PricingModelFixed,
		BasePrice: 10000,
	})
	store := newMapDiscountStore()
	require.NoError(t, store.Register(context.Background(), &DiscountCode{
		Code:        "BIG",
		Type:        DiscountTypeFixed,
		Value:       5000,
		MaxDiscount: 2500,
	}))
	calc := newTestCalculator(t, store, def)

	breakdown, err := calc.Calculate(context.Background(), Config{
		ModuleIDs:    []string{"m"},
		DiscountCode: "big",
	})

	require.NoError(t, err)
	assert.Equal(t, money.Cents(2500), breakdown.DiscountAmount)
	assert.Equal(t, money.Cents(7500), breakdown.FinalTotal)
}

func TestCalculate_DiscountGates(t *testing.T) {
	def := mustModule(t, "m", catalog.PricingPolicy{
		Model:     catalog.PricingModelFixed,
		BasePrice: 1000,
	})
	past := time.Now().Add(-time.Hour)

	tests := []struct {
		name    string
		code    *DiscountCode
		wantErr error
	}{
		{"expired", &DiscountCode{Code: "X", Type: DiscountTypePercentage, Value: 10, ExpiresAt: &past}, ErrDiscountExpired},
		{"minimum spend", &DiscountCode{Code: "X", Type: DiscountTypePercentage, Value: 10, MinimumSpend: 5000}, ErrDiscountMinimumSpend},
		{"allowlist", &DiscountCode{Code: "X", Type: DiscountTypePercentage, Value: 10, ApplicableModules: []string{"other"}}, ErrDiscountNotApplicable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := newMapDiscountStore()
			require.NoError(t, store.Register(context.Background(), tc.code))
			calc := newTestCalculator(t, store, def)

			_, err := calc.Calculate(context.Background(), Config{
				ModuleIDs:    []string{"m"},
				DiscountCode: "X",
			})

			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCalculate_UnknownDiscountCode(t *testing.T) {
	def := mustModule(t, "m", catalog.PricingPolicy{Model: catalog.PricingModelFixed, BasePrice: 1000})
	calc := newTestCalculator(t, nil, def)

	_, err := calc.Calculate(context.Background(), Config{
		ModuleIDs:    []string{"m"},
		DiscountCode: "NOPE",
	})

	assert.ErrorIs(t, err, ErrDiscountNotFound)
}

func TestCalculate_UnknownModule(t *testing.T) {
	calc := newTestCalculator(t, nil)

	_, err := calc.Calculate(context.Background(), Config{ModuleIDs: []string{"ghost"}})

	assert.ErrorIs(t, err, ErrModuleNotFound)
}

func TestCalculate_DefaultsToMonthly(t *testing.T) {
	def := mustModule(t, "m", catalog.PricingPolicy{Model: catalog.PricingModelFixed, BasePrice: 1000})
	calc := newTestCalculator(t, nil, def)

	breakdown, err := calc.Calculate(context.Background(), Config{ModuleIDs: []string{"m"}})

	require.NoError(t, err)
	assert.Equal(t, BillingCycleMonthly, breakdown.BillingCycle)
	assert.Equal(t, money.Cents(0), breakdown.YearlyDiscount)
	assert.Equal(t, money.Cents(1000), breakdown.FinalTotal)
}

// --- helpers under test ---

func TestYearlyPrice(t *testing.T) {
	// 1000/month -> 12000/year -> minus 10% = 10800
	assert.Equal(t, money.Cents(10800), YearlyPrice(1000))
	assert.Equal(t, money.Cents(0), YearlyPrice(0))
}

func TestVolumeDiscountPercent(t *testing.T) {
	tests := []struct {
		users int
		want  int
	}{
		{0, 0},
		{24, 0},
		{25, 5},
		{49, 5},
		{50, 10},
		{99, 10},
		{100, 15},
		{500, 15},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, VolumeDiscountPercent(tc.users), "users=%d", tc.users)
	}
}

// --- quotes ---

func TestGenerateQuote(t *testing.T) {
	def := mustModule(t, "m", catalog.PricingPolicy{Model: catalog.PricingModelFixed, BasePrice: 7900})
	calc := newTestCalculator(t, nil, def)

	quote, err := calc.GenerateQuote(context.Background(), Config{ModuleIDs: []string{"m"}})

	require.NoError(t, err)
	assert.Contains(t, quote.ID, "qt_")
	assert.Equal(t, money.Cents(7900), quote.Breakdown.FinalTotal)
	assert.NotEmpty(t, quote.Terms)
	assert.False(t, quote.IsExpired(time.Now()))
	assert.True(t, quote.IsExpired(quote.ValidUntil.Add(time.Hour)))
	// 30 day validity window
	assert.WithinDuration(t, quote.CreatedAt.AddDate(0, 0, QuoteValidityDays), quote.ValidUntil, time.Second)
}

// --- ROI ---

func TestROI(t *testing.T) {
	def := mustModule(t, "m", catalog.PricingPolicy{Model: catalog.PricingModelFixed, BasePrice: 1000})
	calc := newTestCalculator(t, nil, def)

	projection, err := calc.ROI(context.Background(), "m", 25, 1, 2000)

	require.NoError(t, err)
	// yearly cost 10800, savings 2000/month
	assert.Equal(t, money.Cents(10800), projection.YearlyCost)
	assert.InDelta(t, 5.4, projection.BreakEvenMonths, 0.001)
	// (24000 - 10800) / 10800 * 100
	assert.InDelta(t, 122.22, projection.YearlyROIPercent, 0.01)
}

func TestROI_ZeroSavings(t *testing.T) {
	def := mustModule(t, "m", catalog.PricingPolicy{Model: catalog.PricingModelFixed, BasePrice: 1000})
	calc := newTestCalculator(t, nil, def)

	_, err := calc.ROI(context.Background(), "m", 25, 1, 0)
	assert.ErrorIs(t, err, ErrZeroExpectedSavings)

	_, err = calc.ROI(context.Background(), "m", 25, 1, -100)
	assert.ErrorIs(t, err, ErrZeroExpectedSavings)
}

func TestROI_UnknownModule(t *testing.T) {
	calc := newTestCalculator(t, nil)

	_, err := calc.ROI(context.Background(), "ghost", 25, 1, 1000)
	assert.ErrorIs(t, err, ErrModuleNotFound)
}

func TestDiscountCode_Validate(t *testing.T) {
	valid := &DiscountCode{Code: "OK", Type: DiscountTypePercentage, Value: 10}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name string
		code *DiscountCode
	}{
		{"empty code", &DiscountCode{Code: " ", Type: DiscountTypeFixed, Value: 1}},
		{"bad type", &DiscountCode{Code: "X", Type: DiscountType("bogus"), Value: 1}},
		{"negative value", &DiscountCode{Code: "X", Type: DiscountTypeFixed, Value: -1}},
		{"percentage over 100", &DiscountCode{Code: "X", Type: DiscountTypePercentage, Value: 101}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.code.Validate())
		})
	}
}
