package pricing

import "errors"

var (
	// ErrModuleNotFound is returned when pricing an unknown module
	ErrModuleNotFound = errors.New("module not found")

	// ErrDiscountNotFound is returned when a discount code does not exist
	ErrDiscountNotFound = errors.New("discount code not found")

	// ErrDiscountExpired is returned when a discount code has expired
	ErrDiscountExpired = errors.New("discount code expired")

	// ErrDiscountMinimumSpend is returned when the order is below the code's minimum spend
	ErrDiscountMinimumSpend = errors.New("order below discount code minimum spend")

	// ErrDiscountNotApplicable is returned when none of the selected modules
	// are in the code's allowlist
	ErrDiscountNotApplicable = errors.New("discount code not applicable to selected modules")

	// ErrZeroExpectedSavings is returned when an ROI projection is requested
	// with zero or negative expected savings
	ErrZeroExpectedSavings = errors.New("expected monthly savings must be positive")
)
