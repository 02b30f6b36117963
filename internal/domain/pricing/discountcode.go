package pricing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/safehub-io/safehub/internal/shared/money"
)

// DiscountType represents how a discount code reduces the total
type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// IsValid checks if the discount type is valid
func (t DiscountType) IsValid() bool {
	switch t {
	case DiscountTypePercentage, DiscountTypeFixed:
		return true
	default:
		return false
	}
}

// String returns the string representation of the discount type
func (t DiscountType) String() string {
	return string(t)
}

// DiscountCode is a redeemable discount. The code itself is a
// case-insensitive key; Value is a percentage (0-100) for percentage codes
// and a cents amount for fixed codes.
type DiscountCode struct {
	Code              string
	Type              DiscountType
	Value             int64
	ExpiresAt         *time.Time
	ApplicableModules []string
	MinimumSpend      money.Cents
	MaxDiscount       money.Cents
}

// Validate performs structural validation of the code.
func (d *DiscountCode) Validate() error {
	if strings.TrimSpace(d.Code) == "" {
		return fmt.Errorf("discount code is required")
	}
	if !d.Type.IsValid() {
		return fmt.Errorf("invalid discount type: %s", d.Type)
	}
	if d.Value < 0 {
		return fmt.Errorf("discount value cannot be negative")
	}
	if d.Type == DiscountTypePercentage && d.Value > 100 {
		return fmt.Errorf("percentage discount cannot exceed 100")
	}
	return nil
}

// NormalizedCode returns the canonical lookup key for the code.
func (d *DiscountCode) NormalizedCode() string {
	return NormalizeCode(d.Code)
}

// NormalizeCode canonicalizes a discount code for case-insensitive lookup.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// AmountFor computes the discount amount for the given running total and
// module selection. Gating order: expiry, minimum spend, module allowlist.
// The resulting amount is clipped to MaxDiscount when one is set.
func (d *DiscountCode) AmountFor(total money.Cents, moduleIDs []string, now time.Time) (money.Cents, error) {
	if d.ExpiresAt != nil && now.After(*d.ExpiresAt) {
		return 0, ErrDiscountExpired
	}
	if d.MinimumSpend > 0 && total < d.MinimumSpend {
		return 0, ErrDiscountMinimumSpend
	}
	if len(d.ApplicableModules) > 0 {
		allowed := make(map[string]bool, len(d.ApplicableModules))
		for _, m := range d.ApplicableModules {
			allowed[m] = true
		}
		applicable := false
		for _, m := range moduleIDs {
			if allowed[m] {
				applicable = true
				break
			}
		}
		if !applicable {
			return 0, ErrDiscountNotApplicable
		}
	}

	var amount money.Cents
	switch d.Type {
	case DiscountTypePercentage:
		amount = total * money.Cents(d.Value) / 100
	case DiscountTypeFixed:
		amount = money.Cents(d.Value)
	}

	if d.MaxDiscount > 0 && amount > d.MaxDiscount {
		amount = d.MaxDiscount
	}
	return amount, nil
}

// DiscountStore is the port for the discount-code table. It is explicit
// state passed into the calculator, not a process-wide singleton.
type DiscountStore interface {
	// Register stores or replaces a code.
	Register(ctx context.Context, code *DiscountCode) error

	// Get returns the code, or ErrDiscountNotFound. Lookup is
	// case-insensitive.
	Get(ctx context.Context, code string) (*DiscountCode, error)
}
