package pricing

import (
	"context"
	"fmt"
	"time"

	"github.com/safehub-io/safehub/internal/shared/id"
)

// QuoteValidityDays is the validity window of a generated quote.
const QuoteValidityDays = 30

var quoteTerms = []string{
	"Prices exclude VAT.",
	"Quote is valid for 30 days from the issue date.",
	"Subscriptions renew automatically until cancelled.",
	"Setup fees are charged once on activation.",
}

// Quote is a priced snapshot. It does not recalculate; the breakdown is
// frozen at generation time.
type Quote struct {
	ID         string
	CreatedAt  time.Time
	ValidUntil time.Time
	Breakdown  Breakdown
	Terms      []string
}

// IsExpired reports whether the quote validity window has passed.
func (q *Quote) IsExpired(now time.Time) bool {
	return now.After(q.ValidUntil)
}

// GenerateQuote prices the config and wraps the breakdown with a generated
// id, a validity window and fixed boilerplate terms.
func (c *Calculator) GenerateQuote(ctx context.Context, cfg Config) (*Quote, error) {
	breakdown, err := c.Calculate(ctx, cfg)
	if err != nil {
		return nil, err
	}

	quoteID, err := id.NewQuoteID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quote ID: %w", err)
	}

	now := time.Now()
	terms := make([]string, len(quoteTerms))
	copy(terms, quoteTerms)

	return &Quote{
		ID:         quoteID,
		CreatedAt:  now,
		ValidUntil: now.AddDate(0, 0, QuoteValidityDays),
		Breakdown:  *breakdown,
		Terms:      terms,
	}, nil
}
