package approval

import (
	"context"

	"github.com/safehub-io/safehub/internal/shared/money"
)

// Notification describes a pending activation request for human review.
type Notification struct {
	RequestID      string
	CustomerID     string
	CustomerName   string
	ModuleID       string
	ModuleName     string
	RequestedBy    string
	RequesterEmail string
	MonthlyCost    money.Cents
	YearlyCost     money.Cents
}

// Notifier dispatches approval notifications. Dispatch is fire-and-forget:
// implementations must not block the request path on delivery confirmation.
type Notifier interface {
	NotifyPendingRequest(ctx context.Context, notification Notification)
}
