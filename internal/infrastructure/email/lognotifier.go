package email

import (
	"context"

	"github.com/safehub-io/safehub/internal/domain/approval"
	"github.com/safehub-io/safehub/internal/shared/logger"
)

// LogNotifier implements approval.Notifier by logging only. It is the default
// when SMTP is not configured.
type LogNotifier struct {
	logger logger.Interface
}

// NewLogNotifier creates a log-only approval notifier.
func NewLogNotifier(log logger.Interface) *LogNotifier {
	return &LogNotifier{logger: log}
}

// NotifyPendingRequest logs the pending request.
func (n *LogNotifier) NotifyPendingRequest(_ context.Context, notification approval.Notification) {
	n.logger.Infow("module activation pending approval",
		"request_id", notification.RequestID,
		"customer_id", notification.CustomerID,
		"module_id", notification.ModuleID,
		"requested_by", notification.RequestedBy,
		"monthly_cost", int64(notification.MonthlyCost),
	)
}
