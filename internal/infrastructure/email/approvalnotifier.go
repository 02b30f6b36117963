// Package email sends approval notifications over SMTP.
package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/safehub-io/safehub/internal/domain/approval"
	"github.com/safehub-io/safehub/internal/shared/config"
	"github.com/safehub-io/safehub/internal/shared/goroutine"
	"github.com/safehub-io/safehub/internal/shared/logger"
	"github.com/safehub-io/safehub/internal/shared/money"
)

// ApprovalNotifier implements approval.Notifier over SMTP. Delivery happens
// on a background goroutine; the request path never waits for the mail
// server.
type ApprovalNotifier struct {
	dialer    *gomail.Dialer
	from      string
	approvers []string
	logger    logger.Interface
}

// NewApprovalNotifier creates an SMTP-backed approval notifier.
func NewApprovalNotifier(cfg *config.EmailConfig, approvers []string, log logger.Interface) *ApprovalNotifier {
	return &ApprovalNotifier{
		dialer:    gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:      cfg.FromAddress,
		approvers: approvers,
		logger:    log,
	}
}

// NotifyPendingRequest mails every configured approver about the pending
// activation request. Fire and forget; failures are logged only.
func (n *ApprovalNotifier) NotifyPendingRequest(_ context.Context, notification approval.Notification) {
	if len(n.approvers) == 0 {
		n.logger.Warnw("no approver emails configured, skipping notification",
			"request_id", notification.RequestID,
		)
		return
	}

	goroutine.SafeGo(n.logger, "approval-notification", func() {
		m := gomail.NewMessage()
		m.SetHeader("From", n.from)
		m.SetHeader("To", n.approvers...)
		m.SetHeader("Subject", fmt.Sprintf("Module activation pending approval: %s", notification.ModuleName))
		m.SetBody("text/plain", pendingRequestBody(notification))

		if err := n.dialer.DialAndSend(m); err != nil {
			n.logger.Errorw("failed to send approval notification",
				"error", err,
				"request_id", notification.RequestID,
			)
			return
		}
		n.logger.Infow("approval notification sent",
			"request_id", notification.RequestID,
			"approvers", len(n.approvers),
		)
	})
}

func pendingRequestBody(n approval.Notification) string {
	return fmt.Sprintf(`A module activation request is waiting for approval.

Request:  %s
Customer: %s (%s)
Module:   %s (%s)
Requested by: %s <%s>

Monthly cost: %s
Yearly cost:  %s

Review the request in the admin console.
`,
		n.RequestID,
		n.CustomerName, n.CustomerID,
		n.ModuleName, n.ModuleID,
		n.RequestedBy, n.RequesterEmail,
		money.Format(n.MonthlyCost, "EUR"),
		money.Format(n.YearlyCost, "EUR"),
	)
}
