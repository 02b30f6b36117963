package usecases

import (
	"context"

	"github.com/safehub-io/safehub/internal/application/audit/dto"
	"github.com/safehub-io/safehub/internal/domain/audit"
	"github.com/safehub-io/safehub/internal/shared/errors"
	"github.com/safehub-io/safehub/internal/shared/logger"
)

// ListAuditLogsUseCase lists entitlement audit entries, newest first.
type ListAuditLogsUseCase struct {
	auditRepo audit.Repository
	logger    logger.Interface
}

// NewListAuditLogsUseCase creates a new list audit logs use case
func NewListAuditLogsUseCase(
	auditRepo audit.Repository,
	logger logger.Interface,
) *ListAuditLogsUseCase {
	return &ListAuditLogsUseCase{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// Execute executes the list audit logs use case
func (uc *ListAuditLogsUseCase) Execute(
	ctx context.Context,
	request dto.ListAuditLogsRequest,
) ([]*dto.AuditEntryResponse, error) {
	entries, err := uc.auditRepo.List(ctx, request.CustomerID)
	if err != nil {
		uc.logger.Errorw("failed to list audit entries", "error", err, "customer_id", request.CustomerID)
		return nil, errors.NewInternalError("failed to list audit entries", err.Error())
	}

	responses := make([]*dto.AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, &dto.AuditEntryResponse{
			ID:          e.ID(),
			CustomerID:  e.CustomerID(),
			ModuleID:    e.ModuleID(),
			Action:      e.Action().String(),
			PerformedBy: e.PerformedBy(),
			Timestamp:   e.Timestamp(),
			Details:     e.Details(),
		})
	}
	return responses, nil
}
