package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/safehub-io/safehub/internal/application/approval/dto"
	entitlementapp "github.com/safehub-io/safehub/internal/application/entitlement"
	"github.com/safehub-io/safehub/internal/domain/approval"
	"github.com/safehub-io/safehub/internal/domain/entitlement"
	"github.com/safehub-io/safehub/internal/shared/errors"
	"github.com/safehub-io/safehub/internal/shared/logger"
)

// ApproveRequestUseCase approves a pending activation request and enables the
// module for the customer. Approving an already finalized request is a
// conflict, never a silent re-activation.
type ApproveRequestUseCase struct {
	requestRepo approval.Repository
	entitlement *entitlementapp.Service
	logger      logger.Interface
}

// NewApproveRequestUseCase creates a new approve request use case
func NewApproveRequestUseCase(
	requestRepo approval.Repository,
	entitlementService *entitlementapp.Service,
	logger logger.Interface,
) *ApproveRequestUseCase {
	return &ApproveRequestUseCase{
		requestRepo: requestRepo,
		entitlement: entitlementService,
		logger:      logger,
	}
}

// Execute executes the approve request use case
func (uc *ApproveRequestUseCase) Execute(
	ctx context.Context,
	request dto.ApproveRequestRequest,
) (*dto.ActivationRequestResponse, error) {
	uc.logger.Infow("executing approve request use case",
		"request_id", request.RequestID,
		"approved_by", request.ApprovedBy,
	)

	if request.ApprovedBy == "" {
		return nil, errors.NewValidationError("approved by is required")
	}

	activationRequest, err := uc.requestRepo.GetByID(ctx, request.RequestID)
	if err != nil {
		if stderrors.Is(err, approval.ErrRequestNotFound) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("activation request not found: %s", request.RequestID))
		}
		uc.logger.Errorw("failed to load activation request", "error", err, "request_id", request.RequestID)
		return nil, errors.NewInternalError("failed to load activation request", err.Error())
	}

	if err := activationRequest.Approve(request.ApprovedBy); err != nil {
		if stderrors.Is(err, approval.ErrRequestAlreadyFinalized) {
			uc.logger.Warnw("activation request already finalized",
				"request_id", request.RequestID,
				"status", activationRequest.Status().String(),
			)
			return nil, errors.NewConflictError(
				fmt.Sprintf("request already finalized: %s", activationRequest.Status()))
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.requestRepo.Update(ctx, activationRequest); err != nil {
		uc.logger.Errorw("failed to persist approved request", "error", err, "request_id", request.RequestID)
		return nil, errors.NewInternalError("failed to save activation request", err.Error())
	}

	actor, err := entitlement.ApprovalActor(request.ApprovedBy)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if _, err := uc.entitlement.Enable(ctx, activationRequest.CustomerID(), activationRequest.ModuleID(), actor); err != nil {
		uc.logger.Errorw("failed to enable approved module",
			"error", err,
			"request_id", request.RequestID,
		)
		return nil, errors.NewInternalError("failed to enable module", err.Error())
	}

	uc.logger.Infow("activation request approved",
		"request_id", request.RequestID,
		"module_id", activationRequest.ModuleID(),
		"customer_id", activationRequest.CustomerID(),
	)
	return toResponse(activationRequest), nil
}
