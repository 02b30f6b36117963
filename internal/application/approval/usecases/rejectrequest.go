package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/safehub-io/safehub/internal/application/approval/dto"
	"github.com/safehub-io/safehub/internal/domain/approval"
	"github.com/safehub-io/safehub/internal/shared/errors"
	"github.com/safehub-io/safehub/internal/shared/logger"
)

// RejectRequestUseCase rejects a pending activation request. The module is
// not touched; a rejected request leaves entitlements exactly as they were.
type RejectRequestUseCase struct {
	requestRepo approval.Repository
	logger      logger.Interface
}

// NewRejectRequestUseCase creates a new reject request use case
func NewRejectRequestUseCase(
	requestRepo approval.Repository,
	logger logger.Interface,
) *RejectRequestUseCase {
	return &RejectRequestUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

// Execute executes the reject request use case
func (uc *RejectRequestUseCase) Execute(
	ctx context.Context,
	request dto.RejectRequestRequest,
) (*dto.ActivationRequestResponse, error) {
	uc.logger.Infow("executing reject request use case",
		"request_id", request.RequestID,
		"rejected_by", request.RejectedBy,
	)

	if request.RejectedBy == "" {
		return nil, errors.NewValidationError("rejected by is required")
	}

	activationRequest, err := uc.requestRepo.GetByID(ctx, request.RequestID)
	if err != nil {
		if stderrors.Is(err, approval.ErrRequestNotFound) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("activation request not found: %s", request.RequestID))
		}
		uc.logger.Errorw("failed to load activation request", "error", err, "request_id", request.RequestID)
		return nil, errors.NewInternalError("failed to load activation request", err.Error())
	}

	if err := activationRequest.Reject(request.RejectedBy, request.Reason); err != nil {
		switch {
		case stderrors.Is(err, approval.ErrRejectionReasonRequired):
			return nil, errors.NewValidationError("rejection reason is required")
		case stderrors.Is(err, approval.ErrRequestAlreadyFinalized):
			uc.logger.Warnw("activation request already finalized",
				"request_id", request.RequestID,
				"status", activationRequest.Status().String(),
			)
			return nil, errors.NewConflictError(
				fmt.Sprintf("request already finalized: %s", activationRequest.Status()))
		default:
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.requestRepo.Update(ctx, activationRequest); err != nil {
		uc.logger.Errorw("failed to persist rejected request", "error", err, "request_id", request.RequestID)
		return nil, errors.NewInternalError("failed to save activation request", err.Error())
	}

	uc.logger.Infow("activation request rejected",
		"request_id", request.RequestID,
		"module_id", activationRequest.ModuleID(),
		"reason", request.Reason,
	)
	return toResponse(activationRequest), nil
}
