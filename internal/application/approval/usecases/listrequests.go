package usecases

import (
	"context"

	"github.com/safehub-io/safehub/internal/application/approval/dto"
	"github.com/safehub-io/safehub/internal/domain/approval"
	"github.com/safehub-io/safehub/internal/shared/errors"
	"github.com/safehub-io/safehub/internal/shared/logger"
)

// ListRequestsUseCase lists activation requests, newest first.
type ListRequestsUseCase struct {
	requestRepo approval.Repository
	logger      logger.Interface
}

// NewListRequestsUseCase creates a new list requests use case
func NewListRequestsUseCase(
	requestRepo approval.Repository,
	logger logger.Interface,
) *ListRequestsUseCase {
	return &ListRequestsUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

// Execute executes the list requests use case
func (uc *ListRequestsUseCase) Execute(
	ctx context.Context,
	request dto.ListRequestsRequest,
) ([]*dto.ActivationRequestResponse, error) {
	requests, err := uc.requestRepo.List(ctx, request.CustomerID)
	if err != nil {
		uc.logger.Errorw("failed to list activation requests", "error", err, "customer_id", request.CustomerID)
		return nil, errors.NewInternalError("failed to list activation requests", err.Error())
	}

	responses := make([]*dto.ActivationRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, toResponse(r))
	}
	return responses, nil
}
