package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	approvaldto "github.com/safehub-io/safehub/internal/application/approval/dto"
	approvalusecases "github.com/safehub-io/safehub/internal/application/approval/usecases"
	entitlementapp "github.com/safehub-io/safehub/internal/application/entitlement"
	"github.com/safehub-io/safehub/internal/application/entitlement/dto"
	"github.com/safehub-io/safehub/internal/domain/entitlement"
	"github.com/safehub-io/safehub/internal/shared/errors"
	"github.com/safehub-io/safehub/internal/shared/logger"
)

// EnableModuleUseCase is the single entry point for enabling a module.
// System and approval actors enable directly; ordinary users are routed
// through the approval workflow, and the response carries the resulting
// activation request instead of an entitlement record.
type EnableModuleUseCase struct {
	service           *entitlementapp.Service
	requestActivation *approvalusecases.RequestActivationUseCase
	logger            logger.Interface
}

// NewEnableModuleUseCase creates a new enable module use case
func NewEnableModuleUseCase(
	service *entitlementapp.Service,
	requestActivation *approvalusecases.RequestActivationUseCase,
	logger logger.Interface,
) *EnableModuleUseCase {
	return &EnableModuleUseCase{
		service:           service,
		requestActivation: requestActivation,
		logger:            logger,
	}
}

// Execute executes the enable module use case
func (uc *EnableModuleUseCase) Execute(
	ctx context.Context,
	request dto.EnableModuleRequest,
) (*dto.EnableModuleResponse, error) {
	uc.logger.Infow("executing enable module use case",
		"customer_id", request.CustomerID,
		"module_id", request.ModuleID,
		"actor", request.Actor,
	)

	if request.CustomerID == "" {
		return nil, errors.NewValidationError("customer ID is required")
	}
	if request.ModuleID == "" {
		return nil, errors.NewValidationError("module ID is required")
	}

	actor, err := entitlement.ParseActor(request.Actor)
	if err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid actor: %v", err))
	}

	if !actor.BypassesApproval() {
		response, err := uc.requestActivation.Execute(ctx, approvaldto.CreateActivationRequest{
			ModuleID:         request.ModuleID,
			CustomerID:       request.CustomerID,
			CustomerName:     request.CustomerName,
			RequestedBy:      actor.Subject(),
			RequestedByEmail: request.RequesterEmail,
		})
		if err != nil {
			return nil, err
		}
		return &dto.EnableModuleResponse{
			Activated:           response.Status != "pending",
			ActivationRequestID: response.ID,
			RequestStatus:       response.Status,
		}, nil
	}

	record, err := uc.service.Enable(ctx, request.CustomerID, request.ModuleID, actor)
	if err != nil {
		if stderrors.Is(err, entitlement.ErrModuleNotFound) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("module not found: %s", request.ModuleID))
		}
		uc.logger.Errorw("failed to enable module", "error", err,
			"customer_id", request.CustomerID,
			"module_id", request.ModuleID,
		)
		return nil, errors.NewInternalError("failed to enable module", err.Error())
	}

	return &dto.EnableModuleResponse{
		Activated: true,
		Module:    toResponse(record),
	}, nil
}
