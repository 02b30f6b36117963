package usecases

import (
	"context"
	"fmt"

	"github.com/safehub-io/safehub/internal/application/approval/dto"
	entitlementapp "github.com/safehub-io/safehub/internal/application/entitlement"
	"github.com/safehub-io/safehub/internal/domain/approval"
	"github.com/safehub-io/safehub/internal/domain/catalog"
	"github.com/safehub-io/safehub/internal/domain/entitlement"
	"github.com/safehub-io/safehub/internal/domain/pricing"
	"github.com/safehub-io/safehub/internal/shared/errors"
	"github.com/safehub-io/safehub/internal/shared/logger"
	"github.com/safehub-io/safehub/internal/shared/money"
)

// ApprovalPolicy controls when activation requests skip human review.
// Costs are estimated at the reference usage so the threshold comparison is
// stable regardless of the customer's actual size.
type ApprovalPolicy struct {
	// AutoApproveThreshold is exclusive: a request is auto-approved only
	// when its monthly cost is strictly below this value.
	AutoApproveThreshold   money.Cents
	ReferenceUserCount     int
	ReferenceBuildingCount int
}

// RequestActivationUseCase files an activation request for a module. Cheap
// modules and core modules are approved and enabled on the spot; everything
// else waits for a human decision.
type RequestActivationUseCase struct {
	requestRepo approval.Repository
	modules     *catalog.Catalog
	entitlement *entitlementapp.Service
	notifier    approval.Notifier
	policy      ApprovalPolicy
	logger      logger.Interface
}

// NewRequestActivationUseCase creates a new request activation use case
func NewRequestActivationUseCase(
	requestRepo approval.Repository,
	modules *catalog.Catalog,
	entitlementService *entitlementapp.Service,
	notifier approval.Notifier,
	policy ApprovalPolicy,
	logger logger.Interface,
) *RequestActivationUseCase {
	return &RequestActivationUseCase{
		requestRepo: requestRepo,
		modules:     modules,
		entitlement: entitlementService,
		notifier:    notifier,
		policy:      policy,
		logger:      logger,
	}
}

// Execute executes the request activation use case
func (uc *RequestActivationUseCase) Execute(
	ctx context.Context,
	request dto.CreateActivationRequest,
) (*dto.ActivationRequestResponse, error) {
	uc.logger.Infow("executing request activation use case",
		"customer_id", request.CustomerID,
		"module_id", request.ModuleID,
		"requested_by", request.RequestedBy,
	)

	if request.CustomerID == "" {
		return nil, errors.NewValidationError("customer ID is required")
	}
	if request.RequestedBy == "" {
		return nil, errors.NewValidationError("requested by is required")
	}

	def, ok := uc.modules.Get(request.ModuleID)
	if !ok {
		uc.logger.Warnw("unknown module requested", "module_id", request.ModuleID)
		return nil, errors.NewNotFoundError(fmt.Sprintf("module not found: %s", request.ModuleID))
	}

	monthlyCost := pricing.PriceModule(def, uc.policy.ReferenceUserCount, uc.policy.ReferenceBuildingCount)
	yearlyCost := pricing.YearlyPrice(monthlyCost)
	autoApproved := def.IsCore() || monthlyCost < uc.policy.AutoApproveThreshold

	activationRequest, err := approval.NewRequest(
		request.ModuleID,
		request.CustomerID,
		request.CustomerName,
		request.RequestedBy,
		request.RequestedByEmail,
		monthlyCost,
		yearlyCost,
		autoApproved,
	)
	if err != nil {
		uc.logger.Warnw("failed to create activation request", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.requestRepo.Create(ctx, activationRequest); err != nil {
		uc.logger.Errorw("failed to persist activation request", "error", err)
		return nil, errors.NewInternalError("failed to save activation request", err.Error())
	}

	if autoApproved {
		if _, err := uc.entitlement.Enable(ctx, request.CustomerID, request.ModuleID, entitlement.SystemActor()); err != nil {
			uc.logger.Errorw("failed to enable auto-approved module",
				"error", err,
				"request_id", activationRequest.ID(),
			)
			return nil, errors.NewInternalError("failed to enable module", err.Error())
		}
		uc.logger.Infow("activation request auto-approved",
			"request_id", activationRequest.ID(),
			"module_id", request.ModuleID,
			"monthly_cost", int64(monthlyCost),
		)
		return toResponse(activationRequest), nil
	}

	uc.notifier.NotifyPendingRequest(ctx, approval.Notification{
		RequestID:      activationRequest.ID(),
		CustomerID:     request.CustomerID,
		CustomerName:   request.CustomerName,
		ModuleID:       def.ID(),
		ModuleName:     def.Name(),
		RequestedBy:    request.RequestedBy,
		RequesterEmail: request.RequestedByEmail,
		MonthlyCost:    monthlyCost,
		YearlyCost:     yearlyCost,
	})

	uc.logger.Infow("activation request pending approval",
		"request_id", activationRequest.ID(),
		"module_id", request.ModuleID,
		"monthly_cost", int64(monthlyCost),
	)
	return toResponse(activationRequest), nil
}
