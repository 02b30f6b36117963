package usecases

import (
	"github.com/safehub-io/safehub/internal/application/approval/dto"
	"github.com/safehub-io/safehub/internal/domain/approval"
)

func toResponse(r *approval.Request) *dto.ActivationRequestResponse {
	return &dto.ActivationRequestResponse{
		ID:               r.ID(),
		ModuleID:         r.ModuleID(),
		CustomerID:       r.CustomerID(),
		CustomerName:     r.CustomerName(),
		RequestedBy:      r.RequestedBy(),
		RequestedByEmail: r.RequestedByEmail(),
		RequestedAt:      r.RequestedAt(),
		Status:           r.Status().String(),
		ApprovedBy:       r.ApprovedBy(),
		ApprovedAt:       r.ApprovedAt(),
		RejectedBy:       r.RejectedBy(),
		RejectedAt:       r.RejectedAt(),
		RejectionReason:  r.RejectionReason(),
		MonthlyCost:      int64(r.MonthlyCost()),
		YearlyCost:       int64(r.YearlyCost()),
	}
}
