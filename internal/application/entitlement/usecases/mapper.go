package usecases

import (
	"github.com/safehub-io/safehub/internal/application/entitlement/dto"
	"github.com/safehub-io/safehub/internal/domain/entitlement"
)

func toResponse(record *entitlement.CustomerModule) *dto.CustomerModuleResponse {
	return &dto.CustomerModuleResponse{
		CustomerID: record.CustomerID(),
		ModuleID:   record.ModuleID(),
		Enabled:    record.IsEnabled(),
		EnabledAt:  record.EnabledAt(),
		EnabledBy:  record.EnabledBy(),
		DisabledAt: record.DisabledAt(),
		DisabledBy: record.DisabledBy(),
		Settings:   record.Settings(),
		UpdatedAt:  record.UpdatedAt(),
	}
}
