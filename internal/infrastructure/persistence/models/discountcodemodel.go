package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/safehub-io/safehub/internal/shared/constants"
)

// DiscountCodeModel represents the database persistence model for discount
// codes. Code is stored normalized (upper case, trimmed) so the unique index
// doubles as the case-insensitive lookup key.
type DiscountCodeModel struct {
	ID                uint   `gorm:"primarykey"`
	Code              string `gorm:"uniqueIndex;not null;size:50"`
	Type              string `gorm:"not null;size:20"`
	Value             int64  `gorm:"not null"`
	ExpiresAt         *time.Time
	ApplicableModules datatypes.JSON
	MinimumSpend      int64 `gorm:"not null;default:0"`
	MaxDiscount       int64 `gorm:"not null;default:0"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName specifies the table name for GORM
func (DiscountCodeModel) TableName() string {
	return constants.TableDiscountCodes
}
