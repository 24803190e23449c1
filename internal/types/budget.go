package types

import (
	"time"

	"github.com/google/uuid"
)

type Budget struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProjectID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"project_id"`
	Project       *Project  `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProjectID;references:ID" json:"project,omitempty"`
	PlannedAmount float64   `gorm:"column:planned_amount;type:numeric(15,2);not null;default:0" json:"planned_amount"`
	SpentAmount   float64   `gorm:"column:spent_amount;type:numeric(15,2);not null;default:0" json:"spent_amount"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Budget) TableName() string { return "budget" }
