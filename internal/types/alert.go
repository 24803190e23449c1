package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Alert struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProjectID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"project_id"`
	Project     *Project       `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProjectID;references:ID" json:"project,omitempty"`
	ModelID     *uuid.UUID     `gorm:"type:uuid;index" json:"model_id,omitempty"`
	Model       *AIModel       `gorm:"constraint:OnDelete:SET NULL;foreignKey:ModelID;references:ID" json:"model,omitempty"`
	Kind        string         `gorm:"column:kind;not null" json:"kind"`
	Description string         `gorm:"column:description;not null" json:"description"`
	Status      string         `gorm:"column:status;not null;default:'NEW'" json:"status"`
	Metadata    datatypes.JSON `gorm:"column:metadata;type:jsonb" json:"metadata,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Alert) TableName() string { return "alert" }
