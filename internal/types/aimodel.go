package types

import (
	"time"

	"github.com/google/uuid"
)

// AIModel names a prediction model and carries the alerting policy's trigger
// level. The model parameters themselves live in the bundle artifact, not here.
type AIModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name                string    `gorm:"column:name;not null" json:"name"`
	Version             string    `gorm:"column:version;not null;default:'1.0'" json:"version"`
	IsActive            bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	ConfidenceThreshold float64   `gorm:"column:confidence_threshold;not null;default:0.5" json:"confidence_threshold"`
	Alerts              []*Alert  `gorm:"foreignKey:ModelID;references:ID" json:"alerts,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (AIModel) TableName() string { return "ai_model" }
