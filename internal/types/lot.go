package types

import (
	"time"

	"github.com/google/uuid"
)

type Lot struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SiteID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"site_id"`
	Site        *Site      `gorm:"constraint:OnDelete:CASCADE;foreignKey:SiteID;references:ID" json:"site,omitempty"`
	Name        string     `gorm:"column:name;not null" json:"name"`
	Description string     `gorm:"column:description" json:"description"`
	Progress    float64    `gorm:"column:progress;not null;default:0" json:"progress"`
	Status      string     `gorm:"column:status;not null;default:'Planned'" json:"status"`
	StartDate   *time.Time `gorm:"column:start_date" json:"start_date,omitempty"`
	EndDate     *time.Time `gorm:"column:end_date" json:"end_date,omitempty"`
	Tasks       []*Task    `gorm:"constraint:OnDelete:CASCADE;foreignKey:LotID;references:ID" json:"tasks,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Lot) TableName() string { return "lot" }
