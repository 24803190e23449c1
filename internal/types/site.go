package types

import (
	"time"

	"github.com/google/uuid"
)

type Site struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProjectID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"project_id"`
	Project     *Project   `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProjectID;references:ID" json:"project,omitempty"`
	Name        string     `gorm:"column:name;not null" json:"name"`
	Description string     `gorm:"column:description" json:"description"`
	Status      string     `gorm:"column:status;not null;default:'Planned'" json:"status"`
	Priority    string     `gorm:"column:priority;not null;default:'Medium'" json:"priority"`
	Progress    float64    `gorm:"column:progress;not null;default:0" json:"progress"`
	Budget      float64    `gorm:"column:budget;type:numeric(15,2);not null;default:0" json:"budget"`
	BudgetUsed  float64    `gorm:"column:budget_used;type:numeric(15,2);not null;default:0" json:"budget_used"`
	StartDate   *time.Time `gorm:"column:start_date" json:"start_date,omitempty"`
	EndDate     *time.Time `gorm:"column:end_date" json:"end_date,omitempty"`
	Location    string     `gorm:"column:location" json:"location"`
	Manager     string     `gorm:"column:manager" json:"manager"`
	Lots        []*Lot     `gorm:"constraint:OnDelete:CASCADE;foreignKey:SiteID;references:ID" json:"lots,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Site) TableName() string { return "site" }
