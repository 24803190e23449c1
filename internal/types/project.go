package types

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string     `gorm:"column:name;not null" json:"name"`
	Description string     `gorm:"column:description" json:"description"`
	Status      string     `gorm:"column:status;not null;default:'Planned'" json:"status"`
	Priority    string     `gorm:"column:priority;not null;default:'Medium'" json:"priority"`
	Budget      float64    `gorm:"column:budget;type:numeric(15,2);not null;default:0" json:"budget"`
	StartDate   *time.Time `gorm:"column:start_date" json:"start_date,omitempty"`
	EndDate     *time.Time `gorm:"column:end_date" json:"end_date,omitempty"`
	Location    string     `gorm:"column:location" json:"location"`
	Manager     string     `gorm:"column:manager" json:"manager"`
	Sites       []*Site    `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProjectID;references:ID" json:"sites,omitempty"`
	BudgetDetail *Budget   `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProjectID;references:ID" json:"budget_detail,omitempty"`

	// Derived at read time from site progress, never persisted.
	Advancement float64 `gorm:"-" json:"advancement"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Project) TableName() string { return "project" }
