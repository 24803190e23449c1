package types

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID          uuid.UUID   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	LotID       uuid.UUID   `gorm:"type:uuid;not null;index" json:"lot_id"`
	Lot         *Lot        `gorm:"constraint:OnDelete:CASCADE;foreignKey:LotID;references:ID" json:"lot,omitempty"`
	Name        string      `gorm:"column:name;not null" json:"name"`
	Description string      `gorm:"column:description" json:"description"`
	Status      string      `gorm:"column:status;not null;default:'Todo'" json:"status"`
	AssignedTo  string      `gorm:"column:assigned_to" json:"assigned_to"`
	Priority    string      `gorm:"column:priority" json:"priority"`
	StartDate   *time.Time  `gorm:"column:start_date" json:"start_date,omitempty"`
	EndDate     *time.Time  `gorm:"column:end_date" json:"end_date,omitempty"`
	Cost        float64     `gorm:"column:cost;type:numeric(15,2);not null;default:0" json:"cost"`
	Progress    float64     `gorm:"column:progress;not null;default:0" json:"progress"`
	Resources   []*Resource `gorm:"many2many:task_resource" json:"resources,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Task) TableName() string { return "task" }
