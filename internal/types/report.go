package types

import (
	"time"

	"github.com/google/uuid"
)

type Report struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`
	Project   *Project  `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProjectID;references:ID" json:"project,omitempty"`
	Title     string    `gorm:"column:title;not null" json:"title"`
	Content   string    `gorm:"column:content;not null" json:"content"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Report) TableName() string { return "report" }

type ContactMessage struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	FirstName    string    `gorm:"column:first_name;not null" json:"first_name"`
	LastName     string    `gorm:"column:last_name;not null" json:"last_name"`
	Email        string    `gorm:"column:email;not null" json:"email"`
	Phone        string    `gorm:"column:phone" json:"phone"`
	Organization string    `gorm:"column:organization" json:"organization"`
	Subject      string    `gorm:"column:subject;not null" json:"subject"`
	Message      string    `gorm:"column:message;not null" json:"message"`
	IsRead       bool      `gorm:"column:is_read;not null;default:false" json:"is_read"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (ContactMessage) TableName() string { return "contact_message" }
