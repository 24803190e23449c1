package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	ResourceKindHuman    = "human"
	ResourceKindMaterial = "material"
)

// Resource covers both human and material resources; Kind selects which of
// the optional field pairs applies.
type Resource struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name       string     `gorm:"column:name;not null" json:"name"`
	Kind       string     `gorm:"column:kind;not null;default:'material'" json:"kind"`
	Quantity   int        `gorm:"column:quantity;not null;default:1" json:"quantity"`
	UnitCost   float64    `gorm:"column:unit_cost;type:numeric(15,2);not null;default:0" json:"unit_cost"`
	SupplierID *uuid.UUID `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	Supplier   *Supplier  `gorm:"constraint:OnDelete:SET NULL;foreignKey:SupplierID;references:ID" json:"supplier,omitempty"`

	// Human resources
	Role  string `gorm:"column:role" json:"role,omitempty"`
	Skill string `gorm:"column:skill" json:"skill,omitempty"`

	// Material resources
	Type      string `gorm:"column:type" json:"type,omitempty"`
	Condition string `gorm:"column:condition" json:"condition,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Resource) TableName() string { return "resource" }

type Supplier struct {
	ID        uuid.UUID   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Company   string      `gorm:"column:company;not null" json:"company"`
	Contact   string      `gorm:"column:contact" json:"contact"`
	Resources []*Resource `gorm:"foreignKey:SupplierID;references:ID" json:"resources,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Supplier) TableName() string { return "supplier" }
