package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Material struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CompanyID uuid.UUID `gorm:"type:uuid;index;not null" json:"company_id"`

	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Unit        string  `gorm:"default:'each'" json:"unit"` // each, ft, sqft, lb, box
	UnitCost    float64 `gorm:"type:decimal(10,2);not null" json:"unit_cost"`
	Supplier    string  `json:"supplier"`
	Category    string  `gorm:"default:'General'" json:"category"`
	IsActive    bool    `gorm:"default:true" json:"is_active"`

	gorm.Model `json:"-"`
}
