package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CompanyID uuid.UUID `gorm:"type:uuid;index;not null" json:"company_id"`

	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Rate        float64 `gorm:"type:decimal(10,2);not null" json:"rate"`
	Unit        string  `gorm:"default:'hour'" json:"unit"` // hour, day, flat
	Category    string  `gorm:"default:'General'" json:"category"`
	IsActive    bool    `gorm:"default:true" json:"is_active"`

	gorm.Model `json:"-"`
}
