package models

import (
	"github.com/google/uuid"
)

type Company struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name    string    `gorm:"not null" json:"name"`
	Address string    `json:"address"`
	Phone   string    `json:"phone"`
	Email   string    `json:"email"`

	DefaultTaxRate float64 `gorm:"type:decimal(5,2);default:0.0" json:"defaultTaxRate"`
	Settings       JSONB   `gorm:"type:jsonb;default:'{}'" json:"settings"`

	Users     []User     `gorm:"foreignKey:CompanyID" json:"-"`
	Customers []Customer `gorm:"foreignKey:CompanyID" json:"-"`
	Projects  []Project  `gorm:"foreignKey:CompanyID" json:"-"`
	Estimates []Estimate `gorm:"foreignKey:CompanyID" json:"-"`
	Invoices  []Invoice  `gorm:"foreignKey:CompanyID" json:"-"`
}
