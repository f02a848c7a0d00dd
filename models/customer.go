package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CompanyID       uuid.UUID `gorm:"type:uuid;index;not null" json:"company_id"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index;not null" json:"created_by_user_id"`

	Name       string     `gorm:"not null" json:"name"`
	Phone      string     `gorm:"uniqueIndex:idx_company_phone,priority:2" json:"phone"`
	Email      string     `json:"email"`
	Address    string     `json:"address"`
	Notes      string     `json:"notes"`
	TotalSpent float64    `gorm:"type:decimal(10,2);default:0.0" json:"total_spent"`
	LastJob    *time.Time `json:"last_job"`
	IsActive   bool       `gorm:"default:true" json:"is_active"`

	Invoices  []Invoice  `gorm:"foreignKey:CustomerID" json:"-"`
	Estimates []Estimate `gorm:"foreignKey:CustomerID" json:"-"`

	gorm.Model `json:"-"`
}

// SimpleCustomer is the id/name pair used by selection dropdowns.
type SimpleCustomer struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
