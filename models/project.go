package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Project struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CompanyID       uuid.UUID `gorm:"type:uuid;index;not null" json:"company_id"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index;not null" json:"created_by_user_id"`

	Name        string     `gorm:"not null" json:"name"`
	Description string     `json:"description"`
	CustomerID  *uuid.UUID `gorm:"type:uuid;index" json:"customer_id"`
	Status      string     `gorm:"type:varchar(20);default:'active'" json:"status"` // active, on_hold, completed, cancelled
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`

	// Set when the project was created from an approved estimate.
	EstimateID *uuid.UUID `gorm:"type:uuid;index" json:"estimate_id"`

	Todos []Todo `gorm:"foreignKey:ProjectID" json:"-"`
	RFIs  []RFI  `gorm:"foreignKey:ProjectID" json:"-"`

	gorm.Model `json:"-"`
}
