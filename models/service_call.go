package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceCall struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CompanyID       uuid.UUID `gorm:"type:uuid;index;not null" json:"company_id"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index;not null" json:"created_by_user_id"`

	CustomerID  *uuid.UUID `gorm:"type:uuid;index" json:"customer_id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	Priority    string     `gorm:"type:varchar(10);default:'medium'" json:"priority"`                 // low, medium, high, emergency
	Status      string     `gorm:"type:varchar(20);default:'open'" json:"status"`                     // open, scheduled, completed, cancelled
	ScheduledAt *time.Time `json:"scheduled_at"`
	AssignedTo  string     `json:"assigned_to"`

	gorm.Model `json:"-"`
}
