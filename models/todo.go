package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Todo struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CompanyID       uuid.UUID `gorm:"type:uuid;index;not null" json:"company_id"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index;not null" json:"created_by_user_id"`

	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	ProjectID   *uuid.UUID `gorm:"type:uuid;index" json:"project_id"`
	AssignedTo  string     `json:"assigned_to"`
	Priority    string     `gorm:"type:varchar(10);default:'medium'" json:"priority"` // low, medium, high
	DueDate     *time.Time `json:"due_date"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`

	gorm.Model `json:"-"`
}
