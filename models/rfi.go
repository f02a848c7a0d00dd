package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RFI is a request for information raised against a project.
type RFI struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CompanyID       uuid.UUID `gorm:"type:uuid;index;not null" json:"company_id"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index;not null" json:"created_by_user_id"`

	ProjectID *uuid.UUID `gorm:"type:uuid;index" json:"project_id"`
	Subject   string     `gorm:"not null" json:"subject"`
	Question  string     `gorm:"type:text" json:"question"`
	Answer    string     `gorm:"type:text" json:"answer"`
	Status    string     `gorm:"type:varchar(20);default:'open'" json:"status"` // open, answered, closed
	DueDate   *time.Time `json:"due_date"`

	gorm.Model `json:"-"`
}
