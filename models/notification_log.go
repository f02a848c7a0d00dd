// models/notification_log.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	CompanyID  uuid.UUID  `gorm:"type:uuid;index;not null" json:"company_id"`
	CustomerID *uuid.UUID `gorm:"type:uuid;index" json:"customer_id"`
	InvoiceID  *uuid.UUID `gorm:"type:uuid;index" json:"invoice_id"`

	Channel      string    `gorm:"type:varchar(20)" json:"channel"` // email, sms, whatsapp
	Recipient    string    `json:"recipient"`
	Subject      string    `json:"subject"`
	Message      string    `gorm:"type:text" json:"message"`
	Status       string    `gorm:"type:varchar(20)" json:"status"` // sent, failed
	ErrorMessage string    `gorm:"type:text" json:"error_message"`
	SentAt       time.Time `json:"sent_at"`

	gorm.Model `json:"-"`
}

func (n *NotificationLog) BeforeCreate(tx *gorm.DB) (err error) {
	n.ID = uuid.New()
	return
}
