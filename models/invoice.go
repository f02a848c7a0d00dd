package models

import (
	"time"

	"github.com/google/uuid"
)

type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

type Invoice struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CompanyID       uuid.UUID `gorm:"type:uuid;index;not null" json:"company_id"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index;not null" json:"created_by_user_id"`

	InvoiceNumber string `gorm:"uniqueIndex;not null" json:"invoice_number"`
	Title         string `gorm:"not null" json:"title"`
	Description   string `json:"description"`

	CustomerID      *uuid.UUID `gorm:"type:uuid;index" json:"customer_id"`
	CustomerName    string     `json:"customer_name"`
	CustomerEmail   string     `json:"customer_email"`
	CustomerPhone   string     `json:"customer_phone"`
	CustomerAddress string     `json:"customer_address"`

	TaxRate float64    `gorm:"type:decimal(5,2);default:0.0" json:"tax_rate"`
	DueDate *time.Time `json:"due_date"`
	Notes   string     `json:"notes"`

	Status InvoiceStatus `gorm:"type:varchar(20);default:'draft'" json:"status"`

	Subtotal  float64 `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	TaxAmount float64 `gorm:"type:decimal(10,2);default:0.0" json:"tax_amount"`
	Total     float64 `gorm:"type:decimal(10,2);not null" json:"total"`

	PaidAmount float64    `gorm:"type:decimal(10,2);default:0.0" json:"paid_amount"`
	PaidAt     *time.Time `json:"paid_at"`

	// Set when the invoice was generated from an approved estimate.
	EstimateID *uuid.UUID `gorm:"type:uuid;index" json:"estimate_id"`
	Percentage *float64   `gorm:"type:decimal(5,2)" json:"percentage"`

	ProjectID *uuid.UUID `gorm:"type:uuid;index" json:"project_id"`

	PDFPath string `json:"pdf_path"`

	Items []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type InvoiceItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	InvoiceID   uuid.UUID `gorm:"type:uuid;index;not null" json:"invoice_id"`
	Description string    `gorm:"not null" json:"description"`
	Quantity    float64   `gorm:"type:decimal(10,2);default:1" json:"quantity"`
	UnitPrice   float64   `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Amount      float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
}
