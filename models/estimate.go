package models

import (
	"time"

	"github.com/google/uuid"
)

type EstimateStatus string

const (
	EstimateStatusDraft    EstimateStatus = "draft"
	EstimateStatusSent     EstimateStatus = "sent"
	EstimateStatusApproved EstimateStatus = "approved"
	EstimateStatusRejected EstimateStatus = "rejected"
	EstimateStatusExpired  EstimateStatus = "expired"
)

type Estimate struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CompanyID       uuid.UUID `gorm:"type:uuid;index;not null" json:"company_id"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index;not null" json:"created_by_user_id"`

	EstimateNumber string `gorm:"uniqueIndex;not null" json:"estimate_number"`
	Title          string `gorm:"not null" json:"title"`
	Description    string `json:"description"`

	// Customer linkage: either a reference to an existing customer or
	// freeform contact details captured on the document itself.
	CustomerID      *uuid.UUID `gorm:"type:uuid;index" json:"customer_id"`
	CustomerName    string     `json:"customer_name"`
	CustomerEmail   string     `json:"customer_email"`
	CustomerPhone   string     `json:"customer_phone"`
	CustomerAddress string     `json:"customer_address"`

	TaxRate    float64    `gorm:"type:decimal(5,2);default:0.0" json:"tax_rate"`
	ValidUntil *time.Time `json:"valid_until"`
	Notes      string     `json:"notes"`

	Status EstimateStatus `gorm:"type:varchar(20);default:'draft'" json:"status"`

	Subtotal    float64 `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	TaxAmount   float64 `gorm:"type:decimal(10,2);default:0.0" json:"tax_amount"`
	TotalAmount float64 `gorm:"type:decimal(10,2);not null" json:"total_amount"`

	// Running aggregates maintained server-side as invoices and payments
	// are recorded against this estimate.
	TotalInvoiced float64 `gorm:"type:decimal(10,2);default:0.0" json:"total_invoiced"`
	TotalPaid     float64 `gorm:"type:decimal(10,2);default:0.0" json:"total_paid"`

	ProjectID *uuid.UUID `gorm:"type:uuid;index" json:"project_id"`

	Items []EstimateItem `gorm:"foreignKey:EstimateID" json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type EstimateItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	EstimateID  uuid.UUID `gorm:"type:uuid;index;not null" json:"estimate_id"`
	Description string    `gorm:"not null" json:"description"`
	Quantity    float64   `gorm:"type:decimal(10,2);default:1" json:"quantity"`
	UnitPrice   float64   `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Amount      float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
}
