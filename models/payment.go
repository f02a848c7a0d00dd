package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusSucceeded PaymentStatus = "succeeded"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

type Payment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CompanyID uuid.UUID `gorm:"type:uuid;index;not null" json:"company_id"`
	InvoiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"invoice_id"`

	StripePaymentIntentID   string `gorm:"index" json:"stripe_payment_intent_id"`
	StripeCheckoutSessionID string `gorm:"index" json:"stripe_checkout_session_id"`

	// Amount in the smallest currency unit, as Stripe expects.
	AmountCents int64         `gorm:"not null" json:"amount_cents"`
	Currency    string        `gorm:"type:varchar(3);default:'usd'" json:"currency"`
	Status      PaymentStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	CompletedAt *time.Time `json:"completed_at"`

	gorm.Model `json:"-"`
}
