// controllers/payment.go
package controllers

import (
	"errors"
	"math"
	"net/http"
	"time"
	"tradepro-backend/config"
	"tradepro-backend/models"
	"tradepro-backend/payments"
	"tradepro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"gorm.io/gorm"
)

var stripeClient = payments.NewStripeClient()

type CreatePaymentIntentInput struct {
	InvoiceID uuid.UUID `json:"invoice_id" binding:"required"`
	Currency  string    `json:"currency"`
}

type CreateCheckoutSessionInput struct {
	InvoiceID  uuid.UUID `json:"invoice_id" binding:"required"`
	Currency   string    `json:"currency"`
	SuccessURL string    `json:"success_url" binding:"required"`
	CancelURL  string    `json:"cancel_url" binding:"required"`
}

// amountInCents converts a dollar total to Stripe's smallest-unit amount.
func amountInCents(total float64) int64 {
	return int64(math.Round(total * 100))
}

func loadPayableInvoice(c *gin.Context, companyUUID, invoiceID uuid.UUID) (*models.Invoice, bool) {
	var invoice models.Invoice
	if err := config.DB.Where("company_id = ? AND id = ?", companyUUID, invoiceID).
		First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil, false
	}
	if invoice.Status == models.InvoiceStatusPaid {
		utils.RespondWithError(c, http.StatusConflict, "Invoice is already paid")
		return nil, false
	}
	if invoice.Status == models.InvoiceStatusCancelled {
		utils.RespondWithError(c, http.StatusConflict, "Invoice is cancelled")
		return nil, false
	}
	if invoice.Total <= 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Invoice total must be greater than zero")
		return nil, false
	}
	return &invoice, true
}

// GetPublicKey hands the Stripe publishable key to the payment widget
func GetPublicKey(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"public_key": stripeClient.PublishableKey()})
}

// CreatePaymentIntent opens a Stripe payment intent for an invoice
func CreatePaymentIntent(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}

	var input CreatePaymentIntentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	currency := input.Currency
	if currency == "" {
		currency = "usd"
	}

	invoice, ok := loadPayableInvoice(c, companyUUID, input.InvoiceID)
	if !ok {
		return
	}

	intent, err := stripeClient.CreatePaymentIntent(amountInCents(invoice.Total), currency, invoice.InvoiceNumber)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadGateway, "Failed to create payment intent: "+err.Error())
		return
	}

	payment := models.Payment{
		ID:                    uuid.New(),
		CompanyID:             companyUUID,
		InvoiceID:             invoice.ID,
		StripePaymentIntentID: intent.ID,
		AmountCents:           intent.Amount,
		Currency:              currency,
		Status:                models.PaymentStatusPending,
	}
	if err := config.DB.Create(&payment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to record payment")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"payment":       payment,
		"client_secret": intent.ClientSecret,
	})
}

// CreateCheckoutSession opens a hosted Stripe Checkout page for an invoice
func CreateCheckoutSession(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}

	var input CreateCheckoutSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	currency := input.Currency
	if currency == "" {
		currency = "usd"
	}

	invoice, ok := loadPayableInvoice(c, companyUUID, input.InvoiceID)
	if !ok {
		return
	}

	sess, err := stripeClient.CreateCheckoutSession(amountInCents(invoice.Total), currency,
		invoice.InvoiceNumber, input.SuccessURL, input.CancelURL)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadGateway, "Failed to create checkout session: "+err.Error())
		return
	}

	payment := models.Payment{
		ID:                      uuid.New(),
		CompanyID:               companyUUID,
		InvoiceID:               invoice.ID,
		StripeCheckoutSessionID: sess.ID,
		AmountCents:             amountInCents(invoice.Total),
		Currency:                currency,
		Status:                  models.PaymentStatusPending,
	}
	if err := config.DB.Create(&payment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to record payment")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"payment":      payment,
		"checkout_url": sess.URL,
	})
}

// GetPaymentStatus polls Stripe for the payment's current state and, on
// success, marks the invoice paid.
func GetPaymentStatus(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}
	paymentUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payment models.Payment
	if err := config.DB.Where("company_id = ? AND id = ?", companyUUID, paymentUUID).
		First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Payment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if payment.StripePaymentIntentID == "" {
		c.JSON(http.StatusOK, gin.H{"payment": payment})
		return
	}

	intent, err := stripeClient.GetPaymentIntent(payment.StripePaymentIntentID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadGateway, "Failed to query payment status: "+err.Error())
		return
	}

	switch intent.Status {
	case stripe.PaymentIntentStatusSucceeded:
		if payment.Status != models.PaymentStatusSucceeded {
			now := time.Now()
			payment.Status = models.PaymentStatusSucceeded
			payment.CompletedAt = &now
			if err := config.DB.Save(&payment).Error; err != nil {
				utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update payment")
				return
			}
			settleInvoicePayment(payment.InvoiceID)
		}
	case stripe.PaymentIntentStatusCanceled:
		if payment.Status != models.PaymentStatusCancelled {
			payment.Status = models.PaymentStatusCancelled
			if err := config.DB.Save(&payment).Error; err != nil {
				utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update payment")
				return
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"payment": payment, "stripe_status": intent.Status})
}

// settleInvoicePayment marks the invoice paid and rolls the amount into
// the linked estimate and customer aggregates. The invoice is read and
// the already-paid guard evaluated inside the same transaction that
// writes, so concurrent status polls settle at most once.
func settleInvoicePayment(invoiceID uuid.UUID) {
	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var invoice models.Invoice
	if err := tx.First(&invoice, "id = ?", invoiceID).Error; err != nil {
		tx.Rollback()
		return
	}
	if invoice.Status == models.InvoiceStatusPaid {
		tx.Rollback()
		return
	}

	now := time.Now()
	invoice.Status = models.InvoiceStatusPaid
	invoice.PaidAmount = invoice.Total
	invoice.PaidAt = &now
	if err := tx.Save(&invoice).Error; err != nil {
		tx.Rollback()
		return
	}
	if invoice.EstimateID != nil {
		if err := tx.Model(&models.Estimate{}).Where("id = ?", *invoice.EstimateID).
			Update("total_paid", gorm.Expr("total_paid + ?", invoice.Total)).Error; err != nil {
			tx.Rollback()
			return
		}
	}
	if invoice.CustomerID != nil {
		if err := tx.Model(&models.Customer{}).Where("id = ?", *invoice.CustomerID).
			Updates(map[string]interface{}{
				"total_spent": gorm.Expr("total_spent + ?", invoice.Total),
				"last_job":    now,
			}).Error; err != nil {
			tx.Rollback()
			return
		}
	}
	tx.Commit()
}

// GetPayments lists payments recorded for an invoice
func GetPayments(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}

	q := config.DB.Where("company_id = ?", companyUUID)
	if invoiceID := c.Query("invoice_id"); invoiceID != "" {
		q = q.Where("invoice_id = ?", invoiceID)
	}

	var paymentsList []models.Payment
	if err := q.Order("created_at DESC").Find(&paymentsList).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve payments")
		return
	}

	c.JSON(http.StatusOK, gin.H{"payments": paymentsList})
}
