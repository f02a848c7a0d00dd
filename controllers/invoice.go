// controllers/invoice.go
package controllers

import (
	"errors"
	"net/http"
	"time"
	"tradepro-backend/billing"
	"tradepro-backend/config"
	"tradepro-backend/models"
	"tradepro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvoiceInput is the full draft record submitted by the editor for both
// create and update.
type InvoiceInput struct {
	Title           string             `json:"title" binding:"required"`
	Description     string             `json:"description"`
	CustomerID      *uuid.UUID         `json:"customer_id"`
	CustomerName    string             `json:"customer_name"`
	CustomerEmail   string             `json:"customer_email"`
	CustomerPhone   string             `json:"customer_phone"`
	CustomerAddress string             `json:"customer_address"`
	TaxRate         float64            `json:"tax_rate" binding:"min=0,max=100"`
	DueDate         *time.Time         `json:"due_date"`
	Notes           string             `json:"notes"`
	ProjectID       *uuid.UUID         `json:"project_id"`
	Items           []billing.LineItem `json:"items"`
}

// InvoiceFromEstimateInput drives the percentage-based invoice generator.
// Percentage must be in (0, 100]; title and due date are optional
// overrides.
type InvoiceFromEstimateInput struct {
	Percentage float64    `json:"percentage" binding:"required"`
	Title      string     `json:"title"`
	DueDate    *time.Time `json:"due_date"`
}

type UpdateInvoiceStatusInput struct {
	Status models.InvoiceStatus `json:"status" binding:"required,oneof=draft sent paid overdue cancelled"`
}

type SendInvoiceEmailInput struct {
	RecipientEmail string `json:"recipient_email" binding:"required"`
	SenderName     string `json:"sender_name"`
}

func newInvoiceNumber() string {
	return "INV-" + time.Now().Format("20060102") + "-" + utils.GenerateRandomString(6)
}

// newInvoiceItems materializes sanitized editor rows as item records.
func newInvoiceItems(invoiceID uuid.UUID, items []billing.LineItem) []models.InvoiceItem {
	rows := make([]models.InvoiceItem, 0, len(items))
	for _, item := range items {
		rows = append(rows, models.InvoiceItem{
			ID:          uuid.New(),
			InvoiceID:   invoiceID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount(),
		})
	}
	return rows
}

// paidRollbackAmount is the amount previously rolled into the paid-side
// aggregates (estimate.total_paid, customer.total_spent) for this
// invoice, zero when no payment was recorded.
func paidRollbackAmount(invoice models.Invoice) float64 {
	if invoice.PaidAmount > 0 {
		return invoice.PaidAmount
	}
	return 0
}

// CreateInvoice creates a new invoice for the company
func CreateInvoice(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}
	userUUID, ok := getUserID(c)
	if !ok {
		return
	}

	var input InvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.CustomerID != nil {
		var customer models.Customer
		if err := config.DB.Where("company_id = ? AND id = ?", companyUUID, *input.CustomerID).
			First(&customer).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Customer not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
		input.CustomerName = customer.Name
		if input.CustomerEmail == "" {
			input.CustomerEmail = customer.Email
		}
		if input.CustomerPhone == "" {
			input.CustomerPhone = customer.Phone
		}
		if input.CustomerAddress == "" {
			input.CustomerAddress = customer.Address
		}
	}

	items := billing.SanitizeItems(input.Items)
	totals := billing.ComputeTotals(items, input.TaxRate)

	invoiceID := uuid.New()
	invoice := models.Invoice{
		ID:              invoiceID,
		CompanyID:       companyUUID,
		CreatedByUserID: userUUID,
		InvoiceNumber:   newInvoiceNumber(),
		Title:           input.Title,
		Description:     input.Description,
		CustomerID:      input.CustomerID,
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		CustomerPhone:   input.CustomerPhone,
		CustomerAddress: input.CustomerAddress,
		TaxRate:         input.TaxRate,
		DueDate:         input.DueDate,
		Notes:           input.Notes,
		ProjectID:       input.ProjectID,
		Status:          models.InvoiceStatusDraft,
		Subtotal:        totals.Subtotal,
		TaxAmount:       totals.TaxAmount,
		Total:           totals.Total,
		Items:           newInvoiceItems(invoiceID, items),
	}

	if err := config.DB.Create(&invoice).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create invoice")
		return
	}

	c.JSON(http.StatusCreated, invoice)
}

// CreateInvoiceFromEstimate bills a percentage of an approved estimate.
// The amount is derived from the estimate row read inside the same
// transaction that creates the invoice, and the estimate's running
// invoiced total is incremented atomically.
func CreateInvoiceFromEstimate(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}
	userUUID, ok := getUserID(c)
	if !ok {
		return
	}
	estimateUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input InvoiceFromEstimateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Validate before any write; an out-of-range percentage never reaches
	// the database.
	if err := billing.ValidatePercentage(input.Percentage); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	// Start transaction
	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var estimate models.Estimate
	if err := tx.Where("company_id = ? AND id = ?", companyUUID, estimateUUID).
		First(&estimate).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Estimate not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if estimate.Status != models.EstimateStatusApproved {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusBadRequest, "Only approved estimates can be invoiced")
		return
	}

	amount := billing.PercentageAmount(estimate.TotalAmount, input.Percentage)

	title := input.Title
	if title == "" {
		title = billing.DefaultInvoiceTitle(input.Percentage, estimate.Title)
	}

	percentage := input.Percentage
	invoice := models.Invoice{
		ID:              uuid.New(),
		CompanyID:       companyUUID,
		CreatedByUserID: userUUID,
		InvoiceNumber:   newInvoiceNumber(),
		Title:           title,
		CustomerID:      estimate.CustomerID,
		CustomerName:    estimate.CustomerName,
		CustomerEmail:   estimate.CustomerEmail,
		CustomerPhone:   estimate.CustomerPhone,
		CustomerAddress: estimate.CustomerAddress,
		DueDate:         input.DueDate,
		Status:          models.InvoiceStatusDraft,
		Subtotal:        amount,
		Total:           amount,
		EstimateID:      &estimate.ID,
		Percentage:      &percentage,
		ProjectID:       estimate.ProjectID,
		Items: []models.InvoiceItem{
			{
				ID:          uuid.New(),
				Description: title,
				Quantity:    1,
				UnitPrice:   amount,
				Amount:      amount,
			},
		},
	}

	if err := tx.Create(&invoice).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create invoice")
		return
	}

	// Bump the estimate's running invoiced total
	if err := tx.Model(&models.Estimate{}).Where("id = ?", estimate.ID).
		Update("total_invoiced", gorm.Expr("total_invoiced + ?", amount)).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update estimate totals")
		return
	}

	tx.Commit()

	c.JSON(http.StatusCreated, invoice)
}

// GetInvoices retrieves a page of invoices for the company
func GetInvoices(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}

	page, pageSize := utils.ParsePagination(c)
	search := c.Query("search")
	status := c.Query("status")

	q := config.DB.Model(&models.Invoice{}).Where("company_id = ?", companyUUID)

	if search != "" {
		like := "%" + search + "%"
		q = q.Where("title ILIKE ? OR invoice_number ILIKE ? OR customer_name ILIKE ?", like, like, like)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	// Refinement filter: narrow by customer-name substring
	if customer := c.Query("customer"); customer != "" {
		q = q.Where("customer_name ILIKE ?", "%"+customer+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve invoices")
		return
	}

	var invoices []models.Invoice
	if err := q.Preload("Items").
		Order("created_at DESC").
		Offset(utils.Offset(page, pageSize)).
		Limit(pageSize).
		Find(&invoices).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve invoices")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"invoices":   invoices,
		"pagination": utils.NewPagination(page, pageSize, total),
	})
}

// GetInvoice retrieves a specific invoice by ID
func GetInvoice(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}
	invoiceUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var invoice models.Invoice
	if err := config.DB.Preload("Items").
		Where("company_id = ? AND id = ?", companyUUID, invoiceUUID).
		First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// UpdateInvoice resubmits the full record: header fields are replaced and
// the item set is rebuilt with totals recalculated.
func UpdateInvoice(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}
	invoiceUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input InvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Start transaction
	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var invoice models.Invoice
	if err := tx.Where("company_id = ? AND id = ?", companyUUID, invoiceUUID).
		First(&invoice).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.CustomerID != nil {
		var customer models.Customer
		if err := tx.Where("company_id = ? AND id = ?", companyUUID, *input.CustomerID).
			First(&customer).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Customer not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
		input.CustomerName = customer.Name
	}

	items := billing.SanitizeItems(input.Items)
	totals := billing.ComputeTotals(items, input.TaxRate)

	// Delete existing items and recreate from the submitted rows
	if err := tx.Where("invoice_id = ?", invoice.ID).Delete(&models.InvoiceItem{}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to clear existing items")
		return
	}

	invoice.Title = input.Title
	invoice.Description = input.Description
	invoice.CustomerID = input.CustomerID
	invoice.CustomerName = input.CustomerName
	invoice.CustomerEmail = input.CustomerEmail
	invoice.CustomerPhone = input.CustomerPhone
	invoice.CustomerAddress = input.CustomerAddress
	invoice.TaxRate = input.TaxRate
	invoice.DueDate = input.DueDate
	invoice.Notes = input.Notes
	invoice.ProjectID = input.ProjectID
	invoice.Subtotal = totals.Subtotal
	invoice.TaxAmount = totals.TaxAmount
	invoice.Total = totals.Total
	invoice.Items = newInvoiceItems(invoice.ID, items)

	if err := tx.Save(&invoice).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update invoice")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, invoice)
}

// UpdateInvoiceStatus updates the invoice lifecycle status directly
func UpdateInvoiceStatus(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}
	invoiceUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input UpdateInvoiceStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var invoice models.Invoice
	if err := config.DB.Where("company_id = ? AND id = ?", companyUUID, invoiceUUID).
		First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	invoice.Status = input.Status
	if err := config.DB.Save(&invoice).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update invoice")
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// MarkInvoicePaid records payment receipt and bumps the linked estimate's
// paid total.
func MarkInvoicePaid(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}
	invoiceUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var invoice models.Invoice
	if err := tx.Where("company_id = ? AND id = ?", companyUUID, invoiceUUID).
		First(&invoice).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if invoice.Status == models.InvoiceStatusPaid {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusConflict, "Invoice is already paid")
		return
	}

	now := time.Now()
	invoice.Status = models.InvoiceStatusPaid
	invoice.PaidAmount = invoice.Total
	invoice.PaidAt = &now

	if err := tx.Save(&invoice).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update invoice")
		return
	}

	if invoice.EstimateID != nil {
		if err := tx.Model(&models.Estimate{}).Where("id = ?", *invoice.EstimateID).
			Update("total_paid", gorm.Expr("total_paid + ?", invoice.Total)).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update estimate totals")
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
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer stats")
			return
		}
	}

	tx.Commit()

	c.JSON(http.StatusOK, invoice)
}

// SendInvoiceEmail marks the invoice sent and logs the dispatch. Delivery
// itself is handled by the mail relay consuming the notification log.
func SendInvoiceEmail(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}
	invoiceUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input SendInvoiceEmailInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidateEmail(input.RecipientEmail) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid recipient email")
		return
	}

	var invoice models.Invoice
	if err := config.DB.Where("company_id = ? AND id = ?", companyUUID, invoiceUUID).
		First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if invoice.Status == models.InvoiceStatusDraft {
		invoice.Status = models.InvoiceStatusSent
		if err := config.DB.Save(&invoice).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update invoice")
			return
		}
	}

	entry := models.NotificationLog{
		CompanyID: companyUUID,
		InvoiceID: &invoice.ID,
		Channel:   "email",
		Recipient: input.RecipientEmail,
		Subject:   "Invoice " + invoice.InvoiceNumber + " from " + input.SenderName,
		Status:    "sent",
		SentAt:    time.Now(),
	}
	if invoice.CustomerID != nil {
		entry.CustomerID = invoice.CustomerID
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to log email dispatch")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Invoice email queued", "invoice": invoice})
}

// DeleteInvoice deletes an invoice and its items. Owner/admin only.
func DeleteInvoice(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}
	if !utils.RequireRole(c, "owner", "admin") {
		return
	}
	invoiceUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	// Start transaction
	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var invoice models.Invoice
	if err := tx.Where("company_id = ? AND id = ?", companyUUID, invoiceUUID).
		First(&invoice).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := tx.Where("invoice_id = ?", invoice.ID).Delete(&models.InvoiceItem{}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete invoice items")
		return
	}

	if err := tx.Delete(&invoice).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete invoice")
		return
	}

	// Roll the amounts back out of the running aggregates, including the
	// paid side when payment was already recorded against this invoice
	paid := paidRollbackAmount(invoice)

	if invoice.EstimateID != nil {
		updates := map[string]interface{}{
			"total_invoiced": gorm.Expr("total_invoiced - ?", invoice.Total),
		}
		if paid > 0 {
			updates["total_paid"] = gorm.Expr("total_paid - ?", paid)
		}
		if err := tx.Model(&models.Estimate{}).Where("id = ?", *invoice.EstimateID).
			Updates(updates).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update estimate totals")
			return
		}
	}

	if paid > 0 && invoice.CustomerID != nil {
		// last_job is recomputed from the surviving invoices; the deleted
		// row is already gone inside this transaction
		if err := tx.Model(&models.Customer{}).Where("id = ?", *invoice.CustomerID).
			Updates(map[string]interface{}{
				"total_spent": gorm.Expr("total_spent - ?", paid),
				"last_job":    gorm.Expr("(SELECT MAX(paid_at) FROM invoices WHERE customer_id = ?)", *invoice.CustomerID),
			}).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer stats")
			return
		}
	}

	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"message": "Invoice deleted successfully"})
}
