// controllers/estimate.go
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

// EstimateInput is the full draft record submitted by the editor for both
// create and update. Blank placeholder rows are filtered out before the
// document is persisted.
type EstimateInput struct {
	Title           string             `json:"title" binding:"required"`
	Description     string             `json:"description"`
	CustomerID      *uuid.UUID         `json:"customer_id"`
	CustomerName    string             `json:"customer_name"`
	CustomerEmail   string             `json:"customer_email"`
	CustomerPhone   string             `json:"customer_phone"`
	CustomerAddress string             `json:"customer_address"`
	TaxRate         float64            `json:"tax_rate" binding:"min=0,max=100"`
	ValidUntil      *time.Time         `json:"valid_until"`
	Notes           string             `json:"notes"`
	Items           []billing.LineItem `json:"items"`
}

type UpdateEstimateStatusInput struct {
	Status models.EstimateStatus `json:"status" binding:"required,oneof=draft sent approved rejected expired"`
}

type CreateProjectFromEstimateInput struct {
	ProjectName        string `json:"project_name" binding:"required"`
	ProjectDescription string `json:"project_description"`
}

// resolveCustomer snapshots the customer's name from the loaded customer
// record when a customer_id is selected; freeform contact details pass
// through untouched.
func resolveCustomer(companyUUID uuid.UUID, input *EstimateInput) error {
	if input.CustomerID == nil {
		return nil
	}
	var customer models.Customer
	if err := config.DB.Where("company_id = ? AND id = ?", companyUUID, *input.CustomerID).
		First(&customer).Error; err != nil {
		return err
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
	return nil
}

// newEstimateItems materializes sanitized editor rows as item records.
func newEstimateItems(estimateID uuid.UUID, items []billing.LineItem) []models.EstimateItem {
	rows := make([]models.EstimateItem, 0, len(items))
	for _, item := range items {
		rows = append(rows, models.EstimateItem{
			ID:          uuid.New(),
			EstimateID:  estimateID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount(),
		})
	}
	return rows
}

// CreateEstimate creates a new estimate for the company
func CreateEstimate(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}
	userUUID, ok := getUserID(c)
	if !ok {
		return
	}

	var input EstimateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := resolveCustomer(companyUUID, &input); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	items := billing.SanitizeItems(input.Items)
	totals := billing.ComputeTotals(items, input.TaxRate)

	estimateID := uuid.New()
	estimate := models.Estimate{
		ID:              estimateID,
		CompanyID:       companyUUID,
		CreatedByUserID: userUUID,
		EstimateNumber:  "EST-" + time.Now().Format("20060102") + "-" + utils.GenerateRandomString(6),
		Title:           input.Title,
		Description:     input.Description,
		CustomerID:      input.CustomerID,
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		CustomerPhone:   input.CustomerPhone,
		CustomerAddress: input.CustomerAddress,
		TaxRate:         input.TaxRate,
		ValidUntil:      input.ValidUntil,
		Notes:           input.Notes,
		Status:          models.EstimateStatusDraft,
		Subtotal:        totals.Subtotal,
		TaxAmount:       totals.TaxAmount,
		TotalAmount:     totals.Total,
		Items:           newEstimateItems(estimateID, items),
	}

	if err := config.DB.Create(&estimate).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create estimate")
		return
	}

	c.JSON(http.StatusCreated, estimate)
}

// GetEstimates retrieves a page of estimates for the company
func GetEstimates(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}

	page, pageSize := utils.ParsePagination(c)
	search := c.Query("search")
	status := c.Query("status")

	q := config.DB.Model(&models.Estimate{}).Where("company_id = ?", companyUUID)

	if search != "" {
		like := "%" + search + "%"
		q = q.Where("title ILIKE ? OR estimate_number ILIKE ? OR customer_name ILIKE ?", like, like, like)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve estimates")
		return
	}

	var estimates []models.Estimate
	if err := q.Preload("Items").
		Order("created_at DESC").
		Offset(utils.Offset(page, pageSize)).
		Limit(pageSize).
		Find(&estimates).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve estimates")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"estimates":  estimates,
		"pagination": utils.NewPagination(page, pageSize, total),
	})
}

// GetEstimate retrieves a specific estimate by ID
func GetEstimate(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}
	estimateUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var estimate models.Estimate
	if err := config.DB.Preload("Items").
		Where("company_id = ? AND id = ?", companyUUID, estimateUUID).
		First(&estimate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Estimate not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, estimate)
}

// UpdateEstimate resubmits the full record: header fields are replaced
// and the item set is rebuilt with totals recalculated.
func UpdateEstimate(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}
	estimateUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input EstimateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := resolveCustomer(companyUUID, &input); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
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

	items := billing.SanitizeItems(input.Items)
	totals := billing.ComputeTotals(items, input.TaxRate)

	// Delete existing items and recreate from the submitted rows
	if err := tx.Where("estimate_id = ?", estimate.ID).Delete(&models.EstimateItem{}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to clear existing items")
		return
	}

	estimate.Title = input.Title
	estimate.Description = input.Description
	estimate.CustomerID = input.CustomerID
	estimate.CustomerName = input.CustomerName
	estimate.CustomerEmail = input.CustomerEmail
	estimate.CustomerPhone = input.CustomerPhone
	estimate.CustomerAddress = input.CustomerAddress
	estimate.TaxRate = input.TaxRate
	estimate.ValidUntil = input.ValidUntil
	estimate.Notes = input.Notes
	estimate.Subtotal = totals.Subtotal
	estimate.TaxAmount = totals.TaxAmount
	estimate.TotalAmount = totals.Total
	estimate.Items = newEstimateItems(estimate.ID, items)

	if err := tx.Save(&estimate).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update estimate")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, estimate)
}

// UpdateEstimateStatus moves the estimate through its lifecycle. Only
// approved estimates are offered for invoice generation.
func UpdateEstimateStatus(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}
	estimateUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input UpdateEstimateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var estimate models.Estimate
	if err := config.DB.Where("company_id = ? AND id = ?", companyUUID, estimateUUID).
		First(&estimate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Estimate not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	estimate.Status = input.Status
	if err := config.DB.Save(&estimate).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update estimate")
		return
	}

	c.JSON(http.StatusOK, estimate)
}

// CreateProjectFromEstimate spins up a project linked back to the estimate
func CreateProjectFromEstimate(c *gin.Context) {
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

	var input CreateProjectFromEstimateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var estimate models.Estimate
	if err := config.DB.Where("company_id = ? AND id = ?", companyUUID, estimateUUID).
		First(&estimate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Estimate not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	now := time.Now()
	project := models.Project{
		ID:              uuid.New(),
		CompanyID:       companyUUID,
		CreatedByUserID: userUUID,
		Name:            input.ProjectName,
		Description:     input.ProjectDescription,
		CustomerID:      estimate.CustomerID,
		Status:          "active",
		StartDate:       &now,
		EstimateID:      &estimate.ID,
	}

	tx := config.DB.Begin()
	if err := tx.Create(&project).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create project")
		return
	}
	if err := tx.Model(&estimate).Update("project_id", project.ID).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to link project")
		return
	}
	tx.Commit()

	c.JSON(http.StatusCreated, gin.H{"project": project})
}

// DeleteEstimate deletes an estimate and its items. Owner/admin only.
func DeleteEstimate(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}
	if !utils.RequireRole(c, "owner", "admin") {
		return
	}
	estimateUUID, ok := parseIDParam(c, "id")
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

	if err := tx.Where("estimate_id = ?", estimate.ID).Delete(&models.EstimateItem{}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete estimate items")
		return
	}

	if err := tx.Delete(&estimate).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete estimate")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"message": "Estimate deleted successfully"})
}
