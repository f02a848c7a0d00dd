// controllers/service_call.go
package controllers

import (
	"errors"
	"net/http"
	"time"
	"tradepro-backend/config"
	"tradepro-backend/models"
	"tradepro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateServiceCallInput struct {
	CustomerID  *uuid.UUID `json:"customer_id"`
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Priority    string     `json:"priority" binding:"omitempty,oneof=low medium high emergency"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	AssignedTo  string     `json:"assigned_to"`
}

type UpdateServiceCallInput struct {
	CustomerID  *uuid.UUID `json:"customer_id"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Priority    *string    `json:"priority" binding:"omitempty,oneof=low medium high emergency"`
	Status      *string    `json:"status" binding:"omitempty,oneof=open scheduled completed cancelled"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	AssignedTo  *string    `json:"assigned_to"`
}

// CreateServiceCall creates a new service call for the company
func CreateServiceCall(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}
	userUUID, ok := getUserID(c)
	if !ok {
		return
	}

	var input CreateServiceCallInput
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
	}

	call := models.ServiceCall{
		ID:              uuid.New(),
		CompanyID:       companyUUID,
		CreatedByUserID: userUUID,
		CustomerID:      input.CustomerID,
		Title:           input.Title,
		Description:     input.Description,
		ScheduledAt:     input.ScheduledAt,
		AssignedTo:      input.AssignedTo,
		Status:          "open",
	}
	if input.Priority != "" {
		call.Priority = input.Priority
	}
	if input.ScheduledAt != nil {
		call.Status = "scheduled"
	}

	if err := config.DB.Create(&call).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service call")
		return
	}

	c.JSON(http.StatusCreated, call)
}

// GetServiceCalls retrieves a page of service calls for the company
func GetServiceCalls(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}

	page, pageSize := utils.ParsePagination(c)
	search := c.Query("search")
	status := c.Query("status")

	q := config.DB.Model(&models.ServiceCall{}).Where("company_id = ?", companyUUID)

	if search != "" {
		like := "%" + search + "%"
		q = q.Where("title ILIKE ? OR description ILIKE ?", like, like)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	// Refinement filter: narrow by assignee substring
	if assignee := c.Query("assignee"); assignee != "" {
		q = q.Where("assigned_to ILIKE ?", "%"+assignee+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve service calls")
		return
	}

	var calls []models.ServiceCall
	if err := q.Order("created_at DESC").
		Offset(utils.Offset(page, pageSize)).
		Limit(pageSize).
		Find(&calls).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve service calls")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"service_calls": calls,
		"pagination":    utils.NewPagination(page, pageSize, total),
	})
}

// GetServiceCall retrieves a specific service call by ID
func GetServiceCall(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}
	callUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var call models.ServiceCall
	if err := config.DB.Where("company_id = ? AND id = ?", companyUUID, callUUID).
		First(&call).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service call not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, call)
}

// UpdateServiceCall updates an existing service call
func UpdateServiceCall(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}
	callUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input UpdateServiceCallInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var call models.ServiceCall
	if err := config.DB.Where("company_id = ? AND id = ?", companyUUID, callUUID).
		First(&call).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service call not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.CustomerID != nil {
		call.CustomerID = input.CustomerID
	}
	if input.Title != nil {
		call.Title = *input.Title
	}
	if input.Description != nil {
		call.Description = *input.Description
	}
	if input.Priority != nil {
		call.Priority = *input.Priority
	}
	if input.Status != nil {
		call.Status = *input.Status
	}
	if input.ScheduledAt != nil {
		call.ScheduledAt = input.ScheduledAt
	}
	if input.AssignedTo != nil {
		call.AssignedTo = *input.AssignedTo
	}

	if err := config.DB.Save(&call).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service call")
		return
	}

	c.JSON(http.StatusOK, call)
}

// DeleteServiceCall soft deletes a service call. Owner/admin only.
func DeleteServiceCall(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}
	if !utils.RequireRole(c, "owner", "admin") {
		return
	}
	callUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result := config.DB.Where("company_id = ? AND id = ?", companyUUID, callUUID).
		Delete(&models.ServiceCall{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service call")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service call not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service call deleted successfully"})
}
