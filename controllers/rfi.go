// controllers/rfi.go
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

type CreateRFIInput struct {
	ProjectID *uuid.UUID `json:"project_id"`
	Subject   string     `json:"subject" binding:"required"`
	Question  string     `json:"question"`
	DueDate   *time.Time `json:"due_date"`
}

type UpdateRFIInput struct {
	Subject  *string    `json:"subject"`
	Question *string    `json:"question"`
	Answer   *string    `json:"answer"`
	Status   *string    `json:"status" binding:"omitempty,oneof=open answered closed"`
	DueDate  *time.Time `json:"due_date"`
}

// CreateRFI creates a new request for information
func CreateRFI(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}
	userUUID, ok := getUserID(c)
	if !ok {
		return
	}

	var input CreateRFIInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.ProjectID != nil {
		var project models.Project
		if err := config.DB.Where("company_id = ? AND id = ?", companyUUID, *input.ProjectID).
			First(&project).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Project not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
	}

	rfi := models.RFI{
		ID:              uuid.New(),
		CompanyID:       companyUUID,
		CreatedByUserID: userUUID,
		ProjectID:       input.ProjectID,
		Subject:         input.Subject,
		Question:        input.Question,
		DueDate:         input.DueDate,
		Status:          "open",
	}

	if err := config.DB.Create(&rfi).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create RFI")
		return
	}

	c.JSON(http.StatusCreated, rfi)
}

// GetRFIs retrieves a page of RFIs for the company
func GetRFIs(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}

	page, pageSize := utils.ParsePagination(c)
	search := c.Query("search")
	status := c.Query("status")

	q := config.DB.Model(&models.RFI{}).Where("company_id = ?", companyUUID)

	if search != "" {
		like := "%" + search + "%"
		q = q.Where("subject ILIKE ? OR question ILIKE ?", like, like)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if projectID := c.Query("project_id"); projectID != "" {
		q = q.Where("project_id = ?", projectID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve RFIs")
		return
	}

	var rfis []models.RFI
	if err := q.Order("created_at DESC").
		Offset(utils.Offset(page, pageSize)).
		Limit(pageSize).
		Find(&rfis).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve RFIs")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rfis":       rfis,
		"pagination": utils.NewPagination(page, pageSize, total),
	})
}

// GetRFI retrieves a specific RFI by ID
func GetRFI(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}
	rfiUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var rfi models.RFI
	if err := config.DB.Where("company_id = ? AND id = ?", companyUUID, rfiUUID).
		First(&rfi).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "RFI not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, rfi)
}

// UpdateRFI updates an existing RFI. Supplying an answer marks it answered
// unless the caller sets the status explicitly.
func UpdateRFI(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}
	rfiUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input UpdateRFIInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var rfi models.RFI
	if err := config.DB.Where("company_id = ? AND id = ?", companyUUID, rfiUUID).
		First(&rfi).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "RFI not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Subject != nil {
		rfi.Subject = *input.Subject
	}
	if input.Question != nil {
		rfi.Question = *input.Question
	}
	if input.Answer != nil {
		rfi.Answer = *input.Answer
		if *input.Answer != "" && rfi.Status == "open" && input.Status == nil {
			rfi.Status = "answered"
		}
	}
	if input.Status != nil {
		rfi.Status = *input.Status
	}
	if input.DueDate != nil {
		rfi.DueDate = input.DueDate
	}

	if err := config.DB.Save(&rfi).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update RFI")
		return
	}

	c.JSON(http.StatusOK, rfi)
}

// DeleteRFI soft deletes an RFI. Owner/admin only.
func DeleteRFI(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}
	if !utils.RequireRole(c, "owner", "admin") {
		return
	}
	rfiUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result := config.DB.Where("company_id = ? AND id = ?", companyUUID, rfiUUID).
		Delete(&models.RFI{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete RFI")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "RFI not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "RFI deleted successfully"})
}
