// controllers/project.go
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

type CreateProjectInput struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	CustomerID  *uuid.UUID `json:"customer_id"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

type UpdateProjectInput struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	CustomerID  *uuid.UUID `json:"customer_id"`
	Status      *string    `json:"status" binding:"omitempty,oneof=active on_hold completed cancelled"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

// CreateProject creates a new project for the company
func CreateProject(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}
	userUUID, ok := getUserID(c)
	if !ok {
		return
	}

	var input CreateProjectInput
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

	project := models.Project{
		ID:              uuid.New(),
		CompanyID:       companyUUID,
		CreatedByUserID: userUUID,
		Name:            input.Name,
		Description:     input.Description,
		CustomerID:      input.CustomerID,
		Status:          "active",
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
	}

	if err := config.DB.Create(&project).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create project")
		return
	}

	c.JSON(http.StatusCreated, project)
}

// GetProjects retrieves a page of projects for the company
func GetProjects(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}

	page, pageSize := utils.ParsePagination(c)
	search := c.Query("search")
	status := c.Query("status")

	q := config.DB.Model(&models.Project{}).Where("company_id = ?", companyUUID)

	if search != "" {
		like := "%" + search + "%"
		q = q.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve projects")
		return
	}

	var projects []models.Project
	if err := q.Order("created_at DESC").
		Offset(utils.Offset(page, pageSize)).
		Limit(pageSize).
		Find(&projects).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve projects")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"projects":   projects,
		"pagination": utils.NewPagination(page, pageSize, total),
	})
}

// GetProject retrieves a specific project by ID
func GetProject(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}
	projectUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var project models.Project
	if err := config.DB.Where("company_id = ? AND id = ?", companyUUID, projectUUID).
		First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Project not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, project)
}

// UpdateProject updates an existing project
func UpdateProject(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}
	projectUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input UpdateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var project models.Project
	if err := config.DB.Where("company_id = ? AND id = ?", companyUUID, projectUUID).
		First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Project not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		project.Name = *input.Name
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.CustomerID != nil {
		project.CustomerID = input.CustomerID
	}
	if input.Status != nil {
		project.Status = *input.Status
	}
	if input.StartDate != nil {
		project.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		project.EndDate = input.EndDate
	}

	if err := config.DB.Save(&project).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update project")
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject soft deletes a project. Owner/admin only.
func DeleteProject(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}
	if !utils.RequireRole(c, "owner", "admin") {
		return
	}
	projectUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result := config.DB.Where("company_id = ? AND id = ?", companyUUID, projectUUID).
		Delete(&models.Project{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete project")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Project not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
