// controllers/material.go
package controllers

import (
	"errors"
	"net/http"
	"tradepro-backend/billing"
	"tradepro-backend/config"
	"tradepro-backend/models"
	"tradepro-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateMaterialInput defines the expected JSON structure for creating a material
type CreateMaterialInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Unit        string  `json:"unit"`
	UnitCost    float64 `json:"unit_cost" binding:"min=0"`
	Supplier    string  `json:"supplier"`
	Category    string  `json:"category"`
}

// UpdateMaterialInput defines the expected JSON structure for updating a material
type UpdateMaterialInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Unit        *string  `json:"unit"`
	UnitCost    *float64 `json:"unit_cost"`
	Supplier    *string  `json:"supplier"`
	Category    *string  `json:"category"`
	IsActive    *bool    `json:"is_active"`
}

// CreateMaterial creates a new catalog material for the company
func CreateMaterial(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}

	var input CreateMaterialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	material := models.Material{
		CompanyID:   companyUUID,
		Name:        input.Name,
		Description: input.Description,
		Unit:        input.Unit,
		UnitCost:    input.UnitCost,
		Supplier:    input.Supplier,
		Category:    input.Category,
		IsActive:    true,
	}

	if err := config.DB.Create(&material).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create material")
		return
	}

	c.JSON(http.StatusCreated, material)
}

// GetMaterials retrieves a page of materials with catalog filters
func GetMaterials(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}

	page, pageSize := utils.ParsePagination(c)
	search := c.Query("search")
	category := c.Query("category")

	q := config.DB.Model(&models.Material{}).Where("company_id = ?", companyUUID)

	if search != "" {
		like := "%" + search + "%"
		q = q.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}
	// Refinement filters: cost range and supplier substring
	if costMin := c.Query("cost_min"); costMin != "" {
		q = q.Where("unit_cost >= ?", billing.ParseAmount(costMin))
	}
	if costMax := c.Query("cost_max"); costMax != "" {
		q = q.Where("unit_cost <= ?", billing.ParseAmount(costMax))
	}
	if supplier := c.Query("supplier"); supplier != "" {
		q = q.Where("supplier ILIKE ?", "%"+supplier+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve materials")
		return
	}

	var materials []models.Material
	if err := q.Order("name ASC").
		Offset(utils.Offset(page, pageSize)).
		Limit(pageSize).
		Find(&materials).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve materials")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"materials":  materials,
		"pagination": utils.NewPagination(page, pageSize, total),
	})
}

// GetMaterial retrieves a specific material by ID
func GetMaterial(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}
	materialUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var material models.Material
	if err := config.DB.Where("company_id = ? AND id = ?", companyUUID, materialUUID).
		First(&material).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Material not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, material)
}

// UpdateMaterial updates an existing material
func UpdateMaterial(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}
	materialUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input UpdateMaterialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var material models.Material
	if err := config.DB.Where("company_id = ? AND id = ?", companyUUID, materialUUID).
		First(&material).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Material not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		material.Name = *input.Name
	}
	if input.Description != nil {
		material.Description = *input.Description
	}
	if input.Unit != nil {
		material.Unit = *input.Unit
	}
	if input.UnitCost != nil {
		material.UnitCost = *input.UnitCost
	}
	if input.Supplier != nil {
		material.Supplier = *input.Supplier
	}
	if input.Category != nil {
		material.Category = *input.Category
	}
	if input.IsActive != nil {
		material.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&material).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update material")
		return
	}

	c.JSON(http.StatusOK, material)
}

// DeleteMaterial soft deletes a material. Owner/admin only.
func DeleteMaterial(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}
	if !utils.RequireRole(c, "owner", "admin") {
		return
	}
	materialUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result := config.DB.Where("company_id = ? AND id = ?", companyUUID, materialUUID).
		Delete(&models.Material{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete material")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Material not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Material deleted successfully"})
}
