// controllers/company.go
package controllers

import (
	"net/http"
	"tradepro-backend/billing"
	"tradepro-backend/config"
	"tradepro-backend/models"
	"tradepro-backend/utils"

	"github.com/gin-gonic/gin"
)

type UpdateCompanyInput struct {
	Name           *string  `json:"name"`
	Address        *string  `json:"address"`
	Phone          *string  `json:"phone"`
	Email          *string  `json:"email"`
	DefaultTaxRate *float64 `json:"default_tax_rate"`
}

// GetCompany returns the caller's company profile
func GetCompany(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}

	var company models.Company
	if err := config.DB.First(&company, "id = ?", companyUUID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Company not found")
		return
	}

	c.JSON(http.StatusOK, company)
}

// UpdateCompany updates the company profile. Owner/admin only.
func UpdateCompany(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}
	if !utils.RequireRole(c, "owner", "admin") {
		return
	}

	var input UpdateCompanyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var company models.Company
	if err := config.DB.First(&company, "id = ?", companyUUID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Company not found")
		return
	}

	if input.Name != nil {
		company.Name = *input.Name
	}
	if input.Address != nil {
		company.Address = *input.Address
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		company.Phone = *input.Phone
	}
	if input.Email != nil {
		company.Email = *input.Email
	}
	if input.DefaultTaxRate != nil {
		// Tax rate of zero is allowed; anything else follows percentage rules
		if *input.DefaultTaxRate != 0 {
			if err := billing.ValidatePercentage(*input.DefaultTaxRate); err != nil {
				utils.RespondWithError(c, http.StatusBadRequest, "Tax rate must be between 0 and 100")
				return
			}
		}
		company.DefaultTaxRate = *input.DefaultTaxRate
	}

	if err := config.DB.Save(&company).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update company")
		return
	}

	c.JSON(http.StatusOK, company)
}

// UpdateCompanySettings replaces the free-form settings blob. Owner/admin only.
func UpdateCompanySettings(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}
	if !utils.RequireRole(c, "owner", "admin") {
		return
	}

	var input struct {
		Settings models.JSONB `json:"settings" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := config.DB.Model(&models.Company{}).Where("id = ?", companyUUID).
		Update("settings", input.Settings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Settings updated"})
}

// GetTeamMembers lists the users in the caller's company
func GetTeamMembers(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}

	var users []models.User
	if err := config.DB.Where("company_id = ?", companyUUID).
		Order("created_at ASC").Find(&users).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve team members")
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}
