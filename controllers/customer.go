package controllers

import (
	"errors"
	"net/http"
	"tradepro-backend/config"
	"tradepro-backend/models"
	"tradepro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateCustomerInput defines the expected JSON structure for creating a customer
type CreateCustomerInput struct {
	Name    string  `json:"name" binding:"required"`
	Phone   string  `json:"phone" binding:"required"`
	Email   *string `json:"email"` // Pointer to allow null
	Address string  `json:"address"`
	Notes   string  `json:"notes"`
}

// UpdateCustomerInput defines the expected JSON structure for updating a customer
type UpdateCustomerInput struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	Address  *string `json:"address"`
	Notes    *string `json:"notes"`
	IsActive *bool   `json:"isActive"`
}

// CreateCustomer creates a new customer for the company
func CreateCustomer(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}
	userUUID, ok := getUserID(c)
	if !ok {
		return
	}

	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Validate phone format
	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	// Check if phone already exists for this company
	var existingCustomer models.Customer
	if err := config.DB.Where("company_id = ? AND phone = ?", companyUUID, input.Phone).
		First(&existingCustomer).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Customer with this phone number already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	// Create new customer
	customer := models.Customer{
		ID:              uuid.New(),
		CompanyID:       companyUUID,
		CreatedByUserID: userUUID,
		Name:            input.Name,
		Phone:           input.Phone,
		Address:         input.Address,
		Notes:           input.Notes,
		IsActive:        true,
	}

	if input.Email != nil {
		customer.Email = *input.Email
	}

	if err := config.DB.Create(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create customer")
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// GetCustomers retrieves a page of customers for the company
func GetCustomers(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}

	page, pageSize := utils.ParsePagination(c)
	search := c.Query("search")

	q := config.DB.Model(&models.Customer{}).Where("company_id = ?", companyUUID)

	if search != "" {
		like := "%" + search + "%"
		q = q.Where("name ILIKE ? OR phone ILIKE ? OR email ILIKE ?", like, like, like)
	}
	if active := c.Query("active"); active != "" {
		q = q.Where("is_active = ?", active == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	var customers []models.Customer
	if err := q.Order("name ASC").
		Offset(utils.Offset(page, pageSize)).
		Limit(pageSize).
		Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customers":  customers,
		"pagination": utils.NewPagination(page, pageSize, total),
	})
}

// GetSimpleCustomers returns id/name pairs for selection dropdowns
func GetSimpleCustomers(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}

	var customers []models.SimpleCustomer
	if err := config.DB.Model(&models.Customer{}).
		Select("id, name").
		Where("company_id = ? AND is_active = true", companyUUID).
		Order("name ASC").
		Scan(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

// GetCustomer retrieves a specific customer by ID
func GetCustomer(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}
	customerUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var customer models.Customer
	if err := config.DB.Where("company_id = ? AND id = ?", companyUUID, customerUUID).
		First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, customer)
}

// UpdateCustomer updates an existing customer
func UpdateCustomer(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}
	customerUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Retrieve existing customer
	var customer models.Customer
	if err := config.DB.Where("company_id = ? AND id = ?", companyUUID, customerUUID).
		First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Update fields if provided
	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Phone != nil {
		// Validate phone format
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}

		// Check if phone is being changed to another existing customer
		if customer.Phone != *input.Phone {
			var existingCustomer models.Customer
			if err := config.DB.Where("company_id = ? AND phone = ?", companyUUID, *input.Phone).
				First(&existingCustomer).Error; err == nil {
				utils.RespondWithError(c, http.StatusConflict, "Another customer with this phone number already exists")
				return
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
				return
			}
		}
		customer.Phone = *input.Phone
	}
	if input.Email != nil {
		customer.Email = *input.Email
	}
	if input.Address != nil {
		customer.Address = *input.Address
	}
	if input.Notes != nil {
		customer.Notes = *input.Notes
	}
	if input.IsActive != nil {
		customer.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer")
		return
	}

	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer soft deletes a customer. Owner/admin only.
func DeleteCustomer(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}
	if !utils.RequireRole(c, "owner", "admin") {
		return
	}
	customerUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result := config.DB.Where("company_id = ? AND id = ?", companyUUID, customerUUID).
		Delete(&models.Customer{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete customer")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
