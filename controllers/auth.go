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

type RegisterInput struct {
	Email          string  `json:"email" binding:"required,email"`
	Phone          string  `json:"phone" binding:"required"`
	Name           string  `json:"name" binding:"required"`
	Password       string  `json:"password" binding:"required,min=8"`
	CompanyName    string  `json:"companyName" binding:"required"`
	CompanyAddress string  `json:"companyAddress"`
	DefaultTaxRate float64 `json:"defaultTaxRate" binding:"min=0,max=100"`
}

type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"` // Can be email or phone
	Password   string `json:"password" binding:"required"`
}

func Register(c *gin.Context) {
	var input RegisterInput

	// Bind and validate input
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	// Check if email or phone already exists
	var existingUser models.User
	result := config.DB.Where("email = ? OR phone = ?", input.Email, input.Phone).First(&existingUser)

	if result.Error == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email or phone already registered")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	company := models.Company{
		ID:             uuid.New(),
		Name:           input.CompanyName,
		Address:        input.CompanyAddress,
		Email:          input.Email,
		Phone:          input.Phone,
		DefaultTaxRate: input.DefaultTaxRate,
		Settings:       models.JSONB{},
	}

	newUser := models.User{
		Email:     input.Email,
		Phone:     input.Phone,
		Name:      input.Name,
		Password:  input.Password, // Will be hashed in BeforeCreate hook
		Role:      "owner",
		CompanyID: company.ID,
	}

	tx := config.DB.Begin()
	if err := tx.Create(&company).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create company")
		return
	}
	if err := tx.Create(&newUser).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}
	tx.Commit()

	// Generate token
	token, err := utils.GenerateToken(newUser.ID.String(), company.ID.String(), newUser.Role)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"token":   token,
		"user": gin.H{
			"id":          newUser.ID,
			"email":       newUser.Email,
			"phone":       newUser.Phone,
			"role":        newUser.Role,
			"companyName": company.Name,
		},
	})
}

func Login(c *gin.Context) {
	var input LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ? OR phone = ?", input.Identifier, input.Identifier).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !user.IsActive {
		utils.RespondWithError(c, http.StatusUnauthorized, "Account is deactivated")
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID.String(), user.CompanyID.String(), user.Role)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	now := time.Now()
	config.DB.Model(&user).Update("last_login", &now)

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}

func Me(c *gin.Context) {
	userUUID, ok := getUserID(c)
	if !ok {
		return
	}

	var user models.User
	if err := config.DB.Preload("Company").First(&user, "id = ?", userUUID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      user.ID,
		"email":   user.Email,
		"name":    user.Name,
		"phone":   user.Phone,
		"role":    user.Role,
		"company": user.Company,
	})
}
