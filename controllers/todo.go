// controllers/todo.go
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

type CreateTodoInput struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	ProjectID   *uuid.UUID `json:"project_id"`
	AssignedTo  string     `json:"assigned_to"`
	Priority    string     `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"due_date"`
}

type UpdateTodoInput struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	ProjectID   *uuid.UUID `json:"project_id"`
	AssignedTo  *string    `json:"assigned_to"`
	Priority    *string    `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"due_date"`
	Completed   *bool      `json:"completed"`
}

// CreateTodo creates a new todo for the company
func CreateTodo(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}
	userUUID, ok := getUserID(c)
	if !ok {
		return
	}

	var input CreateTodoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	todo := models.Todo{
		ID:              uuid.New(),
		CompanyID:       companyUUID,
		CreatedByUserID: userUUID,
		Title:           input.Title,
		Description:     input.Description,
		ProjectID:       input.ProjectID,
		AssignedTo:      input.AssignedTo,
		DueDate:         input.DueDate,
	}
	if input.Priority != "" {
		todo.Priority = input.Priority
	}

	if err := config.DB.Create(&todo).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create todo")
		return
	}

	c.JSON(http.StatusCreated, todo)
}

// GetTodos retrieves a page of todos for the company
func GetTodos(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}

	page, pageSize := utils.ParsePagination(c)
	search := c.Query("search")

	q := config.DB.Model(&models.Todo{}).Where("company_id = ?", companyUUID)

	if search != "" {
		like := "%" + search + "%"
		q = q.Where("title ILIKE ? OR description ILIKE ?", like, like)
	}
	if completed := c.Query("completed"); completed != "" {
		q = q.Where("completed = ?", completed == "true")
	}
	if projectID := c.Query("project_id"); projectID != "" {
		q = q.Where("project_id = ?", projectID)
	}
	// Refinement filter: narrow by assignee substring
	if assignee := c.Query("assignee"); assignee != "" {
		q = q.Where("assigned_to ILIKE ?", "%"+assignee+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve todos")
		return
	}

	var todos []models.Todo
	if err := q.Order("created_at DESC").
		Offset(utils.Offset(page, pageSize)).
		Limit(pageSize).
		Find(&todos).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve todos")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"todos":      todos,
		"pagination": utils.NewPagination(page, pageSize, total),
	})
}

// ToggleTodo flips the completed flag and returns the updated record for
// the caller's replace-by-id merge.
func ToggleTodo(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}
	todoUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var todo models.Todo
	if err := config.DB.Where("company_id = ? AND id = ?", companyUUID, todoUUID).
		First(&todo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Todo not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	todo.Completed = !todo.Completed
	if todo.Completed {
		now := time.Now()
		todo.CompletedAt = &now
	} else {
		todo.CompletedAt = nil
	}

	if err := config.DB.Save(&todo).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update todo")
		return
	}

	c.JSON(http.StatusOK, todo)
}

// UpdateTodo updates an existing todo
func UpdateTodo(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}
	todoUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input UpdateTodoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var todo models.Todo
	if err := config.DB.Where("company_id = ? AND id = ?", companyUUID, todoUUID).
		First(&todo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Todo not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Title != nil {
		todo.Title = *input.Title
	}
	if input.Description != nil {
		todo.Description = *input.Description
	}
	if input.ProjectID != nil {
		todo.ProjectID = input.ProjectID
	}
	if input.AssignedTo != nil {
		todo.AssignedTo = *input.AssignedTo
	}
	if input.Priority != nil {
		todo.Priority = *input.Priority
	}
	if input.DueDate != nil {
		todo.DueDate = input.DueDate
	}
	if input.Completed != nil {
		todo.Completed = *input.Completed
		if todo.Completed {
			now := time.Now()
			todo.CompletedAt = &now
		} else {
			todo.CompletedAt = nil
		}
	}

	if err := config.DB.Save(&todo).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update todo")
		return
	}

	c.JSON(http.StatusOK, todo)
}

// DeleteTodo soft deletes a todo
func DeleteTodo(c *gin.Context) {
	companyUUID, ok := getCompanyID(c)
	if !ok {
		return
	}
	todoUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result := config.DB.Where("company_id = ? AND id = ?", companyUUID, todoUUID).
		Delete(&models.Todo{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete todo")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Todo not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Todo deleted successfully"})
}
