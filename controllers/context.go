package controllers

import (
	"net/http"
	"tradepro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// getCompanyID resolves the tenant from the JWT claims placed in the gin
// context by the auth middleware. Writes the error response itself.
func getCompanyID(c *gin.Context) (uuid.UUID, bool) {
	companyID, exists := c.Get("companyId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Company ID not found in context")
		return uuid.Nil, false
	}
	companyUUID, err := uuid.Parse(companyID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid company ID format")
		return uuid.Nil, false
	}
	return companyUUID, true
}

func getUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return uuid.Nil, false
	}
	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return uuid.Nil, false
	}
	return userUUID, true
}

// parseIDParam parses the :id path parameter.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid ID format")
		return uuid.Nil, false
	}
	return id, true
}
