package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/blogify-backend/dto"
	"github.com/blogify-backend/services"
	"github.com/blogify-backend/utils"
)

var userService = services.NewUserService()

// ListUsers retrieves accounts with filtering, sorting and pagination
func ListUsers(c *gin.Context) {
	filter := dto.UserFilter{
		Search:    c.Query("search"),
		Role:      c.Query("role"),
		Status:    c.Query("status"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))

	users, pagination, err := userService.ListUsers(filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondList(c, users, pagination, nil)
}

// CreateUser creates an account with an admin-chosen role and status
func CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request body: "+err.Error()))
		return
	}

	user, err := userService.CreateUser(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, "User created successfully", user)
}

// GetUser retrieves one account
func GetUser(c *gin.Context) {
	user, err := userService.GetUser(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "", user)
}

// UpdateUser applies a partial account update
func UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request body: "+err.Error()))
		return
	}

	user, err := userService.UpdateUser(c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "User updated successfully", user)
}

// DeleteUser removes an account permanently
func DeleteUser(c *gin.Context) {
	if err := userService.DeleteUser(c.Param("id"), c.GetString("userId")); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "User deleted successfully", nil)
}

// ToggleUserVerification flips an account's verified flag
func ToggleUserVerification(c *gin.Context) {
	user, err := userService.ToggleVerification(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "Verification updated", user)
}

// ToggleUserApproval flips an account's approved flag
func ToggleUserApproval(c *gin.Context) {
	user, err := userService.ToggleApproval(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "Approval updated", user)
}

// GetUserStats summarizes the account population
func GetUserStats(c *gin.Context) {
	stats, err := userService.GetStats()
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "", stats)
}
