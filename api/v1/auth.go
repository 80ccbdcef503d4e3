package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/blogify-backend/dto"
	"github.com/blogify-backend/models"
	"github.com/blogify-backend/services"
	"github.com/blogify-backend/utils"
)

var authService = services.NewAuthService()

// currentUser returns the account loaded by the auth middleware, nil for
// anonymous requests.
func currentUser(c *gin.Context) *models.User {
	value, exists := c.Get("user")
	if !exists {
		return nil
	}
	user, ok := value.(models.User)
	if !ok {
		return nil
	}
	return &user
}

// Register handles user registration
func Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request body: "+err.Error()))
		return
	}

	user, err := authService.Register(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, "User registered successfully", user)
}

// Login handles user authentication
func Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request body: "+err.Error()))
		return
	}

	authResponse, err := authService.Login(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	// Cookie for browser clients; the body token serves Bearer clients.
	c.SetCookie("access_token", authResponse.Token,
		int(time.Until(authResponse.ExpiresAt).Seconds()),
		"/", "", true, true)

	utils.RespondSuccess(c, http.StatusOK, "Login successful", authResponse)
}

// Logout revokes the presented token and clears the cookie
func Logout(c *gin.Context) {
	token, _ := c.Get("token")
	if tokenStr, ok := token.(string); ok && tokenStr != "" {
		if claims, err := authService.ValidateToken(tokenStr); err == nil {
			if err := authService.Logout(tokenStr, claims); err != nil {
				utils.RespondError(c, err)
				return
			}
		}
	}

	c.SetCookie("access_token", "", -1, "/", "", true, true)
	utils.RespondSuccess(c, http.StatusOK, "Logged out successfully", nil)
}

// GetCurrentUser returns the authenticated account's profile
func GetCurrentUser(c *gin.Context) {
	userID := c.GetString("userId")
	if userID == "" {
		utils.RespondError(c, utils.NewAuthenticationError("Authentication required"))
		return
	}

	user, err := authService.GetUser(userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "", user)
}
