package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/blogify-backend/services"
)

// tokenFromRequest extracts the bearer token, falling back to the
// access_token cookie set at login.
func tokenFromRequest(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie("access_token"); err == nil {
		return cookie
	}
	return ""
}

// AuthMiddleware validates the token and loads the account into the
// context under "userId", "role" and "user".
func AuthMiddleware() gin.HandlerFunc {
	authService := services.NewAuthService()

	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Authentication required",
			})
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		user, err := authService.GetUser(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Account no longer exists",
			})
			c.Abort()
			return
		}

		c.Set("userId", user.ID)
		c.Set("role", string(user.Role))
		c.Set("user", *user)
		c.Set("token", token)
		c.Next()
	}
}

// OptionalAuthMiddleware loads the account when a valid token is present
// but lets anonymous requests through. Public blog reads use it so owners
// and admins see their unpublished blogs on the same routes.
func OptionalAuthMiddleware() gin.HandlerFunc {
	authService := services.NewAuthService()

	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := authService.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		if user, err := authService.GetUser(claims.UserID); err == nil {
			c.Set("userId", user.ID)
			c.Set("role", string(user.Role))
			c.Set("user", *user)
			c.Set("token", token)
		}
		c.Next()
	}
}
