package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blogify-backend/dto"
	"github.com/blogify-backend/services"
	"github.com/blogify-backend/utils"
)

var contactService = services.NewContactService()

// SendContactMessage forwards a contact-form submission to the admin inbox
func SendContactMessage(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request body: "+err.Error()))
		return
	}

	if err := contactService.Send(req); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "Message sent successfully", nil)
}

// GetContactInfo returns the static contact directory
func GetContactInfo(c *gin.Context) {
	utils.RespondSuccess(c, http.StatusOK, "", contactService.Info())
}
