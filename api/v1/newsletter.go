package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/blogify-backend/dto"
	"github.com/blogify-backend/services"
	"github.com/blogify-backend/utils"
)

var newsletterService = services.NewNewsletterService()

// Subscribe signs an address up for the newsletter
func Subscribe(c *gin.Context) {
	var req dto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("A valid email address is required"))
		return
	}

	source := c.DefaultQuery("source", "website")
	result, err := newsletterService.Subscribe(req, source, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, "Subscribed successfully", result)
}

// Unsubscribe flags an address as unsubscribed
func Unsubscribe(c *gin.Context) {
	var req dto.UnsubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("A valid email address is required"))
		return
	}

	if err := newsletterService.Unsubscribe(req); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "Unsubscribed successfully", nil)
}

// GetSubscriberCount returns the public subscriber counters
func GetSubscriberCount(c *gin.Context) {
	count, err := newsletterService.GetCount()
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "", count)
}

// ListSubscribers retrieves subscribers for the admin screen
func ListSubscribers(c *gin.Context) {
	filter := dto.SubscriberFilter{
		Search: c.Query("search"),
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	filter.Active = boolQuery(c, "active")

	subscribers, pagination, err := newsletterService.ListSubscribers(filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondList(c, subscribers, pagination, nil)
}
