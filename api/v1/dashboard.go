package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blogify-backend/services"
	"github.com/blogify-backend/utils"
)

var dashboardService = services.NewDashboardService()

// GetDashboardStats assembles the admin dashboard payload
func GetDashboardStats(c *gin.Context) {
	stats, err := dashboardService.GetStats()
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "", stats)
}

// GetDashboardOverview returns headline counters with the newest activity
func GetDashboardOverview(c *gin.Context) {
	overview, err := dashboardService.GetOverview()
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "", overview)
}

// GetAnalytics assembles the daily analytics series for a period
func GetAnalytics(c *gin.Context) {
	period := c.DefaultQuery("period", "30d")

	analytics, err := dashboardService.GetAnalytics(period)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "", analytics)
}
