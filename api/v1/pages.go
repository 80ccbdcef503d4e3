package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blogify-backend/services"
	"github.com/blogify-backend/utils"
)

var pageService = services.NewPageService()

// GetHomePage serves the cached aggregated home payload
func GetHomePage(c *gin.Context) {
	page, err := pageService.GetHome(false)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "", page)
}

// GetHomePageFresh rebuilds the home payload, bypassing the cache
func GetHomePageFresh(c *gin.Context) {
	page, err := pageService.GetHome(true)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "", page)
}
