package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blogify-backend/services"
	"github.com/blogify-backend/utils"
)

var sitemapService = services.NewSitemapService()

// GetSitemap serves the current sitemap document
func GetSitemap(c *gin.Context) {
	doc, err := sitemapService.Latest()
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", doc)
}

// RegenerateSitemap rebuilds and re-uploads the sitemap on demand
func RegenerateSitemap(c *gin.Context) {
	if err := sitemapService.Regenerate(); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "Sitemap regenerated", nil)
}
