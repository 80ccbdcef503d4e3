package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/blogify-backend/dto"
	"github.com/blogify-backend/services"
	"github.com/blogify-backend/utils"
)

var blogService = services.NewBlogService()

func blogFilterFromQuery(c *gin.Context) dto.BlogFilter {
	filter := dto.BlogFilter{
		Status:     c.Query("status"),
		CategoryID: c.Query("categoryId"),
		UserID:     c.Query("userId"),
		Search:     c.Query("search"),
		SortBy:     c.Query("sortBy"),
		SortOrder:  c.Query("sortOrder"),
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))

	filter.Featured = boolQuery(c, "isFeatured")
	filter.Hot = boolQuery(c, "isHot")
	filter.Popular = boolQuery(c, "isPopular")

	if actor := currentUser(c); actor != nil {
		filter.ActorID = actor.ID
		filter.ActorIsAdmin = actor.IsAdmin()
	}
	return filter
}

func boolQuery(c *gin.Context, name string) *bool {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &value
}

// ListBlogs retrieves blogs visible to the caller
func ListBlogs(c *gin.Context) {
	filter := blogFilterFromQuery(c)

	blogs, pagination, err := blogService.ListBlogs(filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondList(c, blogs, pagination, nil)
}

// ListPublishedBlogs retrieves the public published feed
func ListPublishedBlogs(c *gin.Context) {
	filter := blogFilterFromQuery(c)
	filter.Status = "published"

	blogs, pagination, err := blogService.ListBlogs(filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondList(c, blogs, pagination, nil)
}

// GetBlogBySlug retrieves one blog for the reading page, with related blogs
func GetBlogBySlug(c *gin.Context) {
	blog, related, err := blogService.GetBlogBySlug(c.Param("slug"), currentUser(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "", gin.H{
		"blog":    blog,
		"related": related,
	})
}

// GetBlog retrieves one blog by ID
func GetBlog(c *gin.Context) {
	blog, err := blogService.GetBlogByID(c.Param("id"), currentUser(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "", blog)
}

// GetTrendingBlogs retrieves the most viewed recent publications
func GetTrendingBlogs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	blogs, err := blogService.GetTrending(limit)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "", blogs)
}

// CreateBlog creates a blog owned by the caller
func CreateBlog(c *gin.Context) {
	actor := currentUser(c)
	if actor == nil {
		utils.RespondError(c, utils.NewAuthenticationError("Authentication required"))
		return
	}

	var req dto.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request body: "+err.Error()))
		return
	}

	blog, err := blogService.CreateBlog(req, *actor)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, "Blog created successfully", blog)
}

// UpdateBlog applies a content edit by the owner or an admin
func UpdateBlog(c *gin.Context) {
	actor := currentUser(c)
	if actor == nil {
		utils.RespondError(c, utils.NewAuthenticationError("Authentication required"))
		return
	}

	var req dto.UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request body: "+err.Error()))
		return
	}

	blog, err := blogService.UpdateBlog(c.Param("id"), req, *actor)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "Blog updated successfully", blog)
}

// DeleteBlog removes a blog
func DeleteBlog(c *gin.Context) {
	actor := currentUser(c)
	if actor == nil {
		utils.RespondError(c, utils.NewAuthenticationError("Authentication required"))
		return
	}

	if err := blogService.DeleteBlog(c.Param("id"), *actor); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "Blog deleted successfully", nil)
}

// LikeBlog toggles the caller's like
func LikeBlog(c *gin.Context) {
	actor := currentUser(c)
	if actor == nil {
		utils.RespondError(c, utils.NewAuthenticationError("Authentication required"))
		return
	}

	result, err := blogService.ToggleLike(c.Param("id"), *actor)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "", result)
}

// BookmarkBlog toggles the caller's bookmark
func BookmarkBlog(c *gin.Context) {
	actor := currentUser(c)
	if actor == nil {
		utils.RespondError(c, utils.NewAuthenticationError("Authentication required"))
		return
	}

	result, err := blogService.ToggleBookmark(c.Param("id"), *actor)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "", result)
}

// SubmitBlogForReview resubmits the caller's rejected blog
func SubmitBlogForReview(c *gin.Context) {
	actor := currentUser(c)
	if actor == nil {
		utils.RespondError(c, utils.NewAuthenticationError("Authentication required"))
		return
	}

	blog, err := blogService.SubmitForReview(c.Param("id"), *actor)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "Blog submitted for review", blog)
}

// GetMyBlogs retrieves the caller's own blogs in every state
func GetMyBlogs(c *gin.Context) {
	actor := currentUser(c)
	if actor == nil {
		utils.RespondError(c, utils.NewAuthenticationError("Authentication required"))
		return
	}

	filter := blogFilterFromQuery(c)
	filter.UserID = actor.ID
	filter.ActorID = actor.ID

	blogs, pagination, err := blogService.ListBlogs(filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondList(c, blogs, pagination, nil)
}

// GetMyBookmarks retrieves the published blogs the caller bookmarked
func GetMyBookmarks(c *gin.Context) {
	actor := currentUser(c)
	if actor == nil {
		utils.RespondError(c, utils.NewAuthenticationError("Authentication required"))
		return
	}

	blogs, err := blogService.GetMyBookmarks(*actor)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "", blogs)
}

// GetMyBlogStats buckets the caller's blogs by moderation state
func GetMyBlogStats(c *gin.Context) {
	actor := currentUser(c)
	if actor == nil {
		utils.RespondError(c, utils.NewAuthenticationError("Authentication required"))
		return
	}

	stats, err := blogService.GetMyStats(*actor)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "", stats)
}

// AdminUpdateBlog applies an admin edit, optionally with a status change
func AdminUpdateBlog(c *gin.Context) {
	actor := currentUser(c)
	if actor == nil {
		utils.RespondError(c, utils.NewAuthenticationError("Authentication required"))
		return
	}

	var req dto.AdminUpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request body: "+err.Error()))
		return
	}

	blog, err := blogService.AdminUpdateBlog(c.Param("id"), req, *actor)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "Blog updated successfully", blog)
}

// ApproveBlog publishes a blog
func ApproveBlog(c *gin.Context) {
	actor := currentUser(c)
	if actor == nil {
		utils.RespondError(c, utils.NewAuthenticationError("Authentication required"))
		return
	}

	var req dto.ApproveBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		utils.RespondError(c, utils.NewValidationError("Invalid request body: "+err.Error()))
		return
	}

	blog, err := blogService.ApproveBlog(c.Param("id"), req, *actor)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "Blog approved successfully", blog)
}

// RejectBlog rejects a blog with a reason shown to its owner
func RejectBlog(c *gin.Context) {
	actor := currentUser(c)
	if actor == nil {
		utils.RespondError(c, utils.NewAuthenticationError("Authentication required"))
		return
	}

	var req dto.RejectBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Rejection reason is required"))
		return
	}

	blog, err := blogService.RejectBlog(c.Param("id"), req, *actor)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "Blog rejected", blog)
}

// ListPendingBlogs retrieves the moderation queue, oldest first
func ListPendingBlogs(c *gin.Context) {
	filter := blogFilterFromQuery(c)
	filter.Status = "pending"
	filter.SortBy = "created_at"
	filter.SortOrder = "asc"

	blogs, pagination, err := blogService.ListBlogs(filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondList(c, blogs, pagination, nil)
}

// GetBlogStatusCounts buckets all blogs by moderation state
func GetBlogStatusCounts(c *gin.Context) {
	stats, err := blogService.GetStatusCounts()
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "", stats)
}
