package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/blogify-backend/dto"
	"github.com/blogify-backend/services"
	"github.com/blogify-backend/utils"
)

var categoryService = services.NewCategoryService()

// ListCategories retrieves categories with filtering and pagination
func ListCategories(c *gin.Context) {
	filter := dto.CategoryFilter{
		Search: c.Query("search"),
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	filter.Status = boolQuery(c, "status")

	categories, pagination, err := categoryService.ListCategories(filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondList(c, categories, pagination, nil)
}

// ListCategoriesWithCounts retrieves enabled categories with their
// published blog counts; the public navigation payload
func ListCategoriesWithCounts(c *gin.Context) {
	categories, err := categoryService.ListWithCounts()
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "", categories)
}

// GetCategoryBySlug retrieves one category by slug
func GetCategoryBySlug(c *gin.Context) {
	category, err := categoryService.GetCategoryBySlug(c.Param("slug"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "", category)
}

// GetCategory retrieves one category by ID
func GetCategory(c *gin.Context) {
	category, err := categoryService.GetCategory(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "", category)
}

// CreateCategory creates a category
func CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request body: "+err.Error()))
		return
	}

	category, err := categoryService.CreateCategory(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, "Category created successfully", category)
}

// UpdateCategory applies a partial category update
func UpdateCategory(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("Invalid request body: "+err.Error()))
		return
	}

	category, err := categoryService.UpdateCategory(c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "Category updated successfully", category)
}

// DeleteCategory removes a category with no associated blogs
func DeleteCategory(c *gin.Context) {
	if err := categoryService.DeleteCategory(c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "Category deleted successfully", nil)
}
