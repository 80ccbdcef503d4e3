package services

import (
	"github.com/blogify-backend/dto"
	"github.com/blogify-backend/models"
	"github.com/blogify-backend/repositories"
	"github.com/blogify-backend/utils"
)

// CategoryService handles business logic for categories
type CategoryService struct {
	categoryRepo *repositories.CategoryRepository
	blogRepo     *repositories.BlogRepository
}

// NewCategoryService creates a new category service instance
func NewCategoryService() *CategoryService {
	return &CategoryService{
		categoryRepo: repositories.NewCategoryRepository(),
		blogRepo:     repositories.NewBlogRepository(),
	}
}

// CreateCategory creates a category, deriving the slug from the name when
// none is given
func (s *CategoryService) CreateCategory(req dto.CreateCategoryRequest) (models.Category, error) {
	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}

	category := models.Category{
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Status:      true,
	}
	if req.Status != nil {
		category.Status = *req.Status
	}

	if err := s.categoryRepo.Create(&category); err != nil {
		return models.Category{}, utils.TranslateDBError(err,
			"Category not found", "A category with this name or slug already exists")
	}
	return category, nil
}

// ListCategories retrieves categories with filtering and pagination
func (s *CategoryService) ListCategories(filter dto.CategoryFilter) ([]models.Category, utils.Pagination, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 10
	}

	categories, total, err := s.categoryRepo.FindWithPagination(filter)
	if err != nil {
		return nil, utils.Pagination{}, err
	}
	return categories, utils.NewPagination(filter.Page, filter.Limit, total), nil
}

// ListWithCounts retrieves enabled categories with their published blog
// counts; the public navigation payload
func (s *CategoryService) ListWithCounts() ([]dto.CategoryWithCount, error) {
	return s.categoryRepo.FindEnabledWithCount()
}

// GetCategory retrieves a category by ID
func (s *CategoryService) GetCategory(id string) (models.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		return models.Category{}, utils.TranslateDBError(err, "Category not found", "")
	}
	return category, nil
}

// GetCategoryBySlug retrieves a category by slug
func (s *CategoryService) GetCategoryBySlug(slug string) (models.Category, error) {
	category, err := s.categoryRepo.FindBySlug(slug)
	if err != nil {
		return models.Category{}, utils.TranslateDBError(err, "Category not found", "")
	}
	return category, nil
}

// UpdateCategory applies a partial update; a renamed category keeps its slug
// unless one is sent explicitly
func (s *CategoryService) UpdateCategory(id string, req dto.UpdateCategoryRequest) (models.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		return models.Category{}, utils.TranslateDBError(err, "Category not found", "")
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Slug != nil && *req.Slug != "" {
		category.Slug = *req.Slug
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.ImageURL != nil {
		category.ImageURL = *req.ImageURL
	}
	if req.Status != nil {
		category.Status = *req.Status
	}

	if err := s.categoryRepo.Save(&category); err != nil {
		return models.Category{}, utils.TranslateDBError(err,
			"Category not found", "A category with this name or slug already exists")
	}
	return category, nil
}

// DeleteCategory removes a category. Categories still referenced by a
// non-deleted blog cannot be removed.
func (s *CategoryService) DeleteCategory(id string) error {
	if _, err := s.categoryRepo.FindByID(id); err != nil {
		return utils.TranslateDBError(err, "Category not found", "")
	}

	count, err := s.blogRepo.CountByCategoryID(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return utils.NewConflictError("Cannot delete category with associated blogs")
	}

	return s.categoryRepo.Delete(id)
}
