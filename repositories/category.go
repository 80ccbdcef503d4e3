package repositories

import (
	"github.com/blogify-backend/database"
	"github.com/blogify-backend/dto"
	"github.com/blogify-backend/models"
)

// CategoryRepository handles database operations for categories
type CategoryRepository struct{}

// NewCategoryRepository creates a new category repository instance
func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

// FindByID retrieves a category by its ID
func (r *CategoryRepository) FindByID(id string) (models.Category, error) {
	var category models.Category
	result := database.DB.First(&category, "id = ?", id)
	return category, result.Error
}

// FindBySlug retrieves a category by its slug
func (r *CategoryRepository) FindBySlug(slug string) (models.Category, error) {
	var category models.Category
	result := database.DB.First(&category, "slug = ?", slug)
	return category, result.Error
}

// Create inserts a new category into the database
func (r *CategoryRepository) Create(category *models.Category) error {
	return database.DB.Create(category).Error
}

// Save persists all fields of an existing category
func (r *CategoryRepository) Save(category *models.Category) error {
	return database.DB.Save(category).Error
}

// Delete removes a category permanently
func (r *CategoryRepository) Delete(id string) error {
	return database.DB.Delete(&models.Category{}, "id = ?", id).Error
}

// CountEnabled counts enabled categories
func (r *CategoryRepository) CountEnabled() (int64, error) {
	var count int64
	result := database.DB.Model(&models.Category{}).Where("status = ?", true).Count(&count)
	return count, result.Error
}

// FindWithPagination retrieves categories with filtering and pagination
func (r *CategoryRepository) FindWithPagination(filter dto.CategoryFilter) ([]models.Category, int64, error) {
	var categories []models.Category
	var total int64

	db := database.DB.Model(&models.Category{})

	if filter.Status != nil {
		db = db.Where("status = ?", *filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		db = db.Where("(name ILIKE ? OR description ILIKE ?)", pattern, pattern)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := db.Order("created_at DESC").Limit(filter.Limit).Offset(offset).Find(&categories).Error; err != nil {
		return nil, 0, err
	}

	return categories, total, nil
}

// FindEnabledWithCount retrieves enabled categories with their published,
// non-deleted blog counts, ordered by name.
func (r *CategoryRepository) FindEnabledWithCount() ([]dto.CategoryWithCount, error) {
	var rows []dto.CategoryWithCount
	err := database.DB.Model(&models.Category{}).
		Select(`categories.id, categories.name, categories.slug, categories.description, categories.image_url,
			COUNT(blogs.id) AS blog_count`).
		Joins(`LEFT JOIN blogs ON blogs.category_id = categories.id
			AND blogs.status = ? AND blogs.is_deleted = ?`, models.BlogPublished, false).
		Where("categories.status = ?", true).
		Group("categories.id").
		Order("categories.name").
		Scan(&rows).Error
	return rows, err
}
