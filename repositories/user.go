package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/blogify-backend/database"
	"github.com/blogify-backend/dto"
	"github.com/blogify-backend/models"
)

// UserRepository handles database operations for accounts
type UserRepository struct{}

// NewUserRepository creates a new user repository instance
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindByID retrieves a user by its ID
func (r *UserRepository) FindByID(id string) (models.User, error) {
	var user models.User
	result := database.DB.First(&user, "id = ?", id)
	return user, result.Error
}

// FindByEmail retrieves a user by email
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	result := database.DB.First(&user, "email = ?", email)
	return user, result.Error
}

// Create inserts a new user into the database
func (r *UserRepository) Create(user *models.User) error {
	return database.DB.Create(user).Error
}

// Save persists all fields of an existing user
func (r *UserRepository) Save(user *models.User) error {
	return database.DB.Save(user).Error
}

// Delete removes a user permanently. Accounts are never soft-deleted.
func (r *UserRepository) Delete(id string) error {
	return database.DB.Delete(&models.User{}, "id = ?", id).Error
}

// CountByRole counts users holding a role
func (r *UserRepository) CountByRole(role models.Role) (int64, error) {
	var count int64
	result := database.DB.Model(&models.User{}).Where("role = ?", role).Count(&count)
	return count, result.Error
}

// Count counts all users
func (r *UserRepository) Count() (int64, error) {
	var count int64
	result := database.DB.Model(&models.User{}).Count(&count)
	return count, result.Error
}

// CountByStatus counts users in an account status
func (r *UserRepository) CountByStatus(status models.UserStatus) (int64, error) {
	var count int64
	result := database.DB.Model(&models.User{}).Where("status = ?", status).Count(&count)
	return count, result.Error
}

// CountCreatedSince counts users registered at or after t
func (r *UserRepository) CountCreatedSince(t time.Time) (int64, error) {
	var count int64
	result := database.DB.Model(&models.User{}).Where("created_at >= ?", t).Count(&count)
	return count, result.Error
}

// CountFlag counts users with a boolean column set
func (r *UserRepository) CountFlag(column string) (int64, error) {
	var count int64
	result := database.DB.Model(&models.User{}).Where(column+" = ?", true).Count(&count)
	return count, result.Error
}

// FindWithPagination retrieves users with filtering, sorting and pagination
func (r *UserRepository) FindWithPagination(filter dto.UserFilter) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	db := database.DB.Model(&models.User{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		db = db.Where("(name ILIKE ? OR username ILIKE ? OR email ILIKE ? OR full_name ILIKE ?)",
			pattern, pattern, pattern, pattern)
	}
	if filter.Role != "" {
		db = db.Where("role = ?", filter.Role)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	order := filter.SortBy + " " + filter.SortOrder
	if err := db.Order(order).Limit(filter.Limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// FindRecent retrieves the newest accounts
func (r *UserRepository) FindRecent(limit int) ([]models.User, error) {
	var users []models.User
	result := database.DB.Order("created_at DESC").Limit(limit).Find(&users)
	return users, result.Error
}

// MonthlyRegistrations counts registrations per month since the given time
func (r *UserRepository) MonthlyRegistrations(since time.Time) ([]MonthBucket, error) {
	var buckets []MonthBucket
	err := database.DB.Model(&models.User{}).
		Select("date_trunc('month', created_at) AS month, COUNT(*) AS count").
		Where("created_at >= ?", since).
		Group("month").
		Order("month").
		Scan(&buckets).Error
	return buckets, err
}

// DailyRegistrations counts registrations per day within a period
func (r *UserRepository) DailyRegistrations(start, end time.Time) ([]DayBucket, error) {
	var buckets []DayBucket
	err := database.DB.Model(&models.User{}).
		Select("to_char(created_at, 'YYYY-MM-DD') AS day, COUNT(*) AS count").
		Where("created_at BETWEEN ? AND ?", start, end).
		Group("day").
		Order("day").
		Scan(&buckets).Error
	return buckets, err
}

// DB returns the database instance
func (r *UserRepository) DB() *gorm.DB {
	return database.DB
}

// MonthBucket is a month-grouped aggregation row.
type MonthBucket struct {
	Month time.Time
	Count int64
}

// DayBucket is a day-grouped aggregation row.
type DayBucket struct {
	Day   string
	Count int64
}
