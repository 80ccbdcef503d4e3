package repositories

import (
	"time"

	"github.com/blogify-backend/database"
	"github.com/blogify-backend/dto"
	"github.com/blogify-backend/models"
)

// SubscriberRepository handles database operations for newsletter subscribers
type SubscriberRepository struct{}

// NewSubscriberRepository creates a new subscriber repository instance
func NewSubscriberRepository() *SubscriberRepository {
	return &SubscriberRepository{}
}

// FindByEmail retrieves a subscriber by email
func (r *SubscriberRepository) FindByEmail(email string) (models.Subscriber, error) {
	var subscriber models.Subscriber
	result := database.DB.First(&subscriber, "email = ?", email)
	return subscriber, result.Error
}

// Create inserts a new subscriber
func (r *SubscriberRepository) Create(subscriber *models.Subscriber) error {
	return database.DB.Create(subscriber).Error
}

// Save persists all fields of an existing subscriber
func (r *SubscriberRepository) Save(subscriber *models.Subscriber) error {
	return database.DB.Save(subscriber).Error
}

// Count counts all subscriber rows, unsubscribed included
func (r *SubscriberRepository) Count() (int64, error) {
	var count int64
	result := database.DB.Model(&models.Subscriber{}).Count(&count)
	return count, result.Error
}

// CountActive counts subscribers that have not unsubscribed
func (r *SubscriberRepository) CountActive() (int64, error) {
	var count int64
	result := database.DB.Model(&models.Subscriber{}).
		Where("unsubscribed = ?", false).Count(&count)
	return count, result.Error
}

// CountCreatedSince counts signups at or after t
func (r *SubscriberRepository) CountCreatedSince(t time.Time) (int64, error) {
	var count int64
	result := database.DB.Model(&models.Subscriber{}).
		Where("created_at >= ?", t).Count(&count)
	return count, result.Error
}

// FindWithPagination retrieves subscribers with filtering and pagination
func (r *SubscriberRepository) FindWithPagination(filter dto.SubscriberFilter) ([]models.Subscriber, int64, error) {
	var subscribers []models.Subscriber
	var total int64

	db := database.DB.Model(&models.Subscriber{})

	if filter.Active != nil {
		db = db.Where("unsubscribed = ?", !*filter.Active)
	}
	if filter.Search != "" {
		db = db.Where("email ILIKE ?", "%"+filter.Search+"%")
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := db.Order("created_at DESC").Limit(filter.Limit).Offset(offset).Find(&subscribers).Error; err != nil {
		return nil, 0, err
	}

	return subscribers, total, nil
}
