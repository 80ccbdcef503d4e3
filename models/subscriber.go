package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subscriber is a newsletter recipient. The unique index on email is the
// authoritative duplicate guard; unsubscribed rows are kept so an
// unsubscribed address cannot be silently re-added.
type Subscriber struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	Source       string    `json:"source"`
	IPAddress    string    `json:"-"`
	UserAgent    string    `json:"-"`
	Unsubscribed bool      `json:"unsubscribed" gorm:"default:false;index"`
	CreatedAt    time.Time `json:"subscribedAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (s *Subscriber) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
