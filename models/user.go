package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role represents user role types
type Role string

const (
	RoleUser    Role = "user"
	RoleAdmin   Role = "admin"
	RoleBlogger Role = "blogger"
)

// ValidRole reports whether s is one of the enumerated roles.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleUser, RoleAdmin, RoleBlogger:
		return true
	}
	return false
}

// UserStatus represents an account's activity state.
type UserStatus string

const (
	UserActive    UserStatus = "active"
	UserInactive  UserStatus = "inactive"
	UserSuspended UserStatus = "suspended"
)

// ValidUserStatus reports whether s is one of the enumerated statuses.
func ValidUserStatus(s string) bool {
	switch UserStatus(s) {
	case UserActive, UserInactive, UserSuspended:
		return true
	}
	return false
}

// User represents an account in the system. Users are never soft-deleted:
// removal is a hard delete, blocked when the account is the last admin.
type User struct {
	ID         string     `json:"id" gorm:"primaryKey;type:uuid"`
	Name       string     `json:"name"`
	Username   string     `json:"username" gorm:"uniqueIndex;not null"`
	Email      string     `json:"email" gorm:"uniqueIndex;not null"`
	Password   string     `json:"-" gorm:"not null"` // Password is not exposed in JSON
	Role       Role       `json:"role" gorm:"type:varchar(10);default:'user';index"`
	Status     UserStatus `json:"status" gorm:"type:varchar(10);default:'active';index"`
	Bio        string     `json:"bio"`
	Avatar     string     `json:"avatar"`
	Phone      string     `json:"phone"`
	FullName   string     `json:"fullName"`
	Gender     string     `json:"gender"`
	Location   string     `json:"location"`
	IsVerified bool       `json:"isVerified" gorm:"default:true"`
	IsApproved bool       `json:"isApproved" gorm:"default:true"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// BeforeCreate assigns the primary key so new entities have an ID before the
// insert round-trips.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// DisplayName falls back from name to username.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	if u.Username != "" {
		return u.Username
	}
	return "Unknown"
}
