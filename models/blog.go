package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/blogify-backend/utils"
)

// BlogStatus is a blog's moderation state.
type BlogStatus string

const (
	BlogDraft     BlogStatus = "draft"
	BlogPending   BlogStatus = "pending"
	BlogPublished BlogStatus = "published"
	BlogRejected  BlogStatus = "rejected"
)

// ValidBlogStatus reports whether s is one of the enumerated states.
func ValidBlogStatus(s string) bool {
	switch BlogStatus(s) {
	case BlogDraft, BlogPending, BlogPublished, BlogRejected:
		return true
	}
	return false
}

// PromoFlags are the admin-controlled display hints.
type PromoFlags struct {
	Featured bool `json:"isFeatured"`
	Hot      bool `json:"isHot"`
	Popular  bool `json:"isPopular"`
}

// Blog is a post moving through the draft/pending/published/rejected
// lifecycle. At most one moderation decision (approval or rejection) is
// populated at a time; the transition methods below maintain that.
type Blog struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid"`
	Title       string     `json:"title" gorm:"uniqueIndex;not null"`
	Slug        string     `json:"slug" gorm:"uniqueIndex;not null"`
	Description string     `json:"description"`
	Excerpt     string     `json:"excerpt"`
	ImageURL    string     `json:"imageUrl"`
	Status      BlogStatus `json:"status" gorm:"type:varchar(10);default:'pending';index"`
	CategoryID  string     `json:"categoryId" gorm:"type:uuid;not null;index"`
	UserID      string     `json:"userId" gorm:"type:uuid;not null;index"`

	Views     int64 `json:"views" gorm:"default:0;index"`
	Likes     int64 `json:"likes" gorm:"default:0"`
	Bookmarks int64 `json:"bookmarks" gorm:"default:0"`

	IsFeatured bool `json:"isFeatured" gorm:"default:false;index"`
	IsHot      bool `json:"isHot" gorm:"default:false"`
	IsPopular  bool `json:"isPopular" gorm:"default:false"`

	ReadTime int      `json:"readTime" gorm:"default:0"`
	Tags     []string `json:"tags" gorm:"serializer:json"`
	Keywords []string `json:"keywords" gorm:"serializer:json"`

	RejectionReason string     `json:"rejectionReason,omitempty"`
	ApprovedAt      *time.Time `json:"approvedAt,omitempty"`
	ApprovedBy      *string    `json:"approvedBy,omitempty" gorm:"type:uuid"`
	RejectedAt      *time.Time `json:"rejectedAt,omitempty"`
	RejectedBy      *string    `json:"rejectedBy,omitempty" gorm:"type:uuid"`

	IsDeleted bool      `json:"-" gorm:"default:false;index"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	Category Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	User     User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (b *Blog) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// BlogLike records one user's like of one blog. The likes counter on the
// blog always equals the number of rows here for it.
type BlogLike struct {
	BlogID    string    `json:"blogId" gorm:"primaryKey;type:uuid"`
	UserID    string    `json:"userId" gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time `json:"createdAt"`
}

// BlogBookmark records one user's bookmark of one blog.
type BlogBookmark struct {
	BlogID    string    `json:"blogId" gorm:"primaryKey;type:uuid"`
	UserID    string    `json:"userId" gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time `json:"createdAt"`
}

func (b *Blog) clearApproval() {
	b.ApprovedAt = nil
	b.ApprovedBy = nil
}

func (b *Blog) clearRejection() {
	b.RejectedAt = nil
	b.RejectedBy = nil
	b.RejectionReason = ""
}

// Approve publishes the blog. Only non-published blogs can be approved; the
// admin may set promotion flags in the same step.
func (b *Blog) Approve(adminID string, flags PromoFlags) error {
	if b.Status == BlogPublished {
		return utils.NewValidationError("Blog is already published")
	}

	now := time.Now()
	b.Status = BlogPublished
	b.ApprovedAt = &now
	b.ApprovedBy = &adminID
	b.clearRejection()

	b.IsFeatured = flags.Featured
	b.IsHot = flags.Hot
	b.IsPopular = flags.Popular
	return nil
}

// Reject moves the blog to rejected and records who rejected it and why.
// Published blogs cannot be rejected; they must be unpublished through an
// admin edit first.
func (b *Blog) Reject(adminID, reason string) error {
	if b.Status == BlogPublished {
		return utils.NewValidationError("Cannot reject a published blog")
	}

	now := time.Now()
	b.Status = BlogRejected
	b.RejectedAt = &now
	b.RejectedBy = &adminID
	b.RejectionReason = reason
	b.clearApproval()
	return nil
}

// SubmitForReview is the owner's re-approval request after a rejection.
// Only rejected blogs can be resubmitted.
func (b *Blog) SubmitForReview() error {
	if b.Status != BlogRejected {
		return utils.NewValidationError("Only rejected blogs can be resubmitted for approval")
	}

	b.Status = BlogPending
	b.clearRejection()
	return nil
}

// ApplyOwnerEdit resets moderation state after a non-admin content edit:
// the blog goes back to pending, both decisions are cleared and the
// promotion flags are forced off.
func (b *Blog) ApplyOwnerEdit() {
	b.Status = BlogPending
	b.clearApproval()
	b.clearRejection()
	b.IsFeatured = false
	b.IsHot = false
	b.IsPopular = false
}

// ApplyAdminStatus sets an explicit target state on behalf of an admin,
// recording the matching decision metadata.
func (b *Blog) ApplyAdminStatus(adminID string, status BlogStatus, reason string) error {
	if !ValidBlogStatus(string(status)) {
		return utils.NewValidationError("Invalid blog status")
	}

	now := time.Now()
	b.Status = status
	switch status {
	case BlogPublished:
		b.ApprovedAt = &now
		b.ApprovedBy = &adminID
		b.clearRejection()
	case BlogRejected:
		b.RejectedAt = &now
		b.RejectedBy = &adminID
		if reason != "" {
			b.RejectionReason = reason
		}
		b.clearApproval()
	default:
		b.clearApproval()
		b.clearRejection()
	}
	return nil
}
