package dto

import (
	"time"

	"github.com/blogify-backend/models"
)

// CreateBlogRequest represents the payload for creating a blog. The promo
// flags and createdAt backdate are honored only for admin creators.
type CreateBlogRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description" binding:"required"`
	Excerpt     string     `json:"excerpt"`
	CategoryID  string     `json:"categoryId" binding:"required"`
	Slug        string     `json:"slug"`
	ImageURL    string     `json:"imageUrl"`
	Tags        []string   `json:"tags"`
	Keywords    []string   `json:"keywords"`
	IsFeatured  bool       `json:"isFeatured"`
	IsHot       bool       `json:"isHot"`
	IsPopular   bool       `json:"isPopular"`
	CreatedAt   *time.Time `json:"createdAt"`
}

// UpdateBlogRequest is a partial content update; nil fields are untouched.
type UpdateBlogRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Excerpt     *string   `json:"excerpt"`
	Slug        *string   `json:"slug"`
	CategoryID  *string   `json:"categoryId"`
	ImageURL    *string   `json:"imageUrl"`
	Tags        *[]string `json:"tags"`
	Keywords    *[]string `json:"keywords"`
}

// AdminUpdateBlogRequest extends the content update with the admin-only
// controls: explicit status, promo flags and a backdated createdAt.
type AdminUpdateBlogRequest struct {
	UpdateBlogRequest
	Status          *string    `json:"status"`
	RejectionReason string     `json:"rejectionReason"`
	IsFeatured      *bool      `json:"isFeatured"`
	IsHot           *bool      `json:"isHot"`
	IsPopular       *bool      `json:"isPopular"`
	CreatedAt       *time.Time `json:"createdAt"`
}

// ApproveBlogRequest carries the optional promo flags set while publishing.
type ApproveBlogRequest struct {
	IsFeatured bool `json:"isFeatured"`
	IsHot      bool `json:"isHot"`
	IsPopular  bool `json:"isPopular"`
}

// RejectBlogRequest carries the reason shown to the blog's owner.
type RejectBlogRequest struct {
	RejectionReason string `json:"rejectionReason" binding:"required"`
}

// BlogFilter represents list criteria plus the actor scoping applied by
// the repository (non-admins only see their own or published blogs).
type BlogFilter struct {
	Status     string
	CategoryID string
	UserID     string
	Featured   *bool
	Hot        *bool
	Popular    *bool
	Search     string
	SortBy     string
	SortOrder  string
	Page       int
	Limit      int

	ActorID      string
	ActorIsAdmin bool
}

// BlogStatusCounts buckets a set of blogs by moderation state.
type BlogStatusCounts struct {
	Total     int64 `json:"total"`
	Draft     int64 `json:"draft"`
	Pending   int64 `json:"pending"`
	Published int64 `json:"published"`
	Rejected  int64 `json:"rejected"`
}

// LikeResponse is returned by the like toggle.
type LikeResponse struct {
	Likes   int64 `json:"likes"`
	IsLiked bool  `json:"isLiked"`
}

// BookmarkResponse is returned by the bookmark toggle.
type BookmarkResponse struct {
	Bookmarks    int64 `json:"bookmarks"`
	IsBookmarked bool  `json:"isBookmarked"`
}

// CategoryRef is the reshaped category reference embedded in blog views.
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// AuthorRef is the reshaped author reference embedded in blog views.
type AuthorRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// BlogView is the read-side projection of a blog with its references
// joined in. Moderation audit fields (approvedBy/rejectedBy) appear only
// when the projection is built for an admin.
type BlogView struct {
	ID              string            `json:"id"`
	Title           string            `json:"title"`
	Slug            string            `json:"slug"`
	Description     string            `json:"description"`
	Excerpt         string            `json:"excerpt"`
	ImageURL        string            `json:"imageUrl"`
	Status          models.BlogStatus `json:"status"`
	Views           int64             `json:"views"`
	Likes           int64             `json:"likes"`
	Bookmarks       int64             `json:"bookmarks"`
	IsFeatured      bool              `json:"isFeatured"`
	IsHot           bool              `json:"isHot"`
	IsPopular       bool              `json:"isPopular"`
	ReadTime        int               `json:"readTime"`
	Tags            []string          `json:"tags"`
	Keywords        []string          `json:"keywords"`
	RejectionReason string            `json:"rejectionReason,omitempty"`
	ApprovedAt      *time.Time        `json:"approvedAt,omitempty"`
	ApprovedBy      *string           `json:"approvedBy,omitempty"`
	RejectedAt      *time.Time        `json:"rejectedAt,omitempty"`
	RejectedBy      *string           `json:"rejectedBy,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
	Category        CategoryRef       `json:"category"`
	User            AuthorRef         `json:"user"`
}

// NewBlogView reshapes a blog and its preloaded references into the
// response projection, kept separate from persistence on purpose.
func NewBlogView(blog models.Blog, forAdmin bool) BlogView {
	view := BlogView{
		ID:              blog.ID,
		Title:           blog.Title,
		Slug:            blog.Slug,
		Description:     blog.Description,
		Excerpt:         blog.Excerpt,
		ImageURL:        blog.ImageURL,
		Status:          blog.Status,
		Views:           blog.Views,
		Likes:           blog.Likes,
		Bookmarks:       blog.Bookmarks,
		IsFeatured:      blog.IsFeatured,
		IsHot:           blog.IsHot,
		IsPopular:       blog.IsPopular,
		ReadTime:        blog.ReadTime,
		Tags:            blog.Tags,
		Keywords:        blog.Keywords,
		RejectionReason: blog.RejectionReason,
		ApprovedAt:      blog.ApprovedAt,
		RejectedAt:      blog.RejectedAt,
		CreatedAt:       blog.CreatedAt,
		UpdatedAt:       blog.UpdatedAt,
		Category: CategoryRef{
			ID:   blog.Category.ID,
			Name: blog.Category.Name,
			Slug: blog.Category.Slug,
		},
		User: AuthorRef{
			ID:    blog.User.ID,
			Name:  blog.User.DisplayName(),
			Email: blog.User.Email,
		},
	}

	if forAdmin {
		view.ApprovedBy = blog.ApprovedBy
		view.RejectedBy = blog.RejectedBy
		view.User.Role = string(blog.User.Role)
	}

	return view
}

// NewBlogViews projects a result page.
func NewBlogViews(blogs []models.Blog, forAdmin bool) []BlogView {
	views := make([]BlogView, 0, len(blogs))
	for _, blog := range blogs {
		views = append(views, NewBlogView(blog, forAdmin))
	}
	return views
}
