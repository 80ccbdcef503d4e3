package dto

// CreateCategoryRequest represents the payload for creating a category.
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Status      *bool  `json:"status"`
}

// UpdateCategoryRequest is a partial category update; nil fields are untouched.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	Status      *bool   `json:"status"`
}

// CategoryFilter represents list criteria for categories.
type CategoryFilter struct {
	Status *bool
	Search string
	Page   int
	Limit  int
}

// CategoryWithCount pairs an enabled category with its published blog count.
type CategoryWithCount struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	BlogCount   int64  `json:"blogCount"`
}
