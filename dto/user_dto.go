package dto

// CreateUserRequest is the admin payload for creating an account directly.
type CreateUserRequest struct {
	Username   string `json:"username" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Status     string `json:"status"`
	Phone      string `json:"phone"`
	FullName   string `json:"fullName"`
	Gender     string `json:"gender"`
	Location   string `json:"location"`
	IsVerified *bool  `json:"isVerified"`
	IsApproved *bool  `json:"isApproved"`
}

// UpdateUserRequest is a partial account update; nil fields are untouched.
type UpdateUserRequest struct {
	Name       *string `json:"name"`
	Username   *string `json:"username"`
	Email      *string `json:"email"`
	Role       *string `json:"role"`
	Status     *string `json:"status"`
	Bio        *string `json:"bio"`
	Phone      *string `json:"phone"`
	FullName   *string `json:"fullName"`
	Gender     *string `json:"gender"`
	Location   *string `json:"location"`
	IsVerified *bool   `json:"isVerified"`
	IsApproved *bool   `json:"isApproved"`
}

// UserFilter represents list criteria for accounts.
type UserFilter struct {
	Search    string
	Role      string
	Status    string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// UserStats summarizes the account population for the admin screens.
type UserStats struct {
	Total     int64        `json:"total"`
	Admins    int64        `json:"admins"`
	Bloggers  int64        `json:"bloggers"`
	Users     int64        `json:"users"`
	Active    int64        `json:"active"`
	Inactive  int64        `json:"inactive"`
	Suspended int64        `json:"suspended"`
	Verified  int64        `json:"verified"`
	Approved  int64        `json:"approved"`
	Growth    []MonthCount `json:"growth"`
}

// MonthCount is one point of a per-month growth series.
type MonthCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}
