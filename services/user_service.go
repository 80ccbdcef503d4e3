package services

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/blogify-backend/dto"
	"github.com/blogify-backend/models"
	"github.com/blogify-backend/repositories"
	"github.com/blogify-backend/utils"
)

// UserService handles admin account management
type UserService struct {
	userRepo *repositories.UserRepository
}

// NewUserService creates a new user service instance
func NewUserService() *UserService {
	return &UserService{
		userRepo: repositories.NewUserRepository(),
	}
}

// CreateUser creates an account directly, with role and status chosen by
// the admin
func (s *UserService) CreateUser(req dto.CreateUserRequest) (models.User, error) {
	role := req.Role
	if role == "" {
		role = string(models.RoleUser)
	}
	if !models.ValidRole(role) {
		return models.User{}, utils.NewValidationError("Invalid role")
	}

	status := req.Status
	if status == "" {
		status = string(models.UserActive)
	}
	if !models.ValidUserStatus(status) {
		return models.User{}, utils.NewValidationError("Invalid status")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username:   req.Username,
		Email:      req.Email,
		Password:   string(hashedPassword),
		Name:       req.Name,
		Role:       models.Role(role),
		Status:     models.UserStatus(status),
		Phone:      req.Phone,
		FullName:   req.FullName,
		Gender:     req.Gender,
		Location:   req.Location,
		IsVerified: true,
		IsApproved: true,
	}
	if req.IsVerified != nil {
		user.IsVerified = *req.IsVerified
	}
	if req.IsApproved != nil {
		user.IsApproved = *req.IsApproved
	}

	if err := s.userRepo.Create(&user); err != nil {
		return models.User{}, utils.TranslateDBError(err,
			"User not found", "Email or username already registered")
	}

	user.Password = ""
	return user, nil
}

// ListUsers retrieves accounts with filtering, sorting and pagination
func (s *UserService) ListUsers(filter dto.UserFilter) ([]models.User, utils.Pagination, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 10
	}
	if filter.SortBy == "" {
		filter.SortBy = "created_at"
	}
	if filter.SortOrder != "asc" && filter.SortOrder != "desc" {
		filter.SortOrder = "desc"
	}

	validSortColumns := map[string]bool{
		"created_at": true,
		"updated_at": true,
		"name":       true,
		"username":   true,
		"email":      true,
	}
	if !validSortColumns[filter.SortBy] {
		filter.SortBy = "created_at"
	}

	users, total, err := s.userRepo.FindWithPagination(filter)
	if err != nil {
		return nil, utils.Pagination{}, err
	}

	for i := range users {
		users[i].Password = ""
	}
	return users, utils.NewPagination(filter.Page, filter.Limit, total), nil
}

// GetUser retrieves one account
func (s *UserService) GetUser(id string) (models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return models.User{}, utils.TranslateDBError(err, "User not found", "")
	}
	user.Password = ""
	return user, nil
}

// UpdateUser applies a partial account update. Demoting the last admin is
// blocked so the system always keeps at least one.
func (s *UserService) UpdateUser(id string, req dto.UpdateUserRequest) (models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return models.User{}, utils.TranslateDBError(err, "User not found", "")
	}

	if req.Role != nil {
		if !models.ValidRole(*req.Role) {
			return models.User{}, utils.NewValidationError("Invalid role")
		}
		if user.IsAdmin() && models.Role(*req.Role) != models.RoleAdmin {
			admins, err := s.userRepo.CountByRole(models.RoleAdmin)
			if err != nil {
				return models.User{}, err
			}
			if admins <= 1 {
				return models.User{}, utils.NewConflictError("Cannot demote the last admin")
			}
		}
		user.Role = models.Role(*req.Role)
	}
	if req.Status != nil {
		if !models.ValidUserStatus(*req.Status) {
			return models.User{}, utils.NewValidationError("Invalid status")
		}
		user.Status = models.UserStatus(*req.Status)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Gender != nil {
		user.Gender = *req.Gender
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.IsVerified != nil {
		user.IsVerified = *req.IsVerified
	}
	if req.IsApproved != nil {
		user.IsApproved = *req.IsApproved
	}

	if err := s.userRepo.Save(&user); err != nil {
		return models.User{}, utils.TranslateDBError(err,
			"User not found", "Email or username already registered")
	}

	user.Password = ""
	return user, nil
}

// DeleteUser removes an account permanently. Admins cannot delete
// themselves, and the last admin can never be removed.
func (s *UserService) DeleteUser(id string, actorID string) error {
	if id == actorID {
		return utils.NewConflictError("You cannot delete your own account")
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return utils.TranslateDBError(err, "User not found", "")
	}

	if user.IsAdmin() {
		admins, err := s.userRepo.CountByRole(models.RoleAdmin)
		if err != nil {
			return err
		}
		if admins <= 1 {
			return utils.NewConflictError("Cannot delete the last admin")
		}
	}

	return s.userRepo.Delete(id)
}

// ToggleVerification flips the account's verified flag
func (s *UserService) ToggleVerification(id string) (models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return models.User{}, utils.TranslateDBError(err, "User not found", "")
	}

	user.IsVerified = !user.IsVerified
	if err := s.userRepo.Save(&user); err != nil {
		return models.User{}, err
	}

	user.Password = ""
	return user, nil
}

// ToggleApproval flips the account's approved flag
func (s *UserService) ToggleApproval(id string) (models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return models.User{}, utils.TranslateDBError(err, "User not found", "")
	}

	user.IsApproved = !user.IsApproved
	if err := s.userRepo.Save(&user); err != nil {
		return models.User{}, err
	}

	user.Password = ""
	return user, nil
}

// GetStats summarizes the account population
func (s *UserService) GetStats() (dto.UserStats, error) {
	var stats dto.UserStats
	var err error

	if stats.Total, err = s.userRepo.Count(); err != nil {
		return stats, err
	}
	if stats.Admins, err = s.userRepo.CountByRole(models.RoleAdmin); err != nil {
		return stats, err
	}
	if stats.Bloggers, err = s.userRepo.CountByRole(models.RoleBlogger); err != nil {
		return stats, err
	}
	if stats.Users, err = s.userRepo.CountByRole(models.RoleUser); err != nil {
		return stats, err
	}
	if stats.Active, err = s.userRepo.CountByStatus(models.UserActive); err != nil {
		return stats, err
	}
	if stats.Inactive, err = s.userRepo.CountByStatus(models.UserInactive); err != nil {
		return stats, err
	}
	if stats.Suspended, err = s.userRepo.CountByStatus(models.UserSuspended); err != nil {
		return stats, err
	}
	if stats.Verified, err = s.userRepo.CountFlag("is_verified"); err != nil {
		return stats, err
	}
	if stats.Approved, err = s.userRepo.CountFlag("is_approved"); err != nil {
		return stats, err
	}

	// Six months of registrations, oldest first, quiet months zero-filled.
	now := time.Now()
	since := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -5, 0)
	buckets, err := s.userRepo.MonthlyRegistrations(since)
	if err != nil {
		return stats, err
	}
	byMonth := make(map[string]int64, len(buckets))
	for _, bucket := range buckets {
		byMonth[bucket.Month.Format("Jan")] = bucket.Count
	}
	for i := 5; i >= 0; i-- {
		name := since.AddDate(0, 5-i, 0).Format("Jan")
		stats.Growth = append(stats.Growth, dto.MonthCount{Name: name, Count: byMonth[name]})
	}

	return stats, nil
}
