package services

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/blogify-backend/database"
	"github.com/blogify-backend/dto"
	"github.com/blogify-backend/models"
	"github.com/blogify-backend/repositories"
	"github.com/blogify-backend/utils"
)

const tokenLifetime = 7 * 24 * time.Hour

// AuthService handles registration, login and token lifecycle
type AuthService struct {
	userRepo *repositories.UserRepository
}

// NewAuthService creates a new auth service instance
func NewAuthService() *AuthService {
	return &AuthService{
		userRepo: repositories.NewUserRepository(),
	}
}

// Register creates a new user account with the default role. Uniqueness of
// email and username is left to the database indexes.
func (s *AuthService) Register(req dto.RegisterRequest) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
		Name:     req.Name,
		Role:     models.RoleUser,
		Status:   models.UserActive,
	}

	if err := s.userRepo.Create(&user); err != nil {
		return nil, utils.TranslateDBError(err, "User not found", "Email or username already registered")
	}

	return &user, nil
}

// Login authenticates a user and returns a signed token
func (s *AuthService) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, utils.NewAuthenticationError("Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, utils.NewAuthenticationError("Invalid email or password")
	}

	if user.Status == models.UserSuspended {
		return nil, utils.NewAuthorizationError("Account is suspended")
	}

	token, expiresAt, err := s.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	user.Password = ""
	return &dto.AuthResponse{
		Token:     token,
		User:      user,
		ExpiresAt: expiresAt,
	}, nil
}

// Logout blacklists the presented token until its natural expiry. With Redis
// down this is a no-op and the token stays valid.
func (s *AuthService) Logout(tokenString string, claims *dto.TokenClaims) error {
	if database.Redis == nil {
		return nil
	}

	ttl := tokenLifetime
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl <= 0 {
		return nil
	}

	return database.Redis.Set(context.Background(), blacklistKey(tokenString), "revoked", ttl).Err()
}

// GetUser retrieves the account behind a token
func (s *AuthService) GetUser(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, utils.TranslateDBError(err, "User not found", "")
	}
	user.Password = ""
	return &user, nil
}

// GenerateToken generates a new JWT token for a user
func (s *AuthService) GenerateToken(userID, role string) (string, time.Time, error) {
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return "", time.Time{}, errors.New("JWT_SECRET not set in environment")
	}

	expiresAt := time.Now().Add(tokenLifetime)

	claims := dto.TokenClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a JWT token and returns claims if valid. Revoked
// tokens are rejected even before their expiry.
func (s *AuthService) ValidateToken(tokenString string) (*dto.TokenClaims, error) {
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return nil, errors.New("JWT_SECRET not set in environment")
	}

	if s.isRevoked(tokenString) {
		return nil, errors.New("token has been revoked")
	}

	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

func (s *AuthService) isRevoked(tokenString string) bool {
	if database.Redis == nil {
		return false
	}
	exists, err := database.Redis.Exists(context.Background(), blacklistKey(tokenString)).Result()
	if err != nil {
		return false
	}
	return exists > 0
}

func blacklistKey(tokenString string) string {
	return "auth:blacklist:" + tokenString
}
