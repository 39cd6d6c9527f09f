// internal/services/auth_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/HamzaJabari/craftopia-backend/internal/config"
	"github.com/HamzaJabari/craftopia-backend/internal/models"
	"github.com/HamzaJabari/craftopia-backend/internal/utils"
)

type AuthService struct {
	db     *gorm.DB
	config *config.Config
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=customer artisan"`

	PhoneNumber string `json:"phone_number,omitempty" validate:"max=30"`
	Location    string `json:"location,omitempty" validate:"max=255"`

	// Artisan-only fields
	CraftType   string `json:"craft_type,omitempty" validate:"max=50"`
	Description string `json:"description,omitempty" validate:"max=500"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, config: cfg}
}

func (s *AuthService) Register(req *RegisterRequest) (*AuthResult, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}

	role := models.UserRole(req.Role)
	if role == models.RoleArtisan && req.Location == "" {
		return nil, fmt.Errorf("%w: location is required for artisans", ErrInvalidInput)
	}

	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("%w: email already registered", ErrInvalidInput)
	}

	user := &models.User{
		Name:        req.Name,
		Email:       req.Email,
		Role:        role,
		Status:      models.UserStatusActive,
		PhoneNumber: req.PhoneNumber,
		Location:    req.Location,
		CraftType:   req.CraftType,
		Description: req.Description,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueToken(user)
}

func (s *AuthService) Login(req *LoginRequest) (*AuthResult, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", ErrForbidden)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := user.CheckPassword(req.Password); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", ErrForbidden)
	}

	if user.Status != models.UserStatusActive {
		return nil, fmt.Errorf("%w: account is suspended", ErrForbidden)
	}

	return s.issueToken(&user)
}

func (s *AuthService) GetProfile(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &user, nil
}

func (s *AuthService) issueToken(user *models.User) (*AuthResult, error) {
	token, err := utils.GenerateJWT(user.ID, user.Name, string(user.Role), s.config.JWT.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &AuthResult{Token: token, User: user}, nil
}
