package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/Rune905/Beauty-Bloom/models"
	"github.com/Rune905/Beauty-Bloom/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterInput struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

type AuthService struct {
	userRepo  repository.UserRepository
	adminRepo repository.AdminRepository
	tokens    *TokenService
}

func NewAuthService(userRepo repository.UserRepository, adminRepo repository.AdminRepository, tokens *TokenService) *AuthService {
	return &AuthService{userRepo: userRepo, adminRepo: adminRepo, tokens: tokens}
}

// Register creates a customer account. A duplicate email is a 400, matching
// the storefront's contract rather than the usual 409.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*models.User, *ServiceError) {
	exists, err := s.userRepo.EmailExists(ctx, input.Email)
	if err != nil {
		zap.L().Error("failed to check email existence", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Unable to register user"}
	}
	if exists {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Email already exists"}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		zap.L().Error("failed to hash password", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Unable to register user"}
	}

	user := &models.User{
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Email:         input.Email,
		Phone:         input.Phone,
		Address:       input.Address,
		Password:      string(hashed),
		Role:          models.RoleCustomer,
		IsActive:      true,
		EmailVerified: false,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		zap.L().Error("failed to create user", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Unable to register user"}
	}
	return user, nil
}

// Login authenticates a customer and issues a token. Unknown email and wrong
// password produce the same response, so the endpoint never reveals whether
// an address is registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, *ServiceError) {
	invalid := &ServiceError{StatusCode: http.StatusUnauthorized, Message: "Invalid email or password"}

	user, err := s.userRepo.FindActiveByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			zap.L().Error("failed to look up user", zap.Error(err))
			return nil, "", &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Login failed"}
		}
		return nil, "", invalid
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", invalid
	}

	token, err := s.tokens.Generate(user.ID, user.Email, user.Role, "user")
	if err != nil {
		zap.L().Error("failed to generate token", zap.Error(err))
		return nil, "", &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Login failed"}
	}
	return user, token, nil
}

// AdminLogin authenticates against the separate admins table.
func (s *AuthService) AdminLogin(ctx context.Context, username, password string) (*models.Admin, string, *ServiceError) {
	invalid := &ServiceError{StatusCode: http.StatusUnauthorized, Message: "Invalid username or password"}

	admin, err := s.adminRepo.FindByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			zap.L().Error("failed to look up admin", zap.Error(err))
			return nil, "", &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Login failed"}
		}
		return nil, "", invalid
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, "", invalid
	}

	token, err := s.tokens.Generate(admin.ID, admin.Email, models.RoleAdmin, "admin")
	if err != nil {
		zap.L().Error("failed to generate admin token", zap.Error(err))
		return nil, "", &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Login failed"}
	}
	return admin, token, nil
}

// ProfileInput carries the fields a customer may change on their own
// account. Email and password stay fixed here.
type ProfileInput struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// UpdateProfile overwrites the editable profile fields.
func (s *AuthService) UpdateProfile(ctx context.Context, userID uint, input ProfileInput) (*models.User, *ServiceError) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "User not found"}
		}
		zap.L().Error("failed to read user for update", zap.Error(err), zap.Uint("user_id", userID))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Unable to update profile"}
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Phone = input.Phone
	user.Address = input.Address

	if err := s.userRepo.Update(ctx, user); err != nil {
		zap.L().Error("failed to update profile", zap.Error(err), zap.Uint("user_id", userID))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Unable to update profile"}
	}
	return user, nil
}

// EnsureAdmin creates the bootstrap admin account when it does not exist
// yet, so a fresh deployment is reachable through the admin API.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, email, password string) error {
	if _, err := s.adminRepo.FindByUsername(ctx, username); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.Admin{
		Username: username,
		Email:    email,
		Password: string(hashed),
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return err
	}
	zap.L().Info("bootstrap admin created", zap.String("username", username))
	return nil
}

// Profile returns the user for an authenticated request.
func (s *AuthService) Profile(ctx context.Context, userID uint) (*models.User, *ServiceError) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "User not found"}
		}
		zap.L().Error("failed to read profile", zap.Error(err), zap.Uint("user_id", userID))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch profile"}
	}
	return user, nil
}
