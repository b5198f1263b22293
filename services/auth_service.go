package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace/dto"
	"marketplace/entity"
	"marketplace/pkg/apperr"
	"marketplace/repository"
	"marketplace/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles registration, login and token refresh.
type AuthService struct {
	userRepo   *repository.UserRepository
	jwtSecret  string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, accessTTL, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:   repo,
		jwtSecret:  secret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// Register creates a customer or seller account and logs it in.
func (s *AuthService) Register(ctx context.Context, in dto.CreateUser) (*entity.User, *utils.Tokens, error) {
	if !in.Role.Valid() {
		return nil, nil, apperr.BadRequest(fmt.Sprintf("unknown role %q", in.Role))
	}
	if in.Role == entity.RoleAdmin {
		return nil, nil, apperr.Forbidden("admin accounts cannot be registered")
	}

	count, err := s.userRepo.CountByEmail(ctx, in.Email)
	if err != nil {
		return nil, nil, err
	}
	if count > 0 {
		return nil, nil, apperr.Conflict("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		Name:      in.Name,
		Email:     in.Email,
		Password:  string(hashed),
		BirthDate: in.BirthDate,
		Role:      in.Role,
	}
	// the count above can lose a race; the unique index has the last word
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil, apperr.Conflict("email already registered")
		}
		return nil, nil, err
	}

	tokens, err := s.issue(user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

func (s *AuthService) Login(ctx context.Context, in dto.LoginUser) (*entity.User, *utils.Tokens, error) {
	user, err := s.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperr.Unauthorized("invalid credentials")
		}
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, nil, apperr.Unauthorized("invalid credentials")
	}

	tokens, err := s.issue(user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// Refresh exchanges a valid refresh token for a new pair. The role is
// re-read from the database so role changes take effect.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*utils.Tokens, error) {
	claims, err := utils.ParseToken(refreshToken, s.jwtSecret, utils.RefreshToken)
	if err != nil {
		return nil, apperr.Unauthorized("invalid refresh token")
	}
	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthorized("invalid refresh token")
		}
		return nil, err
	}
	return s.issue(user)
}

func (s *AuthService) issue(user *entity.User) (*utils.Tokens, error) {
	tokens, err := utils.GenerateTokens(user.ID, string(user.Role), s.jwtSecret, s.accessTTL, s.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("generate tokens: %w", err)
	}
	return tokens, nil
}
