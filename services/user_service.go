package services

import (
	"context"

	"marketplace/dto"
	"marketplace/entity"
	"marketplace/pkg/apperr"
	"marketplace/repository"
)

type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{userRepo: repo}
}

func (s *UserService) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	u, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFoundIfMissing(err, "user")
	}
	return u, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, in dto.UpdateProfile) (*entity.User, error) {
	updates := map[string]any{
		"name":       in.Name,
		"birth_date": in.BirthDate,
	}
	if err := s.userRepo.Update(ctx, in.UserID, updates); err != nil {
		return nil, err
	}
	return s.FindByID(ctx, in.UserID)
}
