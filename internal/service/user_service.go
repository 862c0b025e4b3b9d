package service

import (
	"context"

	"managedb/internal/config"
	"managedb/internal/models"
	"managedb/internal/repository"
)

type UserService interface {
	CreateUser(ctx context.Context, user *models.User, plain string) error
	UpdateUserByNickname(ctx context.Context, nickname string, patch models.UserPatch) error
	UpdateUserByNumber(ctx context.Context, number int64, patch models.UserPatch) error
	DeleteUser(ctx context.Context, number int64) error
}

type userService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewUserService(userRepo repository.UserRepository, cfg *config.Config) UserService {
	return &userService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *userService) CreateUser(ctx context.Context, user *models.User, plain string) error {
	err := s.userRepo.Insert(ctx, user, plain)
	if err != nil {
		return err
	}

	return nil
}

func (s *userService) UpdateUserByNickname(ctx context.Context, nickname string, patch models.UserPatch) error {
	err := s.userRepo.UpdateByNickname(ctx, nickname, patch)
	if err != nil {
		return err
	}

	return nil
}

func (s *userService) UpdateUserByNumber(ctx context.Context, number int64, patch models.UserPatch) error {
	err := s.userRepo.UpdateByNumber(ctx, number, patch)
	if err != nil {
		return err
	}

	return nil
}

func (s *userService) DeleteUser(ctx context.Context, number int64) error {
	err := s.userRepo.DeleteByNumber(ctx, number)
	if err != nil {
		return err
	}

	return nil
}
