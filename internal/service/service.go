package service

import (
	"managedb/internal/config"
	"managedb/internal/repository"
	"managedb/internal/storage"
)

type Service struct {
	Auth     AuthService
	Admin    AdminService
	User     UserService
	Post     PostService
	Transfer TransferService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth:     NewAuthService(rep.Admin, cfg),
		Admin:    NewAdminService(rep.Admin),
		User:     NewUserService(rep.User, cfg),
		Post:     NewPostService(rep.Post),
		Transfer: NewTransferService(rep.User, rep.Post, storage),
	}
}
