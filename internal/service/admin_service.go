package service

import (
	"context"

	"managedb/internal/models"
	"managedb/internal/repository"
)

type AdminService interface {
	UpdateAdmin(ctx context.Context, name string, admin *models.Admin, plain string) error
	DeleteAdmin(ctx context.Context, name string) error
}

type adminService struct {
	adminRepo repository.AdminRepository
}

func NewAdminService(adminRepo repository.AdminRepository) AdminService {
	return &adminService{adminRepo: adminRepo}
}

func (s *adminService) UpdateAdmin(ctx context.Context, name string, admin *models.Admin, plain string) error {
	err := s.adminRepo.UpdateByName(ctx, name, admin, plain)
	if err != nil {
		return err
	}

	return nil
}

func (s *adminService) DeleteAdmin(ctx context.Context, name string) error {
	err := s.adminRepo.DeleteByName(ctx, name)
	if err != nil {
		return err
	}

	return nil
}
