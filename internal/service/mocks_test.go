package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"managedb/internal/models"
)

type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Insert(ctx context.Context, admin *models.Admin, plain string) error {
	args := m.Called(ctx, admin, plain)
	return args.Error(0)
}

func (m *MockAdminRepository) UpdateByName(ctx context.Context, name string, admin *models.Admin, plain string) error {
	args := m.Called(ctx, name, admin, plain)
	return args.Error(0)
}

func (m *MockAdminRepository) DeleteByName(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockAdminRepository) FindByName(ctx context.Context, name string) ([]models.Admin, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Admin), args.Error(1)
}

func (m *MockAdminRepository) FindByAccount(ctx context.Context, account string) (*models.Admin, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admin), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Insert(ctx context.Context, user *models.User, plain string) error {
	args := m.Called(ctx, user, plain)
	return args.Error(0)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) FindByName(ctx context.Context, name string) ([]models.User, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) FindByNumber(ctx context.Context, number int64) (*models.User, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindIDByNumber(ctx context.Context, number int64) (string, error) {
	args := m.Called(ctx, number)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) UpdateByNumber(ctx context.Context, number int64, patch models.UserPatch) error {
	args := m.Called(ctx, number, patch)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateByNickname(ctx context.Context, nickname string, patch models.UserPatch) error {
	args := m.Called(ctx, nickname, patch)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteByNumber(ctx context.Context, number int64) error {
	args := m.Called(ctx, number)
	return args.Error(0)
}

func (m *MockUserRepository) ExportToCSV(ctx context.Context, filePath string) (bool, error) {
	args := m.Called(ctx, filePath)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ImportFromCSV(ctx context.Context, filePath string) (int, error) {
	args := m.Called(ctx, filePath)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) ExportToJSON(ctx context.Context, filePath string) (bool, error) {
	args := m.Called(ctx, filePath)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ImportFromJSON(ctx context.Context, filePath string) (int, error) {
	args := m.Called(ctx, filePath)
	return args.Int(0), args.Error(1)
}

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Insert(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) FindByUserID(ctx context.Context, userID string) (*models.Post, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) FindByTitle(ctx context.Context, title string) ([]models.Post, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) FindAll(ctx context.Context) ([]models.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) UpdateByUserID(ctx context.Context, userID string, patch models.PostPatch) error {
	args := m.Called(ctx, userID, patch)
	return args.Error(0)
}

func (m *MockPostRepository) DeleteByUserID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockPostRepository) ExportToCSV(ctx context.Context, filePath string) (bool, error) {
	args := m.Called(ctx, filePath)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) ImportFromCSV(ctx context.Context, filePath string) (int, error) {
	args := m.Called(ctx, filePath)
	return args.Int(0), args.Error(1)
}

func (m *MockPostRepository) ExportToJSON(ctx context.Context, filePath string) (bool, error) {
	args := m.Called(ctx, filePath)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) ImportFromJSON(ctx context.Context, filePath string) (int, error) {
	args := m.Called(ctx, filePath)
	return args.Int(0), args.Error(1)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadExport(ctx context.Context, collection, filePath string) (string, error) {
	args := m.Called(ctx, collection, filePath)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) DeleteExport(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}
