package test

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"

	"managedb/internal/models"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, account, name, plain string) (*models.Admin, error) {
	args := m.Called(ctx, account, name, plain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admin), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, account, plain string) (*models.Admin, string, error) {
	args := m.Called(ctx, account, plain)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.Admin), args.String(1), args.Error(2)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*jwt.Token, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jwt.Token), args.Error(1)
}

func (m *MockAuthService) GetAdminFromToken(tokenString string) (*models.Admin, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admin), args.Error(1)
}

type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) UpdateAdmin(ctx context.Context, name string, admin *models.Admin, plain string) error {
	args := m.Called(ctx, name, admin, plain)
	return args.Error(0)
}

func (m *MockAdminService) DeleteAdmin(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, user *models.User, plain string) error {
	args := m.Called(ctx, user, plain)
	return args.Error(0)
}

func (m *MockUserService) UpdateUserByNickname(ctx context.Context, nickname string, patch models.UserPatch) error {
	args := m.Called(ctx, nickname, patch)
	return args.Error(0)
}

func (m *MockUserService) UpdateUserByNumber(ctx context.Context, number int64, patch models.UserPatch) error {
	args := m.Called(ctx, number, patch)
	return args.Error(0)
}

func (m *MockUserService) DeleteUser(ctx context.Context, number int64) error {
	args := m.Called(ctx, number)
	return args.Error(0)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(ctx context.Context, userID, title, content string) (*models.Post, error) {
	args := m.Called(ctx, userID, title, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) UpdatePosts(ctx context.Context, userID string, patch models.PostPatch) error {
	args := m.Called(ctx, userID, patch)
	return args.Error(0)
}

func (m *MockPostService) DeletePosts(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockTransferService struct {
	mock.Mock
}

func (m *MockTransferService) Export(ctx context.Context, collection, format, filePath string, upload bool) (bool, string, error) {
	args := m.Called(ctx, collection, format, filePath, upload)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockTransferService) Import(ctx context.Context, collection, format, filePath string) (int, error) {
	args := m.Called(ctx, collection, format, filePath)
	return args.Int(0), args.Error(1)
}

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

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) CountRecords(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}
