package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"managedb/internal/config"
	"managedb/internal/models"
	"managedb/internal/password"
	"managedb/internal/repository"
)

type AuthService interface {
	Register(ctx context.Context, account, name, plain string) (*models.Admin, error)
	Login(ctx context.Context, account, plain string) (*models.Admin, string, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
	GetAdminFromToken(tokenString string) (*models.Admin, error)
}

type authService struct {
	adminRepo repository.AdminRepository
	cfg       *config.Config
}

func NewAuthService(adminRepo repository.AdminRepository, cfg *config.Config) AuthService {
	return &authService{
		adminRepo: adminRepo,
		cfg:       cfg,
	}
}

func (s *authService) Register(ctx context.Context, account, name, plain string) (*models.Admin, error) {
	admin := &models.Admin{
		AdminAccount: account,
		AdminName:    name,
	}

	if err := s.adminRepo.Insert(ctx, admin, plain); err != nil {
		return nil, err
	}

	return admin, nil
}

// Login проверяет учётные данные и выдаёт access token.
// Несуществующий аккаунт и неверный пароль для вызывающего неразличимы.
func (s *authService) Login(ctx context.Context, account, plain string) (*models.Admin, string, error) {
	admin, err := s.adminRepo.FindByAccount(ctx, account)
	if err != nil {
		return nil, "", fmt.Errorf("неверный аккаунт или пароль")
	}

	if !password.Verify(plain, admin.AdminPassword) {
		return nil, "", fmt.Errorf("неверный аккаунт или пароль")
	}

	accessToken, err := s.generateAccessToken(admin)
	if err != nil {
		return nil, "", fmt.Errorf("ошибка генерации access token: %w", err)
	}

	return admin, accessToken, nil
}

func (s *authService) generateAccessToken(admin *models.Admin) (string, error) {
	claims := jwt.MapClaims{
		"adminAccount": admin.AdminAccount,
		"adminName":    admin.AdminName,
		"exp":          time.Now().Add(s.cfg.AccessTokenDuration).Unix(),
		"iat":          time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return tokenString, nil
}

func (s *authService) ValidateToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	})

	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга токена: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("недействительный токен")
	}

	return token, nil
}

func (s *authService) GetAdminFromToken(tokenString string) (*models.Admin, error) {
	token, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("неверный формат claims")
	}

	account, ok1 := claims["adminAccount"].(string)
	name, ok2 := claims["adminName"].(string)
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("неверные данные в токене")
	}

	return &models.Admin{
		AdminAccount: account,
		AdminName:    name,
	}, nil
}
