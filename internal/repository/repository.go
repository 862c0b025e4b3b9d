package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"managedb/internal/errs"
	"managedb/internal/models"
)

type AdminRepository interface {
	Insert(ctx context.Context, admin *models.Admin, plain string) error
	UpdateByName(ctx context.Context, name string, admin *models.Admin, plain string) error
	DeleteByName(ctx context.Context, name string) error
	FindByName(ctx context.Context, name string) ([]models.Admin, error)
	FindByAccount(ctx context.Context, account string) (*models.Admin, error)
}

type UserRepository interface {
	Insert(ctx context.Context, user *models.User, plain string) error
	FindAll(ctx context.Context) ([]models.User, error)
	FindByName(ctx context.Context, name string) ([]models.User, error)
	FindByNumber(ctx context.Context, number int64) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindIDByNumber(ctx context.Context, number int64) (string, error)
	UpdateByNumber(ctx context.Context, number int64, patch models.UserPatch) error
	UpdateByNickname(ctx context.Context, nickname string, patch models.UserPatch) error
	DeleteByNumber(ctx context.Context, number int64) error
	ExportToCSV(ctx context.Context, filePath string) (bool, error)
	ImportFromCSV(ctx context.Context, filePath string) (int, error)
	ExportToJSON(ctx context.Context, filePath string) (bool, error)
	ImportFromJSON(ctx context.Context, filePath string) (int, error)
}

type PostRepository interface {
	Insert(ctx context.Context, post *models.Post) error
	FindByUserID(ctx context.Context, userID string) (*models.Post, error)
	FindByTitle(ctx context.Context, title string) ([]models.Post, error)
	FindAll(ctx context.Context) ([]models.Post, error)
	UpdateByUserID(ctx context.Context, userID string, patch models.PostPatch) error
	DeleteByUserID(ctx context.Context, userID string) error
	ExportToCSV(ctx context.Context, filePath string) (bool, error)
	ImportFromCSV(ctx context.Context, filePath string) (int, error)
	ExportToJSON(ctx context.Context, filePath string) (bool, error)
	ImportFromJSON(ctx context.Context, filePath string) (int, error)
}

type StatsRepository interface {
	CountRecords(ctx context.Context) (map[string]int, error)
}

type Repository struct {
	Admin AdminRepository
	User  UserRepository
	Post  PostRepository
	Stats StatsRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Admin: NewAdminRepository(db),
		User:  NewUserRepository(db),
		Post:  NewPostRepository(db),
		Stats: NewStatsRepository(db),
	}
}

// storeErr переводит ошибку драйвера в доменный вид: нарушение уникального
// индекса становится ErrDuplicateKey, всё остальное - ErrStoreUnavailable.
// Текст драйвера наружу не отдаётся, он остаётся только в цепочке %w для логов.
func storeErr(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return fmt.Errorf("%w: %s", errs.ErrDuplicateKey, pqErr.Constraint)
	}
	return fmt.Errorf("%w: %v", errs.ErrStoreUnavailable, err)
}
