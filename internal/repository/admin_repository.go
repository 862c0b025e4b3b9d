package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"managedb/internal/errs"
	"managedb/internal/models"
	"managedb/internal/password"
)

type adminRepository struct {
	db *sqlx.DB
}

func NewAdminRepository(db *sqlx.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Insert(ctx context.Context, admin *models.Admin, plain string) error {
	// create password hash
	digest, salt, err := password.Hash(plain)
	if err != nil {
		return err
	}

	admin.AdminPassword = digest
	admin.Salt = salt

	query := `
		INSERT INTO admins (admin_account, admin_name, admin_password, salt)
		VALUES (:admin_account, :admin_name, :admin_password, :salt)
	`

	_, err = r.db.NamedExecContext(ctx, query, admin)
	if err != nil {
		return fmt.Errorf("ошибка при создании администратора: %w", storeErr(err))
	}

	return nil
}

// UpdateByName - полная замена записи по имени. Пароль приходит открытым
// текстом и хешируется перед записью, сырой пароль в БД не попадает.
func (r *adminRepository) UpdateByName(ctx context.Context, name string, admin *models.Admin, plain string) error {
	digest, salt, err := password.Hash(plain)
	if err != nil {
		return err
	}

	admin.AdminPassword = digest
	admin.Salt = salt

	query := `
		UPDATE admins
		SET admin_account = $1, admin_name = $2, admin_password = $3, salt = $4
		WHERE admin_name = $5
	`

	result, err := r.db.ExecContext(ctx, query, admin.AdminAccount, admin.AdminName, admin.AdminPassword, admin.Salt, name)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении администратора: %w", storeErr(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", storeErr(err))
	}

	if rowsAffected == 0 {
		return fmt.Errorf("администратор с именем %s: %w", name, errs.ErrNotFound)
	}

	return nil
}

func (r *adminRepository) DeleteByName(ctx context.Context, name string) error {
	query := `DELETE FROM admins WHERE admin_name = $1`

	result, err := r.db.ExecContext(ctx, query, name)
	if err != nil {
		return fmt.Errorf("ошибка при удалении администратора: %w", storeErr(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", storeErr(err))
	}

	if rowsAffected == 0 {
		return fmt.Errorf("администратор с именем %s: %w", name, errs.ErrNotFound)
	}

	return nil
}

// FindByName ищет по подстроке имени без учёта регистра.
// Пустой результат - не ошибка.
func (r *adminRepository) FindByName(ctx context.Context, name string) ([]models.Admin, error) {
	query := `SELECT * FROM admins WHERE admin_name ILIKE '%' || $1 || '%'`

	admins := []models.Admin{}
	err := r.db.SelectContext(ctx, &admins, query, name)
	if err != nil {
		return nil, fmt.Errorf("ошибка при поиске администраторов: %w", storeErr(err))
	}

	return admins, nil
}

func (r *adminRepository) FindByAccount(ctx context.Context, account string) (*models.Admin, error) {
	query := `SELECT * FROM admins WHERE admin_account = $1`

	var admin models.Admin
	err := r.db.GetContext(ctx, &admin, query, account)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("администратор с аккаунтом %s: %w", account, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении администратора: %w", storeErr(err))
	}

	return &admin, nil
}
