package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"managedb/internal/errs"
	"managedb/internal/models"
	"managedb/internal/password"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Insert(ctx context.Context, user *models.User, plain string) error {
	return r.insert(ctx, r.db, user, plain)
}

// insert работает и на соединении, и внутри транзакции импорта.
func (r *userRepository) insert(ctx context.Context, e sqlx.ExtContext, user *models.User, plain string) error {
	// create password hash
	digest, salt, err := password.Hash(plain)
	if err != nil {
		return err
	}

	// create user id
	user.ID = uuid.New().String()
	user.Password = digest
	user.Salt = salt

	query := `
		INSERT INTO users (id, nickname, phone_number, email, password, salt)
		VALUES (:id, :nickname, :phone_number, :email, :password, :salt)
	`

	_, err = sqlx.NamedExecContext(ctx, e, query, user)
	if err != nil {
		return fmt.Errorf("ошибка при создании пользователя: %w", storeErr(err))
	}

	return nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	query := `SELECT * FROM users`

	users := []models.User{}
	err := r.db.SelectContext(ctx, &users, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении пользователей: %w", storeErr(err))
	}

	return users, nil
}

// FindByName ищет по подстроке никнейма без учёта регистра.
func (r *userRepository) FindByName(ctx context.Context, name string) ([]models.User, error) {
	query := `SELECT * FROM users WHERE nickname ILIKE '%' || $1 || '%'`

	users := []models.User{}
	err := r.db.SelectContext(ctx, &users, query, name)
	if err != nil {
		return nil, fmt.Errorf("ошибка при поиске пользователей: %w", storeErr(err))
	}

	return users, nil
}

func (r *userRepository) FindByNumber(ctx context.Context, number int64) (*models.User, error) {
	query := `SELECT * FROM users WHERE phone_number = $1`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, number)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пользователь с номером %d: %w", number, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении пользователя по номеру: %w", storeErr(err))
	}

	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT * FROM users WHERE email = $1`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пользователь с email %s: %w", email, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении пользователя по email: %w", storeErr(err))
	}

	return &user, nil
}

func (r *userRepository) FindIDByNumber(ctx context.Context, number int64) (string, error) {
	query := `SELECT id FROM users WHERE phone_number = $1`

	var id string
	err := r.db.GetContext(ctx, &id, query, number)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("пользователь с номером %d: %w", number, errs.ErrNotFound)
		}
		return "", fmt.Errorf("ошибка при получении id пользователя: %w", storeErr(err))
	}

	return id, nil
}

func (r *userRepository) UpdateByNumber(ctx context.Context, number int64, patch models.UserPatch) error {
	return r.update(ctx, "phone_number", number, patch)
}

func (r *userRepository) UpdateByNickname(ctx context.Context, nickname string, patch models.UserPatch) error {
	return r.update(ctx, "nickname", nickname, patch)
}

// update собирает SET только из заданных полей patch. Пароль, если он задан,
// всегда проходит через хеширование - сырой пароль в UPDATE не попадает.
func (r *userRepository) update(ctx context.Context, keyColumn string, keyValue interface{}, patch models.UserPatch) error {
	if patch.IsEmpty() {
		return fmt.Errorf("нет полей для обновления: %w", errs.ErrInvalidArgument)
	}

	set := []string{}
	args := []interface{}{}

	appendSet := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Nickname != nil {
		appendSet("nickname", *patch.Nickname)
	}
	if patch.PhoneNumber != nil {
		appendSet("phone_number", *patch.PhoneNumber)
	}
	if patch.Email != nil {
		appendSet("email", *patch.Email)
	}
	if patch.Password != nil {
		digest, salt, err := password.Hash(*patch.Password)
		if err != nil {
			return err
		}
		appendSet("password", digest)
		appendSet("salt", salt)
	}

	args = append(args, keyValue)
	query := fmt.Sprintf(`UPDATE users SET %s WHERE %s = $%d`, strings.Join(set, ", "), keyColumn, len(args))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении пользователя: %w", storeErr(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", storeErr(err))
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пользователь с %s = %v: %w", keyColumn, keyValue, errs.ErrNotFound)
	}

	return nil
}

func (r *userRepository) DeleteByNumber(ctx context.Context, number int64) error {
	query := `DELETE FROM users WHERE phone_number = $1`

	result, err := r.db.ExecContext(ctx, query, number)
	if err != nil {
		return fmt.Errorf("ошибка при удалении пользователя: %w", storeErr(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", storeErr(err))
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пользователь с номером %d: %w", number, errs.ErrNotFound)
	}

	return nil
}

// ExportToCSV выгружает пользователей без учётных данных.
// Пустая коллекция - это false без ошибки, а не сбой.
func (r *userRepository) ExportToCSV(ctx context.Context, filePath string) (bool, error) {
	users, err := r.FindAll(ctx)
	if err != nil {
		return false, err
	}
	if len(users) == 0 {
		return false, nil
	}

	rows := make([][]string, 0, len(users))
	for _, user := range users {
		rows = append(rows, []string{
			user.ID,
			user.Nickname,
			strconv.FormatInt(user.PhoneNumber, 10),
			user.Email,
		})
	}

	if err := writeCSVFile(filePath, []string{"id", "nickname", "phone_number", "email"}, rows); err != nil {
		return false, err
	}

	return true, nil
}

func (r *userRepository) ImportFromCSV(ctx context.Context, filePath string) (int, error) {
	header, rows, err := readCSVFile(filePath)
	if err != nil {
		return 0, err
	}

	column := columnIndex(header)
	for _, name := range []string{"nickname", "phone_number", "email"} {
		if _, ok := column[name]; !ok {
			return 0, fmt.Errorf("в CSV нет колонки %s: %w", name, errs.ErrInvalidArgument)
		}
	}

	users := make([]models.User, 0, len(rows))
	for rowNum, row := range rows {
		number, err := strconv.ParseInt(row[column["phone_number"]], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("строка %d: номер телефона %q не число: %w", rowNum+1, row[column["phone_number"]], errs.ErrInvalidArgument)
		}

		users = append(users, models.User{
			Nickname:    row[column["nickname"]],
			PhoneNumber: number,
			Email:       row[column["email"]],
		})
	}

	return r.importUsers(ctx, users)
}

// ExportToJSON выгружает записи целиком, включая дайджест и соль;
// открытого пароля в БД нет, поэтому нет его и в выгрузке.
func (r *userRepository) ExportToJSON(ctx context.Context, filePath string) (bool, error) {
	users, err := r.FindAll(ctx)
	if err != nil {
		return false, err
	}
	if len(users) == 0 {
		return false, nil
	}

	if err := writeJSONFile(filePath, users); err != nil {
		return false, err
	}

	return true, nil
}

func (r *userRepository) ImportFromJSON(ctx context.Context, filePath string) (int, error) {
	var records []models.User
	if err := readJSONFile(filePath, &records); err != nil {
		return 0, err
	}

	users := make([]models.User, 0, len(records))
	for _, record := range records {
		users = append(users, models.User{
			Nickname:    record.Nickname,
			PhoneNumber: record.PhoneNumber,
			Email:       record.Email,
		})
	}

	return r.importUsers(ctx, users)
}

// importUsers вставляет записи в одной транзакции: либо импортируется всё,
// либо ничего. Пароль у импортированных всегда плейсхолдер, который
// пользователь должен сменить.
func (r *userRepository) importUsers(ctx context.Context, users []models.User) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("ошибка при открытии транзакции импорта: %w", storeErr(err))
	}
	defer tx.Rollback()

	imported := 0
	for i := range users {
		if err := r.insert(ctx, tx, &users[i], placeholderPassword); err != nil {
			return 0, fmt.Errorf("импорт прерван на записи %d (обработано %d): %w", i+1, imported, err)
		}
		imported++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("ошибка при фиксации импорта: %w", storeErr(err))
	}

	return imported, nil
}
