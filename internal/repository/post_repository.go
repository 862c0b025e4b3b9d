package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"managedb/internal/errs"
	"managedb/internal/models"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Insert(ctx context.Context, post *models.Post) error {
	return r.insert(ctx, r.db, post)
}

func (r *postRepository) insert(ctx context.Context, e sqlx.ExtContext, post *models.Post) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}

	// дата назначается сервером, клиентская не обязательна
	if post.Date.IsZero() {
		post.Date = time.Now()
	}

	query := `
		INSERT INTO posts (id, user_id, title, content, date)
		VALUES (:id, :user_id, :title, :content, :date)
	`

	_, err := sqlx.NamedExecContext(ctx, e, query, post)
	if err != nil {
		return fmt.Errorf("ошибка при создании поста: %w", storeErr(err))
	}

	return nil
}

// FindByUserID возвращает не более одного поста, даже если у пользователя
// их несколько: какой именно - не гарантируется. Известное ограничение,
// массовые операции ниже, наоборот, затрагивают все посты пользователя.
func (r *postRepository) FindByUserID(ctx context.Context, userID string) (*models.Post, error) {
	query := `SELECT * FROM posts WHERE user_id = $1 LIMIT 1`

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пост пользователя %s: %w", userID, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", storeErr(err))
	}

	return &post, nil
}

// FindByTitle ищет по подстроке заголовка без учёта регистра.
func (r *postRepository) FindByTitle(ctx context.Context, title string) ([]models.Post, error) {
	query := `SELECT * FROM posts WHERE title ILIKE '%' || $1 || '%'`

	posts := []models.Post{}
	err := r.db.SelectContext(ctx, &posts, query, title)
	if err != nil {
		return nil, fmt.Errorf("ошибка при поиске постов: %w", storeErr(err))
	}

	return posts, nil
}

func (r *postRepository) FindAll(ctx context.Context) ([]models.Post, error) {
	query := `SELECT * FROM posts`

	posts := []models.Post{}
	err := r.db.SelectContext(ctx, &posts, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов: %w", storeErr(err))
	}

	return posts, nil
}

// UpdateByUserID обновляет ВСЕ посты пользователя заданными полями patch.
func (r *postRepository) UpdateByUserID(ctx context.Context, userID string, patch models.PostPatch) error {
	if patch.IsEmpty() {
		return fmt.Errorf("нет полей для обновления: %w", errs.ErrInvalidArgument)
	}

	set := []string{}
	args := []interface{}{}

	if patch.Title != nil {
		args = append(args, *patch.Title)
		set = append(set, fmt.Sprintf("title = $%d", len(args)))
	}
	if patch.Content != nil {
		args = append(args, *patch.Content)
		set = append(set, fmt.Sprintf("content = $%d", len(args)))
	}

	args = append(args, userID)
	query := fmt.Sprintf(`UPDATE posts SET %s WHERE user_id = $%d`, strings.Join(set, ", "), len(args))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении постов: %w", storeErr(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", storeErr(err))
	}

	if rowsAffected == 0 {
		return fmt.Errorf("посты пользователя %s: %w", userID, errs.ErrNotFound)
	}

	return nil
}

// DeleteByUserID удаляет ВСЕ посты пользователя.
func (r *postRepository) DeleteByUserID(ctx context.Context, userID string) error {
	query := `DELETE FROM posts WHERE user_id = $1`

	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении постов: %w", storeErr(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", storeErr(err))
	}

	if rowsAffected == 0 {
		return fmt.Errorf("посты пользователя %s: %w", userID, errs.ErrNotFound)
	}

	return nil
}

func (r *postRepository) ExportToCSV(ctx context.Context, filePath string) (bool, error) {
	posts, err := r.FindAll(ctx)
	if err != nil {
		return false, err
	}
	if len(posts) == 0 {
		return false, nil
	}

	rows := make([][]string, 0, len(posts))
	for _, post := range posts {
		rows = append(rows, []string{
			post.ID,
			post.UserID,
			post.Title,
			post.Content,
			post.Date.Format(time.RFC3339),
		})
	}

	if err := writeCSVFile(filePath, []string{"id", "user_id", "title", "content", "date"}, rows); err != nil {
		return false, err
	}

	return true, nil
}

func (r *postRepository) ImportFromCSV(ctx context.Context, filePath string) (int, error) {
	header, rows, err := readCSVFile(filePath)
	if err != nil {
		return 0, err
	}

	column := columnIndex(header)
	for _, name := range []string{"user_id", "title", "content", "date"} {
		if _, ok := column[name]; !ok {
			return 0, fmt.Errorf("в CSV нет колонки %s: %w", name, errs.ErrInvalidArgument)
		}
	}

	posts := make([]models.Post, 0, len(rows))
	for rowNum, row := range rows {
		post := models.Post{
			UserID:  row[column["user_id"]],
			Title:   row[column["title"]],
			Content: row[column["content"]],
		}

		if raw := row[column["date"]]; raw != "" {
			date, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				return 0, fmt.Errorf("строка %d: некорректная дата %q: %w", rowNum+1, raw, errs.ErrInvalidArgument)
			}
			post.Date = date
		}

		posts = append(posts, post)
	}

	return r.importPosts(ctx, posts)
}

func (r *postRepository) ExportToJSON(ctx context.Context, filePath string) (bool, error) {
	posts, err := r.FindAll(ctx)
	if err != nil {
		return false, err
	}
	if len(posts) == 0 {
		return false, nil
	}

	if err := writeJSONFile(filePath, posts); err != nil {
		return false, err
	}

	return true, nil
}

func (r *postRepository) ImportFromJSON(ctx context.Context, filePath string) (int, error) {
	var records []models.Post
	if err := readJSONFile(filePath, &records); err != nil {
		return 0, err
	}

	posts := make([]models.Post, 0, len(records))
	for _, record := range records {
		posts = append(posts, models.Post{
			UserID:  record.UserID,
			Title:   record.Title,
			Content: record.Content,
			Date:    record.Date,
		})
	}

	return r.importPosts(ctx, posts)
}

// importPosts - импорт в одной транзакции, как и у пользователей.
func (r *postRepository) importPosts(ctx context.Context, posts []models.Post) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("ошибка при открытии транзакции импорта: %w", storeErr(err))
	}
	defer tx.Rollback()

	imported := 0
	for i := range posts {
		if err := r.insert(ctx, tx, &posts[i]); err != nil {
			return 0, fmt.Errorf("импорт прерван на записи %d (обработано %d): %w", i+1, imported, err)
		}
		imported++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("ошибка при фиксации импорта: %w", storeErr(err))
	}

	return imported, nil
}
