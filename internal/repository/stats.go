package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type statsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) StatsRepository {
	return &statsRepository{db: db}
}

// CountRecords возвращает число записей в каждой коллекции для /health.
func (r *statsRepository) CountRecords(ctx context.Context) (map[string]int, error) {
	counts := map[string]int{}

	for _, table := range []string{"admins", "users", "posts"} {
		var count int
		query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table)

		if err := r.db.GetContext(ctx, &count, query); err != nil {
			return nil, fmt.Errorf("ошибка при подсчёте записей в %s: %w", table, storeErr(err))
		}

		counts[table] = count
	}

	return counts, nil
}
