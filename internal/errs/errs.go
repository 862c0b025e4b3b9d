// Package errs содержит sentinel-ошибки, общие для всех слоёв.
// Репозитории переводят низкоуровневые ошибки стора в эти виды,
// а HTTP-слой сопоставляет их со статус-кодами через errors.Is.
package errs

import "errors"

var (
	// ErrDuplicateKey - нарушено ограничение уникальности (account, nickname, phone, email).
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrNotFound - целевая запись не существует.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument - некорректный ввод (нечисловой телефон, пустой patch и т.п.).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIO - ошибка чтения/записи файла при импорте/экспорте.
	ErrIO = errors.New("io error")

	// ErrStoreUnavailable - БД недоступна или вернула неожиданную ошибку.
	ErrStoreUnavailable = errors.New("store unavailable")
)
