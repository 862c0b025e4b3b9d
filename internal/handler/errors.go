package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"managedb/internal/errs"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// WriteSuccess - функция для успешных ответов
func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteDomainError сопоставляет sentinel-ошибку со статус-кодом.
// Текст ошибок драйвера наружу не уходит: клиент видит только вид ошибки.
func WriteDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errs.ErrDuplicateKey):
		WriteError(w, "Уже существует запись с таким "+conflictField(err), http.StatusConflict)
	case errors.Is(err, errs.ErrNotFound):
		WriteError(w, "Запись не найдена", http.StatusNotFound)
	case errors.Is(err, errs.ErrInvalidArgument):
		WriteError(w, "Некорректные данные запроса", http.StatusBadRequest)
	case errors.Is(err, errs.ErrIO):
		WriteError(w, "Ошибка чтения или записи файла", http.StatusInternalServerError)
	case errors.Is(err, errs.ErrStoreUnavailable):
		WriteError(w, "Хранилище недоступно", http.StatusServiceUnavailable)
	default:
		WriteError(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
	}
}

// conflictField вычисляет конфликтующее поле по имени ограничения из миграций.
func conflictField(err error) string {
	message := err.Error()
	for _, field := range []string{"admin_account", "nickname", "phone_number", "email"} {
		if strings.Contains(message, field) {
			return field
		}
	}
	return "уникальным полем"
}
