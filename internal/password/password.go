// Package password - модуль работы с учётными данными: хеширование пароля
// со случайной солью и проверка без восстановления открытого текста.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// saltLen - длина префикса bcrypt-дайджеста, содержащего версию, cost и соль
// ("$2a$10$" + 22 символа соли). Соль хранится рядом с дайджестом.
const saltLen = 29

// Hash хеширует секрет bcrypt со свежей случайной солью и возвращает
// дайджест вместе с солью для хранения.
func Hash(secret string) (digest string, salt string, err error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", "", fmt.Errorf("ошибка при хешировании пароля: %w", err)
	}

	digest = string(hashed)
	if len(digest) < saltLen {
		return "", "", fmt.Errorf("некорректный bcrypt-дайджест длиной %d", len(digest))
	}

	return digest, digest[:saltLen], nil
}

// Verify проверяет секрет по дайджесту, используя вшитую в него соль.
// Сравнение внутри bcrypt выполняется за время, не зависящее от позиции
// расхождения, поэтому по времени ответа нельзя судить о совпавших байтах.
func Verify(secret, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret)) == nil
}
