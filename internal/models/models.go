package models

import (
	"time"
)

type Admin struct {
	AdminAccount  string `json:"adminAccount" db:"admin_account"`
	AdminName     string `json:"adminName" db:"admin_name"`
	AdminPassword string `json:"adminPassword" db:"admin_password"`
	Salt          string `json:"salt" db:"salt"`
}

type User struct {
	ID          string `json:"id" db:"id"`
	Nickname    string `json:"nickname" db:"nickname"`
	PhoneNumber int64  `json:"phoneNumber" db:"phone_number"`
	Email       string `json:"email" db:"email"`
	Password    string `json:"password" db:"password"`
	Salt        string `json:"salt" db:"salt"`
}

type Post struct {
	ID      string    `json:"id" db:"id"`
	UserID  string    `json:"userId" db:"user_id"`
	Title   string    `json:"title" db:"title"`
	Content string    `json:"content" db:"content"`
	Date    time.Time `json:"date" db:"date"`
}

// UserPatch - частичное обновление пользователя. nil-поле не трогается.
// Password здесь всегда открытый текст: репозиторий хеширует его перед записью.
type UserPatch struct {
	Nickname    *string `json:"nickname"`
	PhoneNumber *int64  `json:"phoneNumber"`
	Email       *string `json:"email"`
	Password    *string `json:"password"`
}

func (p UserPatch) IsEmpty() bool {
	return p.Nickname == nil && p.PhoneNumber == nil && p.Email == nil && p.Password == nil
}

// PostPatch - частичное обновление поста (только title и content).
type PostPatch struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (p PostPatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil
}
