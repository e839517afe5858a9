// Package entities определяет доменные сущности сервиса заметок.
package entities

import (
	"errors"
	"strings"
)

// Минимальные длины учетных данных.
const (
	MinUsernameLength = 3
	MinPasswordLength = 6
)

// Ошибки домена пользователя.
var (
	ErrUsernameTooShort = errors.New("username must contain at least 3 characters")
	ErrPasswordTooShort = errors.New("password must contain at least 6 characters")
	ErrUsernameTaken    = errors.New("username is already taken")
	ErrUserNotFound     = errors.New("user not found")

	// ErrInvalidCredentials возвращается и для неизвестного пользователя,
	// и для неверного пароля: внешнее сообщение не должно раскрывать,
	// какая из проверок не прошла.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// User представляет учетную запись пользователя.
// ID - это имя пользователя в нижнем регистре и одновременно ключ хранения,
// поэтому уникальность имени не зависит от регистра.
type User struct {
	ID             string   `json:"id"`
	Username       string   `json:"username"`
	PasswordDigest string   `json:"passwordDigest"`
	NoteIDs        []string `json:"noteIds"`
}

// NewUser создает нового пользователя с пустым набором заметок.
func NewUser(username, passwordDigest string) *User {
	return &User{
		ID:             UserID(username),
		Username:       username,
		PasswordDigest: passwordDigest,
		NoteIDs:        []string{},
	}
}

// UserID возвращает канонический идентификатор для имени пользователя.
func UserID(username string) string {
	return strings.ToLower(username)
}

// ValidateUsername проверяет имя пользователя перед регистрацией.
func ValidateUsername(username string) error {
	if len(strings.TrimSpace(username)) < MinUsernameLength {
		return ErrUsernameTooShort
	}
	return nil
}

// ValidatePassword проверяет пароль перед сохранением.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// AddNoteID добавляет идентификатор заметки в набор пользователя.
// Набор хранится как срез, но семантически является множеством:
// повторное добавление не создает дубликатов.
func (u *User) AddNoteID(noteID string) {
	for _, id := range u.NoteIDs {
		if id == noteID {
			return
		}
	}
	u.NoteIDs = append(u.NoteIDs, noteID)
}

// RemoveNoteID удаляет идентификатор заметки из набора пользователя.
func (u *User) RemoveNoteID(noteID string) {
	kept := u.NoteIDs[:0]
	for _, id := range u.NoteIDs {
		if id != noteID {
			kept = append(kept, id)
		}
	}
	u.NoteIDs = kept
}
