package entities

import (
	"errors"
	"time"
)

// Значения по умолчанию для новой заметки.
const (
	DefaultNoteTitle   = "İsimsiz Not"
	DefaultNoteContent = ""
)

// Ошибки домена заметок.
var (
	ErrNoteNotFound = errors.New("note not found")
	ErrNotNoteOwner = errors.New("note belongs to another user")
)

// Note представляет собой заметку пользователя.
// UserID назначается при создании и больше не меняется.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewNote создает заметку с заголовком и содержимым по умолчанию.
func NewNote(id, userID string) *Note {
	now := time.Now().UTC()
	return &Note{
		ID:        id,
		Title:     DefaultNoteTitle,
		Content:   DefaultNoteContent,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// OwnedBy сообщает, принадлежит ли заметка указанному пользователю.
// Владение проверяется по самой записи, а не по индексу владельца.
func (n *Note) OwnedBy(userID string) bool {
	return n.UserID == userID
}
