package dto

import (
	"time"

	"notekeep/internal/notekeep/domain/entities"
)

// Формат времени в публичном API: сортируемая текстовая метка.
const wireTimeFormat = time.RFC3339

// UpdateNoteRequest содержит изменяемые поля заметки.
// nil означает "оставить без изменений".
type UpdateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// Note представляет заметку в публичном API; все поля - строки.
type Note struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	UserID    string `json:"userId"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// NoteFromEntity преобразует доменную заметку в представление API.
func NoteFromEntity(note *entities.Note) *Note {
	return &Note{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		UserID:    note.UserID,
		CreatedAt: note.CreatedAt.UTC().Format(wireTimeFormat),
		UpdatedAt: note.UpdatedAt.UTC().Format(wireTimeFormat),
	}
}

// NotesFromEntities преобразует срез доменных заметок в представление API.
func NotesFromEntities(notes []*entities.Note) []*Note {
	result := make([]*Note, 0, len(notes))
	for _, note := range notes {
		result = append(result, NoteFromEntity(note))
	}
	return result
}
