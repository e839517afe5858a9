package repositories

import (
	"context"

	"notekeep/internal/notekeep/domain/entities"
)

// NoteRepository определяет операции сохранения заметок.
type NoteRepository interface {
	// Create сохраняет новую заметку.
	Create(ctx context.Context, note *entities.Note) error

	// FindByID возвращает заметку или entities.ErrNoteNotFound.
	FindByID(ctx context.Context, id string) (*entities.Note, error)

	// Patch накладывает переданные поля на текущую запись.
	// Поля именуются как в JSON-кодировке записи; отсутствующие
	// поля остаются без изменений.
	Patch(ctx context.Context, id string, fields map[string]any) (*entities.Note, error)

	// Delete удаляет заметку; повторное удаление не является ошибкой.
	Delete(ctx context.Context, id string) error

	// IDs возвращает идентификаторы всех существующих заметок.
	IDs(ctx context.Context) ([]string, error)
}
