package storage

import (
	"context"
	"errors"
	"fmt"

	"notekeep/internal/notekeep/domain/entities"
	"notekeep/internal/notekeep/ports/kv"
)

// Вид записей заметок в общем разделе.
const noteKind = "note"

// NoteRepository реализует repositories.NoteRepository
// поверх коллекции записей заметок.
type NoteRepository struct {
	records *Collection[entities.Note]
}

// NewNoteRepository создает новый репозиторий заметок.
func NewNoteRepository(store kv.Store) *NoteRepository {
	return &NoteRepository{
		records: NewCollection[entities.Note](store, noteKind),
	}
}

// Create сохраняет новую заметку.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) error {
	if err := r.records.Create(ctx, note.ID, *note); err != nil {
		return fmt.Errorf("creating note: %w", err)
	}
	return nil
}

// FindByID возвращает заметку по идентификатору.
func (r *NoteRepository) FindByID(ctx context.Context, id string) (*entities.Note, error) {
	note, err := r.records.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, entities.ErrNoteNotFound
		}
		return nil, fmt.Errorf("finding note: %w", err)
	}
	return &note, nil
}

// Patch накладывает переданные поля на текущую запись заметки.
func (r *NoteRepository) Patch(ctx context.Context, id string, fields map[string]any) (*entities.Note, error) {
	note, err := r.records.Patch(ctx, id, fields)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, entities.ErrNoteNotFound
		}
		return nil, fmt.Errorf("patching note: %w", err)
	}
	return &note, nil
}

// Delete удаляет заметку; повторное удаление не является ошибкой.
func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	if err := r.records.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}
	return nil
}

// IDs возвращает идентификаторы всех существующих заметок.
func (r *NoteRepository) IDs(ctx context.Context) ([]string, error) {
	ids, err := r.records.IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	return ids, nil
}
