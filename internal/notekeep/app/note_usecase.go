package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"notekeep/internal/notekeep/domain/entities"
	"notekeep/internal/notekeep/ports/repositories"
)

// NoteUseCase представляет бизнес-логику работы с заметками.
//
// Создание и удаление заметки затрагивают две записи: саму заметку и
// набор идентификаторов владельца. Эти две записи пишутся по очереди
// без транзакции; сбой между ними оставляет висячий идентификатор
// либо заметку без ссылки. Вход терпим к первому случаю, второй
// делает заметку недостижимой.
type NoteUseCase struct {
	notes repositories.NoteRepository
	users repositories.UserRepository
}

// NewNoteUseCase создает новый экземпляр NoteUseCase.
func NewNoteUseCase(notes repositories.NoteRepository, users repositories.UserRepository) *NoteUseCase {
	return &NoteUseCase{
		notes: notes,
		users: users,
	}
}

// CreateNote создает заметку с содержимым по умолчанию для пользователя.
func (uc *NoteUseCase) CreateNote(ctx context.Context, user *entities.User) (*entities.Note, error) {
	note := entities.NewNote(uuid.NewString(), user.ID)

	if err := uc.notes.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("creating note: %w", err)
	}

	if _, err := uc.users.Mutate(ctx, user.ID, func(u entities.User) entities.User {
		u.AddNoteID(note.ID)
		return u
	}); err != nil {
		return nil, fmt.Errorf("registering note for user: %w", err)
	}

	return note, nil
}

// UpdateNote изменяет переданные поля заметки и обновляет updatedAt.
// Владение проверяется по записи заметки, а не по набору владельца.
func (uc *NoteUseCase) UpdateNote(ctx context.Context, user *entities.User, noteID string, title, content *string) (*entities.Note, error) {
	note, err := uc.notes.FindByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if !note.OwnedBy(user.ID) {
		return nil, entities.ErrNotNoteOwner
	}

	// updatedAt обновляется всегда, даже если поля не переданы.
	fields := map[string]any{
		"updatedAt": time.Now().UTC(),
	}
	if title != nil {
		fields["title"] = *title
	}
	if content != nil {
		fields["content"] = *content
	}

	updated, err := uc.notes.Patch(ctx, noteID, fields)
	if err != nil {
		return nil, fmt.Errorf("updating note: %w", err)
	}

	return updated, nil
}

// DeleteNote удаляет заметку и убирает ее идентификатор у владельца.
func (uc *NoteUseCase) DeleteNote(ctx context.Context, user *entities.User, noteID string) error {
	note, err := uc.notes.FindByID(ctx, noteID)
	if err != nil {
		return err
	}
	if !note.OwnedBy(user.ID) {
		return entities.ErrNotNoteOwner
	}

	if err := uc.notes.Delete(ctx, noteID); err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}

	if _, err := uc.users.Mutate(ctx, user.ID, func(u entities.User) entities.User {
		u.RemoveNoteID(noteID)
		return u
	}); err != nil {
		return fmt.Errorf("unregistering note for user: %w", err)
	}

	return nil
}
