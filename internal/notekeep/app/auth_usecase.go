// Package app реализует бизнес-логику сервиса notekeep.
package app

import (
	"context"
	"errors"
	"fmt"

	"notekeep/internal/notekeep/domain/entities"
	"notekeep/internal/notekeep/ports/repositories"
	"notekeep/internal/notekeep/ports/services"
)

// AuthUseCase представляет бизнес-логику работы с учетными записями.
// Сервис не хранит сессий: каждая защищенная операция заново
// аутентифицируется парой имя/пароль.
type AuthUseCase struct {
	users  repositories.UserRepository
	notes  repositories.NoteRepository
	digest services.DigestService
}

// NewAuthUseCase создает новый экземпляр AuthUseCase.
func NewAuthUseCase(users repositories.UserRepository, notes repositories.NoteRepository, digest services.DigestService) *AuthUseCase {
	return &AuthUseCase{
		users:  users,
		notes:  notes,
		digest: digest,
	}
}

// Register создает нового пользователя.
// Ключом записи служит имя в нижнем регистре, поэтому повторная
// регистрация в любом регистре завершается entities.ErrUsernameTaken.
// Сессия не создается: после регистрации клиент входит через Login.
func (uc *AuthUseCase) Register(ctx context.Context, username, password string) error {
	if err := entities.ValidateUsername(username); err != nil {
		return err
	}
	if err := entities.ValidatePassword(password); err != nil {
		return err
	}

	passwordDigest, err := uc.digest.Digest(ctx, password)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	if err := uc.users.Create(ctx, entities.NewUser(username, passwordDigest)); err != nil {
		if errors.Is(err, entities.ErrUsernameTaken) {
			return entities.ErrUsernameTaken
		}
		return fmt.Errorf("creating user: %w", err)
	}

	return nil
}

// Authenticate проверяет учетные данные и возвращает пользователя.
// Неизвестное имя и неверный пароль дают одну и ту же ошибку
// entities.ErrInvalidCredentials.
func (uc *AuthUseCase) Authenticate(ctx context.Context, username, password string) (*entities.User, error) {
	user, err := uc.users.FindByID(ctx, entities.UserID(username))
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, entities.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("finding user: %w", err)
	}

	match, err := uc.digest.Verify(ctx, password, user.PasswordDigest)
	if err != nil {
		return nil, fmt.Errorf("verifying password: %w", err)
	}
	if !match {
		return nil, entities.ErrInvalidCredentials
	}

	return user, nil
}

// Login аутентифицирует пользователя и возвращает его заметки.
// Каждый идентификатор из набора пользователя разрешается в запись;
// идентификаторы без записи молча пропускаются и не срывают вход.
func (uc *AuthUseCase) Login(ctx context.Context, username, password string) (*entities.User, []*entities.Note, error) {
	user, err := uc.Authenticate(ctx, username, password)
	if err != nil {
		return nil, nil, err
	}

	notes := make([]*entities.Note, 0, len(user.NoteIDs))
	for _, noteID := range user.NoteIDs {
		note, err := uc.notes.FindByID(ctx, noteID)
		if err != nil {
			if errors.Is(err, entities.ErrNoteNotFound) {
				continue
			}
			return nil, nil, fmt.Errorf("loading note %s: %w", noteID, err)
		}
		notes = append(notes, note)
	}

	return user, notes, nil
}

// ChangePassword заменяет дайджест пароля уже аутентифицированного
// пользователя. Другое серверное состояние не затрагивается.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, user *entities.User, newPassword string) error {
	if err := entities.ValidatePassword(newPassword); err != nil {
		return err
	}

	passwordDigest, err := uc.digest.Digest(ctx, newPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	if _, err := uc.users.Mutate(ctx, user.ID, func(u entities.User) entities.User {
		u.PasswordDigest = passwordDigest
		return u
	}); err != nil {
		return fmt.Errorf("updating password: %w", err)
	}

	return nil
}
