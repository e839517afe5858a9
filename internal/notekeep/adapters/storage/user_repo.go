package storage

import (
	"context"
	"errors"
	"fmt"

	"notekeep/internal/notekeep/domain/entities"
	"notekeep/internal/notekeep/ports/kv"
)

// Вид записей пользователей в общем разделе.
const userKind = "user"

// UserRepository реализует repositories.UserRepository
// поверх коллекции записей пользователей.
type UserRepository struct {
	records *Collection[entities.User]
}

// NewUserRepository создает новый репозиторий пользователей.
func NewUserRepository(store kv.Store) *UserRepository {
	return &UserRepository{
		records: NewCollection[entities.User](store, userKind),
	}
}

// Create сохраняет нового пользователя.
// Ключом служит канонический идентификатор, поэтому повторная
// регистрация того же имени в любом регистре завершается ошибкой.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	if err := r.records.Create(ctx, user.ID, *user); err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return entities.ErrUsernameTaken
		}
		return fmt.Errorf("creating user: %w", err)
	}
	return nil
}

// FindByID возвращает пользователя по каноническому идентификатору.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	user, err := r.records.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("finding user: %w", err)
	}
	return &user, nil
}

// Mutate применяет transform к текущей записи пользователя.
func (r *UserRepository) Mutate(ctx context.Context, id string, transform func(entities.User) entities.User) (*entities.User, error) {
	user, err := r.records.Mutate(ctx, id, transform)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("mutating user: %w", err)
	}
	return &user, nil
}
