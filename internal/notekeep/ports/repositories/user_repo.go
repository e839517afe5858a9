// Package repositories определяет интерфейсы доступа к записям хранилища.
package repositories

import (
	"context"

	"notekeep/internal/notekeep/domain/entities"
)

// UserRepository определяет операции сохранения данных пользователя.
type UserRepository interface {
	// Create сохраняет нового пользователя.
	// Возвращает entities.ErrUsernameTaken, если ключ уже занят.
	Create(ctx context.Context, user *entities.User) error

	// FindByID возвращает пользователя по каноническому идентификатору.
	// Возвращает entities.ErrUserNotFound, если записи нет.
	FindByID(ctx context.Context, id string) (*entities.User, error)

	// Mutate читает запись, применяет transform и записывает результат.
	// Изоляции от конкурентных мутаций нет: побеждает последняя запись.
	Mutate(ctx context.Context, id string, transform func(entities.User) entities.User) (*entities.User, error)
}
