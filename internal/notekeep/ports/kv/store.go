// Package kv определяет интерфейс единого раздела хранилища "ключ-значение".
package kv

import (
	"context"
	"errors"
)

// ErrKeyMissing возвращается, когда ключ отсутствует в хранилище.
var ErrKeyMissing = errors.New("key not found in storage")

// Store определяет операции над общим разделом хранилища.
// Внутри одного раздела чтение видит результат предыдущей записи.
type Store interface {
	// Get возвращает значение по ключу или ErrKeyMissing.
	Get(ctx context.Context, key string) (string, error)

	// Set записывает значение по ключу.
	Set(ctx context.Context, key string, value string) error

	// SetNX записывает значение только если ключ отсутствует.
	// Возвращает false, если ключ уже существует.
	SetNX(ctx context.Context, key string, value string) (bool, error)

	// Exists сообщает, существует ли ключ.
	Exists(ctx context.Context, key string) (bool, error)

	// Delete удаляет ключи; отсутствующий ключ не является ошибкой.
	Delete(ctx context.Context, keys ...string) error

	// SAdd добавляет элементы в множество по ключу.
	SAdd(ctx context.Context, key string, members ...string) error

	// SRem удаляет элементы из множества по ключу.
	SRem(ctx context.Context, key string, members ...string) error

	// SMembers возвращает все элементы множества по ключу.
	SMembers(ctx context.Context, key string) ([]string, error)

	Close() error
}
