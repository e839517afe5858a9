// Package storage реализует доступ к типизированным записям
// поверх общего раздела хранилища "ключ-значение".
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"notekeep/internal/notekeep/ports/kv"
)

// Ошибки уровня записей.
var (
	ErrAlreadyExists = errors.New("record already exists")
	ErrNotFound      = errors.New("record not found")
)

// Префиксы ключей в общем разделе хранилища.
const (
	keySeparator = ":"
	indexPrefix  = "index:"
)

// Collection управляет записями одного вида в общем разделе.
// Ключи имеют вид "<kind>:<id>"; дополнительно в множестве
// "index:<kind>" хранится индекс всех известных идентификаторов.
type Collection[T any] struct {
	store kv.Store
	kind  string
}

// NewCollection создает коллекцию записей указанного вида.
func NewCollection[T any](store kv.Store, kind string) *Collection[T] {
	return &Collection[T]{store: store, kind: kind}
}

func (c *Collection[T]) key(id string) string {
	return c.kind + keySeparator + id
}

func (c *Collection[T]) indexKey() string {
	return indexPrefix + c.kind
}

// Exists сообщает, существует ли запись с данным идентификатором.
func (c *Collection[T]) Exists(ctx context.Context, id string) (bool, error) {
	exists, err := c.store.Exists(ctx, c.key(id))
	if err != nil {
		return false, fmt.Errorf("checking %s record: %w", c.kind, err)
	}
	return exists, nil
}

// Create сохраняет новую запись и регистрирует идентификатор в индексе вида.
// Возвращает ErrAlreadyExists, если идентификатор уже занят.
func (c *Collection[T]) Create(ctx context.Context, id string, value T) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s record: %w", c.kind, err)
	}

	stored, err := c.store.SetNX(ctx, c.key(id), string(encoded))
	if err != nil {
		return fmt.Errorf("storing %s record: %w", c.kind, err)
	}
	if !stored {
		return ErrAlreadyExists
	}

	if err := c.store.SAdd(ctx, c.indexKey(), id); err != nil {
		return fmt.Errorf("indexing %s record: %w", c.kind, err)
	}

	return nil
}

// Get возвращает текущее состояние записи или ErrNotFound.
func (c *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	var value T

	raw, err := c.store.Get(ctx, c.key(id))
	if err != nil {
		if errors.Is(err, kv.ErrKeyMissing) {
			return value, ErrNotFound
		}
		return value, fmt.Errorf("loading %s record: %w", c.kind, err)
	}

	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return value, fmt.Errorf("decoding %s record: %w", c.kind, err)
	}

	return value, nil
}

// Mutate читает запись, применяет transform и записывает результат обратно.
// Изоляции от конкурентных мутаций того же ключа нет: побеждает последняя запись.
func (c *Collection[T]) Mutate(ctx context.Context, id string, transform func(T) T) (T, error) {
	value, err := c.Get(ctx, id)
	if err != nil {
		return value, err
	}

	value = transform(value)

	encoded, err := json.Marshal(value)
	if err != nil {
		return value, fmt.Errorf("encoding %s record: %w", c.kind, err)
	}

	if err := c.store.Set(ctx, c.key(id), string(encoded)); err != nil {
		return value, fmt.Errorf("storing %s record: %w", c.kind, err)
	}

	return value, nil
}

// Patch накладывает переданные поля на текущую запись неглубоким слиянием.
// Поля именуются как в JSON-кодировке записи; не указанные поля не меняются.
func (c *Collection[T]) Patch(ctx context.Context, id string, fields map[string]any) (T, error) {
	var value T

	raw, err := c.store.Get(ctx, c.key(id))
	if err != nil {
		if errors.Is(err, kv.ErrKeyMissing) {
			return value, ErrNotFound
		}
		return value, fmt.Errorf("loading %s record: %w", c.kind, err)
	}

	merged := make(map[string]any)
	if err := json.Unmarshal([]byte(raw), &merged); err != nil {
		return value, fmt.Errorf("decoding %s record: %w", c.kind, err)
	}
	for name, field := range fields {
		merged[name] = field
	}

	encoded, err := json.Marshal(merged)
	if err != nil {
		return value, fmt.Errorf("encoding %s record: %w", c.kind, err)
	}

	if err := json.Unmarshal(encoded, &value); err != nil {
		return value, fmt.Errorf("decoding merged %s record: %w", c.kind, err)
	}

	if err := c.store.Set(ctx, c.key(id), string(encoded)); err != nil {
		return value, fmt.Errorf("storing %s record: %w", c.kind, err)
	}

	return value, nil
}

// Delete удаляет запись и ее идентификатор из индекса вида.
// Удаление отсутствующей записи не является ошибкой.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	if err := c.store.Delete(ctx, c.key(id)); err != nil {
		return fmt.Errorf("deleting %s record: %w", c.kind, err)
	}

	if err := c.store.SRem(ctx, c.indexKey(), id); err != nil {
		return fmt.Errorf("unindexing %s record: %w", c.kind, err)
	}

	return nil
}

// IDs возвращает идентификаторы всех записей вида из индекса.
func (c *Collection[T]) IDs(ctx context.Context) ([]string, error) {
	ids, err := c.store.SMembers(ctx, c.indexKey())
	if err != nil {
		return nil, fmt.Errorf("listing %s records: %w", c.kind, err)
	}
	return ids, nil
}
