// Package redis содержит реализацию раздела хранилища на основе Redis.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"notekeep/internal/notekeep/config"
	"notekeep/internal/notekeep/ports/kv"
	"notekeep/pkg/logger"
)

// Константы для логирования.
const (
	LogMethodGet      = "get"
	LogMethodSet      = "set"
	LogMethodSetNX    = "setnx"
	LogMethodExists   = "exists"
	LogMethodDelete   = "delete"
	LogMethodSAdd     = "sadd"
	LogMethodSRem     = "srem"
	LogMethodSMembers = "smembers"

	ErrorFailedToGet    = "failed to get value from redis"
	ErrorFailedToSet    = "failed to set value in redis"
	ErrorFailedToCheck  = "failed to check key in redis"
	ErrorFailedToDelete = "failed to delete value from redis"
	ErrorFailedToSAdd   = "failed to add set members in redis"
	ErrorFailedToSRem   = "failed to remove set members in redis"
	ErrorFailedToList   = "failed to list set members in redis"
	ErrorFailedToClose  = "failed to close redis connection"
)

// Store реализует интерфейс kv.Store поверх Redis.
type Store struct {
	client *redis.Client
}

// NewStore создает новое подключение к разделу хранилища.
func NewStore(ctx context.Context, cfg *config.RedisConfig) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:            cfg.GetAddressString(),
		Password:        cfg.Password,
		DB:              cfg.DB,
		DialTimeout:     cfg.ConnectTimeout,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		PoolSize:        cfg.PoolSize,
		MinIdleConns:    cfg.MinIdle,
		ConnMaxIdleTime: cfg.IdleTimeout,
		ConnMaxLifetime: cfg.MaxConnLifetime,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Store{client: client}, nil
}

// Get получает значение по ключу.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodGet), zap.String("key", key))

	value, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", kv.ErrKeyMissing
		}
		log.Error(ctx, ErrorFailedToGet, zap.Error(err))
		return "", fmt.Errorf("%s: %w", ErrorFailedToGet, err)
	}

	return value, nil
}

// Set записывает значение по ключу без срока жизни.
func (s *Store) Set(ctx context.Context, key string, value string) error {
	log := logger.Log(ctx).With(zap.String("method", LogMethodSet), zap.String("key", key))

	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		log.Error(ctx, ErrorFailedToSet, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToSet, err)
	}

	return nil
}

// SetNX записывает значение только при отсутствии ключа.
func (s *Store) SetNX(ctx context.Context, key string, value string) (bool, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodSetNX), zap.String("key", key))

	stored, err := s.client.SetNX(ctx, key, value, 0).Result()
	if err != nil {
		log.Error(ctx, ErrorFailedToSet, zap.Error(err))
		return false, fmt.Errorf("%s: %w", ErrorFailedToSet, err)
	}

	return stored, nil
}

// Exists сообщает, существует ли ключ.
func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodExists), zap.String("key", key))

	count, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		log.Error(ctx, ErrorFailedToCheck, zap.Error(err))
		return false, fmt.Errorf("%s: %w", ErrorFailedToCheck, err)
	}

	return count > 0, nil
}

// Delete удаляет ключи; отсутствующие ключи игнорируются.
func (s *Store) Delete(ctx context.Context, keys ...string) error {
	log := logger.Log(ctx).With(zap.String("method", LogMethodDelete), zap.Strings("keys", keys))

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		log.Error(ctx, ErrorFailedToDelete, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToDelete, err)
	}

	return nil
}

// SAdd добавляет элементы в множество по ключу.
func (s *Store) SAdd(ctx context.Context, key string, members ...string) error {
	log := logger.Log(ctx).With(zap.String("method", LogMethodSAdd), zap.String("key", key))

	args := make([]interface{}, len(members))
	for i, m := range members {
		args[i] = m
	}

	if err := s.client.SAdd(ctx, key, args...).Err(); err != nil {
		log.Error(ctx, ErrorFailedToSAdd, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToSAdd, err)
	}

	return nil
}

// SRem удаляет элементы из множества по ключу.
func (s *Store) SRem(ctx context.Context, key string, members ...string) error {
	log := logger.Log(ctx).With(zap.String("method", LogMethodSRem), zap.String("key", key))

	args := make([]interface{}, len(members))
	for i, m := range members {
		args[i] = m
	}

	if err := s.client.SRem(ctx, key, args...).Err(); err != nil {
		log.Error(ctx, ErrorFailedToSRem, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToSRem, err)
	}

	return nil
}

// SMembers возвращает все элементы множества по ключу.
func (s *Store) SMembers(ctx context.Context, key string) ([]string, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodSMembers), zap.String("key", key))

	members, err := s.client.SMembers(ctx, key).Result()
	if err != nil {
		log.Error(ctx, ErrorFailedToList, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToList, err)
	}

	return members, nil
}

// Close закрывает соединение с Redis.
func (s *Store) Close() error {
	if err := s.client.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrorFailedToClose, err)
	}
	return nil
}
