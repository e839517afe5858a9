package app_test

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	redisadapter "notekeep/internal/notekeep/adapters/redis"
	"notekeep/internal/notekeep/adapters/services"
	"notekeep/internal/notekeep/adapters/storage"
	"notekeep/internal/notekeep/app"
	"notekeep/internal/notekeep/config"
)

// testEnv собирает бизнес-логику поверх miniredis вместо внешнего Redis.
type testEnv struct {
	auth  *app.AuthUseCase
	notes *app.NoteUseCase
	users *storage.UserRepository
	repo  *storage.NoteRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	host, portStr, _ := strings.Cut(s.Addr(), ":")
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	store, err := redisadapter.NewStore(context.Background(), &config.RedisConfig{
		Host:           host,
		Port:           port,
		ConnectTimeout: 2 * time.Second,
		ReadTimeout:    1 * time.Second,
		WriteTimeout:   1 * time.Second,
		PoolSize:       5,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	userRepo := storage.NewUserRepository(store)
	noteRepo := storage.NewNoteRepository(store)
	digestService := services.NewSHA3()

	return &testEnv{
		auth:  app.NewAuthUseCase(userRepo, noteRepo, digestService),
		notes: app.NewNoteUseCase(noteRepo, userRepo),
		users: userRepo,
		repo:  noteRepo,
	}
}
