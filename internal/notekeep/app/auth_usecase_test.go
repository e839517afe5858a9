package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeep/internal/notekeep/domain/entities"
)

func TestRegister(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "success", username: "alice", password: "secret1", wantErr: nil},
		{name: "username too short", username: "ab", password: "secret1", wantErr: entities.ErrUsernameTooShort},
		{name: "password too short", username: "alice", password: "12345", wantErr: entities.ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			ctx := context.Background()

			err := env.auth.Register(ctx, tt.username, tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestRegister_DuplicateUsernameAnyCasing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.auth.Register(ctx, "Alice", "secret1"))

	err := env.auth.Register(ctx, "alice", "another1")
	assert.ErrorIs(t, err, entities.ErrUsernameTaken)

	err = env.auth.Register(ctx, "ALICE", "another1")
	assert.ErrorIs(t, err, entities.ErrUsernameTaken)
}

func TestRegister_StoresDigestNotPassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.auth.Register(ctx, "alice", "secret1"))

	user, err := env.users.FindByID(ctx, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", user.PasswordDigest)
	assert.Len(t, user.PasswordDigest, 64)
	assert.Empty(t, user.NoteIDs)
}

func TestAuthenticate_UnifiedError(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.auth.Register(ctx, "alice", "secret1"))

	_, unknownUserErr := env.auth.Authenticate(ctx, "nosuchuser", "secret1")
	_, wrongPasswordErr := env.auth.Authenticate(ctx, "alice", "wrongpass")

	require.Error(t, unknownUserErr)
	require.Error(t, wrongPasswordErr)
	assert.ErrorIs(t, unknownUserErr, entities.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPasswordErr, entities.ErrInvalidCredentials)

	// Сообщение не раскрывает, какая из проверок не прошла.
	assert.Equal(t, unknownUserErr.Error(), wrongPasswordErr.Error())
}

func TestLogin_CaseInsensitiveUsername(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.auth.Register(ctx, "alice", "secret1"))

	user, notes, err := env.auth.Login(ctx, "ALICE", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Empty(t, notes)
}

func TestLogin_ReturnsOwnedNotes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.auth.Register(ctx, "alice", "secret1"))
	owner, err := env.users.FindByID(ctx, "alice")
	require.NoError(t, err)

	first, err := env.notes.CreateNote(ctx, owner)
	require.NoError(t, err)
	second, err := env.notes.CreateNote(ctx, owner)
	require.NoError(t, err)

	_, notes, err := env.auth.Login(ctx, "alice", "secret1")
	require.NoError(t, err)

	ids := make([]string, 0, len(notes))
	for _, note := range notes {
		ids = append(ids, note.ID)
	}
	assert.ElementsMatch(t, []string{first.ID, second.ID}, ids)
}

func TestLogin_DropsDanglingNoteIDs(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.auth.Register(ctx, "alice", "secret1"))
	owner, err := env.users.FindByID(ctx, "alice")
	require.NoError(t, err)

	kept, err := env.notes.CreateNote(ctx, owner)
	require.NoError(t, err)
	dangling, err := env.notes.CreateNote(ctx, owner)
	require.NoError(t, err)

	// Запись заметки исчезает, но ее идентификатор остается у владельца.
	require.NoError(t, env.repo.Delete(ctx, dangling.ID))

	_, notes, err := env.auth.Login(ctx, "alice", "secret1")
	require.NoError(t, err, "dangling note id must not fail the login")
	require.Len(t, notes, 1)
	assert.Equal(t, kept.ID, notes[0].ID)
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.auth.Register(ctx, "alice", "secret1"))
	user, err := env.users.FindByID(ctx, "alice")
	require.NoError(t, err)

	require.NoError(t, env.auth.ChangePassword(ctx, user, "newsecret"))

	_, err = env.auth.Authenticate(ctx, "alice", "secret1")
	assert.ErrorIs(t, err, entities.ErrInvalidCredentials, "old password must stop working")

	authed, err := env.auth.Authenticate(ctx, "alice", "newsecret")
	require.NoError(t, err)
	assert.Equal(t, "alice", authed.ID)
}

func TestChangePassword_TooShort(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.auth.Register(ctx, "alice", "secret1"))
	user, err := env.users.FindByID(ctx, "alice")
	require.NoError(t, err)

	err = env.auth.ChangePassword(ctx, user, "short")
	assert.ErrorIs(t, err, entities.ErrPasswordTooShort)

	// Старый пароль продолжает действовать.
	_, err = env.auth.Authenticate(ctx, "alice", "secret1")
	assert.NoError(t, err)
}
