package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"notekeep/internal/notekeep/domain/entities"
)

func TestUserID(t *testing.T) {
	assert.Equal(t, "alice", entities.UserID("Alice"))
	assert.Equal(t, "alice", entities.UserID("ALICE"))
	assert.Equal(t, "alice", entities.UserID("alice"))
}

func TestNewUser(t *testing.T) {
	user := entities.NewUser("Alice", "digest")

	assert.Equal(t, "alice", user.ID)
	assert.Equal(t, "Alice", user.Username, "display casing is preserved")
	assert.Equal(t, "digest", user.PasswordDigest)
	assert.NotNil(t, user.NoteIDs)
	assert.Empty(t, user.NoteIDs)
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  error
	}{
		{name: "valid", username: "bob", wantErr: nil},
		{name: "too short", username: "ab", wantErr: entities.ErrUsernameTooShort},
		{name: "empty", username: "", wantErr: entities.ErrUsernameTooShort},
		{name: "whitespace only", username: "    ", wantErr: entities.ErrUsernameTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := entities.ValidateUsername(tt.username)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, entities.ValidatePassword("secret1"))
	assert.ErrorIs(t, entities.ValidatePassword("short"), entities.ErrPasswordTooShort)
}

func TestUser_AddNoteID_Deduplicates(t *testing.T) {
	user := entities.NewUser("alice", "digest")

	user.AddNoteID("n1")
	user.AddNoteID("n2")
	user.AddNoteID("n1")
	user.AddNoteID("n1")

	assert.Equal(t, []string{"n1", "n2"}, user.NoteIDs)
}

func TestUser_RemoveNoteID(t *testing.T) {
	user := entities.NewUser("alice", "digest")
	user.AddNoteID("n1")
	user.AddNoteID("n2")
	user.AddNoteID("n3")

	user.RemoveNoteID("n2")
	assert.Equal(t, []string{"n1", "n3"}, user.NoteIDs)

	// Удаление отсутствующего идентификатора ничего не меняет.
	user.RemoveNoteID("n2")
	assert.Equal(t, []string{"n1", "n3"}, user.NoteIDs)
}

func TestNewNote_Defaults(t *testing.T) {
	note := entities.NewNote("note-id", "alice")

	assert.Equal(t, "note-id", note.ID)
	assert.Equal(t, entities.DefaultNoteTitle, note.Title)
	assert.Equal(t, entities.DefaultNoteContent, note.Content)
	assert.Equal(t, "alice", note.UserID)
	assert.Equal(t, note.CreatedAt, note.UpdatedAt)
	assert.True(t, note.OwnedBy("alice"))
	assert.False(t, note.OwnedBy("bob"))
}
