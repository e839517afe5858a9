package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeep/internal/notekeep/adapters/services"
)

func TestDigest_Deterministic(t *testing.T) {
	ctx := context.Background()
	digestService := services.NewSHA3()

	first, err := digestService.Digest(ctx, "secret1")
	require.NoError(t, err)
	second, err := digestService.Digest(ctx, "secret1")
	require.NoError(t, err)

	assert.Equal(t, first, second, "same input must always yield the same digest")
	assert.Len(t, first, 64, "hex of a 256-bit digest")
}

func TestDigest_DifferentInputs(t *testing.T) {
	ctx := context.Background()
	digestService := services.NewSHA3()

	first, err := digestService.Digest(ctx, "secret1")
	require.NoError(t, err)
	second, err := digestService.Digest(ctx, "secret2")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestDigest_EmptySecret(t *testing.T) {
	ctx := context.Background()
	digestService := services.NewSHA3()

	_, err := digestService.Digest(ctx, "")
	assert.ErrorIs(t, err, services.ErrEmptySecret)
}

func TestVerify(t *testing.T) {
	ctx := context.Background()
	digestService := services.NewSHA3()

	digest, err := digestService.Digest(ctx, "secret1")
	require.NoError(t, err)

	tests := []struct {
		name   string
		secret string
		digest string
		match  bool
	}{
		{name: "matching secret", secret: "secret1", digest: digest, match: true},
		{name: "wrong secret", secret: "secret2", digest: digest, match: false},
		{name: "wrong digest", secret: "secret1", digest: "deadbeef", match: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, err := digestService.Verify(ctx, tt.secret, tt.digest)
			require.NoError(t, err)
			assert.Equal(t, tt.match, match)
		})
	}
}
