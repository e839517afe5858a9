// Package services содержит реализации вспомогательных сервисов.
package services

import (
	"context"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/sha3"

	svc "notekeep/internal/notekeep/ports/services"
)

// ErrEmptySecret возвращается при попытке вычислить дайджест пустой строки.
var ErrEmptySecret = errors.New("secret cannot be empty")

// ServiceSHA3 реализует интерфейс DigestService на основе SHA3-256.
// Дайджест детерминирован и не использует соль: одинаковый вход
// всегда дает одинаковую hex-строку, что позволяет сверять пароли
// прямым сравнением дайджестов.
type ServiceSHA3 struct{}

// NewSHA3 создает новый экземпляр сервиса дайджестов.
func NewSHA3() svc.DigestService {
	return &ServiceSHA3{}
}

// Digest вычисляет hex-дайджест SHA3-256 от секрета.
func (s *ServiceSHA3) Digest(_ context.Context, secret string) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}

	sum := sha3.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:]), nil
}

// Verify сверяет секрет с сохраненным дайджестом.
func (s *ServiceSHA3) Verify(ctx context.Context, secret, digest string) (bool, error) {
	computed, err := s.Digest(ctx, secret)
	if err != nil {
		return false, fmt.Errorf("computing digest: %w", err)
	}

	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1, nil
}
