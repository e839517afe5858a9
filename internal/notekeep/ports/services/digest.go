// Package services определяет интерфейсы вспомогательных сервисов.
package services

import "context"

// DigestService вычисляет и проверяет дайджест пароля.
// Дайджест детерминирован: одинаковый вход всегда дает одинаковый результат.
type DigestService interface {
	Digest(ctx context.Context, secret string) (string, error)

	Verify(ctx context.Context, secret, digest string) (bool, error)
}
