// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notekeep/internal/notekeep/app"
	"notekeep/internal/notekeep/domain/entities"
	"notekeep/pkg/logger"
)

// Ключ request locals с аутентифицированным пользователем.
const userLocalsKey = "authenticatedUser"

// Константы для логирования.
const (
	LogAuthMiddleware = "auth middleware"

	ErrorNoAuthHeader        = "no authorization header provided"
	ErrorInvalidCredsFormat  = "invalid credentials format"
	ErrorFailedAuthorization = "failed to authenticate request"
)

// NewAuthMiddleware создает промежуточное ПО проверки учетных данных.
// Каждый запрос заново аутентифицируется парой имя/пароль из заголовка
// HTTP Basic; разрешенный пользователь кладется в request locals, и
// обработчики больше не обращаются к учетным данным.
func NewAuthMiddleware(authUseCase *app.AuthUseCase) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		username, password, ok := basicCredentials(ctx.Get("Authorization"))
		if !ok {
			log.Debug(requestCtx, ErrorNoAuthHeader)
			if err := ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorNoAuthHeader,
			}); err != nil {
				return fmt.Errorf("failed to send unauthorized response: %w", err)
			}
			return nil
		}

		user, err := authUseCase.Authenticate(requestCtx, username, password)
		if err != nil {
			log.Debug(requestCtx, ErrorFailedAuthorization, zap.Error(err))
			// Единое сообщение для неизвестного имени и неверного пароля.
			if err := ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": entities.ErrInvalidCredentials.Error(),
			}); err != nil {
				return fmt.Errorf("failed to send authentication error response: %w", err)
			}
			return nil
		}

		ctx.Locals(userLocalsKey, user)

		return ctx.Next()
	}
}

// CurrentUser возвращает аутентифицированного пользователя из request locals.
func CurrentUser(ctx fiber.Ctx) (*entities.User, bool) {
	user, ok := ctx.Locals(userLocalsKey).(*entities.User)
	return user, ok
}

// basicCredentials разбирает заголовок Authorization со схемой Basic.
func basicCredentials(header string) (username, password string, ok bool) {
	const prefix = "Basic "
	if !strings.HasPrefix(header, prefix) {
		return "", "", false
	}

	decoded, err := base64.StdEncoding.DecodeString(header[len(prefix):])
	if err != nil {
		return "", "", false
	}

	username, password, ok = strings.Cut(string(decoded), ":")
	return username, password, ok
}
