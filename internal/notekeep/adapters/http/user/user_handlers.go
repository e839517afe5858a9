// Package user содержит HTTP обработчики управления учетной записью.
package user

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notekeep/internal/notekeep/adapters/http/middleware"
	"notekeep/internal/notekeep/app"
	"notekeep/internal/notekeep/app/dto"
	"notekeep/internal/notekeep/domain/entities"
	"notekeep/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerChangePassword = "user handler: change password"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"
	ErrorUnauthorized         = "unauthorized"
)

// Handler содержит HTTP обработчики учетной записи.
type Handler struct {
	authUseCase *app.AuthUseCase
}

// NewHandler создает новый экземпляр обработчика учетной записи.
func NewHandler(authUseCase *app.AuthUseCase) *Handler {
	return &Handler{
		authUseCase: authUseCase,
	}
}

func sendErrorResponse(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// ChangePassword обрабатывает запрос на смену пароля.
// Текущий пароль уже проверен промежуточным ПО аутентификации;
// серверных сессий нет, поэтому другое состояние не инвалидируется.
func (h *Handler) ChangePassword(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerChangePassword)

	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		return sendErrorResponse(ctx, http.StatusUnauthorized, ErrorUnauthorized)
	}

	var req dto.ChangePasswordRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if err := h.authUseCase.ChangePassword(requestCtx, user, req.NewPassword); err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		if errors.Is(err, entities.ErrPasswordTooShort) {
			return sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		}
		return sendErrorResponse(ctx, http.StatusInternalServerError, err.Error())
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.SuccessResponse{Success: true}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
