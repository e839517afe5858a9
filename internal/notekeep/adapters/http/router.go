// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"notekeep/internal/notekeep/adapters/http/auth"
	"notekeep/internal/notekeep/adapters/http/middleware"
	"notekeep/internal/notekeep/adapters/http/notes"
	"notekeep/internal/notekeep/adapters/http/user"
	"notekeep/internal/notekeep/app"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(fiberApp *fiber.App, authUseCase *app.AuthUseCase, noteUseCase *app.NoteUseCase) {
	authHandler := auth.NewHandler(authUseCase)
	notesHandler := notes.NewHandler(noteUseCase)
	userHandler := user.NewHandler(authUseCase)

	// Middleware для всех запросов.
	fiberApp.Use(middleware.NewLoggerMiddleware())
	fiberApp.Use(middleware.NewRecoveryMiddleware())

	api := fiberApp.Group("/api")

	// Auth routes (публичные).
	authRoutes := api.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)

	// Маршруты заметок: каждый запрос аутентифицируется заново.
	notesRoutes := api.Group("/notes")
	notesRoutes.Use(middleware.NewAuthMiddleware(authUseCase))
	notesRoutes.Post("/", notesHandler.CreateNote)
	notesRoutes.Put("/:note_id", notesHandler.UpdateNote)
	notesRoutes.Delete("/:note_id", notesHandler.DeleteNote)

	// Маршруты учетной записи.
	userRoutes := api.Group("/user")
	userRoutes.Use(middleware.NewAuthMiddleware(authUseCase))
	userRoutes.Put("/password", userHandler.ChangePassword)

	// Обработчик для несуществующих маршрутов.
	fiberApp.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
