// Package dto содержит объекты передачи данных публичного API.
package dto

// RegisterRequest содержит данные для регистрации пользователя.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest содержит данные для входа пользователя.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse содержит отображаемое имя пользователя и его заметки.
// Дайджест пароля наружу не отдается.
type LoginResponse struct {
	Username string  `json:"username"`
	Notes    []*Note `json:"notes"`
}

// ChangePasswordRequest содержит новый пароль пользователя.
type ChangePasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

// SuccessResponse подтверждает выполнение операции без содержимого.
type SuccessResponse struct {
	Success bool `json:"success"`
}
