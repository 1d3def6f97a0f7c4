package userservice

import "github.com/m04kA/SMC-CarRentalService/internal/domain"

// User модель пользователя из UserService
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"` // user | admin
	IsActive bool   `json:"isActive"`
}

// ErrorResponse модель ошибки от UserService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToDomain конвертирует ответ UserService в доменную модель
// Неизвестная роль понижается до обычного пользователя
func (u *User) ToDomain() *domain.User {
	role := domain.Role(u.Role)
	if !role.IsValid() {
		role = domain.RoleUser
	}

	return &domain.User{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Role:     role,
		IsActive: u.IsActive,
	}
}
