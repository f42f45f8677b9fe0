package dto

import (
	"github.com/google/uuid"

	"github.com/dzhusipov/fleet-core/internal/model"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type TokenPairResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required,max=255"`
	Role     string `json:"role" binding:"required"`
	Language string `json:"language"`
}

type UpdateUserRequest struct {
	FullName       Optional[string] `json:"full_name"`
	Role           Optional[string] `json:"role"`
	Language       Optional[string] `json:"language"`
	Active         Optional[bool]   `json:"active"`
	Password       Optional[string] `json:"password"`
	TelegramChatID Optional[int64]  `json:"telegram_chat_id"`
}

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"`
	Language string    `json:"language"`
	Active   bool      `json:"active"`
}

func ToUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     string(u.Role),
		Language: u.Language,
		Active:   u.Active,
	}
}
