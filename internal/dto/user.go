package dto

import (
	"github.com/yukikurage/ticket-tracker-api/internal/models"
)

// UserDTO represents a user's public fields in API responses. The password
// hash never leaves the model layer.
type UserDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

// LoginResponse is returned on successful authentication
type LoginResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Username: user.Username,
	}
}
