package dto

import (
	"time"

	"github.com/rbcribeiro/SAP010-burger-queen-api/internal/domain"
	"github.com/samber/lo"
)

// UserResponse never carries the password hash.
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func UserFromDomain(user domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func UsersFromDomain(users []domain.User) []UserResponse {
	return lo.Map(users, func(user domain.User, _ int) UserResponse {
		return UserFromDomain(user)
	})
}
