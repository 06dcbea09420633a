package response

import (
	"time"

	"boxarena/internal/usecase/commands"
	"boxarena/internal/usecase/queries"

	"github.com/google/uuid"
)

type AuthResponse struct {
	Token  string    `json:"token"`
	UserID uuid.UUID `json:"userId"`
	Role   string    `json:"role"`
}

type UserResponse struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone,omitempty"`
	Role          string     `json:"role"`
	EmailVerified bool       `json:"emailVerified"`
	LastLogin     *time.Time `json:"lastLogin,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func FromAuthResult(r *commands.AuthResult) *AuthResponse {
	return &AuthResponse{
		Token:  r.Token,
		UserID: r.UserID,
		Role:   r.Role,
	}
}

func FromUserView(v *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:            v.ID,
		Name:          v.Name,
		Email:         v.Email,
		Phone:         v.Phone,
		Role:          v.Role,
		EmailVerified: v.EmailVerified,
		LastLogin:     v.LastLogin,
		CreatedAt:     v.CreatedAt,
	}
}
