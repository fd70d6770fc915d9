package response

import (
	"time"

	"github.com/google/uuid"

	"ecommerce-api/internal/usecase/commands"
	"ecommerce-api/internal/usecase/queries"
)

type AuthResponse struct {
	UserID      uuid.UUID `json:"userId"`
	Email       string    `json:"email"`
	FullName    string    `json:"fullName"`
	Role        string    `json:"role"`
	AccessToken string    `json:"accessToken"`
}

func FromAuthResult(r *commands.AuthResult) *AuthResponse {
	return &AuthResponse{
		UserID:      r.UserID,
		Email:       r.Email,
		FullName:    r.FullName,
		Role:        r.Role,
		AccessToken: r.AccessToken,
	}
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:        v.ID,
		Email:     v.Email,
		FullName:  v.FullName,
		Role:      v.Role,
		CreatedAt: v.CreatedAt,
	}
}
