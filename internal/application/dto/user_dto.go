package dto

import "time"

// RegisterRequest entrée pour l'enregistrement (auth) : email, password, workspace.
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	WorkspaceID string `json:"workspace_id" validate:"required,uuid"`
	Name        string `json:"name" validate:"omitempty,max=200"`
	Role        string `json:"role" validate:"omitempty,oneof=admin comptable gestionnaire"`
}

// UserResponse sortie d'un utilisateur (sans password).
type UserResponse struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LoginRequest entrée pour le login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse sortie avec le token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
