package dto

import "time"

// CreateWorkspaceRequest entrée pour créer un dossier.
type CreateWorkspaceRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	NINEA   string `json:"ninea" validate:"omitempty,max=20"`
	Address string `json:"address" validate:"omitempty,max=300"`
	Phone   string `json:"phone" validate:"omitempty,max=30"`
	Email   string `json:"email" validate:"omitempty,email"`
}

// WorkspaceResponse sortie d'un dossier.
type WorkspaceResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	NINEA     string    `json:"ninea"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
