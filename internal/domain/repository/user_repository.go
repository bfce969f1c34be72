package repository

import "github.com/ton-entreprise/fiscalia-api/internal/domain/entity"

// UserRepository définit le port de persistance des utilisateurs (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByEmailAndWorkspace(email, workspaceID string) (*entity.User, error)
}
