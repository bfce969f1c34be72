package repository

import "github.com/ton-entreprise/fiscalia-api/internal/domain/entity"

// WorkspaceRepository définit le port de persistance des dossiers.
type WorkspaceRepository interface {
	Create(ws *entity.Workspace) error
	GetByID(id string) (*entity.Workspace, error)
	List(limit, offset int) ([]*entity.Workspace, error)
}
