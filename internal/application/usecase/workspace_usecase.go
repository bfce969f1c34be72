package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/ton-entreprise/fiscalia-api/internal/application/dto"
	"github.com/ton-entreprise/fiscalia-api/internal/domain"
	"github.com/ton-entreprise/fiscalia-api/internal/domain/entity"
	"github.com/ton-entreprise/fiscalia-api/internal/domain/repository"
)

// WorkspaceUseCase cas d'usage des dossiers fiscaux.
type WorkspaceUseCase struct {
	repo repository.WorkspaceRepository
}

// NewWorkspaceUseCase construit le cas d'usage.
func NewWorkspaceUseCase(repo repository.WorkspaceRepository) *WorkspaceUseCase {
	return &WorkspaceUseCase{repo: repo}
}

// Create crée un dossier.
func (uc *WorkspaceUseCase) Create(in dto.CreateWorkspaceRequest) (*dto.WorkspaceResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	ws := &entity.Workspace{
		ID:        uuid.New().String(),
		Name:      in.Name,
		NINEA:     in.NINEA,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ws); err != nil {
		return nil, err
	}
	return toWorkspaceResponse(ws), nil
}

// GetByID renvoie un dossier par identifiant.
func (uc *WorkspaceUseCase) GetByID(id string) (*dto.WorkspaceResponse, error) {
	ws, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ws == nil {
		return nil, domain.ErrNotFound
	}
	return toWorkspaceResponse(ws), nil
}

// List renvoie les dossiers paginés.
func (uc *WorkspaceUseCase) List(page dto.PageRequest) ([]*dto.WorkspaceResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.WorkspaceResponse, 0, len(list))
	for _, ws := range list {
		out = append(out, toWorkspaceResponse(ws))
	}
	return out, nil
}

func toWorkspaceResponse(ws *entity.Workspace) *dto.WorkspaceResponse {
	return &dto.WorkspaceResponse{
		ID:        ws.ID,
		Name:      ws.Name,
		NINEA:     ws.NINEA,
		Address:   ws.Address,
		Phone:     ws.Phone,
		Email:     ws.Email,
		Status:    ws.Status,
		CreatedAt: ws.CreatedAt,
	}
}
