package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ton-entreprise/fiscalia-api/internal/domain"
	"github.com/ton-entreprise/fiscalia-api/internal/domain/entity"
	"github.com/ton-entreprise/fiscalia-api/internal/domain/repository"
)

var _ repository.WorkspaceRepository = (*WorkspaceRepo)(nil)

// WorkspaceRepo implémentation du port WorkspaceRepository sur PostgreSQL.
type WorkspaceRepo struct {
	pool *pgxpool.Pool
}

// NewWorkspaceRepository construit l'adaptateur de persistance des dossiers.
func NewWorkspaceRepository(pool *pgxpool.Pool) *WorkspaceRepo {
	return &WorkspaceRepo{pool: pool}
}

// Create persiste un nouveau dossier.
func (r *WorkspaceRepo) Create(ws *entity.Workspace) error {
	query := `
		INSERT INTO workspaces (id, name, ninea, address, phone, email, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		ws.ID, ws.Name, ws.NINEA, ws.Address, ws.Phone, ws.Email, ws.Status,
		ws.CreatedAt, ws.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert workspace: %w", err)
	}
	return nil
}

// GetByID récupère un dossier par ID.
func (r *WorkspaceRepo) GetByID(id string) (*entity.Workspace, error) {
	query := `
		SELECT id, name, ninea, address, phone, email, status, created_at, updated_at
		FROM workspaces WHERE id = $1`
	var ws entity.Workspace
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&ws.ID, &ws.Name, &ws.NINEA, &ws.Address, &ws.Phone, &ws.Email, &ws.Status,
		&ws.CreatedAt, &ws.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get workspace by id: %w", err)
	}
	return &ws, nil
}

// List liste les dossiers avec pagination.
func (r *WorkspaceRepo) List(limit, offset int) ([]*entity.Workspace, error) {
	query := `
		SELECT id, name, ninea, address, phone, email, status, created_at, updated_at
		FROM workspaces ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}
	defer rows.Close()
	var list []*entity.Workspace
	for rows.Next() {
		var ws entity.Workspace
		if err := rows.Scan(&ws.ID, &ws.Name, &ws.NINEA, &ws.Address, &ws.Phone, &ws.Email, &ws.Status, &ws.CreatedAt, &ws.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan workspace: %w", err)
		}
		list = append(list, &ws)
	}
	return list, rows.Err()
}
