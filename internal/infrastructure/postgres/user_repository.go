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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implémentation du port UserRepository sur PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construit l'adaptateur de persistance des utilisateurs.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create persiste un nouvel utilisateur.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, workspace_id, email, password_hash, name, role, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.WorkspaceID, user.Email, user.PasswordHash, user.Name, user.Role, user.Status,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID récupère un utilisateur par ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := userSelect + ` WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(context.Background(), query, id), "get user by id")
}

// GetByEmail récupère un utilisateur par email (tous dossiers confondus).
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	query := userSelect + ` WHERE email = $1 LIMIT 1`
	return r.scanOne(r.pool.QueryRow(context.Background(), query, email), "get user by email")
}

// GetByEmailAndWorkspace récupère un utilisateur par email dans un dossier.
func (r *UserRepo) GetByEmailAndWorkspace(email, workspaceID string) (*entity.User, error) {
	query := userSelect + ` WHERE email = $1 AND workspace_id = $2`
	return r.scanOne(r.pool.QueryRow(context.Background(), query, email, workspaceID), "get user by email and workspace")
}

const userSelect = `
	SELECT id, workspace_id, email, password_hash, name, role, status, created_at, updated_at
	FROM users`

func (r *UserRepo) scanOne(row pgx.Row, op string) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.WorkspaceID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.Status,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}
