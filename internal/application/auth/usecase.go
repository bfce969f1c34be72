package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/ton-entreprise/fiscalia-api/internal/application/dto"
	"github.com/ton-entreprise/fiscalia-api/internal/domain"
	"github.com/ton-entreprise/fiscalia-api/internal/domain/entity"
	"github.com/ton-entreprise/fiscalia-api/internal/domain/repository"
	"github.com/ton-entreprise/fiscalia-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuration pour la génération des tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase cas d'usage d'authentification : enregistrement et login.
type AuthUseCase struct {
	userRepo      repository.UserRepository
	workspaceRepo repository.WorkspaceRepository
	jwtCfg        JWTConfig
}

// NewAuthUseCase construit le cas d'usage d'auth.
func NewAuthUseCase(userRepo repository.UserRepository, workspaceRepo repository.WorkspaceRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, workspaceRepo: workspaceRepo, jwtCfg: jwtCfg}
}

// RegisterUser crée un utilisateur : hash bcrypt du password puis persistance.
// Renvoie ErrEmailAlreadyExists si l'email existe déjà dans ce dossier.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, _ := uc.userRepo.GetByEmailAndWorkspace(in.Email, in.WorkspaceID)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	ws, err := uc.workspaceRepo.GetByID(in.WorkspaceID)
	if err != nil {
		return nil, err
	}
	if ws == nil {
		return nil, domain.ErrNotFound // le dossier n'existe pas
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	role := in.Role
	if role == "" {
		role = entity.RoleGestionnaire
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		WorkspaceID:  in.WorkspaceID,
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login vérifie email/password, génère le JWT et renvoie token + utilisateur.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil || user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.WorkspaceID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:          u.ID,
		WorkspaceID: u.WorkspaceID,
		Email:       u.Email,
		Name:        u.Name,
		Role:        u.Role,
		Status:      u.Status,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
