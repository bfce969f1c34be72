// seed crée un dossier de démonstration avec un utilisateur admin, pour
// amorcer un environnement de développement.
//
// Usage : go run ./cmd/seed [email] [password]
// Par défaut : admin@demo.sn / fiscalia-demo
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/ton-entreprise/fiscalia-api/internal/domain/entity"
	"github.com/ton-entreprise/fiscalia-api/internal/infrastructure/postgres"
	"github.com/ton-entreprise/fiscalia-api/pkg/config"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	email := "admin@demo.sn"
	password := "fiscalia-demo"
	if len(os.Args) > 1 {
		email = os.Args[1]
	}
	if len(os.Args) > 2 {
		password = os.Args[2]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "charger configuration: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "connexion à PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	now := time.Now().UTC()
	workspace := &entity.Workspace{
		ID:        uuid.NewString(),
		Name:      "Dossier Démo",
		NINEA:     "000000000",
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := postgres.NewWorkspaceRepository(pool).Create(workspace); err != nil {
		fmt.Fprintf(os.Stderr, "créer dossier: %v\n", err)
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hasher password: %v\n", err)
		os.Exit(1)
	}
	user := &entity.User{
		ID:           uuid.NewString(),
		WorkspaceID:  workspace.ID,
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Administrateur",
		Role:         entity.RoleAdmin,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := postgres.NewUserRepository(pool).Create(user); err != nil {
		fmt.Fprintf(os.Stderr, "créer utilisateur: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("dossier %s créé (id=%s)\n", workspace.Name, workspace.ID)
	fmt.Printf("utilisateur %s créé (role=%s)\n", user.Email, user.Role)
}
