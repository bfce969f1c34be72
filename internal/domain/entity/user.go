package entity

import "time"

// Rôles valides pour User.
const (
	RoleAdmin        = "admin"
	RoleComptable    = "comptable"
	RoleGestionnaire = "gestionnaire"
)

// User représente un utilisateur du système (rattaché à un Workspace).
type User struct {
	ID           string
	WorkspaceID  string
	Email        string
	PasswordHash string // hash bcrypt, jamais en clair dans le domaine après persistance
	Name         string
	Role         string // admin, comptable, gestionnaire
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
