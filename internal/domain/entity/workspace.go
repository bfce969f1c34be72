package entity

import "time"

// Workspace représente un dossier fiscal/comptable (tenant). C'est le contexte
// explicite qui remplace l'ancien "dossier courant" implicite : chaque appel au
// moteur reçoit les bases et le journal du workspace en paramètre, jamais un
// état ambiant.
type Workspace struct {
	ID        string
	Name      string
	NINEA     string // identifiant national des entreprises (Sénégal)
	Address   string
	Phone     string
	Email     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
