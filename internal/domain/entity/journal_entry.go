package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry écriture du journal en partie double : un montant strictement
// positif mouvemente un compte au débit et un autre au crédit.
// Immuable une fois créée (seule la suppression est permise) : le journal est
// un log append-only, source de vérité des soldes et du bilan.
type JournalEntry struct {
	ID            string
	WorkspaceID   string
	Date          time.Time
	Description   string
	DebitAccount  string // code du compte débité (plan SYSCOHADA)
	CreditAccount string // code du compte crédité
	Amount        decimal.Decimal
	Reference     string // pièce justificative, optionnelle
	CreatedAt     time.Time
}
