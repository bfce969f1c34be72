package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/ton-entreprise/fiscalia-api/internal/domain/entity"
)

// CreateEntryRequest entrée pour ajouter une écriture au journal.
type CreateEntryRequest struct {
	Date          string          `json:"date" validate:"required"` // format 2006-01-02
	Description   string          `json:"description" validate:"required,min=1,max=500"`
	DebitAccount  string          `json:"debit_account" validate:"required"`
	CreditAccount string          `json:"credit_account" validate:"required"`
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	Reference     string          `json:"reference" validate:"omitempty,max=100"`
}

// EntryResponse sortie d'une écriture du journal.
type EntryResponse struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	Description   string          `json:"description"`
	DebitAccount  string          `json:"debit_account"`
	CreditAccount string          `json:"credit_account"`
	Amount        decimal.Decimal `json:"amount"`
	Reference     string          `json:"reference,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// BalancesResponse soldes par compte, triés par code, avec les totaux de
// contrôle Σdébit / Σcrédit.
type BalancesResponse struct {
	Balances    []entity.AccountBalance `json:"balances"`
	TotalDebit  decimal.Decimal         `json:"total_debit"`
	TotalCredit decimal.Decimal         `json:"total_credit"`
}

// BalanceSheetResponse bilan catégorisé.
type BalanceSheetResponse struct {
	Sections         map[string]entity.BalanceSheetSection `json:"sections"`
	TotalAssets      decimal.Decimal                       `json:"total_assets"`
	TotalLiabilities decimal.Decimal                       `json:"total_liabilities"`
	TotalEquity      decimal.Decimal                       `json:"total_equity"`
	DisplayAssets    string                                `json:"display_assets"` // formaté FCFA
}
