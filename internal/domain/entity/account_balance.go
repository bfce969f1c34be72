package entity

import "github.com/shopspring/decimal"

// AccountBalance solde dérivé d'un compte : totaux débit/crédit et solde
// (débit − crédit). Toujours recalculé depuis le journal, jamais stocké.
type AccountBalance struct {
	Account     string          `json:"account"`
	DebitTotal  decimal.Decimal `json:"debitTotal"`
	CreditTotal decimal.Decimal `json:"creditTotal"`
	Balance     decimal.Decimal `json:"balance"` // débit − crédit ; négatif = compte créditeur
}

// Sections du bilan.
const (
	SectionAssets      = "actif"
	SectionLiabilities = "passif"
	SectionEquity      = "capitaux"
	SectionExpenses    = "charges"
	SectionRevenue     = "produits"
)

// BalanceSheetSection section du bilan avec ses comptes et son total.
// Le total est exprimé dans le sens naturel de la section : débiteur pour
// l'actif et les charges, créditeur (négation du solde) pour le passif,
// les capitaux propres et les produits.
type BalanceSheetSection struct {
	Section  string           `json:"section"`
	Accounts []AccountBalance `json:"accounts"`
	Total    decimal.Decimal  `json:"total"`
}

// BalanceSheet bilan catégorisé dérivé des soldes de comptes.
// Invariant comptable : TotalAssets == TotalLiabilities + TotalEquity pour un
// journal équilibré entièrement classé (résultat affecté aux capitaux).
type BalanceSheet struct {
	Sections         map[string]BalanceSheetSection `json:"sections"`
	TotalAssets      decimal.Decimal                `json:"totalAssets"`
	TotalLiabilities decimal.Decimal                `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal                `json:"totalEquity"`
}
