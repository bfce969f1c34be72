// Package ledger implémente l'agrégation comptable en partie double (service
// de domaine, fonctions pures) : validation des écritures, soldes par compte
// et bilan catégorisé. Le journal append-only est la seule source de vérité ;
// soldes et bilan sont toujours recalculés, jamais mis en cache.
package ledger

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/ton-entreprise/fiscalia-api/internal/domain"
	"github.com/ton-entreprise/fiscalia-api/internal/domain/entity"
)

// ErrUnbalanced signale une divergence Σdébit ≠ Σcrédit. C'est un invariant
// mécanique du journal en partie double : sa violation est un bug du moteur
// d'agrégation, pas une erreur utilisateur.
var ErrUnbalanced = errors.New("journal déséquilibré: total débit ≠ total crédit")

// ValidateEntry vérifie une écriture avant insertion au journal. L'erreur
// nomme le champ fautif ; une écriture acceptée n'est jamais appliquée
// partiellement.
func ValidateEntry(e *entity.JournalEntry) error {
	if e == nil {
		return fmt.Errorf("%w: écriture absente", domain.ErrInvalidInput)
	}
	if e.DebitAccount == "" {
		return fmt.Errorf("%w: champ debitAccount requis", domain.ErrInvalidInput)
	}
	if e.CreditAccount == "" {
		return fmt.Errorf("%w: champ creditAccount requis", domain.ErrInvalidInput)
	}
	if e.DebitAccount == e.CreditAccount {
		return fmt.Errorf("%w: champs debitAccount et creditAccount identiques", domain.ErrInvalidInput)
	}
	if !e.Amount.GreaterThan(decimal.Zero) {
		return fmt.Errorf("%w: champ amount doit être strictement positif", domain.ErrInvalidInput)
	}
	if e.Date.IsZero() {
		return fmt.Errorf("%w: champ date requis", domain.ErrInvalidInput)
	}
	if e.Description == "" {
		return fmt.Errorf("%w: champ description requis", domain.ErrInvalidInput)
	}
	return nil
}

// ComputeBalances dérive les soldes par compte : chaque écriture ajoute son
// montant au total débit du compte débité et au total crédit du compte
// crédité ; le solde est débit − crédit. Σdébit == Σcrédit sur l'ensemble des
// comptes découle mécaniquement de la contribution égale de chaque écriture
// aux deux côtés.
func ComputeBalances(entries []entity.JournalEntry) map[string]entity.AccountBalance {
	balances := make(map[string]entity.AccountBalance)

	touch := func(account string) entity.AccountBalance {
		if b, ok := balances[account]; ok {
			return b
		}
		return entity.AccountBalance{Account: account, DebitTotal: decimal.Zero, CreditTotal: decimal.Zero, Balance: decimal.Zero}
	}

	for _, e := range entries {
		deb := touch(e.DebitAccount)
		deb.DebitTotal = deb.DebitTotal.Add(e.Amount)
		deb.Balance = deb.DebitTotal.Sub(deb.CreditTotal)
		balances[e.DebitAccount] = deb

		cred := touch(e.CreditAccount)
		cred.CreditTotal = cred.CreditTotal.Add(e.Amount)
		cred.Balance = cred.DebitTotal.Sub(cred.CreditTotal)
		balances[e.CreditAccount] = cred
	}
	return balances
}

// CheckBalanced vérifie l'invariant Σdébit == Σcrédit. Utilisé par les tests
// et comme garde-fou du reporting avant de dériver un bilan.
func CheckBalanced(balances map[string]entity.AccountBalance) error {
	debit := decimal.Zero
	credit := decimal.Zero
	for _, b := range balances {
		debit = debit.Add(b.DebitTotal)
		credit = credit.Add(b.CreditTotal)
	}
	if !debit.Equal(credit) {
		return fmt.Errorf("%w (débit %s, crédit %s)", ErrUnbalanced, debit, credit)
	}
	return nil
}

// SortedBalances renvoie les soldes triés par code de compte, pour un
// affichage et des exports déterministes.
func SortedBalances(balances map[string]entity.AccountBalance) []entity.AccountBalance {
	out := make([]entity.AccountBalance, 0, len(balances))
	for _, b := range balances {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Account < out[j].Account })
	return out
}
