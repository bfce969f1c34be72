package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ton-entreprise/fiscalia-api/internal/domain/entity"
	"github.com/ton-entreprise/fiscalia-api/internal/domain/ledger"
)

func entry(debit, credit string, amount int64) entity.JournalEntry {
	return entity.JournalEntry{
		ID:            debit + "-" + credit,
		Date:          time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		Description:   "écriture de test",
		DebitAccount:  debit,
		CreditAccount: credit,
		Amount:        decimal.NewFromInt(amount),
	}
}

// TestComputeBalances_ScenarioReference deux écritures (caisse/ventes 100 000
// puis charge/caisse 30 000) ⇒ caisse 70 000, ventes −100 000 (créditeur),
// charge 30 000 (débiteur), Σdébit = Σcrédit = 130 000.
func TestComputeBalances_ScenarioReference(t *testing.T) {
	entries := []entity.JournalEntry{
		entry("571", "701", 100_000), // caisse / ventes
		entry("601", "571", 30_000),  // achat / caisse
	}

	balances := ledger.ComputeBalances(entries)
	require.Len(t, balances, 3)

	assert.True(t, balances["571"].Balance.Equal(decimal.NewFromInt(70_000)),
		"solde caisse attendu 100 000 − 30 000 = 70 000, obtenu %s", balances["571"].Balance)
	assert.True(t, balances["701"].Balance.Equal(decimal.NewFromInt(-100_000)),
		"les ventes sont un compte créditeur : solde négatif")
	assert.True(t, balances["601"].Balance.Equal(decimal.NewFromInt(30_000)),
		"les charges sont un compte débiteur : solde positif")

	assert.NoError(t, ledger.CheckBalanced(balances),
		"Σdébit (130 000) doit égaler Σcrédit (130 000)")
}

// TestComputeBalances_EquilibreApresMutations l'invariant Σdébit == Σcrédit
// tient après toute séquence d'ajouts et de suppressions.
func TestComputeBalances_EquilibreApresMutations(t *testing.T) {
	journal := []entity.JournalEntry{
		entry("571", "701", 250_000),
		entry("601", "571", 80_000),
		entry("411", "701", 120_000),
		entry("571", "411", 120_000),
		entry("661", "571", 45_000),
	}

	// équilibre après chaque ajout incrémental
	for i := 1; i <= len(journal); i++ {
		assert.NoError(t, ledger.CheckBalanced(ledger.ComputeBalances(journal[:i])),
			"déséquilibre après %d écritures", i)
	}

	// suppression d'une écriture au milieu : les autres ne bougent pas,
	// l'équilibre tient toujours
	remaining := append([]entity.JournalEntry{}, journal[:2]...)
	remaining = append(remaining, journal[3:]...)
	balances := ledger.ComputeBalances(remaining)
	assert.NoError(t, ledger.CheckBalanced(balances))
	assert.True(t, balances["701"].CreditTotal.Equal(decimal.NewFromInt(250_000)),
		"la suppression d'une écriture ne doit pas affecter les autres")
}

func TestComputeBalances_JournalVide(t *testing.T) {
	balances := ledger.ComputeBalances(nil)
	assert.Empty(t, balances)
	assert.NoError(t, ledger.CheckBalanced(balances))
}

// ── Validation des écritures ──────────────────────────────────────────────────

func TestValidateEntry(t *testing.T) {
	valid := entry("571", "701", 1000)
	assert.NoError(t, ledger.ValidateEntry(&valid))

	cases := []struct {
		name      string
		mutate    func(e *entity.JournalEntry)
		wantField string
	}{
		{"montant nul", func(e *entity.JournalEntry) { e.Amount = decimal.Zero }, "amount"},
		{"montant négatif", func(e *entity.JournalEntry) { e.Amount = decimal.NewFromInt(-5) }, "amount"},
		{"comptes identiques", func(e *entity.JournalEntry) { e.CreditAccount = e.DebitAccount }, "creditAccount"},
		{"débit manquant", func(e *entity.JournalEntry) { e.DebitAccount = "" }, "debitAccount"},
		{"crédit manquant", func(e *entity.JournalEntry) { e.CreditAccount = "" }, "creditAccount"},
		{"date manquante", func(e *entity.JournalEntry) { e.Date = time.Time{} }, "date"},
		{"description manquante", func(e *entity.JournalEntry) { e.Description = "" }, "description"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := entry("571", "701", 1000)
			tc.mutate(&e)
			err := ledger.ValidateEntry(&e)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantField,
				"l'erreur de validation doit nommer le champ fautif")
		})
	}
}
