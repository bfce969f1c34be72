package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ton-entreprise/fiscalia-api/internal/domain/entity"
	"github.com/ton-entreprise/fiscalia-api/internal/domain/ledger"
)

// TestComputeBalanceSheet_IdentiteComptable pour un journal équilibré
// entièrement classé, actif == passif + capitaux (résultat de la période
// rattaché aux capitaux).
func TestComputeBalanceSheet_IdentiteComptable(t *testing.T) {
	entries := []entity.JournalEntry{
		entry("571", "101", 1_000_000), // apport en capital → caisse
		entry("241", "401", 400_000),   // immobilisation à crédit fournisseur
		entry("571", "701", 350_000),   // ventes encaissées
		entry("601", "571", 120_000),   // achats payés
		entry("401", "571", 150_000),   // règlement partiel fournisseur
	}

	balances := ledger.ComputeBalances(entries)
	require.NoError(t, ledger.CheckBalanced(balances))

	sheet := ledger.ComputeBalanceSheet(balances, ledger.DefaultClassification())

	// actif : caisse 1 080 000 + immobilisation 400 000
	assert.True(t, sheet.TotalAssets.Equal(decimal.NewFromInt(1_480_000)),
		"actif attendu 1 480 000, obtenu %s", sheet.TotalAssets)
	// passif : fournisseur 400 000 − 150 000
	assert.True(t, sheet.TotalLiabilities.Equal(decimal.NewFromInt(250_000)),
		"passif attendu 250 000, obtenu %s", sheet.TotalLiabilities)
	// capitaux : capital 1 000 000 + résultat (350 000 − 120 000)
	assert.True(t, sheet.TotalEquity.Equal(decimal.NewFromInt(1_230_000)),
		"capitaux attendus 1 230 000, obtenu %s", sheet.TotalEquity)

	assert.True(t, sheet.TotalAssets.Equal(sheet.TotalLiabilities.Add(sheet.TotalEquity)),
		"identité comptable fondamentale : actif == passif + capitaux")
}

// TestComputeBalanceSheet_IdentiteApresSuppression l'identité tient encore
// après suppression d'une écriture du journal.
func TestComputeBalanceSheet_IdentiteApresSuppression(t *testing.T) {
	entries := []entity.JournalEntry{
		entry("571", "101", 500_000),
		entry("601", "571", 75_000),
		entry("571", "701", 90_000),
	}
	// suppression de l'écriture du milieu avant recalcul
	remaining := []entity.JournalEntry{entries[0], entries[2]}

	sheet := ledger.ComputeBalanceSheet(ledger.ComputeBalances(remaining), ledger.DefaultClassification())
	assert.True(t, sheet.TotalAssets.Equal(sheet.TotalLiabilities.Add(sheet.TotalEquity)),
		"l'identité doit tenir après suppression : actif %s, passif %s, capitaux %s",
		sheet.TotalAssets, sheet.TotalLiabilities, sheet.TotalEquity)
}

// TestComputeBalanceSheet_CompteNonClasse un compte absent de la table part
// dans la section de repli au lieu de disparaître.
func TestComputeBalanceSheet_CompteNonClasse(t *testing.T) {
	classification := ledger.Classification{"5": entity.SectionAssets}
	balances := ledger.ComputeBalances([]entity.JournalEntry{entry("571", "999X", 10_000)})

	sheet := ledger.ComputeBalanceSheet(balances, classification)
	section, ok := sheet.Sections[ledger.SectionUnclassified]
	require.True(t, ok, "le compte inconnu doit apparaître en section non classée")
	assert.Len(t, section.Accounts, 1)
	assert.Equal(t, "999X", section.Accounts[0].Account)
}

// ── Table de classement ───────────────────────────────────────────────────────

func TestClassification_PrefixeLePlusLong(t *testing.T) {
	c := ledger.DefaultClassification()

	assert.Equal(t, entity.SectionAssets, c.SectionFor("411"), "les clients (41x) sont à l'actif")
	assert.Equal(t, entity.SectionLiabilities, c.SectionFor("401"), "les fournisseurs (40x) sont au passif")
	assert.Equal(t, entity.SectionEquity, c.SectionFor("101"))
	assert.Equal(t, entity.SectionExpenses, c.SectionFor("601"))
	assert.Equal(t, entity.SectionRevenue, c.SectionFor("701"))
	assert.Equal(t, ledger.SectionUnclassified, c.SectionFor("Z99"))
}
