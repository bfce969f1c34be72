package fiscal_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ton-entreprise/fiscalia-api/internal/application/dto"
	appfiscal "github.com/ton-entreprise/fiscalia-api/internal/application/fiscal"
	"github.com/ton-entreprise/fiscalia-api/internal/domain/entity"
)

// fakeBasesRepo implémentation mémoire de TaxBasesRepository pour les tests.
type fakeBasesRepo struct {
	saved map[string]*entity.TaxBases
}

func newFakeBasesRepo() *fakeBasesRepo {
	return &fakeBasesRepo{saved: make(map[string]*entity.TaxBases)}
}

func (r *fakeBasesRepo) Load(workspaceID, period string) (*entity.TaxBases, error) {
	b, ok := r.saved[workspaceID+"/"+period]
	if !ok {
		return nil, nil
	}
	copy := *b
	return &copy, nil
}

func (r *fakeBasesRepo) Save(b *entity.TaxBases) error {
	copy := *b
	r.saved[b.WorkspaceID+"/"+b.Period] = &copy
	return nil
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// TestBasesUpdate_PatchPartiel seuls les champs présents du patch sont
// appliqués, les autres restent intacts.
func TestBasesUpdate_PatchPartiel(t *testing.T) {
	repo := newFakeBasesRepo()
	uc := appfiscal.NewBasesUseCase(repo)

	_, err := uc.Update("ws1", "2025", dto.TaxBasesPatch{
		TVACollected:  dec("900000"),
		TVADeductible: dec("600000"),
	})
	require.NoError(t, err)

	res, err := uc.Update("ws1", "2025", dto.TaxBasesPatch{CSSBase: dec("40000000")})
	require.NoError(t, err)

	assert.True(t, res.TVACollected.Equal(decimal.NewFromInt(900_000)),
		"un patch partiel ne doit pas écraser les champs absents")
	assert.True(t, res.CSSBase.Equal(decimal.NewFromInt(40_000_000)))
}

// TestBasesUpdate_ValidationAvantApplication un patch dont un seul champ est
// invalide est rejeté en bloc : aucun champ n'est appliqué.
func TestBasesUpdate_ValidationAvantApplication(t *testing.T) {
	repo := newFakeBasesRepo()
	uc := appfiscal.NewBasesUseCase(repo)

	_, err := uc.Update("ws1", "2025", dto.TaxBasesPatch{TVACollected: dec("100000")})
	require.NoError(t, err)

	_, err = uc.Update("ws1", "2025", dto.TaxBasesPatch{
		TVACollected: dec("999999"),
		IRPPQuotient: dec("0.2"), // sous le minimum de 0.5 part
	})
	require.Error(t, err, "quotient hors [0.5, 10] doit rejeter le patch entier")

	res, err := uc.Get("ws1", "2025")
	require.NoError(t, err)
	assert.True(t, res.TVACollected.Equal(decimal.NewFromInt(100_000)),
		"le champ valide du patch rejeté ne doit pas avoir été appliqué")
}

func TestBasesUpdate_Rejets(t *testing.T) {
	uc := appfiscal.NewBasesUseCase(newFakeBasesRepo())

	cases := []struct {
		name  string
		patch dto.TaxBasesPatch
	}{
		{"assiette TVA négative", dto.TaxBasesPatch{TVACollected: dec("-1")}},
		{"taux IS hors bornes", dto.TaxBasesPatch{ISRate: dec("150")}},
		{"quotient au-delà du plafond", dto.TaxBasesPatch{IRPPQuotient: dec("10.5")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Update("ws1", "2025", tc.patch)
			assert.Error(t, err)
		})
	}

	// le résultat fiscal IS peut être une perte
	_, err := uc.Update("ws1", "2025", dto.TaxBasesPatch{ISBase: dec("-4000000")})
	assert.NoError(t, err, "une perte (is_base négatif) est une saisie valide")
}

// TestBasesGet_PeriodeVierge une période jamais saisie renvoie des bases à
// zéro avec une part par défaut, pas une erreur.
func TestBasesGet_PeriodeVierge(t *testing.T) {
	uc := appfiscal.NewBasesUseCase(newFakeBasesRepo())

	res, err := uc.Get("ws1", "2030")
	require.NoError(t, err)
	assert.True(t, res.TVACollected.IsZero())
	assert.True(t, res.IRPPQuotient.Equal(decimal.NewFromInt(1)), "quotient par défaut : une part")
}

// ── Synthèse des taxes ────────────────────────────────────────────────────────

func defaultRates() appfiscal.Rates {
	return appfiscal.Rates{
		TVA: decimal.NewFromInt(18),
		CSS: decimal.NewFromInt(1),
		IS:  decimal.NewFromInt(30),
		IMF: decimal.RequireFromString("0.5"),
	}
}

func TestComputeTaxes_DepuisBasesPersistees(t *testing.T) {
	repo := newFakeBasesRepo()
	basesUC := appfiscal.NewBasesUseCase(repo)
	simUC := appfiscal.NewSimulationUseCase(repo, defaultRates())

	_, err := basesUC.Update("ws1", "2025", dto.TaxBasesPatch{
		TVACollected:  dec("400000"),
		TVADeductible: dec("650000"),
		CSSBase:       dec("50000000"),
		CSSExclusions: dec("10000000"),
		ISBase:        dec("1000000"),
		IMFBase:       dec("100000000"),
	})
	require.NoError(t, err)

	taxes, err := simUC.ComputeTaxes("ws1", "2025")
	require.NoError(t, err)

	assert.True(t, taxes.TVA.Net.Equal(decimal.NewFromInt(-250_000)), "net TVA signé")
	assert.True(t, taxes.TVA.Payable.IsZero(), "à payer plancher à zéro")
	assert.True(t, taxes.TVA.Credit.Equal(decimal.NewFromInt(250_000)), "crédit reportable")
	assert.True(t, taxes.CSS.Equal(decimal.NewFromInt(400_000)))
	assert.Equal(t, "IMF", taxes.ISIMF.RuleApplied,
		"IS 300 000 < IMF 500 000 : le plancher IMF s'applique")
	assert.True(t, taxes.ISIMF.Due.Equal(decimal.NewFromInt(500_000)))
}

func TestComputeTaxes_PeriodeInconnue(t *testing.T) {
	simUC := appfiscal.NewSimulationUseCase(newFakeBasesRepo(), defaultRates())
	_, err := simUC.ComputeTaxes("ws1", "1999")
	assert.Error(t, err, "période sans bases saisies")
}
