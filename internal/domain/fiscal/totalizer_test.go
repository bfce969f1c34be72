package fiscal_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/ton-entreprise/fiscalia-api/internal/domain/entity"
	"github.com/ton-entreprise/fiscalia-api/internal/domain/fiscal"
)

func line(qty, price int64, taxRate *decimal.Decimal) entity.InvoiceLine {
	return entity.InvoiceLine{
		Quantity:  decimal.NewFromInt(qty),
		UnitPrice: decimal.NewFromInt(price),
		TaxRate:   taxRate,
	}
}

func rate(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

// TestTotalize_ScenarioReference lignes [(2 × 65 000 @18%), (1 × 35 000 @18%)]
// ⇒ HT 165 000, taxe 29 700, TTC 194 700.
func TestTotalize_ScenarioReference(t *testing.T) {
	totals := fiscal.Totalize([]entity.InvoiceLine{
		line(2, 65_000, rate("18")),
		line(1, 35_000, rate("18")),
	})

	assert.True(t, totals.HT.Equal(decimal.NewFromInt(165_000)), "HT attendu 165 000, obtenu %s", totals.HT)
	assert.True(t, totals.Tax.Equal(decimal.NewFromInt(29_700)), "taxe attendue 29 700, obtenue %s", totals.Tax)
	assert.True(t, totals.TTC.Equal(decimal.NewFromInt(194_700)), "TTC attendu 194 700, obtenu %s", totals.TTC)
}

// TestTotalize_ListeVide une liste vide rend des totaux à zéro, pas une erreur.
func TestTotalize_ListeVide(t *testing.T) {
	totals := fiscal.Totalize(nil)
	assert.True(t, totals.HT.IsZero())
	assert.True(t, totals.Tax.IsZero())
	assert.True(t, totals.TTC.IsZero())
}

// TestTotalize_LigneSansTaux une ligne sans taux contribue 0 à la taxe.
func TestTotalize_LigneSansTaux(t *testing.T) {
	totals := fiscal.Totalize([]entity.InvoiceLine{
		line(3, 10_000, nil),
		line(1, 20_000, rate("18")),
	})

	assert.True(t, totals.HT.Equal(decimal.NewFromInt(50_000)))
	assert.True(t, totals.Tax.Equal(decimal.NewFromInt(3_600)))
	assert.True(t, totals.TTC.Equal(decimal.NewFromInt(53_600)))
}

// TestTotalize_OrdreIndifferent la somme étant commutative, l'ordre des lignes
// ne change pas les totaux.
func TestTotalize_OrdreIndifferent(t *testing.T) {
	lines := []entity.InvoiceLine{
		line(2, 65_000, rate("18")),
		line(1, 35_000, rate("18")),
		line(5, 1_234, nil),
		line(7, 999, rate("10")),
	}
	reversed := make([]entity.InvoiceLine, len(lines))
	for i, l := range lines {
		reversed[len(lines)-1-i] = l
	}

	a := fiscal.Totalize(lines)
	b := fiscal.Totalize(reversed)
	assert.True(t, a.HT.Equal(b.HT) && a.Tax.Equal(b.Tax) && a.TTC.Equal(b.TTC),
		"les totaux doivent être invariants par permutation des lignes")
}

// TestTotalize_IdentiteTTC ttc == ht + tax exactement, même avec des quantités
// et des taux fractionnaires qui forcent l'arrondi.
func TestTotalize_IdentiteTTC(t *testing.T) {
	q := decimal.RequireFromString("1.333")
	p := decimal.RequireFromString("99.99")
	lines := []entity.InvoiceLine{
		{Quantity: q, UnitPrice: p, TaxRate: rate("18")},
		{Quantity: decimal.RequireFromString("2.5"), UnitPrice: decimal.RequireFromString("33.335"), TaxRate: rate("7.5")},
	}

	totals := fiscal.Totalize(lines)
	assert.True(t, totals.TTC.Equal(totals.HT.Add(totals.Tax)),
		"ttc (%s) doit valoir exactement ht (%s) + tax (%s)", totals.TTC, totals.HT, totals.Tax)
	assert.True(t, totals.HT.Equal(totals.HT.RoundBank(2)), "HT déjà arrondi au centime")
	assert.True(t, totals.Tax.Equal(totals.Tax.RoundBank(2)), "taxe déjà arrondie au centime")
}
