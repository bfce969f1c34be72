package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/ton-entreprise/fiscalia-api/pkg/money"
)

// TestRound2_HalfToEven vérifie l'arrondi bancaire au centime : un demi-centime
// exact va vers le chiffre pair, pas systématiquement vers le haut.
func TestRound2_HalfToEven(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"demi vers pair bas", "1.125", "1.12"},
		{"demi vers pair haut", "1.135", "1.14"},
		{"au dessus du demi", "1.1251", "1.13"},
		{"deja deux decimales", "10.50", "10.5"},
		{"negatif demi vers pair", "-1.125", "-1.12"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := money.Round2(decimal.RequireFromString(tc.in))
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
				"Round2(%s) = %s, attendu %s", tc.in, got, tc.want)
		})
	}
}

// TestDisplayUnits_Troncature vérifie la troncature à l'unité FCFA, y compris
// sur les résidus de division décimale périodique.
func TestDisplayUnits_Troncature(t *testing.T) {
	assert.True(t, money.DisplayUnits(decimal.RequireFromString("1234.99")).Equal(decimal.NewFromInt(1234)),
		"les centimes sont tronqués, pas arrondis")

	// 495000 / 3 recalculé : la division décimale exacte ne doit pas faire
	// perdre une unité à l'affichage.
	tiers := decimal.NewFromInt(495000).Div(decimal.NewFromInt(3))
	assert.True(t, money.DisplayUnits(tiers).Equal(decimal.NewFromInt(165000)))

	residu := decimal.RequireFromString("164999.9999999999")
	assert.True(t, money.DisplayUnits(residu).Equal(decimal.NewFromInt(165000)),
		"un résidu de calcul exact ne doit pas tronquer une unité entière")
}

func TestRateFromPercent(t *testing.T) {
	assert.True(t, money.RateFromPercent(decimal.NewFromInt(18)).Equal(decimal.RequireFromString("0.18")))
	assert.True(t, money.RateFromPercent(decimal.RequireFromString("0.5")).Equal(decimal.RequireFromString("0.005")))
}

func TestFormatFCFA(t *testing.T) {
	got := money.FormatFCFA(decimal.RequireFromString("1234567.89"))
	// groupement des milliers à la française (espace insécable étroite de x/text)
	assert.Contains(t, got, "FCFA")
	assert.NotContains(t, got, ".89", "l'affichage FCFA est en unités entières")
}
