// Package fiscal implémente le moteur de calcul d'impôts (service de domaine,
// fonctions pures) : barème progressif, quotient familial, IRPP, TVA, CSS et
// arbitrage IS/IMF, plus le totaliseur de lignes de facture.
//
// Tout calcul se fait en décimal exact ; l'arrondi est l'affaire de la couche
// de présentation (pkg/money).
package fiscal

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/ton-entreprise/fiscalia-api/internal/domain"
	"github.com/ton-entreprise/fiscalia-api/internal/domain/entity"
	"github.com/ton-entreprise/fiscalia-api/pkg/money"
)

var hundred = decimal.NewFromInt(100)

// ValidateBrackets vérifie qu'un barème est exploitable : ordonné, contigu
// (Lower[i+1] == Upper[i]), partant de 0, dernière tranche ouverte sur +∞,
// taux dans [0, 100]. L'erreur nomme la tranche fautive.
func ValidateBrackets(brackets []entity.TaxBracket) error {
	if len(brackets) == 0 {
		return fmt.Errorf("%w: barème vide", domain.ErrInvalidInput)
	}
	if !brackets[0].Lower.IsZero() {
		return fmt.Errorf("%w: la première tranche doit partir de 0", domain.ErrInvalidInput)
	}
	for i, b := range brackets {
		if b.Rate.IsNegative() || b.Rate.GreaterThan(hundred) {
			return fmt.Errorf("%w: tranche %d: taux hors [0, 100]", domain.ErrInvalidInput, i)
		}
		last := i == len(brackets)-1
		if last {
			if b.Upper != nil {
				return fmt.Errorf("%w: la dernière tranche doit être ouverte (borne haute absente)", domain.ErrInvalidInput)
			}
			continue
		}
		if b.Upper == nil {
			return fmt.Errorf("%w: tranche %d: borne haute absente avant la dernière tranche", domain.ErrInvalidInput, i)
		}
		if !b.Upper.GreaterThan(b.Lower) {
			return fmt.Errorf("%w: tranche %d: borne haute ≤ borne basse", domain.ErrInvalidInput, i)
		}
		if !brackets[i+1].Lower.Equal(*b.Upper) {
			return fmt.Errorf("%w: tranche %d: le barème a un trou ou un chevauchement", domain.ErrInvalidInput, i)
		}
	}
	return nil
}

// ApplyBrackets applique l'algorithme progressif marginal standard : pour
// chaque tranche, la part imposable est max(0, min(montant, haute) − basse)
// et l'impôt est la somme des parts × taux. Seule la fraction du revenu qui
// tombe dans une tranche est taxée à son taux, jamais le montant entier.
// Un montant négatif ou nul rend 0 ; au-delà de la dernière borne connue,
// le reliquat est taxé au taux de la dernière tranche.
func ApplyBrackets(amount decimal.Decimal, brackets []entity.TaxBracket) (decimal.Decimal, error) {
	if err := ValidateBrackets(brackets); err != nil {
		return decimal.Zero, err
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, nil
	}

	tax := decimal.Zero
	for _, b := range brackets {
		top := amount
		if b.Upper != nil && b.Upper.LessThan(amount) {
			top = *b.Upper
		}
		slice := top.Sub(b.Lower)
		if slice.LessThanOrEqual(decimal.Zero) {
			continue
		}
		tax = tax.Add(slice.Mul(money.RateFromPercent(b.Rate)))
	}
	return tax, nil
}
