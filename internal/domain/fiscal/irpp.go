package fiscal

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/ton-entreprise/fiscalia-api/internal/domain"
	"github.com/ton-entreprise/fiscalia-api/internal/domain/entity"
)

// IRPPResult résultat du calcul IRPP, avec les intermédiaires pour le reporting.
type IRPPResult struct {
	Amount         decimal.Decimal `json:"amount"`         // impôt dû par le foyer
	Parts          decimal.Decimal `json:"parts"`          // quotient appliqué
	TaxablePerPart decimal.Decimal `json:"taxablePerPart"` // revenu imposable par part
}

// ComputeIRPP calcule l'IRPP par la méthode du quotient familial : le revenu
// imposable est divisé par le nombre de parts, le barème progressif s'applique
// au revenu d'une part, puis l'impôt d'une part est multiplié par le quotient.
// Un foyer plus grand paie ainsi moins d'impôt marginal à revenu égal.
//
// Le quotient est accepté comme un nombre opaque ≥ 0.5 : il peut venir de
// FamilyQuotient ou être fourni directement par l'appelant (les deux usages
// existent côté simulateur). Une base ≤ 0 rend un impôt nul.
func ComputeIRPP(taxableBase, quotient decimal.Decimal, brackets []entity.TaxBracket) (IRPPResult, error) {
	if quotient.LessThan(entity.QuotientMin) {
		return IRPPResult{}, fmt.Errorf("%w: quotient %s en dessous du minimum de %s part", domain.ErrInvalidInput, quotient, entity.QuotientMin)
	}
	if quotient.GreaterThan(entity.QuotientMax) {
		return IRPPResult{}, fmt.Errorf("%w: quotient %s au-delà du plafond de %s parts", domain.ErrInvalidInput, quotient, entity.QuotientMax)
	}
	if err := ValidateBrackets(brackets); err != nil {
		return IRPPResult{}, err
	}

	if taxableBase.LessThanOrEqual(decimal.Zero) {
		return IRPPResult{Amount: decimal.Zero, Parts: quotient, TaxablePerPart: decimal.Zero}, nil
	}

	taxablePerPart := taxableBase.Div(quotient)
	taxForOnePart, err := ApplyBrackets(taxablePerPart, brackets)
	if err != nil {
		return IRPPResult{}, err
	}

	return IRPPResult{
		Amount:         taxForOnePart.Mul(quotient),
		Parts:          quotient,
		TaxablePerPart: taxablePerPart,
	}, nil
}
