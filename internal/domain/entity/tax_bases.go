package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bornes du quotient familial (nombre de parts).
// En dessous de 0.5 part le quotient est invalide ; au-delà de 10 parts on
// considère la saisie aberrante et on la rejette plutôt que de l'écrêter.
var (
	QuotientMin = decimal.NewFromFloat(0.5)
	QuotientMax = decimal.NewFromInt(10)
)

// TVABases assiettes de TVA d'une période.
type TVABases struct {
	Collected  decimal.Decimal // TVA collectée sur les ventes
	Deductible decimal.Decimal // TVA déductible sur les achats
}

// CSSBases assiette de la contribution solidarité.
type CSSBases struct {
	Base       decimal.Decimal
	Exclusions decimal.Decimal // éléments exonérés à retrancher de l'assiette
}

// ISBases assiette et taux de l'impôt sur les sociétés.
type ISBases struct {
	Base decimal.Decimal // résultat fiscal (peut être une perte, donc négatif)
	Rate decimal.Decimal // en pourcentage
}

// IMFBases assiette et taux de l'impôt minimum forfaitaire.
type IMFBases struct {
	Base decimal.Decimal // chiffre d'affaires
	Rate decimal.Decimal // en pourcentage
}

// IRPPBases assiette et quotient familial de l'IRPP.
type IRPPBases struct {
	Base     decimal.Decimal // revenu imposable du foyer
	Quotient decimal.Decimal // nombre de parts, contraint à [0.5, 10]
}

// TaxBases photographie des assiettes fiscales d'un workspace pour une période.
// Entité persistée : seules les mises à jour explicites (patch typé) la modifient ;
// tous les résultats d'impôts sont recalculés à la demande, jamais stockés.
type TaxBases struct {
	ID          string
	WorkspaceID string
	Period      string // période fiscale, format "2025" ou "2025-Q1"
	TVA         TVABases
	CSS         CSSBases
	IS          ISBases
	IMF         IMFBases
	IRPP        IRPPBases
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// QuotientValid vérifie que le quotient est dans [0.5, 10].
func (b IRPPBases) QuotientValid() bool {
	return b.Quotient.GreaterThanOrEqual(QuotientMin) && b.Quotient.LessThanOrEqual(QuotientMax)
}
