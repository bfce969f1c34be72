package fiscal

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/ton-entreprise/fiscalia-api/internal/domain"
	"github.com/ton-entreprise/fiscalia-api/internal/domain/entity"
)

// MaritalStatus situation matrimoniale (ensemble fermé).
type MaritalStatus string

const (
	StatusSingle   MaritalStatus = "celibataire"
	StatusMarried  MaritalStatus = "marie"
	StatusPacsed   MaritalStatus = "pacse"
	StatusDivorced MaritalStatus = "divorce"
	StatusWidowed  MaritalStatus = "veuf"
)

// Parts de base par situation matrimoniale.
var baseParts = map[MaritalStatus]decimal.Decimal{
	StatusSingle:   decimal.NewFromInt(1),
	StatusMarried:  decimal.NewFromInt(2),
	StatusPacsed:   decimal.NewFromInt(2),
	StatusDivorced: decimal.NewFromInt(1),
	StatusWidowed:  decimal.NewFromInt(1),
}

// FamilyQuotient calcule le nombre de parts du foyer : parts de base de la
// situation matrimoniale plus la règle par paliers des personnes à charge
// (+0.5 part pour la première, +1.0 cumulée à partir de la deuxième, puis
// +1.0 par personne supplémentaire). Le résultat doit rester dans [0.5, 10].
func FamilyQuotient(status MaritalStatus, dependents int) (decimal.Decimal, error) {
	base, ok := baseParts[status]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: situation matrimoniale inconnue %q", domain.ErrInvalidInput, status)
	}
	if dependents < 0 {
		return decimal.Zero, fmt.Errorf("%w: nombre de personnes à charge négatif", domain.ErrInvalidInput)
	}

	quotient := base.Add(dependentParts(dependents))
	if quotient.GreaterThan(entity.QuotientMax) {
		return decimal.Zero, fmt.Errorf("%w: quotient %s au-delà du plafond de %s parts", domain.ErrInvalidInput, quotient, entity.QuotientMax)
	}
	return quotient, nil
}

// dependentParts parts additionnelles selon le nombre de personnes à charge :
// 0 -> 0 ; 1 -> 0.5 ; n ≥ 2 -> n − 1.
func dependentParts(dependents int) decimal.Decimal {
	switch {
	case dependents <= 0:
		return decimal.Zero
	case dependents == 1:
		return decimal.NewFromFloat(0.5)
	default:
		return decimal.NewFromInt(int64(dependents - 1))
	}
}
