package fiscal

import (
	"github.com/shopspring/decimal"
	"github.com/ton-entreprise/fiscalia-api/pkg/money"
)

// VATPosition position nette de TVA d'une période.
// Net garde son signe : un net négatif (déductible > collectée) est un crédit
// de TVA reportable. L'écrêtage à zéro est une politique d'affichage de
// l'appelant (Payable), pas un clamp interne silencieux.
type VATPosition struct {
	Collected  decimal.Decimal `json:"collected"`
	Deductible decimal.Decimal `json:"deductible"`
	Net        decimal.Decimal `json:"net"` // collectée − déductible, signé
}

// VATNetPosition calcule la position nette de TVA (signée).
func VATNetPosition(collected, deductible decimal.Decimal) VATPosition {
	return VATPosition{
		Collected:  collected,
		Deductible: deductible,
		Net:        collected.Sub(deductible),
	}
}

// Payable montant de TVA à décaisser : le net plancher à zéro.
// Le crédit reportable reste disponible via Net.
func (p VATPosition) Payable() decimal.Decimal {
	if p.Net.IsNegative() {
		return decimal.Zero
	}
	return p.Net
}

// Credit crédit de TVA reportable (positif quand déductible > collectée, sinon zéro).
func (p VATPosition) Credit() decimal.Decimal {
	if p.Net.IsNegative() {
		return p.Net.Neg()
	}
	return decimal.Zero
}

// ComputeCSS contribution solidarité : max(0, base − exclusions) × taux.
// Le taux est en pourcentage (1 pour 1%).
func ComputeCSS(base, exclusions, ratePercent decimal.Decimal) decimal.Decimal {
	assiette := base.Sub(exclusions)
	if assiette.IsNegative() {
		assiette = decimal.Zero
	}
	return assiette.Mul(money.RateFromPercent(ratePercent))
}

// Règle retenue par l'arbitrage IS/IMF.
const (
	RuleIS  = "IS"
	RuleIMF = "IMF"
)

// ISIMFResult résultat de l'arbitrage IS contre IMF : les deux montants
// intermédiaires, le montant retenu et la règle gagnante, pour la transparence
// du reporting.
type ISIMFResult struct {
	IS          decimal.Decimal `json:"is"`
	IMF         decimal.Decimal `json:"imf"`
	Due         decimal.Decimal `json:"due"`
	RuleApplied string          `json:"ruleApplied"`
}

// ArbitrateISIMF calcule l'IS proportionnel et l'IMF forfaitaire puis retient
// le plus élevé : l'IMF joue le rôle de plancher quand l'IS serait inférieur,
// y compris en cas de perte (base ≤ 0 ⇒ IS = 0, seul l'IMF est dû).
// Les taux sont en pourcentage.
func ArbitrateISIMF(isBase, isRatePercent, revenueBase, imfRatePercent decimal.Decimal) ISIMFResult {
	is := decimal.Zero
	if isBase.GreaterThan(decimal.Zero) {
		is = isBase.Mul(money.RateFromPercent(isRatePercent))
	}
	imf := revenueBase.Mul(money.RateFromPercent(imfRatePercent))

	res := ISIMFResult{IS: is, IMF: imf}
	if imf.GreaterThan(is) {
		res.Due = imf
		res.RuleApplied = RuleIMF
	} else {
		res.Due = is
		res.RuleApplied = RuleIS
	}
	return res
}
