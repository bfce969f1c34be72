// Package money centralise les règles d'arrondi et de formatage monétaire
// partagées par tout le moteur fiscal et comptable.
//
// Contrat de précision : tous les calculs intermédiaires se font en décimal
// exact (shopspring/decimal, jamais de float), l'arrondi n'intervient qu'aux
// frontières de présentation. L'arrondi au centime est un arrondi bancaire
// (half-to-even) ; l'affichage en FCFA tronque ensuite à l'unité entière,
// comme les montants sources.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Zero montant nul réutilisable.
var Zero = decimal.Zero

// Round2 arrondit au centime en half-to-even (arrondi bancaire).
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(2)
}

// DisplayUnits tronque un montant à l'unité de monnaie entière (FCFA sans centimes).
// On arrondit d'abord au centime pour ne pas tronquer un résidu de calcul exact
// du type 164999.999999… issu d'une division décimale périodique.
func DisplayUnits(d decimal.Decimal) decimal.Decimal {
	return Round2(d).Truncate(0)
}

// RateFromPercent convertit un taux exprimé en pourcentage (18, 1, 0.5) en
// fraction décimale (0.18, 0.01, 0.005).
func RateFromPercent(percent decimal.Decimal) decimal.Decimal {
	return percent.Div(decimal.NewFromInt(100))
}

// printer français : groupement des milliers par espace (1 234 567).
var frPrinter = message.NewPrinter(language.French)

// FormatFCFA formate un montant pour affichage : unités entières groupées
// par milliers, suffixe FCFA. Ex : 1 234 567 FCFA.
func FormatFCFA(d decimal.Decimal) string {
	units := DisplayUnits(d)
	return frPrinter.Sprintf("%d FCFA", units.IntPart())
}
