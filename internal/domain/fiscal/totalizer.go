package fiscal

import (
	"github.com/shopspring/decimal"
	"github.com/ton-entreprise/fiscalia-api/internal/domain/entity"
	"github.com/ton-entreprise/fiscalia-api/pkg/money"
)

// Totalize réduit une liste de lignes de facture en totaux HT / taxe / TTC.
//
//	ht  = Σ quantité × prix unitaire
//	tax = Σ (taux/100) × quantité × prix unitaire (les lignes sans taux comptent 0)
//	ttc = ht + tax
//
// HT et taxe sont arrondis au centime indépendamment (pas dérivés l'un de
// l'autre par soustraction, pour ne pas composer les erreurs d'arrondi) ;
// le TTC est la somme exacte des deux arrondis, donc ttc == ht + tax tient
// toujours au centime près. Une liste vide rend des totaux à zéro, ce n'est
// pas une erreur.
func Totalize(lines []entity.InvoiceLine) entity.InvoiceTotals {
	ht := decimal.Zero
	tax := decimal.Zero
	for _, line := range lines {
		lineHT := line.Quantity.Mul(line.UnitPrice)
		ht = ht.Add(lineHT)
		if line.TaxRate != nil {
			tax = tax.Add(lineHT.Mul(money.RateFromPercent(*line.TaxRate)))
		}
	}

	ht = money.Round2(ht)
	tax = money.Round2(tax)
	return entity.InvoiceTotals{
		HT:  ht,
		Tax: tax,
		TTC: ht.Add(tax),
	}
}
