package entity

import "github.com/shopspring/decimal"

// InvoiceLine ligne de facture éphémère, possédée par l'éditeur de facture.
// Le totaliseur suppose l'entrée pré-validée (quantité > 0, prix ≥ 0) ;
// cette validation appartient à l'éditeur, pas au moteur.
type InvoiceLine struct {
	Designation string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	TaxRate     *decimal.Decimal // en pourcentage [0, 100] ; nil = ligne hors taxe
}

// InvoiceTotals totaux dérivés d'une liste de lignes. Jamais persistés
// indépendamment des lignes sources : recalculés à chaque modification pour
// éviter tout total périmé.
type InvoiceTotals struct {
	HT  decimal.Decimal `json:"ht"`
	Tax decimal.Decimal `json:"tax"`
	TTC decimal.Decimal `json:"ttc"`
}
