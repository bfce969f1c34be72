package dto

import (
	"github.com/shopspring/decimal"
	"github.com/ton-entreprise/fiscalia-api/internal/domain/entity"
)

// InvoiceLineRequest ligne de facture soumise au totaliseur.
type InvoiceLineRequest struct {
	Designation string           `json:"designation"`
	Quantity    decimal.Decimal  `json:"quantity" validate:"required"`
	UnitPrice   decimal.Decimal  `json:"unit_price" validate:"required"`
	TaxRate     *decimal.Decimal `json:"tax_rate" validate:"omitempty"` // pourcentage [0,100] ; absent = hors taxe
}

// TotalizeRequest entrée du totaliseur de facture.
type TotalizeRequest struct {
	Lines []InvoiceLineRequest `json:"lines"`
}

// TotalsResponse totaux HT / taxe / TTC avec montants formatés pour l'affichage.
type TotalsResponse struct {
	HT           decimal.Decimal `json:"ht"`
	Tax          decimal.Decimal `json:"tax"`
	TTC          decimal.Decimal `json:"ttc"`
	DisplayTotal string          `json:"display_total"` // TTC formaté FCFA
}

// IRPPRequest entrée de la simulation IRPP. Le quotient peut être fourni
// brut (Quotient) ou dérivé de la situation familiale (MaritalStatus +
// Dependents) ; les deux points d'appel existent côté simulateur. Le barème
// est optionnel : à défaut, le barème par défaut s'applique.
type IRPPRequest struct {
	TaxableBase   decimal.Decimal     `json:"taxable_base" validate:"required"`
	Quotient      *decimal.Decimal    `json:"quotient" validate:"omitempty"`
	MaritalStatus string              `json:"marital_status" validate:"omitempty"`
	Dependents    int                 `json:"dependents" validate:"min=0"`
	Brackets      []entity.TaxBracket `json:"brackets" validate:"omitempty"`
}

// IRPPResponse résultat de la simulation IRPP.
type IRPPResponse struct {
	Amount         decimal.Decimal `json:"amount"`
	Parts          decimal.Decimal `json:"parts"`
	TaxablePerPart decimal.Decimal `json:"taxable_per_part"`
	DisplayAmount  string          `json:"display_amount"` // formaté FCFA
}

// TVAResponse position nette de TVA : le net signé pour le suivi du crédit
// reportable, le montant plancher à zéro pour l'affichage "à payer".
type TVAResponse struct {
	Collected  decimal.Decimal `json:"collected"`
	Deductible decimal.Decimal `json:"deductible"`
	Net        decimal.Decimal `json:"net"`
	Payable    decimal.Decimal `json:"payable"`
	Credit     decimal.Decimal `json:"credit"`
}

// ISIMFResponse arbitrage IS/IMF avec les intermédiaires et la règle retenue.
type ISIMFResponse struct {
	IS          decimal.Decimal `json:"is"`
	IMF         decimal.Decimal `json:"imf"`
	Due         decimal.Decimal `json:"due"`
	RuleApplied string          `json:"rule_applied"`
}

// RatesResponse taux par défaut configurés (en pourcentage), servis à
// l'éditeur de facture et aux formulaires de bases pour le pré-remplissage.
type RatesResponse struct {
	TVA decimal.Decimal `json:"tva"`
	CSS decimal.Decimal `json:"css"`
	IS  decimal.Decimal `json:"is"`
	IMF decimal.Decimal `json:"imf"`
}

// TaxesResponse synthèse fiscale d'une période pour le tableau de bord.
type TaxesResponse struct {
	Period string          `json:"period"`
	TVA    TVAResponse     `json:"tva"`
	CSS    decimal.Decimal `json:"css"`
	ISIMF  ISIMFResponse   `json:"is_imf"`
}

// TaxBasesResponse photographie des bases fiscales d'une période.
type TaxBasesResponse struct {
	WorkspaceID   string          `json:"workspace_id"`
	Period        string          `json:"period"`
	TVACollected  decimal.Decimal `json:"tva_collected"`
	TVADeductible decimal.Decimal `json:"tva_deductible"`
	CSSBase       decimal.Decimal `json:"css_base"`
	CSSExclusions decimal.Decimal `json:"css_exclusions"`
	ISBase        decimal.Decimal `json:"is_base"`
	ISRate        decimal.Decimal `json:"is_rate"`
	IMFBase       decimal.Decimal `json:"imf_base"`
	IMFRate       decimal.Decimal `json:"imf_rate"`
	IRPPBase      decimal.Decimal `json:"irpp_base"`
	IRPPQuotient  decimal.Decimal `json:"irpp_quotient"`
}

// TaxBasesPatch mise à jour typée champ par champ des bases fiscales : chaque
// champ est un pointeur, seuls les champs présents sont appliqués. C'est le
// remplacement du fusionnage dynamique par chemin de l'ancien front, validé
// contre le schéma complet avant application.
type TaxBasesPatch struct {
	TVACollected  *decimal.Decimal `json:"tva_collected"`
	TVADeductible *decimal.Decimal `json:"tva_deductible"`
	CSSBase       *decimal.Decimal `json:"css_base"`
	CSSExclusions *decimal.Decimal `json:"css_exclusions"`
	ISBase        *decimal.Decimal `json:"is_base"`
	ISRate        *decimal.Decimal `json:"is_rate"`
	IMFBase       *decimal.Decimal `json:"imf_base"`
	IMFRate       *decimal.Decimal `json:"imf_rate"`
	IRPPBase      *decimal.Decimal `json:"irpp_base"`
	IRPPQuotient  *decimal.Decimal `json:"irpp_quotient"`
}
