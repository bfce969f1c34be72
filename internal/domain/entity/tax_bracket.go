package entity

import "github.com/shopspring/decimal"

// TaxBracket tranche d'un barème progressif.
// Upper à nil signifie +∞ (dernière tranche). Rate est en pourcentage.
// Un barème valide est ordonné, contigu (Lower[i+1] == Upper[i]) et couvre
// [0, +∞) sans trou — voir fiscal.ValidateBrackets.
type TaxBracket struct {
	Lower decimal.Decimal  `json:"lower"`
	Upper *decimal.Decimal `json:"upper"` // nil = +∞
	Rate  decimal.Decimal  `json:"rate"`  // en pourcentage, [0, 100]
}
