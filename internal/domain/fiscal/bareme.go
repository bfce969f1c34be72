package fiscal

import (
	"github.com/shopspring/decimal"
	"github.com/ton-entreprise/fiscalia-api/internal/domain/entity"
)

// DefaultBrackets barème IRPP par défaut (CGI sénégalais, art. 173).
// C'est une donnée de configuration : l'appelant peut fournir son propre
// barème à ComputeIRPP si la loi de finances change les tranches.
func DefaultBrackets() []entity.TaxBracket {
	bound := func(v int64) *decimal.Decimal {
		d := decimal.NewFromInt(v)
		return &d
	}
	return []entity.TaxBracket{
		{Lower: decimal.Zero, Upper: bound(630_000), Rate: decimal.Zero},
		{Lower: decimal.NewFromInt(630_000), Upper: bound(1_500_000), Rate: decimal.NewFromInt(20)},
		{Lower: decimal.NewFromInt(1_500_000), Upper: bound(4_000_000), Rate: decimal.NewFromInt(30)},
		{Lower: decimal.NewFromInt(4_000_000), Upper: bound(8_000_000), Rate: decimal.NewFromInt(35)},
		{Lower: decimal.NewFromInt(8_000_000), Upper: bound(13_500_000), Rate: decimal.NewFromInt(37)},
		{Lower: decimal.NewFromInt(13_500_000), Upper: nil, Rate: decimal.NewFromInt(40)},
	}
}
