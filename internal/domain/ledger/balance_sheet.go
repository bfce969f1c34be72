package ledger

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/ton-entreprise/fiscalia-api/internal/domain/entity"
)

// SectionUnclassified section de repli pour les comptes absents de la table de
// classement : rien ne disparaît silencieusement du bilan, mais ces comptes ne
// participent pas à l'identité actif = passif + capitaux.
const SectionUnclassified = "non_classe"

// Classification table de classement code de compte → section du bilan.
// Les clés sont des préfixes de code : le préfixe correspondant le plus long
// gagne ("41" prime sur "4"). C'est une donnée de configuration fournie par
// l'appelant ; DefaultClassification couvre le plan SYSCOHADA.
type Classification map[string]string

// SectionFor renvoie la section d'un compte, ou SectionUnclassified si aucun
// préfixe ne correspond.
func (c Classification) SectionFor(account string) string {
	best := ""
	for prefix := range c {
		if strings.HasPrefix(account, prefix) && len(prefix) > len(best) {
			best = prefix
		}
	}
	if best == "" {
		return SectionUnclassified
	}
	return c[best]
}

// DefaultClassification classement SYSCOHADA par classe de compte.
// La classe 4 (tiers) est détaillée : clients à l'actif, le reste au passif.
func DefaultClassification() Classification {
	return Classification{
		"1":  entity.SectionEquity,      // capitaux propres et emprunts assimilés
		"2":  entity.SectionAssets,      // immobilisations
		"3":  entity.SectionAssets,      // stocks
		"4":  entity.SectionLiabilities, // tiers, créditeur par défaut
		"41": entity.SectionAssets,      // clients
		"5":  entity.SectionAssets,      // trésorerie
		"6":  entity.SectionExpenses,    // charges
		"7":  entity.SectionRevenue,     // produits
	}
}

// ComputeBalanceSheet regroupe les soldes en sections via la table de
// classement puis totalise par section, chaque total dans son sens naturel
// (débiteur pour l'actif et les charges, créditeur pour le reste).
//
// Le résultat de la période (produits − charges) est rattaché aux capitaux
// propres : l'identité comptable TotalAssets == TotalLiabilities + TotalEquity
// tient alors pour tout journal équilibré entièrement classé.
func ComputeBalanceSheet(balances map[string]entity.AccountBalance, classification Classification) entity.BalanceSheet {
	sections := make(map[string]entity.BalanceSheetSection)

	for _, b := range SortedBalances(balances) {
		name := classification.SectionFor(b.Account)
		section, ok := sections[name]
		if !ok {
			section = entity.BalanceSheetSection{Section: name, Total: decimal.Zero}
		}
		section.Accounts = append(section.Accounts, b)
		section.Total = section.Total.Add(naturalBalance(name, b))
		sections[name] = section
	}

	// ordre des comptes déjà trié par SortedBalances ; garantir la stabilité
	for name, s := range sections {
		sort.Slice(s.Accounts, func(i, j int) bool { return s.Accounts[i].Account < s.Accounts[j].Account })
		sections[name] = s
	}

	assets := sections[entity.SectionAssets].Total
	liabilities := sections[entity.SectionLiabilities].Total
	result := sections[entity.SectionRevenue].Total.Sub(sections[entity.SectionExpenses].Total)
	equity := sections[entity.SectionEquity].Total.Add(result)

	return entity.BalanceSheet{
		Sections:         sections,
		TotalAssets:      assets,
		TotalLiabilities: liabilities,
		TotalEquity:      equity,
	}
}

// naturalBalance exprime un solde dans le sens naturel de sa section :
// solde débiteur tel quel pour l'actif et les charges, solde créditeur
// (négation) pour le passif, les capitaux et les produits.
func naturalBalance(section string, b entity.AccountBalance) decimal.Decimal {
	switch section {
	case entity.SectionAssets, entity.SectionExpenses:
		return b.Balance
	case entity.SectionLiabilities, entity.SectionEquity, entity.SectionRevenue:
		return b.Balance.Neg()
	default:
		return b.Balance
	}
}
