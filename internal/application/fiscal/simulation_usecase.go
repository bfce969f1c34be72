// Package fiscal (application) orchestre le moteur de calcul pour la couche
// tableau de bord : simulations IRPP, synthèse des taxes d'une période et
// totaux de facture. Les bases et le journal sont toujours passés en
// paramètre au moteur, jamais lus d'un contexte ambiant.
package fiscal

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/ton-entreprise/fiscalia-api/internal/application/dto"
	"github.com/ton-entreprise/fiscalia-api/internal/domain"
	"github.com/ton-entreprise/fiscalia-api/internal/domain/entity"
	domfiscal "github.com/ton-entreprise/fiscalia-api/internal/domain/fiscal"
	"github.com/ton-entreprise/fiscalia-api/internal/domain/repository"
	"github.com/ton-entreprise/fiscalia-api/pkg/money"
)

// Rates taux plats par défaut (en pourcentage), injectés depuis la config.
// Les taux stockés dans les bases d'une période priment quand ils sont définis.
type Rates struct {
	TVA decimal.Decimal
	CSS decimal.Decimal
	IS  decimal.Decimal
	IMF decimal.Decimal
}

// SimulationUseCase cas d'usage de simulation fiscale.
type SimulationUseCase struct {
	basesRepo repository.TaxBasesRepository
	rates     Rates
}

// NewSimulationUseCase construit le cas d'usage.
func NewSimulationUseCase(basesRepo repository.TaxBasesRepository, rates Rates) *SimulationUseCase {
	return &SimulationUseCase{basesRepo: basesRepo, rates: rates}
}

// Totalize valide les lignes puis délègue au totaliseur du moteur.
// La validation (quantité > 0, prix ≥ 0, taux dans [0,100]) vit ici, à la
// frontière éditeur de facture : le moteur suppose l'entrée déjà validée.
func (uc *SimulationUseCase) Totalize(in dto.TotalizeRequest) (*dto.TotalsResponse, error) {
	lines := make([]entity.InvoiceLine, 0, len(in.Lines))
	for i, l := range in.Lines {
		if !l.Quantity.GreaterThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: ligne %d: champ quantity doit être strictement positif", domain.ErrInvalidInput, i)
		}
		if l.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: ligne %d: champ unit_price négatif", domain.ErrInvalidInput, i)
		}
		if l.TaxRate != nil && (l.TaxRate.IsNegative() || l.TaxRate.GreaterThan(decimal.NewFromInt(100))) {
			return nil, fmt.Errorf("%w: ligne %d: champ tax_rate hors [0, 100]", domain.ErrInvalidInput, i)
		}
		lines = append(lines, entity.InvoiceLine{
			Designation: l.Designation,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			TaxRate:     l.TaxRate,
		})
	}

	totals := domfiscal.Totalize(lines)
	return &dto.TotalsResponse{
		HT:           totals.HT,
		Tax:          totals.Tax,
		TTC:          totals.TTC,
		DisplayTotal: money.FormatFCFA(totals.TTC),
	}, nil
}

// SimulateIRPP calcule l'IRPP à partir d'une base et d'un quotient fourni brut
// ou dérivé de la situation familiale. Le quotient brut prime s'il est présent.
func (uc *SimulationUseCase) SimulateIRPP(in dto.IRPPRequest) (*dto.IRPPResponse, error) {
	quotient, err := uc.resolveQuotient(in)
	if err != nil {
		return nil, err
	}

	brackets := in.Brackets
	if len(brackets) == 0 {
		brackets = domfiscal.DefaultBrackets()
	}

	res, err := domfiscal.ComputeIRPP(in.TaxableBase, quotient, brackets)
	if err != nil {
		return nil, err
	}
	return &dto.IRPPResponse{
		Amount:         res.Amount,
		Parts:          res.Parts,
		TaxablePerPart: res.TaxablePerPart,
		DisplayAmount:  money.FormatFCFA(res.Amount),
	}, nil
}

func (uc *SimulationUseCase) resolveQuotient(in dto.IRPPRequest) (decimal.Decimal, error) {
	if in.Quotient != nil {
		return *in.Quotient, nil
	}
	if in.MaritalStatus == "" {
		return decimal.Zero, fmt.Errorf("%w: quotient ou marital_status requis", domain.ErrInvalidInput)
	}
	return domfiscal.FamilyQuotient(domfiscal.MaritalStatus(in.MaritalStatus), in.Dependents)
}

// ComputeTaxes dérive la synthèse TVA / CSS / IS-IMF d'une période depuis les
// bases persistées du dossier. Les résultats sont recalculés à chaque appel,
// jamais stockés.
func (uc *SimulationUseCase) ComputeTaxes(workspaceID, period string) (*dto.TaxesResponse, error) {
	bases, err := uc.basesRepo.Load(workspaceID, period)
	if err != nil {
		return nil, err
	}
	if bases == nil {
		return nil, domain.ErrNotFound
	}

	tva := domfiscal.VATNetPosition(bases.TVA.Collected, bases.TVA.Deductible)
	css := domfiscal.ComputeCSS(bases.CSS.Base, bases.CSS.Exclusions, uc.rates.CSS)
	isimf := domfiscal.ArbitrateISIMF(
		bases.IS.Base, rateOrDefault(bases.IS.Rate, uc.rates.IS),
		bases.IMF.Base, rateOrDefault(bases.IMF.Rate, uc.rates.IMF),
	)

	return &dto.TaxesResponse{
		Period: period,
		TVA: dto.TVAResponse{
			Collected:  tva.Collected,
			Deductible: tva.Deductible,
			Net:        tva.Net,
			Payable:    tva.Payable(),
			Credit:     tva.Credit(),
		},
		CSS: css,
		ISIMF: dto.ISIMFResponse{
			IS:          isimf.IS,
			IMF:         isimf.IMF,
			Due:         isimf.Due,
			RuleApplied: isimf.RuleApplied,
		},
	}, nil
}

// DefaultRates renvoie les taux par défaut de la configuration, pour le
// pré-remplissage des formulaires côté front.
func (uc *SimulationUseCase) DefaultRates() *dto.RatesResponse {
	return &dto.RatesResponse{
		TVA: uc.rates.TVA,
		CSS: uc.rates.CSS,
		IS:  uc.rates.IS,
		IMF: uc.rates.IMF,
	}
}

// rateOrDefault taux stocké dans les bases s'il est défini, sinon le taux de
// la configuration. Un taux stocké à zéro vaut "non renseigné".
func rateOrDefault(stored, def decimal.Decimal) decimal.Decimal {
	if stored.GreaterThan(decimal.Zero) {
		return stored
	}
	return def
}
