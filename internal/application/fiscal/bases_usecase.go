package fiscal

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/ton-entreprise/fiscalia-api/internal/application/dto"
	"github.com/ton-entreprise/fiscalia-api/internal/domain"
	"github.com/ton-entreprise/fiscalia-api/internal/domain/entity"
	"github.com/ton-entreprise/fiscalia-api/internal/domain/repository"
)

// BasesUseCase cas d'usage des bases fiscales d'un dossier.
type BasesUseCase struct {
	repo repository.TaxBasesRepository
}

// NewBasesUseCase construit le cas d'usage.
func NewBasesUseCase(repo repository.TaxBasesRepository) *BasesUseCase {
	return &BasesUseCase{repo: repo}
}

// Get renvoie les bases d'une période. Une période jamais saisie renvoie des
// bases à zéro (le tableau de bord affiche des zéros, pas une erreur).
func (uc *BasesUseCase) Get(workspaceID, period string) (*dto.TaxBasesResponse, error) {
	if period == "" {
		return nil, fmt.Errorf("%w: champ period requis", domain.ErrInvalidInput)
	}
	bases, err := uc.repo.Load(workspaceID, period)
	if err != nil {
		return nil, err
	}
	if bases == nil {
		bases = emptyBases(workspaceID, period)
	}
	return toBasesResponse(bases), nil
}

// Update applique un patch typé champ par champ sur les bases d'une période,
// après validation complète : aucun champ n'est appliqué si un seul est
// invalide. Les bases absentes sont initialisées à zéro avant le patch.
func (uc *BasesUseCase) Update(workspaceID, period string, patch dto.TaxBasesPatch) (*dto.TaxBasesResponse, error) {
	if period == "" {
		return nil, fmt.Errorf("%w: champ period requis", domain.ErrInvalidInput)
	}
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	bases, err := uc.repo.Load(workspaceID, period)
	if err != nil {
		return nil, err
	}
	if bases == nil {
		bases = emptyBases(workspaceID, period)
	}

	applyPatch(bases, patch)
	bases.UpdatedAt = time.Now()
	if err := uc.repo.Save(bases); err != nil {
		return nil, err
	}
	return toBasesResponse(bases), nil
}

// validatePatch valide le patch entier avant toute application : assiettes
// monétaires non négatives (sauf le résultat fiscal IS, qui peut être une
// perte), taux dans [0, 100], quotient dans [0.5, 10].
func validatePatch(p dto.TaxBasesPatch) error {
	nonNegative := map[string]*decimal.Decimal{
		"tva_collected":  p.TVACollected,
		"tva_deductible": p.TVADeductible,
		"css_base":       p.CSSBase,
		"css_exclusions": p.CSSExclusions,
		"imf_base":       p.IMFBase,
		"irpp_base":      p.IRPPBase,
	}
	for field, v := range nonNegative {
		if v != nil && v.IsNegative() {
			return fmt.Errorf("%w: champ %s négatif", domain.ErrInvalidInput, field)
		}
	}

	hundred := decimal.NewFromInt(100)
	rates := map[string]*decimal.Decimal{
		"is_rate":  p.ISRate,
		"imf_rate": p.IMFRate,
	}
	for field, v := range rates {
		if v != nil && (v.IsNegative() || v.GreaterThan(hundred)) {
			return fmt.Errorf("%w: champ %s hors [0, 100]", domain.ErrInvalidInput, field)
		}
	}

	if p.IRPPQuotient != nil {
		q := *p.IRPPQuotient
		if q.LessThan(entity.QuotientMin) || q.GreaterThan(entity.QuotientMax) {
			return fmt.Errorf("%w: champ irpp_quotient hors [0.5, 10]", domain.ErrInvalidInput)
		}
	}
	return nil
}

func applyPatch(b *entity.TaxBases, p dto.TaxBasesPatch) {
	if p.TVACollected != nil {
		b.TVA.Collected = *p.TVACollected
	}
	if p.TVADeductible != nil {
		b.TVA.Deductible = *p.TVADeductible
	}
	if p.CSSBase != nil {
		b.CSS.Base = *p.CSSBase
	}
	if p.CSSExclusions != nil {
		b.CSS.Exclusions = *p.CSSExclusions
	}
	if p.ISBase != nil {
		b.IS.Base = *p.ISBase
	}
	if p.ISRate != nil {
		b.IS.Rate = *p.ISRate
	}
	if p.IMFBase != nil {
		b.IMF.Base = *p.IMFBase
	}
	if p.IMFRate != nil {
		b.IMF.Rate = *p.IMFRate
	}
	if p.IRPPBase != nil {
		b.IRPP.Base = *p.IRPPBase
	}
	if p.IRPPQuotient != nil {
		b.IRPP.Quotient = *p.IRPPQuotient
	}
}

func emptyBases(workspaceID, period string) *entity.TaxBases {
	now := time.Now()
	return &entity.TaxBases{
		ID:          uuid.New().String(),
		WorkspaceID: workspaceID,
		Period:      period,
		// quotient par défaut : une part (célibataire sans personne à charge)
		IRPP:      entity.IRPPBases{Quotient: decimal.NewFromInt(1)},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func toBasesResponse(b *entity.TaxBases) *dto.TaxBasesResponse {
	return &dto.TaxBasesResponse{
		WorkspaceID:   b.WorkspaceID,
		Period:        b.Period,
		TVACollected:  b.TVA.Collected,
		TVADeductible: b.TVA.Deductible,
		CSSBase:       b.CSS.Base,
		CSSExclusions: b.CSS.Exclusions,
		ISBase:        b.IS.Base,
		ISRate:        b.IS.Rate,
		IMFBase:       b.IMF.Base,
		IMFRate:       b.IMF.Rate,
		IRPPBase:      b.IRPP.Base,
		IRPPQuotient:  b.IRPP.Quotient,
	}
}
