package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ton-entreprise/fiscalia-api/internal/domain/entity"
	"github.com/ton-entreprise/fiscalia-api/internal/domain/repository"
)

var _ repository.TaxBasesRepository = (*TaxBasesRepo)(nil)

// TaxBasesRepo implémentation du port TaxBasesRepository sur PostgreSQL.
// Une ligne par couple (workspace, période) ; les colonnes NUMERIC sont lues
// directement en decimal via le codec enregistré sur le pool.
type TaxBasesRepo struct {
	pool *pgxpool.Pool
}

// NewTaxBasesRepository construit l'adaptateur de persistance des bases fiscales.
func NewTaxBasesRepository(pool *pgxpool.Pool) *TaxBasesRepo {
	return &TaxBasesRepo{pool: pool}
}

// Load charge les bases d'une période. Renvoie nil (sans erreur) si la période
// n'a pas encore de bases saisies.
func (r *TaxBasesRepo) Load(workspaceID, period string) (*entity.TaxBases, error) {
	query := `
		SELECT id, workspace_id, period,
		       tva_collected, tva_deductible,
		       css_base, css_exclusions,
		       is_base, is_rate,
		       imf_base, imf_rate,
		       irpp_base, irpp_quotient,
		       created_at, updated_at
		FROM tax_bases WHERE workspace_id = $1 AND period = $2`
	var b entity.TaxBases
	err := r.pool.QueryRow(context.Background(), query, workspaceID, period).Scan(
		&b.ID, &b.WorkspaceID, &b.Period,
		&b.TVA.Collected, &b.TVA.Deductible,
		&b.CSS.Base, &b.CSS.Exclusions,
		&b.IS.Base, &b.IS.Rate,
		&b.IMF.Base, &b.IMF.Rate,
		&b.IRPP.Base, &b.IRPP.Quotient,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load tax bases: %w", err)
	}
	return &b, nil
}

// Save insère ou remplace les bases d'une période (upsert sur workspace+période).
func (r *TaxBasesRepo) Save(bases *entity.TaxBases) error {
	query := `
		INSERT INTO tax_bases (id, workspace_id, period,
			tva_collected, tva_deductible,
			css_base, css_exclusions,
			is_base, is_rate,
			imf_base, imf_rate,
			irpp_base, irpp_quotient,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (workspace_id, period) DO UPDATE SET
			tva_collected = EXCLUDED.tva_collected,
			tva_deductible = EXCLUDED.tva_deductible,
			css_base = EXCLUDED.css_base,
			css_exclusions = EXCLUDED.css_exclusions,
			is_base = EXCLUDED.is_base,
			is_rate = EXCLUDED.is_rate,
			imf_base = EXCLUDED.imf_base,
			imf_rate = EXCLUDED.imf_rate,
			irpp_base = EXCLUDED.irpp_base,
			irpp_quotient = EXCLUDED.irpp_quotient,
			updated_at = EXCLUDED.updated_at`
	_, err := r.pool.Exec(context.Background(), query,
		bases.ID, bases.WorkspaceID, bases.Period,
		bases.TVA.Collected, bases.TVA.Deductible,
		bases.CSS.Base, bases.CSS.Exclusions,
		bases.IS.Base, bases.IS.Rate,
		bases.IMF.Base, bases.IMF.Rate,
		bases.IRPP.Base, bases.IRPP.Quotient,
		bases.CreatedAt, bases.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save tax bases: %w", err)
	}
	return nil
}
