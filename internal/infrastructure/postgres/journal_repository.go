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

var _ repository.JournalRepository = (*JournalRepo)(nil)

// JournalRepo implémentation du port JournalRepository sur PostgreSQL.
// Les écritures sont immuables : insert et delete, jamais d'update.
type JournalRepo struct {
	pool *pgxpool.Pool
}

// NewJournalRepository construit l'adaptateur de persistance du journal.
func NewJournalRepository(pool *pgxpool.Pool) *JournalRepo {
	return &JournalRepo{pool: pool}
}

// Create persiste une nouvelle écriture.
func (r *JournalRepo) Create(entry *entity.JournalEntry) error {
	query := `
		INSERT INTO journal_entries (id, workspace_id, entry_date, description, debit_account, credit_account, amount, reference, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		entry.ID, entry.WorkspaceID, entry.Date, entry.Description,
		entry.DebitAccount, entry.CreditAccount, entry.Amount,
		nullIfEmpty(entry.Reference), entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert journal entry: %w", err)
	}
	return nil
}

// GetByID récupère une écriture par ID.
func (r *JournalRepo) GetByID(id string) (*entity.JournalEntry, error) {
	query := journalSelect + ` WHERE id = $1`
	var e entity.JournalEntry
	var ref *string
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.WorkspaceID, &e.Date, &e.Description,
		&e.DebitAccount, &e.CreditAccount, &e.Amount, &ref, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get journal entry by id: %w", err)
	}
	if ref != nil {
		e.Reference = *ref
	}
	return &e, nil
}

// ListByWorkspace liste toutes les écritures d'un dossier, dans l'ordre
// chronologique de saisie. Pas de pagination : les soldes et le bilan ont
// besoin du journal complet.
func (r *JournalRepo) ListByWorkspace(workspaceID string) ([]entity.JournalEntry, error) {
	query := journalSelect + ` WHERE workspace_id = $1 ORDER BY created_at, id`
	rows, err := r.pool.Query(context.Background(), query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}
	defer rows.Close()
	var list []entity.JournalEntry
	for rows.Next() {
		var e entity.JournalEntry
		var ref *string
		if err := rows.Scan(&e.ID, &e.WorkspaceID, &e.Date, &e.Description,
			&e.DebitAccount, &e.CreditAccount, &e.Amount, &ref, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		if ref != nil {
			e.Reference = *ref
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Delete supprime une écriture par ID.
func (r *JournalRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM journal_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete journal entry: %w", err)
	}
	return nil
}

const journalSelect = `
	SELECT id, workspace_id, entry_date, description, debit_account, credit_account, amount, reference, created_at
	FROM journal_entries`

// nullIfEmpty convertit une chaîne vide en NULL pour les colonnes optionnelles.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
