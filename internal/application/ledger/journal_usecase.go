// Package ledger (application) expose le journal en partie double et ses
// rapports dérivés à la couche HTTP : ajout/suppression d'écritures, soldes,
// bilan et exports.
package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ton-entreprise/fiscalia-api/internal/application/dto"
	"github.com/ton-entreprise/fiscalia-api/internal/domain"
	"github.com/ton-entreprise/fiscalia-api/internal/domain/entity"
	domledger "github.com/ton-entreprise/fiscalia-api/internal/domain/ledger"
	"github.com/ton-entreprise/fiscalia-api/internal/domain/repository"
)

// JournalUseCase cas d'usage du journal : ajout, liste, suppression.
// La sérialisation des mutations concurrentes d'un même dossier est l'affaire
// de l'appelant (session propriétaire) ; ici chaque opération est un aller
// simple validation → persistance.
type JournalUseCase struct {
	repo repository.JournalRepository
}

// NewJournalUseCase construit le cas d'usage.
func NewJournalUseCase(repo repository.JournalRepository) *JournalUseCase {
	return &JournalUseCase{repo: repo}
}

// AddEntry valide puis ajoute une écriture au journal. Une écriture refusée
// n'est jamais partiellement appliquée.
func (uc *JournalUseCase) AddEntry(workspaceID string, in dto.CreateEntryRequest) (*dto.EntryResponse, error) {
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: champ date au format 2006-01-02", domain.ErrInvalidInput)
	}

	entry := &entity.JournalEntry{
		ID:            uuid.New().String(),
		WorkspaceID:   workspaceID,
		Date:          date,
		Description:   in.Description,
		DebitAccount:  in.DebitAccount,
		CreditAccount: in.CreditAccount,
		Amount:        in.Amount,
		Reference:     in.Reference,
		CreatedAt:     time.Now(),
	}
	if err := domledger.ValidateEntry(entry); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(entry); err != nil {
		return nil, err
	}
	return toEntryResponse(entry), nil
}

// ListEntries renvoie le journal complet du dossier, plus ancien d'abord.
func (uc *JournalUseCase) ListEntries(workspaceID string) ([]dto.EntryResponse, error) {
	entries, err := uc.repo.ListByWorkspace(workspaceID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, *toEntryResponse(&entries[i]))
	}
	return out, nil
}

// DeleteEntry retire une écriture du journal. Les autres écritures ne sont pas
// affectées ; soldes et bilan seront recalculés à la prochaine lecture.
func (uc *JournalUseCase) DeleteEntry(workspaceID, entryID string) error {
	entry, err := uc.repo.GetByID(entryID)
	if err != nil {
		return err
	}
	if entry == nil {
		return domain.ErrNotFound
	}
	if entry.WorkspaceID != workspaceID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(entryID)
}

func toEntryResponse(e *entity.JournalEntry) *dto.EntryResponse {
	return &dto.EntryResponse{
		ID:            e.ID,
		Date:          e.Date.Format("2006-01-02"),
		Description:   e.Description,
		DebitAccount:  e.DebitAccount,
		CreditAccount: e.CreditAccount,
		Amount:        e.Amount,
		Reference:     e.Reference,
		CreatedAt:     e.CreatedAt,
	}
}
