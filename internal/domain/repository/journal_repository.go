package repository

import "github.com/ton-entreprise/fiscalia-api/internal/domain/entity"

// JournalRepository définit le port de persistance du journal comptable.
// Le journal est append-only : création et suppression, jamais de mutation en
// place. Les soldes et le bilan sont dérivés de ListByWorkspace, jamais stockés.
type JournalRepository interface {
	Create(entry *entity.JournalEntry) error
	GetByID(id string) (*entity.JournalEntry, error)
	ListByWorkspace(workspaceID string) ([]entity.JournalEntry, error)
	Delete(id string) error
}
