package ledger

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/ton-entreprise/fiscalia-api/internal/application/dto"
	"github.com/ton-entreprise/fiscalia-api/internal/domain"
	"github.com/ton-entreprise/fiscalia-api/internal/domain/entity"
	domledger "github.com/ton-entreprise/fiscalia-api/internal/domain/ledger"
	"github.com/ton-entreprise/fiscalia-api/internal/domain/repository"
	"github.com/ton-entreprise/fiscalia-api/pkg/money"
)

// BalanceSheetPDFGenerator port de génération du bilan en PDF.
type BalanceSheetPDFGenerator interface {
	GenerateBalanceSheetPDF(ctx context.Context, ws *entity.Workspace, sheet *entity.BalanceSheet) ([]byte, error)
}

// JournalExporter port d'export du journal (remise au cabinet comptable).
type JournalExporter interface {
	ExportJournalXML(ws *entity.Workspace, entries []entity.JournalEntry) ([]byte, error)
}

// ReportUseCase rapports dérivés du journal : soldes, bilan, PDF et export.
// Tout est recalculé depuis le journal à chaque appel.
type ReportUseCase struct {
	journalRepo    repository.JournalRepository
	workspaceRepo  repository.WorkspaceRepository
	classification domledger.Classification
	pdfGenerator   BalanceSheetPDFGenerator
	exporter       JournalExporter
}

// NewReportUseCase construit le cas d'usage. La table de classement est une
// donnée de configuration : les juridictions à plan comptable différent en
// injectent une autre sans toucher au moteur.
func NewReportUseCase(
	journalRepo repository.JournalRepository,
	workspaceRepo repository.WorkspaceRepository,
	classification domledger.Classification,
	pdfGenerator BalanceSheetPDFGenerator,
	exporter JournalExporter,
) *ReportUseCase {
	return &ReportUseCase{
		journalRepo:    journalRepo,
		workspaceRepo:  workspaceRepo,
		classification: classification,
		pdfGenerator:   pdfGenerator,
		exporter:       exporter,
	}
}

// Balances renvoie les soldes par compte avec les totaux de contrôle.
// Un déséquilibre Σdébit/Σcrédit serait un bug du moteur d'agrégation : il est
// remonté comme erreur interne, pas comme erreur utilisateur.
func (uc *ReportUseCase) Balances(workspaceID string) (*dto.BalancesResponse, error) {
	balances, err := uc.computeBalances(workspaceID)
	if err != nil {
		return nil, err
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, b := range balances {
		totalDebit = totalDebit.Add(b.DebitTotal)
		totalCredit = totalCredit.Add(b.CreditTotal)
	}

	return &dto.BalancesResponse{
		Balances:    domledger.SortedBalances(balances),
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
	}, nil
}

// BalanceSheet dérive le bilan catégorisé du journal.
func (uc *ReportUseCase) BalanceSheet(workspaceID string) (*dto.BalanceSheetResponse, error) {
	sheet, err := uc.computeBalanceSheet(workspaceID)
	if err != nil {
		return nil, err
	}
	return &dto.BalanceSheetResponse{
		Sections:         sheet.Sections,
		TotalAssets:      sheet.TotalAssets,
		TotalLiabilities: sheet.TotalLiabilities,
		TotalEquity:      sheet.TotalEquity,
		DisplayAssets:    money.FormatFCFA(sheet.TotalAssets),
	}, nil
}

// BalanceSheetPDF génère le bilan au format PDF.
func (uc *ReportUseCase) BalanceSheetPDF(ctx context.Context, workspaceID string) ([]byte, error) {
	ws, err := uc.workspace(workspaceID)
	if err != nil {
		return nil, err
	}
	sheet, err := uc.computeBalanceSheet(workspaceID)
	if err != nil {
		return nil, err
	}
	return uc.pdfGenerator.GenerateBalanceSheetPDF(ctx, ws, sheet)
}

// ExportJournal exporte le journal complet en XML pour le cabinet comptable.
func (uc *ReportUseCase) ExportJournal(workspaceID string) ([]byte, error) {
	ws, err := uc.workspace(workspaceID)
	if err != nil {
		return nil, err
	}
	entries, err := uc.journalRepo.ListByWorkspace(workspaceID)
	if err != nil {
		return nil, err
	}
	return uc.exporter.ExportJournalXML(ws, entries)
}

func (uc *ReportUseCase) workspace(workspaceID string) (*entity.Workspace, error) {
	ws, err := uc.workspaceRepo.GetByID(workspaceID)
	if err != nil {
		return nil, err
	}
	if ws == nil {
		return nil, fmt.Errorf("dossier %s: %w", workspaceID, domain.ErrNotFound)
	}
	return ws, nil
}

func (uc *ReportUseCase) computeBalances(workspaceID string) (map[string]entity.AccountBalance, error) {
	entries, err := uc.journalRepo.ListByWorkspace(workspaceID)
	if err != nil {
		return nil, err
	}
	balances := domledger.ComputeBalances(entries)
	if err := domledger.CheckBalanced(balances); err != nil {
		return nil, err
	}
	return balances, nil
}

func (uc *ReportUseCase) computeBalanceSheet(workspaceID string) (*entity.BalanceSheet, error) {
	balances, err := uc.computeBalances(workspaceID)
	if err != nil {
		return nil, err
	}
	sheet := domledger.ComputeBalanceSheet(balances, uc.classification)
	return &sheet, nil
}
