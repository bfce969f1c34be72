package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/ton-entreprise/fiscalia-api/internal/application/dto"
	appledger "github.com/ton-entreprise/fiscalia-api/internal/application/ledger"
	"github.com/ton-entreprise/fiscalia-api/internal/domain"
)

// LedgerHandler gère les requêtes HTTP du journal comptable (protégé) :
// écritures, soldes, bilan et exports.
type LedgerHandler struct {
	journalUC *appledger.JournalUseCase
	reportUC  *appledger.ReportUseCase
}

// NewLedgerHandler construit le handler.
func NewLedgerHandler(journalUC *appledger.JournalUseCase, reportUC *appledger.ReportUseCase) *LedgerHandler {
	return &LedgerHandler{journalUC: journalUC, reportUC: reportUC}
}

// AddEntry godoc
// @Summary      Ajouter une écriture au journal
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEntryRequest  true  "Écriture en partie double"
// @Success      201   {object}  dto.EntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ledger/entries [post]
func (h *LedgerHandler) AddEntry(c *fiber.Ctx) error {
	var in dto.CreateEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.journalUC.AddEntry(GetWorkspaceID(c), in)
	if err != nil {
		return ledgerError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListEntries godoc
// @Summary      Lister les écritures du journal
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.EntryResponse
// @Router       /api/ledger/entries [get]
func (h *LedgerHandler) ListEntries(c *fiber.Ctx) error {
	out, err := h.journalUC.ListEntries(GetWorkspaceID(c))
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(out)
}

// DeleteEntry godoc
// @Summary      Supprimer une écriture
// @Tags         ledger
// @Security     Bearer
// @Param        id  path  string  true  "ID de l'écriture"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ledger/entries/{id} [delete]
func (h *LedgerHandler) DeleteEntry(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id est requis"})
	}
	if err := h.journalUC.DeleteEntry(GetWorkspaceID(c), id); err != nil {
		return ledgerError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Balances godoc
// @Summary      Soldes par compte (dérivés du journal)
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BalancesResponse
// @Router       /api/ledger/balances [get]
func (h *LedgerHandler) Balances(c *fiber.Ctx) error {
	out, err := h.reportUC.Balances(GetWorkspaceID(c))
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(out)
}

// BalanceSheet godoc
// @Summary      Bilan catégorisé (actif, passif, capitaux propres)
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BalanceSheetResponse
// @Router       /api/ledger/balance-sheet [get]
func (h *LedgerHandler) BalanceSheet(c *fiber.Ctx) error {
	out, err := h.reportUC.BalanceSheet(GetWorkspaceID(c))
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(out)
}

// BalanceSheetPDF godoc
// @Summary      Bilan au format PDF
// @Tags         ledger
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/ledger/balance-sheet/pdf [get]
func (h *LedgerHandler) BalanceSheetPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.reportUC.BalanceSheetPDF(c.Context(), GetWorkspaceID(c))
	if err != nil {
		return ledgerError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="bilan.pdf"`)
	return c.Send(pdfBytes)
}

// ExportJournal godoc
// @Summary      Export XML du journal
// @Tags         ledger
// @Security     Bearer
// @Produce      application/xml
// @Success      200  {file}  binary
// @Router       /api/ledger/export/xml [get]
func (h *LedgerHandler) ExportJournal(c *fiber.Ctx) error {
	xmlBytes, err := h.reportUC.ExportJournal(GetWorkspaceID(c))
	if err != nil {
		return ledgerError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/xml")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="journal.xml"`)
	return c.Send(xmlBytes)
}

// ledgerError mappe les erreurs du domaine vers les statuts HTTP.
func ledgerError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "écriture hors du dossier courant"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
