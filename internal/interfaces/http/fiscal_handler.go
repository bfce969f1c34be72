package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/ton-entreprise/fiscalia-api/internal/application/dto"
	appfiscal "github.com/ton-entreprise/fiscalia-api/internal/application/fiscal"
	"github.com/ton-entreprise/fiscalia-api/internal/domain"
)

// FiscalHandler gère les requêtes HTTP du moteur fiscal (protégé) :
// totalisation de facture, simulation IRPP, synthèse des impôts et gestion
// des bases par période.
type FiscalHandler struct {
	simulationUC *appfiscal.SimulationUseCase
	basesUC      *appfiscal.BasesUseCase
}

// NewFiscalHandler construit le handler.
func NewFiscalHandler(simulationUC *appfiscal.SimulationUseCase, basesUC *appfiscal.BasesUseCase) *FiscalHandler {
	return &FiscalHandler{simulationUC: simulationUC, basesUC: basesUC}
}

// Totalize godoc
// @Summary      Totaliser une facture (HT, taxe, TTC)
// @Tags         fiscal
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TotalizeRequest  true  "Lignes de la facture"
// @Success      200   {object}  dto.TotalsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/fiscal/totalize [post]
func (h *FiscalHandler) Totalize(c *fiber.Ctx) error {
	var in dto.TotalizeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.simulationUC.Totalize(in)
	if err != nil {
		return fiscalError(c, err)
	}
	return c.JSON(out)
}

// SimulateIRPP godoc
// @Summary      Simuler l'IRPP (barème progressif, quotient familial)
// @Tags         fiscal
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IRPPRequest  true  "Assiette, quotient ou situation familiale, barème optionnel"
// @Success      200   {object}  dto.IRPPResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/fiscal/irpp/simulate [post]
func (h *FiscalHandler) SimulateIRPP(c *fiber.Ctx) error {
	var in dto.IRPPRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.simulationUC.SimulateIRPP(in)
	if err != nil {
		return fiscalError(c, err)
	}
	return c.JSON(out)
}

// Rates godoc
// @Summary      Taux par défaut configurés
// @Tags         fiscal
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RatesResponse
// @Router       /api/fiscal/rates [get]
func (h *FiscalHandler) Rates(c *fiber.Ctx) error {
	return c.JSON(h.simulationUC.DefaultRates())
}

// ComputeTaxes godoc
// @Summary      Synthèse des impôts d'une période (TVA, CSS, IS/IMF)
// @Tags         fiscal
// @Security     Bearer
// @Produce      json
// @Param        period  path  string  true  "Période fiscale (ex. 2025 ou 2025-Q1)"
// @Success      200     {object}  dto.TaxesResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/fiscal/{period}/taxes [get]
func (h *FiscalHandler) ComputeTaxes(c *fiber.Ctx) error {
	period := c.Params("period")
	if period == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_PERIOD", Message: "period est requis"})
	}
	out, err := h.simulationUC.ComputeTaxes(GetWorkspaceID(c), period)
	if err != nil {
		return fiscalError(c, err)
	}
	return c.JSON(out)
}

// GetBases godoc
// @Summary      Bases fiscales d'une période
// @Tags         fiscal
// @Security     Bearer
// @Produce      json
// @Param        period  path  string  true  "Période fiscale"
// @Success      200     {object}  dto.TaxBasesResponse
// @Router       /api/fiscal/{period}/bases [get]
func (h *FiscalHandler) GetBases(c *fiber.Ctx) error {
	period := c.Params("period")
	if period == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_PERIOD", Message: "period est requis"})
	}
	out, err := h.basesUC.Get(GetWorkspaceID(c), period)
	if err != nil {
		return fiscalError(c, err)
	}
	return c.JSON(out)
}

// UpdateBases godoc
// @Summary      Mettre à jour les bases fiscales (patch typé champ par champ)
// @Tags         fiscal
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        period  path  string             true  "Période fiscale"
// @Param        body    body  dto.TaxBasesPatch  true  "Champs à modifier"
// @Success      200     {object}  dto.TaxBasesResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/fiscal/{period}/bases [patch]
func (h *FiscalHandler) UpdateBases(c *fiber.Ctx) error {
	period := c.Params("period")
	if period == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_PERIOD", Message: "period est requis"})
	}
	var patch dto.TaxBasesPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.basesUC.Update(GetWorkspaceID(c), period, patch)
	if err != nil {
		return fiscalError(c, err)
	}
	return c.JSON(out)
}

// fiscalError mappe les erreurs du domaine vers les statuts HTTP.
func fiscalError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
