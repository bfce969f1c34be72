package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/ton-entreprise/fiscalia-api/internal/application/dto"
	"github.com/ton-entreprise/fiscalia-api/internal/application/usecase"
	"github.com/ton-entreprise/fiscalia-api/internal/domain"
)

// WorkspaceHandler gère les requêtes HTTP pour les dossiers.
type WorkspaceHandler struct {
	uc *usecase.WorkspaceUseCase
}

// NewWorkspaceHandler construit le handler.
func NewWorkspaceHandler(uc *usecase.WorkspaceUseCase) *WorkspaceHandler {
	return &WorkspaceHandler{uc: uc}
}

// Create godoc
// @Summary      Créer un dossier
// @Tags         workspaces
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWorkspaceRequest  true  "Données du dossier"
// @Success      201   {object}  dto.WorkspaceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/workspaces [post]
func (h *WorkspaceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWorkspaceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name est requis"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "dossier déjà existant"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtenir un dossier par ID
// @Tags         workspaces
// @Produce      json
// @Param        id   path  string  true  "ID du dossier"
// @Success      200  {object}  dto.WorkspaceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/workspaces/{id} [get]
func (h *WorkspaceHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id est requis"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "dossier introuvable"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Lister les dossiers
// @Tags         workspaces
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.WorkspaceResponse
// @Router       /api/workspaces [get]
func (h *WorkspaceHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	page.DefaultPage()
	if page.Limit > 100 {
		page.Limit = 100
	}
	out, err := h.uc.List(page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
