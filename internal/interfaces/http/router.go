package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ton-entreprise/fiscalia-api/internal/application/auth"
	appfiscal "github.com/ton-entreprise/fiscalia-api/internal/application/fiscal"
	appledger "github.com/ton-entreprise/fiscalia-api/internal/application/ledger"
	"github.com/ton-entreprise/fiscalia-api/internal/application/usecase"
)

// RouterDeps dépendances du router.
type RouterDeps struct {
	WorkspaceUC  *usecase.WorkspaceUseCase
	SimulationUC *appfiscal.SimulationUseCase
	BasesUC      *appfiscal.BasesUseCase
	JournalUC    *appledger.JournalUseCase
	ReportUC     *appledger.ReportUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
}

// Router enregistre les routes de l'API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Workspaces (public pour l'amorçage ; GetByID/List restent ouverts)
	workspaces := api.Group("/workspaces")
	workspaceHandler := NewWorkspaceHandler(deps.WorkspaceUC)
	workspaces.Get("/", workspaceHandler.List)
	workspaces.Post("/", workspaceHandler.Create)
	workspaces.Get("/:id", workspaceHandler.GetByID)

	// Routes protégées (Bearer Token requis)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Moteur fiscal (protégé)
	fiscal := protected.Group("/fiscal")
	fiscalHandler := NewFiscalHandler(deps.SimulationUC, deps.BasesUC)
	fiscal.Get("/rates", fiscalHandler.Rates)
	fiscal.Post("/totalize", fiscalHandler.Totalize)
	fiscal.Post("/irpp/simulate", fiscalHandler.SimulateIRPP)
	fiscal.Get("/:period/taxes", fiscalHandler.ComputeTaxes)
	fiscal.Get("/:period/bases", fiscalHandler.GetBases)
	fiscal.Patch("/:period/bases", RequireRole("admin", "comptable"), fiscalHandler.UpdateBases)

	// Journal comptable (protégé)
	ledger := protected.Group("/ledger")
	ledgerHandler := NewLedgerHandler(deps.JournalUC, deps.ReportUC)
	ledger.Post("/entries", RequireRole("admin", "comptable"), ledgerHandler.AddEntry)
	ledger.Get("/entries", ledgerHandler.ListEntries)
	ledger.Delete("/entries/:id", RequireRole("admin", "comptable"), ledgerHandler.DeleteEntry)
	ledger.Get("/balances", ledgerHandler.Balances)
	ledger.Get("/balance-sheet", ledgerHandler.BalanceSheet)
	ledger.Get("/balance-sheet/pdf", ledgerHandler.BalanceSheetPDF)
	ledger.Get("/export/xml", ledgerHandler.ExportJournal)
}
