package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"
	"github.com/ton-entreprise/fiscalia-api/internal/application/auth"
	appfiscal "github.com/ton-entreprise/fiscalia-api/internal/application/fiscal"
	appledger "github.com/ton-entreprise/fiscalia-api/internal/application/ledger"
	"github.com/ton-entreprise/fiscalia-api/internal/application/usecase"
	domledger "github.com/ton-entreprise/fiscalia-api/internal/domain/ledger"
	"github.com/ton-entreprise/fiscalia-api/internal/infrastructure/export"
	infrapdf "github.com/ton-entreprise/fiscalia-api/internal/infrastructure/pdf"
	"github.com/ton-entreprise/fiscalia-api/internal/infrastructure/postgres"
	httpRouter "github.com/ton-entreprise/fiscalia-api/internal/interfaces/http"
	"github.com/ton-entreprise/fiscalia-api/pkg/config"
	"github.com/ton-entreprise/fiscalia-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("charger configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("démarrage de l'application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connexion à PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	workspaceRepo := postgres.NewWorkspaceRepository(pool)
	basesRepo := postgres.NewTaxBasesRepository(pool)
	journalRepo := postgres.NewJournalRepository(pool)

	rates := appfiscal.Rates{
		TVA: decimal.NewFromFloat(cfg.Fiscal.TVARate),
		CSS: decimal.NewFromFloat(cfg.Fiscal.CSSRate),
		IS:  decimal.NewFromFloat(cfg.Fiscal.ISRate),
		IMF: decimal.NewFromFloat(cfg.Fiscal.IMFRate),
	}

	workspaceUC := usecase.NewWorkspaceUseCase(workspaceRepo)
	simulationUC := appfiscal.NewSimulationUseCase(basesRepo, rates)
	basesUC := appfiscal.NewBasesUseCase(basesRepo)
	journalUC := appledger.NewJournalUseCase(journalRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	journalExporter := export.NewJournalXMLExporter()
	reportUC := appledger.NewReportUseCase(
		journalRepo, workspaceRepo,
		domledger.DefaultClassification(),
		pdfGenerator, journalExporter,
	)

	authUC := auth.NewAuthUseCase(userRepo, workspaceRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local : http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Fiscalia API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		WorkspaceUC:  workspaceUC,
		SimulationUC: simulationUC,
		BasesUC:      basesUC,
		JournalUC:    journalUC,
		ReportUC:     reportUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("serveur HTTP terminé")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("signal d'arrêt reçu, fermeture du serveur...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arrêt du serveur")
	}

	log.Info().Msg("application arrêtée")
}
