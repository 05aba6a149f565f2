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

	_ "github.com/jhoicas/freight-api/docs"
	"github.com/jhoicas/freight-api/internal/application/inventory"
	"github.com/jhoicas/freight-api/internal/application/logistics"
	"github.com/jhoicas/freight-api/internal/domain/fleet"
	"github.com/jhoicas/freight-api/internal/infrastructure/kvstore"
	"github.com/jhoicas/freight-api/internal/infrastructure/manifest"
	infrapdf "github.com/jhoicas/freight-api/internal/infrastructure/pdf"
	"github.com/jhoicas/freight-api/internal/infrastructure/seed"
	"github.com/jhoicas/freight-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/freight-api/internal/interfaces/http"
	"github.com/jhoicas/freight-api/pkg/config"
	"github.com/jhoicas/freight-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, closeStore, err := storage.Open(ctx, cfg, log.Component("storage"))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén")
	}
	defer closeStore()

	runner := kvstore.NewStateRunner(store, log.Component("state"), cfg.Logistics.DefaultTaxRate)

	// Siembra inicial: solo si el almacén no tiene la marca APP_META
	bootstrapper := seed.NewBootstrapper(runner, seed.DirFS(cfg.Seed.Dir), log.Component("seed"))
	if _, err := bootstrapper.BootstrapIfNeeded(ctx); err != nil {
		log.Fatal().Err(err).Msg("sembrar almacén")
	}

	router := fleet.NewRouter(cfg.Logistics.DomesticCountry)
	shipmentUC := logistics.NewShipmentUseCase(runner, router, log.Component("shipments"))
	containerUC := logistics.NewContainerUseCase(runner, manifest.NewBuilder(), log.Component("containers"))
	fleetUC := logistics.NewFleetUseCase(runner, fleet.NewAssigner(router), log.Component("fleet"))
	financialsUC := logistics.NewFinancialsUseCase(runner, infrapdf.NewMarotoPDFGenerator(), log.Component("financials"))
	systemUC := logistics.NewSystemUseCase(bootstrapper, log.Component("system"))
	inventoryUC := inventory.NewInventoryUseCase(runner, log.Component("inventory"))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Freight API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "store": cfg.Store.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ShipmentUC:   shipmentUC,
		ContainerUC:  containerUC,
		FleetUC:      fleetUC,
		FinancialsUC: financialsUC,
		SystemUC:     systemUC,
		InventoryUC:  inventoryUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
