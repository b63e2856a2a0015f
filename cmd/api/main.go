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
	"github.com/liderbrinquedos/miniwms/internal/application/catalog"
	"github.com/liderbrinquedos/miniwms/internal/application/inventory"
	"github.com/liderbrinquedos/miniwms/internal/application/query"
	"github.com/liderbrinquedos/miniwms/internal/infrastructure/importer"
	"github.com/liderbrinquedos/miniwms/internal/infrastructure/postgres"
	httpRouter "github.com/liderbrinquedos/miniwms/internal/interfaces/http"
	"github.com/liderbrinquedos/miniwms/pkg/config"
	"github.com/liderbrinquedos/miniwms/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migração do esquema")
	}

	productRepo := postgres.NewProductRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Importação inicial do catálogo (insert-se-ausente; padrão se CSV ausente).
	imp := importer.New(cfg.Import.Dir, productRepo, locationRepo, log)
	if err := imp.Run(); err != nil {
		log.Fatal().Err(err).Msg("importação inicial do catálogo")
	}

	catalogUC := catalog.NewCatalogUseCase(productRepo, locationRepo)
	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, productRepo, locationRepo)
	queryUC := query.NewQueryUseCase(stockRepo, movementRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "miniwms API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:        catalogUC,
		RegisterMovement: registerMovementUC,
		QueryUC:          queryUC,
		Importer:         imp,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
