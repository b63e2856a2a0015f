package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liderbrinquedos/miniwms/internal/application/catalog"
	"github.com/liderbrinquedos/miniwms/internal/application/inventory"
	"github.com/liderbrinquedos/miniwms/internal/application/query"
	"github.com/liderbrinquedos/miniwms/internal/infrastructure/importer"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	CatalogUC        *catalog.CatalogUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	QueryUC          *query.QueryUseCase
	Importer         *importer.Importer
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	productHandler := NewProductHandler(deps.CatalogUC)
	api.Get("/products", productHandler.List)
	api.Post("/products", productHandler.Create)

	locationHandler := NewLocationHandler(deps.CatalogUC)
	api.Get("/locations", locationHandler.List)
	api.Post("/locations", locationHandler.Create)

	inventoryHandler := NewInventoryHandler(deps.RegisterMovement)
	api.Post("/movement", inventoryHandler.RegisterMovement)

	queryHandler := NewQueryHandler(deps.QueryUC)
	api.Get("/stock", queryHandler.Stock)
	api.Get("/movements", queryHandler.Movements)
	api.Get("/export/csv", queryHandler.ExportCSV)

	importHandler := NewImportHandler(deps.Importer)
	api.Get("/import/status", importHandler.Status)
}
