package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liderbrinquedos/miniwms/internal/application/dto"
	"github.com/liderbrinquedos/miniwms/internal/infrastructure/importer"
)

// ImportHandler informa a presença dos arquivos de importação inicial.
type ImportHandler struct {
	importer *importer.Importer
}

// NewImportHandler constrói o handler.
func NewImportHandler(im *importer.Importer) *ImportHandler {
	return &ImportHandler{importer: im}
}

// Status godoc
// @Summary      Status dos arquivos de importação inicial
// @Tags         import
// @Produce      json
// @Success      200  {object}  dto.ImportStatusResponse
// @Router       /api/import/status [get]
func (h *ImportHandler) Status(c *fiber.Ctx) error {
	products, locations := h.importer.Status()
	return c.JSON(dto.ImportStatusResponse{ProductsCSV: products, LocationsCSV: locations})
}
