package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/liderbrinquedos/miniwms/internal/application/dto"
	"github.com/liderbrinquedos/miniwms/internal/application/query"
)

// QueryHandler trata as projeções de leitura: saldo, histórico e export CSV.
type QueryHandler struct {
	uc *query.QueryUseCase
}

// NewQueryHandler constrói o handler.
func NewQueryHandler(uc *query.QueryUseCase) *QueryHandler {
	return &QueryHandler{uc: uc}
}

// Stock godoc
// @Summary      Saldo atual por localização e produto
// @Tags         stock
// @Produce      json
// @Success      200  {array}  dto.StockItem
// @Router       /api/stock [get]
func (h *QueryHandler) Stock(c *fiber.Ctx) error {
	out, err := h.uc.Stock()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Movements godoc
// @Summary      Histórico recente de movimentos (até 100, mais novos primeiro)
// @Tags         inventory
// @Produce      json
// @Success      200  {array}  dto.MovementLogItem
// @Router       /api/movements [get]
func (h *QueryHandler) Movements(c *fiber.Ctx) error {
	out, err := h.uc.RecentMovements()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ExportCSV godoc
// @Summary      Exportar o saldo atual em CSV
// @Tags         stock
// @Produce      text/csv
// @Success      200  {string}  string  "documento CSV como anexo"
// @Router       /api/export/csv [get]
func (h *QueryHandler) ExportCSV(c *fiber.Ctx) error {
	doc, filename, err := h.uc.ExportCSV()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(doc)
}
