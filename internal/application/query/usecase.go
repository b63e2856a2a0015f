package query

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/liderbrinquedos/miniwms/internal/application/dto"
	"github.com/liderbrinquedos/miniwms/internal/domain/repository"
)

// movementLogLimit máximo de movimentos devolvidos pelo histórico.
const movementLogLimit = 100

// QueryUseCase projeções de leitura: saldo atual, histórico recente e
// exportação CSV. Nunca muta estado.
type QueryUseCase struct {
	stockRepo    repository.StockRepository
	movementRepo repository.MovementRepository
}

// NewQueryUseCase constrói o caso de uso.
func NewQueryUseCase(stockRepo repository.StockRepository, movementRepo repository.MovementRepository) *QueryUseCase {
	return &QueryUseCase{stockRepo: stockRepo, movementRepo: movementRepo}
}

// Stock devolve o saldo atual com campos de exibição, ordenado por Local.
func (uc *QueryUseCase) Stock() ([]dto.StockItem, error) {
	list, err := uc.stockRepo.ListView()
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockItem, 0, len(list))
	for _, s := range list {
		items = append(items, dto.StockItem{
			Location:     s.Local,
			LocationCode: s.Cod,
			Ref:          s.Ref,
			Name:         s.Name,
			Quantity:     s.Quantity,
		})
	}
	return items, nil
}

// RecentMovements devolve os 100 movimentos mais recentes, do mais novo
// para o mais antigo.
func (uc *QueryUseCase) RecentMovements() ([]dto.MovementLogItem, error) {
	list, err := uc.movementRepo.ListRecent(movementLogLimit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementLogItem, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MovementLogItem{
			CreatedAt: m.CreatedAt,
			Location:  m.Local,
			Ref:       m.Ref,
			Name:      m.Name,
			Type:      m.Type,
			Quantity:  m.Quantity,
		})
	}
	return items, nil
}

// ExportCSV gera o documento CSV do saldo atual e o nome do arquivo com
// timestamp (stock_export_AAAAMMDD_HHMMSS.csv).
func (uc *QueryUseCase) ExportCSV() ([]byte, string, error) {
	list, err := uc.stockRepo.ListView()
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	header := []string{"Código", "Localização", "Armazém", "Referência", "Nome do Produto", "Quantidade"}
	if err := w.Write(header); err != nil {
		return nil, "", fmt.Errorf("escrever cabeçalho csv: %w", err)
	}
	for _, s := range list {
		record := []string{s.Cod, s.Local, s.Armazem, s.Ref, s.Name, strconv.FormatInt(s.Quantity, 10)}
		if err := w.Write(record); err != nil {
			return nil, "", fmt.Errorf("escrever linha csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("finalizar csv: %w", err)
	}

	filename := fmt.Sprintf("stock_export_%s.csv", time.Now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}
