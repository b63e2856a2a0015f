package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/liderbrinquedos/miniwms/internal/domain"
	"github.com/liderbrinquedos/miniwms/internal/domain/entity"
	"github.com/liderbrinquedos/miniwms/internal/domain/repository"
	"github.com/liderbrinquedos/miniwms/pkg/logger"
)

// Nomes esperados dos arquivos de importação dentro do diretório configurado.
const (
	productsFile  = "products.csv"
	locationsFile = "locations.csv"

	defaultArmazem = "LOG"
)

// Importer carrega o catálogo inicial a partir de arquivos CSV com
// insert-se-ausente (linhas com chave única já cadastrada são ignoradas).
// Quando um arquivo não existe, semeia o catálogo padrão.
type Importer struct {
	dir          string
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
	log          *logger.Logger
}

// New constrói o importador.
func New(dir string, productRepo repository.ProductRepository, locationRepo repository.LocationRepository, log *logger.Logger) *Importer {
	return &Importer{dir: dir, productRepo: productRepo, locationRepo: locationRepo, log: log}
}

// Status informa a presença dos dois arquivos de importação.
func (im *Importer) Status() (productsCSV, locationsCSV bool) {
	_, errP := os.Stat(filepath.Join(im.dir, productsFile))
	_, errL := os.Stat(filepath.Join(im.dir, locationsFile))
	return errP == nil, errL == nil
}

// Run importa produtos e localizações. Erros de linha individual não abortam
// a importação; erros de leitura de arquivo sim.
func (im *Importer) Run() error {
	if err := im.importProducts(); err != nil {
		return err
	}
	return im.importLocations()
}

func (im *Importer) importProducts() error {
	path := filepath.Join(im.dir, productsFile)
	rows, err := readCSV(path)
	if errors.Is(err, os.ErrNotExist) {
		im.log.Info().Str("arquivo", path).Msg("products.csv ausente, semeando produtos padrão")
		return im.seedDefaultProducts()
	}
	if err != nil {
		return err
	}

	imported := 0
	for _, row := range rows {
		ref, name := row["ref"], row["name"]
		if ref == "" || name == "" {
			continue
		}
		if err := im.createProduct(ref, name); err != nil {
			return err
		}
		imported++
	}
	im.log.Info().Int("linhas", imported).Msg("produtos importados do CSV")
	return nil
}

func (im *Importer) importLocations() error {
	path := filepath.Join(im.dir, locationsFile)
	rows, err := readCSV(path)
	if errors.Is(err, os.ErrNotExist) {
		im.log.Info().Str("arquivo", path).Msg("locations.csv ausente, semeando localizações padrão")
		return im.seedDefaultLocations()
	}
	if err != nil {
		return err
	}

	imported := 0
	for _, row := range rows {
		cod, local, armazem := row["cod"], row["local"], row["armazem"]
		if cod == "" || local == "" {
			continue
		}
		if armazem == "" {
			armazem = defaultArmazem
		}
		if err := im.createLocation(cod, local, armazem); err != nil {
			return err
		}
		imported++
	}
	im.log.Info().Int("linhas", imported).Msg("localizações importadas do CSV")
	return nil
}

// createProduct insere ignorando duplicados (insert-se-ausente).
func (im *Importer) createProduct(ref, name string) error {
	p := &entity.Product{ID: uuid.New().String(), Ref: ref, Name: name, CreatedAt: time.Now()}
	if err := im.productRepo.Create(p); err != nil && !errors.Is(err, domain.ErrDuplicate) {
		return fmt.Errorf("importar produto %s: %w", ref, err)
	}
	return nil
}

// createLocation insere ignorando duplicados (insert-se-ausente).
func (im *Importer) createLocation(cod, local, armazem string) error {
	l := &entity.Location{ID: uuid.New().String(), Cod: cod, Local: local, Armazem: armazem, CreatedAt: time.Now()}
	if err := im.locationRepo.Create(l); err != nil && !errors.Is(err, domain.ErrDuplicate) {
		return fmt.Errorf("importar localização %s: %w", cod, err)
	}
	return nil
}

func (im *Importer) seedDefaultProducts() error {
	defaults := [][2]string{
		{"P1001", "CAR BOLA"},
		{"P1002", "CAR CHORRO"},
		{"P1003", "CAR TUCHO"},
		{"P1004", "CAR MARGO"},
		{"P1005", "CAR SETE"},
		{"P1006", "CAR JOGO"},
	}
	for _, d := range defaults {
		if err := im.createProduct(d[0], d[1]); err != nil {
			return err
		}
	}
	return nil
}

func (im *Importer) seedDefaultLocations() error {
	defaults := [][2]string{
		{"10000", "A001C"}, {"10001", "A001D"},
		{"10002", "A002C"}, {"10003", "A002D"},
		{"10004", "A003C"}, {"10005", "A003D"},
		{"10006", "A004A"}, {"10007", "A004B"},
		{"10008", "A004C"}, {"10009", "A004D"},
		{"10010", "B001A"}, {"10011", "B001B"},
	}
	for _, d := range defaults {
		if err := im.createLocation(d[0], d[1], defaultArmazem); err != nil {
			return err
		}
	}
	return nil
}

// readCSV lê um arquivo CSV com cabeçalho e devolve as linhas como mapas
// coluna->valor, com os nomes de coluna normalizados para minúsculas
// (os arquivos de localização usam COD/LOCAL/ARMAZEM em maiúsculas).
func readCSV(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("ler cabeçalho de %s: %w", path, err)
	}
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}

	var rows []map[string]string
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ler linha de %s: %w", path, err)
		}
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
