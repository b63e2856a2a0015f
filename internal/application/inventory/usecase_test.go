package inventory_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liderbrinquedos/miniwms/internal/application/dto"
	"github.com/liderbrinquedos/miniwms/internal/application/inventory"
	"github.com/liderbrinquedos/miniwms/internal/domain"
	"github.com/liderbrinquedos/miniwms/internal/domain/entity"
	"github.com/liderbrinquedos/miniwms/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória para os portos de persistência
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	byRef map[string]*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	if _, ok := r.byRef[p.Ref]; ok {
		return domain.ErrDuplicate
	}
	r.byRef[p.Ref] = p
	return nil
}

func (r *fakeProductRepo) GetByRef(ref string) (*entity.Product, error) {
	return r.byRef[ref], nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) { return nil, nil }

type fakeLocationRepo struct {
	byLocal map[string]*entity.Location
}

func (r *fakeLocationRepo) Create(l *entity.Location) error {
	r.byLocal[l.Local] = l
	return nil
}

func (r *fakeLocationRepo) GetByCod(cod string) (*entity.Location, error) {
	for _, l := range r.byLocal {
		if l.Cod == cod {
			return l, nil
		}
	}
	return nil, nil
}

func (r *fakeLocationRepo) GetByLocal(local string) (*entity.Location, error) {
	return r.byLocal[local], nil
}

func (r *fakeLocationRepo) List() ([]*entity.Location, error) { return nil, nil }

type pair struct {
	locationID string
	productID  string
}

// fakeStore guarda saldo e histórico em memória e implementa os dois portos
// usados dentro da transação.
type fakeStore struct {
	mu        sync.Mutex
	stock     map[pair]int64
	movements []entity.Movement

	failMovementCreate bool // força erro ao gravar o histórico
}

func newFakeStore() *fakeStore {
	return &fakeStore{stock: make(map[pair]int64)}
}

func (s *fakeStore) GetForUpdate(locationID, productID string) (*entity.Stock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &entity.Stock{
		LocationID: locationID,
		ProductID:  productID,
		Quantity:   s.stock[pair{locationID, productID}],
	}, nil
}

func (s *fakeStore) Add(locationID, productID string, quantity int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stock[pair{locationID, productID}] += quantity
	return nil
}

func (s *fakeStore) Upsert(stock *entity.Stock) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stock[pair{stock.LocationID, stock.ProductID}] = stock.Quantity
	return nil
}

func (s *fakeStore) DeleteNonPositive() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, q := range s.stock {
		if q <= 0 {
			delete(s.stock, k)
		}
	}
	return nil
}

func (s *fakeStore) ListView() ([]*entity.StockView, error) { return nil, nil }

func (s *fakeStore) Create(m *entity.Movement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failMovementCreate {
		return errors.New("falha simulada de armazenamento")
	}
	s.movements = append(s.movements, *m)
	return nil
}

func (s *fakeStore) ListRecent(limit int) ([]*entity.MovementView, error) { return nil, nil }

// fakeTxRunner serializa as "transações" e desfaz as mutações do fakeStore
// quando fn devolve erro, modelando o Commit/Rollback do runner real.
type fakeTxRunner struct {
	mu    sync.Mutex
	store *fakeStore
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshotStock := make(map[pair]int64, len(r.store.stock))
	for k, v := range r.store.stock {
		snapshotStock[k] = v
	}
	snapshotMovs := len(r.store.movements)

	if err := fn(r.store, r.store); err != nil {
		r.store.stock = snapshotStock
		r.store.movements = r.store.movements[:snapshotMovs]
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Cenário base
// ──────────────────────────────────────────────────────────────────────────────

const (
	testLocal      = "A001C"
	testLocationID = "00000000-0000-0000-0000-00000000000a"
	testRef        = "P1001"
	testProductID  = "00000000-0000-0000-0000-00000000000b"
)

func buildUseCase() (*inventory.RegisterMovementUseCase, *fakeStore) {
	products := &fakeProductRepo{byRef: map[string]*entity.Product{
		testRef: {ID: testProductID, Ref: testRef, Name: "CAR BOLA"},
	}}
	locations := &fakeLocationRepo{byLocal: map[string]*entity.Location{
		testLocal: {ID: testLocationID, Cod: "10000", Local: testLocal, Armazem: "LOG"},
	}}
	store := newFakeStore()
	uc := inventory.NewRegisterMovementUseCase(&fakeTxRunner{store: store}, products, locations)
	return uc, store
}

func apply(t *testing.T, uc *inventory.RegisterMovementUseCase, movType string, qty int64) (string, error) {
	t.Helper()
	return uc.RegisterMovement(context.Background(), inventory.MovementInput{
		LocationLocal: testLocal,
		ProductRef:    testRef,
		Quantity:      qty,
		Type:          movType,
	})
}

func quantityOf(s *fakeStore) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.stock[pair{testLocationID, testProductID}]
	return q, ok
}

// ──────────────────────────────────────────────────────────────────────────────
// Entradas
// ──────────────────────────────────────────────────────────────────────────────

// Entrada em par sem saldo cria a linha com a quantidade do movimento.
func TestRegisterMovement_EntradaCriaSaldo(t *testing.T) {
	uc, store := buildUseCase()

	local, err := apply(t, uc, entity.MovementTypeEntry, 50)
	require.NoError(t, err)
	assert.Equal(t, testLocal, local, "deve devolver o rótulo Local resolvido")

	q, ok := quantityOf(store)
	require.True(t, ok, "a linha de saldo deve existir após a entrada")
	assert.Equal(t, int64(50), q)

	require.Len(t, store.movements, 1, "cada movimento aplicado gera exatamente um registro")
	assert.Equal(t, entity.MovementTypeEntry, store.movements[0].Type)
	assert.Equal(t, int64(50), store.movements[0].Quantity)
}

// Entrada em par com saldo soma a quantidade.
func TestRegisterMovement_EntradaSoma(t *testing.T) {
	uc, store := buildUseCase()

	_, err := apply(t, uc, entity.MovementTypeEntry, 30)
	require.NoError(t, err)
	_, err = apply(t, uc, entity.MovementTypeEntry, 12)
	require.NoError(t, err)

	q, _ := quantityOf(store)
	assert.Equal(t, int64(42), q)
	assert.Len(t, store.movements, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Saídas
// ──────────────────────────────────────────────────────────────────────────────

// Saída com saldo suficiente subtrai a quantidade.
func TestRegisterMovement_SaidaSubtrai(t *testing.T) {
	uc, store := buildUseCase()

	_, err := apply(t, uc, entity.MovementTypeEntry, 50)
	require.NoError(t, err)
	_, err = apply(t, uc, entity.MovementTypeExit, 20)
	require.NoError(t, err)

	q, _ := quantityOf(store)
	assert.Equal(t, int64(30), q)
}

// Saída que zera o saldo remove a linha na mesma transação.
func TestRegisterMovement_SaidaZeraERemoveLinha(t *testing.T) {
	uc, store := buildUseCase()

	_, err := apply(t, uc, entity.MovementTypeEntry, 25)
	require.NoError(t, err)
	_, err = apply(t, uc, entity.MovementTypeExit, 25)
	require.NoError(t, err)

	_, ok := quantityOf(store)
	assert.False(t, ok, "linha com quantidade zero não deve persistir")
	assert.Len(t, store.movements, 2, "o movimento de saída é registrado normalmente")
}

// Saída maior que o saldo falha com ErrInsufficientStock e não muta nada.
func TestRegisterMovement_SaidaInsuficiente(t *testing.T) {
	uc, store := buildUseCase()

	_, err := apply(t, uc, entity.MovementTypeEntry, 10)
	require.NoError(t, err)

	_, err = apply(t, uc, entity.MovementTypeExit, 11)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	q, _ := quantityOf(store)
	assert.Equal(t, int64(10), q, "o saldo não pode ser alterado por uma saída rejeitada")
	assert.Len(t, store.movements, 1, "saída rejeitada não entra no histórico")
}

// Saída em par sem nenhum saldo também é estoque insuficiente.
func TestRegisterMovement_SaidaSemSaldo(t *testing.T) {
	uc, store := buildUseCase()

	_, err := apply(t, uc, entity.MovementTypeExit, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, store.movements)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validação e resolução
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_LocalizacaoInexistente(t *testing.T) {
	uc, store := buildUseCase()

	_, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		LocationLocal: "Z999Z",
		ProductRef:    testRef,
		Quantity:      5,
		Type:          entity.MovementTypeEntry,
	})
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)
	assert.Empty(t, store.movements)
}

func TestRegisterMovement_ProdutoInexistente(t *testing.T) {
	uc, store := buildUseCase()

	_, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		LocationLocal: testLocal,
		ProductRef:    "P9999",
		Quantity:      5,
		Type:          entity.MovementTypeEntry,
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Empty(t, store.movements)
}

// Tipo desconhecido é rejeitado como entrada inválida, nunca tratado como saída.
func TestRegisterMovement_TipoDesconhecidoRejeitado(t *testing.T) {
	uc, store := buildUseCase()

	_, err := apply(t, uc, entity.MovementTypeEntry, 10)
	require.NoError(t, err)

	_, err = apply(t, uc, "transfer", 5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	q, _ := quantityOf(store)
	assert.Equal(t, int64(10), q)
	assert.Len(t, store.movements, 1)
}

func TestRegisterMovement_QuantidadeNaoPositiva(t *testing.T) {
	uc, _ := buildUseCase()

	for _, qty := range []int64{0, -3} {
		_, err := apply(t, uc, entity.MovementTypeEntry, qty)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "quantidade %d deve ser rejeitada", qty)
	}
}

// O adaptador de request aceita número JSON e string numérica; o resto é inválido.
func TestRegisterMovementFromRequest_Quantidade(t *testing.T) {
	uc, store := buildUseCase()
	ctx := context.Background()

	_, err := uc.RegisterMovementFromRequest(ctx, dto.RegisterMovementRequest{
		Location: testLocal, Product: testRef, Quantity: "50", Type: entity.MovementTypeEntry,
	})
	require.NoError(t, err)

	q, _ := quantityOf(store)
	assert.Equal(t, int64(50), q)

	for _, bad := range []string{"abc", "2.5", "-1", "0", ""} {
		_, err := uc.RegisterMovementFromRequest(ctx, dto.RegisterMovementRequest{
			Location: testLocal, Product: testRef, Quantity: json.Number(bad), Type: entity.MovementTypeEntry,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "quantidade %q deve ser rejeitada", bad)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Atomicidade e concorrência
// ──────────────────────────────────────────────────────────────────────────────

// Falha ao gravar o histórico desfaz a mutação de saldo (rollback completo).
func TestRegisterMovement_FalhaNoHistoricoDesfazSaldo(t *testing.T) {
	uc, store := buildUseCase()

	_, err := apply(t, uc, entity.MovementTypeEntry, 40)
	require.NoError(t, err)

	store.failMovementCreate = true
	_, err = apply(t, uc, entity.MovementTypeExit, 15)
	require.Error(t, err)

	q, _ := quantityOf(store)
	assert.Equal(t, int64(40), q, "o saldo deve voltar ao valor anterior à transação")
	assert.Len(t, store.movements, 1, "nenhum movimento órfão pode ficar no histórico")
}

// Entradas concorrentes no mesmo par não perdem incrementos.
func TestRegisterMovement_EntradasConcorrentes(t *testing.T) {
	uc, store := buildUseCase()

	const goroutines = 20
	const perEntry = 5

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			_, err := apply(t, uc, entity.MovementTypeEntry, perEntry)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	q, _ := quantityOf(store)
	assert.Equal(t, int64(goroutines*perEntry), q, "a soma final deve conter todos os incrementos")
	assert.Len(t, store.movements, goroutines)
}

// Cenário completo: entrada 50, saída 20, saída 30 (remove a linha),
// saída 1 (insuficiente, nada muda).
func TestRegisterMovement_CenarioCompleto(t *testing.T) {
	uc, store := buildUseCase()

	_, err := apply(t, uc, entity.MovementTypeEntry, 50)
	require.NoError(t, err)
	q, _ := quantityOf(store)
	require.Equal(t, int64(50), q)

	_, err = apply(t, uc, entity.MovementTypeExit, 20)
	require.NoError(t, err)
	q, _ = quantityOf(store)
	require.Equal(t, int64(30), q)

	_, err = apply(t, uc, entity.MovementTypeExit, 30)
	require.NoError(t, err)
	_, ok := quantityOf(store)
	require.False(t, ok, "saldo zerado deve ser removido")

	_, err = apply(t, uc, entity.MovementTypeExit, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	_, ok = quantityOf(store)
	assert.False(t, ok, "o par continua sem linha de saldo")

	assert.Len(t, store.movements, 3, "só os três movimentos aplicados entram no histórico")
}
