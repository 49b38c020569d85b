package stock

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escritoriopro/backoffice-api/internal/domain"
	"github.com/escritoriopro/backoffice-api/internal/domain/entity"
	"github.com/escritoriopro/backoffice-api/internal/domain/repository"
)

// ─── Fakes em memória ────────────────────────────────────────────────────────

// fakeProductRepo guarda produtos em memória com a mesma semântica do
// repositório real: DecrementStock recheca disponibilidade no "UPDATE".
type fakeProductRepo struct {
	products map[int64]*entity.Product
}

func (r *fakeProductRepo) Create(ctx context.Context, p *entity.Product) error { return nil }
func (r *fakeProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}
func (r *fakeProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}
func (r *fakeProductRepo) Update(ctx context.Context, p *entity.Product) (bool, error) {
	return false, nil
}
func (r *fakeProductRepo) List(ctx context.Context) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) Delete(ctx context.Context, id int64) (bool, error)  { return false, nil }
func (r *fakeProductRepo) DecrementStock(ctx context.Context, id int64, qty int) (bool, error) {
	p, ok := r.products[id]
	if !ok || p.Stock < qty {
		return false, nil
	}
	p.Stock -= qty
	return true, nil
}

// fakeStockTxRunner simula o rollback: trabalha sobre uma cópia e só aplica
// no repositório real se o callback terminar sem erro.
type fakeStockTxRunner struct {
	repo *fakeProductRepo
}

func (t *fakeStockTxRunner) RunProducts(ctx context.Context, fn func(repository.ProductRepository) error) error {
	staging := &fakeProductRepo{products: make(map[int64]*entity.Product, len(t.repo.products))}
	for id, p := range t.repo.products {
		clone := *p
		staging.products[id] = &clone
	}
	if err := fn(staging); err != nil {
		return err
	}
	t.repo.products = staging.products
	return nil
}

type fakeRecorder struct {
	actions []string
}

func (r *fakeRecorder) Record(ctx context.Context, userID int64, action, details string) {
	r.actions = append(r.actions, action)
}

func newConsumeFixture() (*ConsumeUseCase, *fakeProductRepo, *fakeRecorder) {
	repo := &fakeProductRepo{products: map[int64]*entity.Product{
		1: {ID: 1, Name: "Cafe 500g", Price: decimal.RequireFromString("18.90"), Stock: 10, Status: entity.ProductStatusActive},
		2: {ID: 2, Name: "Acucar 1kg", Price: decimal.RequireFromString("6.50"), Stock: 3, Status: entity.ProductStatusActive},
		3: {ID: 3, Name: "Filtro descontinuado", Price: decimal.RequireFromString("4.00"), Stock: 50, Status: entity.ProductStatusInactive},
	}}
	recorder := &fakeRecorder{}
	uc := NewConsumeUseCase(&fakeStockTxRunner{repo: repo}, recorder)
	return uc, repo, recorder
}

// ─── Tests ───────────────────────────────────────────────────────────────────

func TestConsume_BaixaMultiProduto(t *testing.T) {
	uc, repo, recorder := newConsumeFixture()

	receipts, err := uc.Execute(context.Background(), 1, []ConsumeItem{
		{ProductID: 1, Quantity: 4},
		{ProductID: 2, Quantity: 2},
	})
	require.NoError(t, err)
	require.Len(t, receipts, 2)

	assert.Equal(t, Receipt{ProductID: 1, Name: "Cafe 500g", Consumed: 4, Remaining: 6}, receipts[0])
	assert.Equal(t, Receipt{ProductID: 2, Name: "Acucar 1kg", Consumed: 2, Remaining: 1}, receipts[1])

	assert.Equal(t, 6, repo.products[1].Stock)
	assert.Equal(t, 1, repo.products[2].Stock)
	assert.Contains(t, recorder.actions, "PRODUCT_STOCK_CONSUMED")
}

func TestConsume_ItensDuplicadosSomam(t *testing.T) {
	uc, repo, _ := newConsumeFixture()

	// 2 + 1 do mesmo produto = 3, exatamente o saldo disponível.
	receipts, err := uc.Execute(context.Background(), 1, []ConsumeItem{
		{ProductID: 2, Quantity: 2},
		{ProductID: 2, Quantity: 1},
	})
	require.NoError(t, err)
	require.Len(t, receipts, 1)
	assert.Equal(t, 3, receipts[0].Consumed)
	assert.Equal(t, 0, receipts[0].Remaining)
	assert.Equal(t, 0, repo.products[2].Stock)
}

func TestConsume_ItensDuplicadosEstouramSaldo(t *testing.T) {
	uc, repo, _ := newConsumeFixture()

	// 2 + 2 = 4 > 3 em estoque: a validação vê a soma, não cada item.
	_, err := uc.Execute(context.Background(), 1, []ConsumeItem{
		{ProductID: 2, Quantity: 2},
		{ProductID: 2, Quantity: 2},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 3, repo.products[2].Stock)
}

func TestConsume_SaldoInsuficienteNaoBaixaNada(t *testing.T) {
	uc, repo, recorder := newConsumeFixture()

	_, err := uc.Execute(context.Background(), 1, []ConsumeItem{
		{ProductID: 1, Quantity: 4},  // suficiente
		{ProductID: 2, Quantity: 99}, // insuficiente
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Acucar 1kg")
	assert.Contains(t, err.Error(), "Disponivel: 3")

	// Tudo-ou-nada: nem o item válido foi baixado.
	assert.Equal(t, 10, repo.products[1].Stock)
	assert.Equal(t, 3, repo.products[2].Stock)
	assert.Empty(t, recorder.actions)
}

func TestConsume_ProdutoInativo(t *testing.T) {
	uc, repo, _ := newConsumeFixture()

	_, err := uc.Execute(context.Background(), 1, []ConsumeItem{
		{ProductID: 1, Quantity: 1},
		{ProductID: 3, Quantity: 1},
	})
	assert.ErrorIs(t, err, domain.ErrProductInactive)
	assert.Contains(t, err.Error(), "Filtro descontinuado")
	assert.Equal(t, 10, repo.products[1].Stock)
}

func TestConsume_ProdutoInexistente(t *testing.T) {
	uc, _, _ := newConsumeFixture()

	_, err := uc.Execute(context.Background(), 1, []ConsumeItem{
		{ProductID: 999, Quantity: 1},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConsume_EntradaInvalida(t *testing.T) {
	uc, _, _ := newConsumeFixture()

	cases := []struct {
		name  string
		items []ConsumeItem
	}{
		{"sem itens", nil},
		{"quantidade zero", []ConsumeItem{{ProductID: 1, Quantity: 0}}},
		{"quantidade negativa", []ConsumeItem{{ProductID: 1, Quantity: -2}}},
		{"produto invalido", []ConsumeItem{{ProductID: 0, Quantity: 1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), 1, tc.items)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}
