package billing

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escritoriopro/backoffice-api/internal/domain"
	"github.com/escritoriopro/backoffice-api/internal/domain/entity"
	"github.com/escritoriopro/backoffice-api/internal/domain/repository"
)

// ─── Fakes em memória ────────────────────────────────────────────────────────

type fakeClientRepo struct {
	clients map[int64]*entity.Client
}

func (r *fakeClientRepo) Create(ctx context.Context, client *entity.Client) error { return nil }
func (r *fakeClientRepo) GetByID(ctx context.Context, id int64) (*entity.Client, error) {
	return r.clients[id], nil
}
func (r *fakeClientRepo) GetByDocument(ctx context.Context, document string) (*entity.Client, error) {
	return nil, nil
}
func (r *fakeClientRepo) List(ctx context.Context, limit, offset int) ([]*entity.Client, error) {
	return nil, nil
}

// fakeAccountRepo implementa apenas Create; o caso de uso de plano não usa o
// restante da interface.
type fakeAccountRepo struct {
	accounts  []*entity.ClientAccount
	failAfter int // falha no insert de índice failAfter (0-based); -1 nunca falha
}

func (r *fakeAccountRepo) Create(ctx context.Context, account *entity.ClientAccount) error {
	if r.failAfter >= 0 && len(r.accounts) == r.failAfter {
		return fmt.Errorf("insert forcado a falhar")
	}
	account.ID = int64(len(r.accounts) + 1)
	r.accounts = append(r.accounts, account)
	return nil
}
func (r *fakeAccountRepo) List(ctx context.Context, filter repository.AccountFilter) ([]*entity.ClientAccount, error) {
	return r.accounts, nil
}
func (r *fakeAccountRepo) EscalateOverdue(ctx context.Context, today time.Time) (int64, error) {
	return 0, nil
}
func (r *fakeAccountRepo) MarkPaid(ctx context.Context, id int64, paidDate time.Time) (bool, error) {
	return false, nil
}
func (r *fakeAccountRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return false, nil
}

// fakeTxRunner simula o tudo-ou-nada: em caso de erro as contas gravadas no
// repositório staging são descartadas, como um rollback.
type fakeTxRunner struct {
	committed []*entity.ClientAccount
	failAfter int
}

func (t *fakeTxRunner) RunAccounts(ctx context.Context, fn func(repository.ClientAccountRepository) error) error {
	staging := &fakeAccountRepo{failAfter: t.failAfter}
	if err := fn(staging); err != nil {
		return err
	}
	t.committed = append(t.committed, staging.accounts...)
	return nil
}

type fakeRecorder struct {
	actions []string
}

func (r *fakeRecorder) Record(ctx context.Context, userID int64, action, details string) {
	r.actions = append(r.actions, action)
}

func newPlanFixture(failAfter int) (*CreateInstallmentPlanUseCase, *fakeTxRunner, *fakeRecorder) {
	clientRepo := &fakeClientRepo{clients: map[int64]*entity.Client{
		10: {ID: 10, Name: "Maria Souza", Type: entity.ClientTypePF, Document: "12345678900"},
	}}
	txRunner := &fakeTxRunner{failAfter: failAfter}
	recorder := &fakeRecorder{}
	uc := NewCreateInstallmentPlanUseCase(txRunner, clientRepo, recorder)
	uc.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	return uc, txRunner, recorder
}

// ─── Tests ───────────────────────────────────────────────────────────────────

func TestCreatePlan_ParcelamentoEmTres(t *testing.T) {
	uc, txRunner, recorder := newPlanFixture(-1)

	total, err := uc.Execute(context.Background(), PlanInput{
		ClientID:       10,
		Description:    "Honorarios contabeis",
		Amount:         decimal.RequireFromString("100.00"),
		FirstDueDate:   time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC),
		Installments:   3,
		IntervalMonths: 1,
		CreatedBy:      1,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, txRunner.committed, 3)

	// Centavos: 33.33 + 33.33 + 33.34 = 100.00; o resto vai na última.
	assert.Equal(t, "33.33", txRunner.committed[0].Amount.StringFixed(2))
	assert.Equal(t, "33.33", txRunner.committed[1].Amount.StringFixed(2))
	assert.Equal(t, "33.34", txRunner.committed[2].Amount.StringFixed(2))

	assert.Equal(t, "Honorarios contabeis (Parcela 1/3)", txRunner.committed[0].Description)
	assert.Equal(t, "Honorarios contabeis (Parcela 3/3)", txRunner.committed[2].Description)

	// Vencimentos mensais a partir da primeira data.
	assert.Equal(t, time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC), txRunner.committed[0].DueDate)
	assert.Equal(t, time.Date(2024, 8, 10, 0, 0, 0, 0, time.UTC), txRunner.committed[1].DueDate)
	assert.Equal(t, time.Date(2024, 9, 10, 0, 0, 0, 0, time.UTC), txRunner.committed[2].DueDate)

	assert.Contains(t, recorder.actions, "CLIENT_ACCOUNT_CREATED")
}

func TestCreatePlan_ContaUnicaSemSufixo(t *testing.T) {
	uc, txRunner, _ := newPlanFixture(-1)

	total, err := uc.Execute(context.Background(), PlanInput{
		ClientID:       10,
		Description:    "Consultoria avulsa",
		Amount:         decimal.RequireFromString("250.00"),
		FirstDueDate:   time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC),
		Installments:   1,
		IntervalMonths: 1,
		CreatedBy:      1,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, txRunner.committed, 1)
	assert.Equal(t, "Consultoria avulsa", txRunner.committed[0].Description)
	assert.Equal(t, "250.00", txRunner.committed[0].Amount.StringFixed(2))
}

func TestCreatePlan_ClienteInexistente(t *testing.T) {
	uc, txRunner, _ := newPlanFixture(-1)

	_, err := uc.Execute(context.Background(), PlanInput{
		ClientID:       999,
		Description:    "Honorarios",
		Amount:         decimal.RequireFromString("100.00"),
		FirstDueDate:   time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC),
		Installments:   2,
		IntervalMonths: 1,
		CreatedBy:      1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, txRunner.committed)
}

func TestCreatePlan_FalhaNoMeioNaoGravaNada(t *testing.T) {
	// O segundo insert falha: nenhuma parcela pode sobreviver.
	uc, txRunner, recorder := newPlanFixture(1)

	_, err := uc.Execute(context.Background(), PlanInput{
		ClientID:       10,
		Description:    "Honorarios",
		Amount:         decimal.RequireFromString("300.00"),
		FirstDueDate:   time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC),
		Installments:   3,
		IntervalMonths: 1,
		CreatedBy:      1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.Empty(t, txRunner.committed)
	assert.Empty(t, recorder.actions)
}

func TestCreatePlan_EntradaInvalida(t *testing.T) {
	uc, _, _ := newPlanFixture(-1)
	base := PlanInput{
		ClientID:       10,
		Description:    "Honorarios",
		Amount:         decimal.RequireFromString("100.00"),
		FirstDueDate:   time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC),
		Installments:   1,
		IntervalMonths: 1,
		CreatedBy:      1,
	}

	cases := []struct {
		name   string
		mutate func(*PlanInput)
	}{
		{"sem descricao", func(in *PlanInput) { in.Description = "  " }},
		{"valor zero", func(in *PlanInput) { in.Amount = decimal.Zero }},
		{"valor negativo", func(in *PlanInput) { in.Amount = decimal.RequireFromString("-5") }},
		{"parcelas zero", func(in *PlanInput) { in.Installments = 0 }},
		{"parcelas acima do limite", func(in *PlanInput) { in.Installments = 49 }},
		{"intervalo zero", func(in *PlanInput) { in.IntervalMonths = 0 }},
		{"intervalo acima do limite", func(in *PlanInput) { in.IntervalMonths = 13 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := base
			tc.mutate(&in)
			_, err := uc.Execute(context.Background(), in)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput), "esperava ErrInvalidInput, veio %v", err)
		})
	}
}
