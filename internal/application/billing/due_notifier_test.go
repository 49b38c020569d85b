package billing

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escritoriopro/backoffice-api/internal/domain/entity"
	"github.com/escritoriopro/backoffice-api/pkg/logger"
)

// fakeNotificationRepo guarda broadcasts em memória e deduplica por
// (título, mensagem) como a consulta real faz por dia-calendário.
type fakeNotificationRepo struct {
	created    []*entity.Notification
	failCreate bool
}

func (r *fakeNotificationRepo) Create(ctx context.Context, n *entity.Notification) error {
	if r.failCreate {
		return fmt.Errorf("insert indisponivel")
	}
	n.ID = int64(len(r.created) + 1)
	r.created = append(r.created, n)
	return nil
}

func (r *fakeNotificationRepo) ExistsBroadcastToday(ctx context.Context, title, message string) (bool, error) {
	for _, n := range r.created {
		if n.IsBroadcast() && n.Title == title && n.Message == message {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeNotificationRepo) ListForUser(ctx context.Context, userID int64, limit int) ([]*entity.Notification, error) {
	return r.created, nil
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, id, userID int64) (bool, error) {
	return false, nil
}

func newNotifierFixture() (*DueNotifier, *fakeNotificationRepo) {
	repo := &fakeNotificationRepo{}
	notifier := NewDueNotifier(repo, logger.New(logger.Config{Level: "error"}))
	notifier.now = func() time.Time { return time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC) }
	return notifier, repo
}

func account(id int64, clientName, status string, due time.Time) *entity.ClientAccount {
	return &entity.ClientAccount{ID: id, ClientName: clientName, Status: status, DueDate: due}
}

func TestDueNotifier_ContaVencida(t *testing.T) {
	notifier, repo := newNotifierFixture()

	notifier.Evaluate(context.Background(), []*entity.ClientAccount{
		account(7, "Maria Souza", entity.AccountStatusOverdue, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)),
	})

	require.Len(t, repo.created, 1)
	n := repo.created[0]
	assert.Nil(t, n.UserID, "notificacao de vencimento deve ser broadcast")
	assert.Equal(t, "Conta vencida", n.Title)
	assert.Equal(t, "Conta ID 7 (Maria Souza) esta vencida desde 10/06/2024.", n.Message)
	assert.Equal(t, entity.NotificationTypeDanger, n.Type)
}

func TestDueNotifier_VencimentoDentroDaJanela(t *testing.T) {
	notifier, repo := newNotifierFixture()

	// Vence em exatamente 2 dias: dentro da janela de aviso.
	notifier.Evaluate(context.Background(), []*entity.ClientAccount{
		account(3, "Empresa XYZ", entity.AccountStatusOpen, time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC)),
	})

	require.Len(t, repo.created, 1)
	n := repo.created[0]
	assert.Equal(t, "Conta proxima do vencimento", n.Title)
	assert.Equal(t, "Conta ID 3 (Empresa XYZ) vence em 17/06/2024.", n.Message)
	assert.Equal(t, entity.NotificationTypeWarning, n.Type)
}

func TestDueNotifier_ForaDaJanelaNaoNotifica(t *testing.T) {
	notifier, repo := newNotifierFixture()

	notifier.Evaluate(context.Background(), []*entity.ClientAccount{
		account(4, "Empresa XYZ", entity.AccountStatusOpen, time.Date(2024, 6, 18, 0, 0, 0, 0, time.UTC)),
	})

	assert.Empty(t, repo.created)
}

func TestDueNotifier_ContaPagaIgnorada(t *testing.T) {
	notifier, repo := newNotifierFixture()

	// Paga, mesmo com vencimento no passado.
	notifier.Evaluate(context.Background(), []*entity.ClientAccount{
		account(5, "Maria Souza", entity.AccountStatusPaid, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),
	})

	assert.Empty(t, repo.created)
}

func TestDueNotifier_DeduplicaNoMesmoDia(t *testing.T) {
	notifier, repo := newNotifierFixture()

	accounts := []*entity.ClientAccount{
		account(7, "Maria Souza", entity.AccountStatusOverdue, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)),
	}

	notifier.Evaluate(context.Background(), accounts)
	notifier.Evaluate(context.Background(), accounts)

	// Segunda avaliação no mesmo dia não duplica.
	assert.Len(t, repo.created, 1)
}

func TestDueNotifier_ContasDistintasNotificamSeparado(t *testing.T) {
	notifier, repo := newNotifierFixture()

	notifier.Evaluate(context.Background(), []*entity.ClientAccount{
		account(7, "Maria Souza", entity.AccountStatusOverdue, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)),
		account(8, "Empresa XYZ", entity.AccountStatusOverdue, time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)),
	})

	// Mensagens diferentes (ID e cliente), logo duas notificações.
	assert.Len(t, repo.created, 2)
}

func TestDueNotifier_FalhaDeInsertNaoPropaga(t *testing.T) {
	notifier, repo := newNotifierFixture()
	repo.failCreate = true

	// Não deve entrar em pânico nem propagar erro; efeito colateral best effort.
	notifier.Evaluate(context.Background(), []*entity.ClientAccount{
		account(7, "Maria Souza", entity.AccountStatusOverdue, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)),
	})

	assert.Empty(t, repo.created)
}
