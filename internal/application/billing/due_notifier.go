package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/escritoriopro/backoffice-api/internal/domain/entity"
	"github.com/escritoriopro/backoffice-api/internal/domain/repository"
	"github.com/escritoriopro/backoffice-api/pkg/logger"
)

// Títulos das notificações de vencimento. A deduplicação diária usa o par
// (título, mensagem) exato, então mudá-los reinicia a janela de dedupe.
const (
	titleOverdue  = "Conta vencida"
	titleUpcoming = "Conta proxima do vencimento"
)

// Janela de aviso antecipado: contas que vencem em até 2 dias (inclusive).
const upcomingWindowDays = 2

// DueNotifier avalia contas não pagas e emite notificações broadcast de
// vencimento, no máximo uma por (título, mensagem) por dia-calendário.
// Roda como efeito colateral da listagem de contas; falhas são engolidas
// (best effort, nunca falham a leitura).
type DueNotifier struct {
	notifRepo repository.NotificationRepository
	log       *logger.Logger
	now       func() time.Time
}

// NewDueNotifier constrói o notificador.
func NewDueNotifier(notifRepo repository.NotificationRepository, log *logger.Logger) *DueNotifier {
	return &DueNotifier{notifRepo: notifRepo, log: log, now: time.Now}
}

// Evaluate percorre as contas e emite as notificações devidas:
//   - vencida (due < hoje, ou status já overdue): "Conta vencida", danger;
//   - vence em até 2 dias: "Conta proxima do vencimento", warning;
//   - demais: nada.
//
// Duas contas que gerem a mesma mensagem deduplicam entre si — comportamento
// herdado do sistema, preservado de propósito.
func (n *DueNotifier) Evaluate(ctx context.Context, accounts []*entity.ClientAccount) {
	today := dateOnly(n.now())

	for _, account := range accounts {
		if account.Status == entity.AccountStatusPaid {
			continue
		}

		due := dateOnly(account.DueDate)
		diffDays := int(due.Sub(today).Hours() / 24)

		if account.Status == entity.AccountStatusOverdue || due.Before(today) {
			n.notifyOncePerDay(ctx, titleOverdue,
				fmt.Sprintf("Conta ID %d (%s) esta vencida desde %s.", account.ID, account.ClientName, due.Format("02/01/2006")),
				entity.NotificationTypeDanger)
			continue
		}

		if diffDays <= upcomingWindowDays {
			n.notifyOncePerDay(ctx, titleUpcoming,
				fmt.Sprintf("Conta ID %d (%s) vence em %s.", account.ID, account.ClientName, due.Format("02/01/2006")),
				entity.NotificationTypeWarning)
		}
	}
}

// notifyOncePerDay insere a notificação broadcast se ainda não existe outra
// idêntica criada hoje. Qualquer erro é logado e engolido.
func (n *DueNotifier) notifyOncePerDay(ctx context.Context, title, message, notifType string) {
	exists, err := n.notifRepo.ExistsBroadcastToday(ctx, title, message)
	if err != nil {
		n.log.Warn().Err(err).Str("title", title).Msg("falha ao consultar notificacoes do dia")
		return
	}
	if exists {
		return
	}

	err = n.notifRepo.Create(ctx, &entity.Notification{
		UserID:  nil, // broadcast
		Title:   title,
		Message: message,
		Type:    notifType,
	})
	if err != nil {
		n.log.Warn().Err(err).Str("title", title).Msg("falha ao criar notificacao de vencimento")
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
