package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/escritoriopro/backoffice-api/internal/application/audit"
	"github.com/escritoriopro/backoffice-api/internal/domain"
	domainbilling "github.com/escritoriopro/backoffice-api/internal/domain/billing"
	"github.com/escritoriopro/backoffice-api/internal/domain/entity"
	"github.com/escritoriopro/backoffice-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// PlanInput entrada para criação de um plano de cobrança.
// Installments e IntervalMonths valem 1 quando não informados (o handler
// aplica o default antes de chamar o caso de uso).
type PlanInput struct {
	ClientID       int64
	Description    string
	Amount         decimal.Decimal
	FirstDueDate   time.Time
	Notes          string
	Installments   int
	IntervalMonths int
	CreatedBy      int64
}

// CreateInstallmentPlanUseCase cria N contas de cliente (uma por parcela) de
// forma atômica: ou todas as parcelas são gravadas ou nenhuma.
type CreateInstallmentPlanUseCase struct {
	txRunner   TxRunner
	clientRepo repository.ClientRepository
	audit      audit.Recorder
	now        func() time.Time
}

// NewCreateInstallmentPlanUseCase constrói o caso de uso.
func NewCreateInstallmentPlanUseCase(txRunner TxRunner, clientRepo repository.ClientRepository, recorder audit.Recorder) *CreateInstallmentPlanUseCase {
	return &CreateInstallmentPlanUseCase{
		txRunner:   txRunner,
		clientRepo: clientRepo,
		audit:      recorder,
		now:        time.Now,
	}
}

// Execute valida a entrada, resolve o cliente, calcula valores e vencimentos
// das parcelas e grava todas as linhas dentro de uma única transação.
// Devolve o número de contas criadas.
func (uc *CreateInstallmentPlanUseCase) Execute(ctx context.Context, in PlanInput) (int, error) {
	description := strings.TrimSpace(in.Description)
	if in.ClientID <= 0 || description == "" {
		return 0, domain.ErrInvalidInput
	}
	if !in.Amount.IsPositive() {
		return 0, domain.ErrInvalidInput
	}
	if in.Installments < 1 || in.Installments > domainbilling.MaxInstallments {
		return 0, domain.ErrInvalidInput
	}
	if in.IntervalMonths < 1 || in.IntervalMonths > domainbilling.MaxIntervalMonth {
		return 0, domain.ErrInvalidInput
	}

	client, err := uc.clientRepo.GetByID(ctx, in.ClientID)
	if err != nil {
		return 0, fmt.Errorf("validar cliente: %w", err)
	}
	if client == nil {
		return 0, domain.ErrNotFound
	}

	values, err := domainbilling.SplitAmount(in.Amount, in.Installments)
	if err != nil {
		return 0, err
	}
	plan, err := domainbilling.Schedule(in.FirstDueDate, in.Installments, in.IntervalMonths, uc.now())
	if err != nil {
		return 0, err
	}

	notes := strings.TrimSpace(in.Notes)

	// Tudo-ou-nada: qualquer falha de insert desfaz o plano inteiro.
	err = uc.txRunner.RunAccounts(ctx, func(accountRepo repository.ClientAccountRepository) error {
		for i := 0; i < in.Installments; i++ {
			partDescription := description
			if in.Installments > 1 {
				partDescription = fmt.Sprintf("%s (Parcela %d/%d)", description, i+1, in.Installments)
			}
			account := &entity.ClientAccount{
				ClientID:    in.ClientID,
				Description: partDescription,
				Amount:      values[i],
				DueDate:     plan[i].DueDate,
				Status:      plan[i].Status,
				Notes:       notes,
				CreatedBy:   in.CreatedBy,
			}
			if err := accountRepo.Create(ctx, account); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		// Não vaza detalhe de storage para o chamador.
		return 0, fmt.Errorf("%w: cadastro de contas do cliente", domain.ErrPersistence)
	}

	uc.audit.Record(ctx, in.CreatedBy, "CLIENT_ACCOUNT_CREATED",
		fmt.Sprintf("%d conta(s) para cliente %s", in.Installments, client.Name))

	return in.Installments, nil
}
