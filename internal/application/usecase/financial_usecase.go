package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/escritoriopro/backoffice-api/internal/application/audit"
	"github.com/escritoriopro/backoffice-api/internal/domain"
	"github.com/escritoriopro/backoffice-api/internal/domain/entity"
	"github.com/escritoriopro/backoffice-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// FinancialUseCase lançamentos do livro-caixa (receitas e despesas).
type FinancialUseCase struct {
	repo       repository.FinancialRepository
	clientRepo repository.ClientRepository
	audit      audit.Recorder
	// strictReferences: true rejeita lançamentos com cliente inexistente;
	// false (comportamento histórico) descarta a referência silenciosamente.
	strictReferences bool
}

// NewFinancialUseCase constrói o caso de uso.
func NewFinancialUseCase(repo repository.FinancialRepository, clientRepo repository.ClientRepository, recorder audit.Recorder, strictReferences bool) *FinancialUseCase {
	return &FinancialUseCase{
		repo:             repo,
		clientRepo:       clientRepo,
		audit:            recorder,
		strictReferences: strictReferences,
	}
}

// FinancialInput dados de um lançamento.
type FinancialInput struct {
	Type        string // income, expense
	Amount      decimal.Decimal
	Category    string
	Description string
	Date        time.Time
	ClientID    int64 // 0 = sem vínculo
	CreatedBy   int64
}

// Create registra um lançamento financeiro. A referência a cliente é
// validada: em modo estrito cliente inexistente é erro; em modo leniente a
// referência inválida vira NULL.
func (uc *FinancialUseCase) Create(ctx context.Context, in FinancialInput) (*entity.Financial, error) {
	if in.Type != entity.FinancialTypeIncome && in.Type != entity.FinancialTypeExpense {
		return nil, domain.ErrInvalidInput
	}
	description := strings.TrimSpace(in.Description)
	if description == "" || !in.Amount.IsPositive() || in.Date.IsZero() {
		return nil, domain.ErrInvalidInput
	}

	var clientID *int64
	if in.ClientID > 0 {
		client, err := uc.clientRepo.GetByID(ctx, in.ClientID)
		if err != nil {
			return nil, fmt.Errorf("validar cliente: %w", err)
		}
		switch {
		case client != nil:
			clientID = &in.ClientID
		case uc.strictReferences:
			return nil, domain.ErrNotFound
		}
		// modo leniente: referência inválida é descartada
	}

	entry := &entity.Financial{
		Type:        in.Type,
		Amount:      in.Amount,
		Category:    strings.TrimSpace(in.Category),
		Description: description,
		Date:        in.Date,
		ClientID:    clientID,
		CreatedBy:   in.CreatedBy,
	}
	if err := uc.repo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("lancar financeiro: %w", err)
	}

	uc.audit.Record(ctx, in.CreatedBy, "FINANCIAL_CREATED", fmt.Sprintf("%s - R$ %s", in.Type, in.Amount.StringFixed(2)))
	return entry, nil
}

// List lista lançamentos, mais recentes primeiro.
func (uc *FinancialUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Financial, error) {
	if limit <= 0 || limit > 200 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return uc.repo.List(ctx, limit, offset)
}
