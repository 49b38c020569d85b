package usecase

import (
	"context"
	"fmt"

	"github.com/escritoriopro/backoffice-api/internal/domain/entity"
	"github.com/escritoriopro/backoffice-api/internal/domain/repository"
)

// DashboardUseCase números agregados do painel inicial.
type DashboardUseCase struct {
	repo repository.ReportingRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(repo repository.ReportingRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Summary devolve o resumo de recebíveis e do livro-caixa.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*entity.DashboardSummary, error) {
	summary, err := uc.repo.DashboardSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("resumo do painel: %w", err)
	}
	return summary, nil
}
