package postgres

import (
	"context"
	"fmt"

	"github.com/escritoriopro/backoffice-api/internal/domain/entity"
	"github.com/escritoriopro/backoffice-api/internal/domain/repository"
)

// ReportingRepository implementa as consultas agregadas do painel.
type ReportingRepository struct {
	q Querier
}

func NewReportingRepository(q Querier) *ReportingRepository {
	return &ReportingRepository{q: q}
}

var _ repository.ReportingRepository = (*ReportingRepository)(nil)

func (r *ReportingRepository) DashboardSummary(ctx context.Context) (*entity.DashboardSummary, error) {
	summary := &entity.DashboardSummary{}

	accountsQuery := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'open'),
			COUNT(*) FILTER (WHERE status = 'overdue'),
			COUNT(*) FILTER (WHERE status = 'paid'),
			COALESCE(SUM(amount) FILTER (WHERE status = 'open'), 0),
			COALESCE(SUM(amount) FILTER (WHERE status = 'overdue'), 0),
			COALESCE(SUM(amount) FILTER (WHERE status = 'paid'), 0)
		FROM client_accounts`

	err := r.q.QueryRow(ctx, accountsQuery).Scan(
		&summary.OpenCount, &summary.OverdueCount, &summary.PaidCount,
		&summary.OpenTotal, &summary.OverdueTotal, &summary.PaidTotal,
	)
	if err != nil {
		return nil, fmt.Errorf("agregar contas: %w", err)
	}

	financialsQuery := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0)
		FROM financials`

	err = r.q.QueryRow(ctx, financialsQuery).Scan(&summary.IncomeTotal, &summary.ExpenseTotal)
	if err != nil {
		return nil, fmt.Errorf("agregar lancamentos: %w", err)
	}

	return summary, nil
}
