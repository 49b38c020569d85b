package repository

import (
	"context"

	"github.com/escritoriopro/backoffice-api/internal/domain/entity"
)

// ReportingRepository consultas agregadas para o painel.
type ReportingRepository interface {
	DashboardSummary(ctx context.Context) (*entity.DashboardSummary, error)
}
