package repository

import (
	"context"

	"github.com/escritoriopro/backoffice-api/internal/domain/entity"
)

// ActivityLogRepository define o porto de persistência da trilha de auditoria.
type ActivityLogRepository interface {
	Create(ctx context.Context, log *entity.ActivityLog) error
}
