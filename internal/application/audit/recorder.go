package audit

import (
	"context"

	"github.com/escritoriopro/backoffice-api/internal/domain/entity"
	"github.com/escritoriopro/backoffice-api/internal/domain/repository"
	"github.com/escritoriopro/backoffice-api/pkg/logger"
)

// Recorder registra eventos de auditoria em modo fire-and-forget: nunca
// bloqueia nem propaga erro para o chamador.
type Recorder interface {
	Record(ctx context.Context, userID int64, action, details string)
}

// DBRecorder persiste a trilha em activity_logs; falhas viram log de warning.
type DBRecorder struct {
	repo repository.ActivityLogRepository
	log  *logger.Logger
}

// NewDBRecorder constrói o recorder.
func NewDBRecorder(repo repository.ActivityLogRepository, log *logger.Logger) *DBRecorder {
	return &DBRecorder{repo: repo, log: log}
}

var _ Recorder = (*DBRecorder)(nil)

// Record grava o evento. Erros de persistência são engolidos (best effort).
func (r *DBRecorder) Record(ctx context.Context, userID int64, action, details string) {
	err := r.repo.Create(ctx, &entity.ActivityLog{
		UserID:  userID,
		Action:  action,
		Details: details,
	})
	if err != nil {
		r.log.Warn().Err(err).Str("action", action).Msg("falha ao gravar log de atividade")
	}
}
