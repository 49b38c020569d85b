package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/escritoriopro/backoffice-api/internal/application/dto"
	"github.com/escritoriopro/backoffice-api/internal/application/usecase"
)

// DashboardHandler rota do resumo do painel.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary devolve contadores e totais (GET /api/dashboard).
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.uc.Summary(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	var out dto.DashboardResponse
	out.Receivables.OpenCount = summary.OpenCount
	out.Receivables.OverdueCount = summary.OverdueCount
	out.Receivables.PaidCount = summary.PaidCount
	out.Receivables.OpenTotal = summary.OpenTotal
	out.Receivables.OverdueTotal = summary.OverdueTotal
	out.Receivables.PaidTotal = summary.PaidTotal
	out.Financials.IncomeTotal = summary.IncomeTotal
	out.Financials.ExpenseTotal = summary.ExpenseTotal
	return c.JSON(out)
}
