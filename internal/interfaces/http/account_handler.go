package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/escritoriopro/backoffice-api/internal/application/billing"
	"github.com/escritoriopro/backoffice-api/internal/application/dto"
	"github.com/escritoriopro/backoffice-api/internal/domain/entity"
	"github.com/escritoriopro/backoffice-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// AccountHandler rotas de contas de cliente (recebíveis).
type AccountHandler struct {
	createPlan *billing.CreateInstallmentPlanUseCase
	accounts   *billing.AccountsUseCase
}

// NewAccountHandler constrói o handler.
func NewAccountHandler(createPlan *billing.CreateInstallmentPlanUseCase, accounts *billing.AccountsUseCase) *AccountHandler {
	return &AccountHandler{createPlan: createPlan, accounts: accounts}
}

// Create cadastra uma conta ou um plano parcelado (POST /api/client-accounts).
func (h *AccountHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo invalido"})
	}

	dueDate, err := time.Parse(dateLayout, in.DueDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "due_date invalida (use YYYY-MM-DD)"})
	}

	// Campos de parcelamento omitidos valem 1 (cobrança à vista).
	if in.InstallmentsCount == 0 {
		in.InstallmentsCount = 1
	}
	if in.InstallmentsIntervalMonths == 0 {
		in.InstallmentsIntervalMonths = 1
	}

	total, err := h.createPlan.Execute(c.Context(), billing.PlanInput{
		ClientID:       in.ClientID,
		Description:    in.Description,
		Amount:         in.Amount,
		FirstDueDate:   dueDate,
		Notes:          in.Notes,
		Installments:   in.InstallmentsCount,
		IntervalMonths: in.InstallmentsIntervalMonths,
		CreatedBy:      GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}

	message := "Conta cadastrada com sucesso"
	if total > 1 {
		message = "Plano parcelado cadastrado com sucesso"
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateAccountResponse{
		Message:      message,
		TotalCreated: total,
	})
}

// List lista contas, vencidas primeiro (GET /api/client-accounts).
// Filtros opcionais: client_id e status via query string.
func (h *AccountHandler) List(c *fiber.Ctx) error {
	filter := repository.AccountFilter{
		ClientID: int64(c.QueryInt("client_id", 0)),
		Status:   c.Query("status"),
	}

	accounts, err := h.accounts.List(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}

	out := make([]dto.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, toAccountResponse(account))
	}
	return c.JSON(out)
}

// Pay registra o recebimento de uma conta (PATCH /api/client-accounts/:id/pay).
func (h *AccountHandler) Pay(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id invalido"})
	}

	var in dto.PayAccountRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo invalido"})
		}
	}

	var paidDate *time.Time
	if in.PaidDate != "" {
		parsed, err := time.Parse(dateLayout, in.PaidDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paid_date invalida (use YYYY-MM-DD)"})
		}
		paidDate = &parsed
	}

	if err := h.accounts.MarkAsPaid(c.Context(), id, paidDate, GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Recebimento registrado"})
}

// Delete exclui uma conta (DELETE /api/client-accounts/:id, admin).
func (h *AccountHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id invalido"})
	}

	if err := h.accounts.Delete(c.Context(), id, GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Conta excluida"})
}

func toAccountResponse(account *entity.ClientAccount) dto.AccountResponse {
	var paidDate *string
	if account.PaidDate != nil {
		s := account.PaidDate.Format(dateLayout)
		paidDate = &s
	}
	return dto.AccountResponse{
		ID:          account.ID,
		ClientID:    account.ClientID,
		ClientName:  account.ClientName,
		Description: account.Description,
		Amount:      account.Amount,
		DueDate:     account.DueDate.Format(dateLayout),
		Status:      account.Status,
		PaidDate:    paidDate,
		Notes:       account.Notes,
		CreatedBy:   account.CreatedBy,
		CreatedAt:   account.CreatedAt.Format(time.RFC3339),
	}
}
