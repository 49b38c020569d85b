package dto

import (
	"github.com/shopspring/decimal"
)

// CreateAccountRequest corpo do cadastro de conta/plano parcelado.
// installments_count e installments_interval_months valem 1 quando omitidos.
type CreateAccountRequest struct {
	ClientID                   int64           `json:"client_id"`
	Description                string          `json:"description"`
	Amount                     decimal.Decimal `json:"amount"`
	DueDate                    string          `json:"due_date"` // YYYY-MM-DD
	Notes                      string          `json:"notes"`
	InstallmentsCount          int             `json:"installments_count"`
	InstallmentsIntervalMonths int             `json:"installments_interval_months"`
}

// CreateAccountResponse resultado do cadastro.
type CreateAccountResponse struct {
	Message      string `json:"message"`
	TotalCreated int    `json:"total_created"`
}

// PayAccountRequest corpo do registro de recebimento.
type PayAccountRequest struct {
	PaidDate string `json:"paid_date"` // YYYY-MM-DD, vazio = hoje
}

// AccountResponse uma conta de cliente na listagem.
type AccountResponse struct {
	ID          int64           `json:"id"`
	ClientID    int64           `json:"client_id"`
	ClientName  string          `json:"client_name"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     string          `json:"due_date"`
	Status      string          `json:"status"`
	PaidDate    *string         `json:"paid_date"`
	Notes       string          `json:"notes,omitempty"`
	CreatedBy   int64           `json:"created_by"`
	CreatedAt   string          `json:"created_at"`
}
