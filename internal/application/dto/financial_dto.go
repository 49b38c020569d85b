package dto

import "github.com/shopspring/decimal"

// CreateFinancialRequest corpo de um lançamento do livro-caixa.
type CreateFinancialRequest struct {
	Type        string          `json:"type"` // income, expense
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        string          `json:"date"` // YYYY-MM-DD
	ClientID    int64           `json:"client_id"`
}

// FinancialResponse um lançamento.
type FinancialResponse struct {
	ID          int64           `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category,omitempty"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	ClientID    *int64          `json:"client_id"`
	CreatedBy   int64           `json:"created_by"`
	CreatedAt   string          `json:"created_at"`
}
