package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de lançamento financeiro.
const (
	FinancialTypeIncome  = "income"
	FinancialTypeExpense = "expense"
)

// Financial representa um lançamento do livro-caixa (receita ou despesa).
// ClientID é opcional; nil quando o lançamento não está vinculado a cliente.
type Financial struct {
	ID          int64
	Type        string // income, expense
	Amount      decimal.Decimal
	Category    string
	Description string
	Date        time.Time
	ClientID    *int64
	CreatedBy   int64
	CreatedAt   time.Time
}
