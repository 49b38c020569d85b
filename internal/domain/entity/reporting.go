package entity

import "github.com/shopspring/decimal"

// DashboardSummary agrega os números do painel: recebíveis por status e
// totais do livro-caixa.
type DashboardSummary struct {
	OpenCount    int64
	OverdueCount int64
	PaidCount    int64
	OpenTotal    decimal.Decimal
	OverdueTotal decimal.Decimal
	PaidTotal    decimal.Decimal
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
}
