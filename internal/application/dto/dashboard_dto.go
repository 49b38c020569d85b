package dto

import "github.com/shopspring/decimal"

// DashboardResponse resumo do painel inicial.
type DashboardResponse struct {
	Receivables struct {
		OpenCount    int64           `json:"open_count"`
		OverdueCount int64           `json:"overdue_count"`
		PaidCount    int64           `json:"paid_count"`
		OpenTotal    decimal.Decimal `json:"open_total"`
		OverdueTotal decimal.Decimal `json:"overdue_total"`
		PaidTotal    decimal.Decimal `json:"paid_total"`
	} `json:"receivables"`
	Financials struct {
		IncomeTotal  decimal.Decimal `json:"income_total"`
		ExpenseTotal decimal.Decimal `json:"expense_total"`
	} `json:"financials"`
}
