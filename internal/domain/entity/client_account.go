package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de uma conta de cliente (recebível).
const (
	AccountStatusOpen    = "open"
	AccountStatusPaid    = "paid"
	AccountStatusOverdue = "overdue"
)

// ClientAccount representa um recebível vinculado a um cliente.
// Em cobranças parceladas cada parcela é uma linha; a descrição recebe o
// sufixo "(Parcela i/N)" quando N > 1.
type ClientAccount struct {
	ID          int64
	ClientID    int64
	ClientName  string // preenchido no join da listagem
	Description string
	Amount      decimal.Decimal // sempre 2 casas decimais
	DueDate     time.Time       // somente a data é relevante
	Status      string          // open, paid, overdue
	PaidDate    *time.Time
	Notes       string
	CreatedBy   int64
	CreatedAt   time.Time
}
