package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de produto.
const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
)

// Product representa um produto vendável no PDV.
// Stock nunca fica negativo; consumo passa exclusivamente pela transação de
// venda, nunca pelo CRUD.
type Product struct {
	ID        int64
	Name      string
	Category  string
	Price     decimal.Decimal
	Stock     int
	Status    string // active, inactive
	CreatedAt time.Time
}
