package dto

import "github.com/shopspring/decimal"

// ProductRequest corpo de criação/edição de produto.
type ProductRequest struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
	Status   string          `json:"status"` // active (padrão), inactive
}

// ProductResponse um produto.
type ProductResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category,omitempty"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	Status    string          `json:"status"`
	CreatedAt string          `json:"created_at"`
}

// ConsumeStockItem um item de consumo do PDV.
type ConsumeStockItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// ConsumeStockRequest corpo da baixa de estoque de uma venda.
type ConsumeStockRequest struct {
	Items []ConsumeStockItem `json:"items"`
}

// ConsumeReceiptItem comprovante por produto após a baixa.
type ConsumeReceiptItem struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Consumed  int    `json:"consumed"`
	Remaining int    `json:"remaining"`
}

// ConsumeStockResponse resposta da baixa de estoque.
type ConsumeStockResponse struct {
	Message  string               `json:"message"`
	Products []ConsumeReceiptItem `json:"products"`
}
