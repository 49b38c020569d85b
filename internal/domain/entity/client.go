package entity

import "time"

// Tipos de cliente: pessoa física ou jurídica.
const (
	ClientTypePF = "PF"
	ClientTypePJ = "PJ"
)

// Client representa um cliente do escritório (registro cadastral).
type Client struct {
	ID        int64
	Name      string
	Type      string // PF, PJ
	Document  string // CPF ou CNPJ, único
	Email     string
	Phone     string
	Address   string
	Status    string // active, inactive
	CreatedAt time.Time
}
