package entity

import "time"

// Papéis de usuário do back-office.
const (
	RoleAdmin       = "admin"
	RoleFinanceiro  = "financeiro"
	RoleAtendimento = "atendimento"
)

// User representa um usuário interno do sistema.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         string // admin, financeiro, atendimento
	Status       string // active, inactive
	CreatedAt    time.Time
	LastAccess   *time.Time
}
