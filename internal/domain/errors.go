package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound          = errors.New("recurso nao encontrado")
	ErrInvalidInput      = errors.New("entrada invalida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("nao autorizado")
	ErrForbidden         = errors.New("acesso negado")
	ErrConflict          = errors.New("conflito com o estado atual")
	ErrInsufficientStock = errors.New("estoque insuficiente")
	ErrProductInactive   = errors.New("produto inativo")
	ErrPersistence       = errors.New("erro de persistencia")
)
