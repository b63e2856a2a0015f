package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrInvalidInput      = errors.New("dados inválidos")
	ErrDuplicate         = errors.New("registro duplicado")
	ErrLocationNotFound  = errors.New("localização não encontrada")
	ErrProductNotFound   = errors.New("produto não encontrado")
	ErrInsufficientStock = errors.New("estoque insuficiente")
)
