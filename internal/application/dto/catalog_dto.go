package dto

import "time"

// CreateProductRequest entrada para cadastrar um produto.
type CreateProductRequest struct {
	Ref  string `json:"ref" validate:"required,min=1,max=50"`
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// ProductResponse saída de um produto do catálogo.
type ProductResponse struct {
	ID        string    `json:"id"`
	Ref       string    `json:"ref"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateLocationRequest entrada para cadastrar uma localização.
// Armazem é opcional e assume "LOG" quando vazio.
type CreateLocationRequest struct {
	Cod     string `json:"cod" validate:"required,min=1,max=50"`
	Local   string `json:"local" validate:"required,min=1,max=50"`
	Armazem string `json:"armazem" validate:"max=50"`
}

// LocationResponse saída de uma localização.
type LocationResponse struct {
	ID        string    `json:"id"`
	Cod       string    `json:"cod"`
	Local     string    `json:"local"`
	Armazem   string    `json:"armazem"`
	CreatedAt time.Time `json:"created_at"`
}
