package entity

import "time"

// Location representa uma posição de armazenagem. Cod e Local são chaves
// únicas independentes; Armazem agrupa posições (padrão "LOG").
// A busca externa de movimentos usa Local, não Cod.
type Location struct {
	ID        string
	Cod       string // código único (ex.: 10000)
	Local     string // rótulo único legível (ex.: A001C)
	Armazem   string
	CreatedAt time.Time
}
