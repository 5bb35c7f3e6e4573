package entity

import "github.com/jhoicas/foodhub-web/pkg/money"

// MenuItem plato del menú. Price siempre en unidades menores (paise).
type MenuItem struct {
	ID          string
	CategoryID  string
	Name        string
	Description string // opcional
	Price       money.Paise
	ImageURL    string
	IsAvailable bool
}
