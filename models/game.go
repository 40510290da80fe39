package models

// Game описывает настольную игру и способ подсчёта очков.
type Game struct {
	ID      string `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	Scoring string `json:"scoring" db:"scoring"`
}
