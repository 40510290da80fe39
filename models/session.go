package models

// Session представляет одну партию игры GameID в дату Date.
type Session struct {
	ID     string `json:"id" db:"id"`
	Date   Date   `json:"date" db:"date" swaggertype:"string" format:"date" example:"2024-03-01"`
	GameID string `json:"game_id" db:"game"`

	// Участники партии в порядке добавления (не мапятся напрямую)
	Players []SessionPlayers `json:"players" db:"-"`
}
