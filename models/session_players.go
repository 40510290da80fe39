package models

// SessionPlayers хранит результат одного игрока в рамках партии.
type SessionPlayers struct {
	ID        string `json:"id" db:"id"`
	SessionID string `json:"session_id" db:"session_id"`
	PlayerID  string `json:"player_id" db:"player_id"`
	Score     int    `json:"score" db:"score"`
	Team      int    `json:"team" db:"team"`
	Winner    bool   `json:"winner" db:"winner"`
}
