package models

import "time"

// Snapshot - полная выгрузка хранилища, используется для резервных копий.
type Snapshot struct {
	GeneratedAt    time.Time        `json:"generated_at"`
	Games          []Game           `json:"games"`
	Players        []Player         `json:"players"`
	Sessions       []Session        `json:"sessions"`
	SessionPlayers []SessionPlayers `json:"session_players"`
}
