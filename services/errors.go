package services

import (
	"errors"

	"github.com/Dosada05/boardgame-tracker/models"
)

// Общие ошибки, используемые в разных сервисах и маппинге HTTP.
var (
	// Невалидный ввод: отсутствует обязательное поле, неверная дата и т.п.
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidDate      = models.ErrInvalidDate

	// Ссылки на несуществующие сущности в теле запроса
	ErrGameReferenceInvalid    = errors.New("game_id does not reference an existing game")
	ErrSessionReferenceInvalid = errors.New("session_id does not reference an existing session")
	ErrPlayerReferenceInvalid  = errors.New("player_id does not reference an existing player")

	ErrSessionPlayersRequired = errors.New("a list of session players is required")

	// Ресурс не найден
	ErrGameNotFound           = errors.New("game not found")
	ErrPlayerNotFound         = errors.New("player not found")
	ErrSessionNotFound        = errors.New("session not found")
	ErrSessionPlayersNotFound = errors.New("session players entry not found")

	// Конфликты
	ErrGameConflict           = errors.New("a game with this id already exists")
	ErrPlayerConflict         = errors.New("a player with this id already exists")
	ErrSessionConflict        = errors.New("a session with this id already exists")
	ErrSessionPlayersConflict = errors.New("a session players entry with this id already exists")
	ErrGameInUse              = errors.New("game cannot be deleted as it is referenced by sessions")
	ErrPlayerInUse            = errors.New("player cannot be deleted as it has session results")
)
