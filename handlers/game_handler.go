package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/boardgame-tracker/services"
)

type GameHandler struct {
	gameService services.GameService
	logger      *slog.Logger
}

func NewGameHandler(gs services.GameService, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		gameService: gs,
		logger:      loggerOrDefault(logger),
	}
}

// CreateGame godoc
// @Summary Создать игру
// @Tags games
// @Description Создаёт игру. id, name и scoring обязательны.
// @Accept json
// @Produce json
// @Param body body services.CreateGameInput true "Данные игры"
// @Success 200 {object} models.Game "Созданная игра"
// @Failure 400 {object} map[string]string "Некорректные данные"
// @Failure 409 {object} map[string]string "Конфликт"
// @Failure 500 {object} map[string]string "Внутренняя ошибка сервера"
// @Router /games [post]
func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var input services.CreateGameInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, h.logger, err)
		return
	}

	game, err := h.gameService.CreateGame(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, game, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}

// GetGameByID godoc
// @Summary Получить игру по ID
// @Tags games
// @Produce json
// @Param gameID path string true "Game ID"
// @Success 200 {object} models.Game "Игра"
// @Failure 404 {object} map[string]string "Не найдено"
// @Failure 500 {object} map[string]string "Внутренняя ошибка сервера"
// @Router /games/{gameID} [get]
func (h *GameHandler) GetGameByID(w http.ResponseWriter, r *http.Request) {
	gameID, err := getIDFromURL(r, "gameID")
	if err != nil {
		badRequestResponse(w, r, h.logger, err)
		return
	}

	game, err := h.gameService.GetGameByID(r.Context(), gameID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, game, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}

// GetAllGames godoc
// @Summary Список игр
// @Tags games
// @Description Возвращает все игры в порядке создания.
// @Produce json
// @Success 200 {array} models.Game "Список игр"
// @Failure 500 {object} map[string]string "Внутренняя ошибка сервера"
// @Router /games [get]
func (h *GameHandler) GetAllGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.gameService.GetAllGames(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, games, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}

// UpdateGame godoc
// @Summary Обновить игру
// @Tags games
// @Description Частичное обновление: меняются только переданные поля.
// @Accept json
// @Produce json
// @Param gameID path string true "Game ID"
// @Param body body services.UpdateGameInput true "Изменяемые поля"
// @Success 200 {object} models.Game "Обновлённая игра"
// @Failure 400 {object} map[string]string "Некорректные данные"
// @Failure 404 {object} map[string]string "Не найдено"
// @Failure 500 {object} map[string]string "Внутренняя ошибка сервера"
// @Router /games/{gameID} [put]
func (h *GameHandler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	gameID, err := getIDFromURL(r, "gameID")
	if err != nil {
		badRequestResponse(w, r, h.logger, err)
		return
	}

	var input services.UpdateGameInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, h.logger, err)
		return
	}

	game, err := h.gameService.UpdateGame(r.Context(), gameID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, game, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}

// DeleteGame godoc
// @Summary Удалить игру
// @Tags games
// @Description Игру, на которую ссылаются партии, удалить нельзя.
// @Produce json
// @Param gameID path string true "Game ID"
// @Success 200 "Игра удалена"
// @Failure 404 {object} map[string]string "Не найдено"
// @Failure 409 {object} map[string]string "Конфликт"
// @Failure 500 {object} map[string]string "Внутренняя ошибка сервера"
// @Router /games/{gameID} [delete]
func (h *GameHandler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	gameID, err := getIDFromURL(r, "gameID")
	if err != nil {
		badRequestResponse(w, r, h.logger, err)
		return
	}

	if err := h.gameService.DeleteGame(r.Context(), gameID); err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
