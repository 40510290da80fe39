package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/boardgame-tracker/services"
)

type PlayerHandler struct {
	playerService services.PlayerService
	logger        *slog.Logger
}

func NewPlayerHandler(ps services.PlayerService, logger *slog.Logger) *PlayerHandler {
	return &PlayerHandler{
		playerService: ps,
		logger:        loggerOrDefault(logger),
	}
}

// CreatePlayer godoc
// @Summary Создать игрока
// @Tags players
// @Description Создаёт игрока. id и name обязательны.
// @Accept json
// @Produce json
// @Param body body services.CreatePlayerInput true "Данные игрока"
// @Success 200 {object} models.Player "Созданный игрок"
// @Failure 400 {object} map[string]string "Некорректные данные"
// @Failure 409 {object} map[string]string "Конфликт"
// @Failure 500 {object} map[string]string "Внутренняя ошибка сервера"
// @Router /players [post]
func (h *PlayerHandler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var input services.CreatePlayerInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, h.logger, err)
		return
	}

	player, err := h.playerService.CreatePlayer(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, player, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}

// GetPlayerByID godoc
// @Summary Получить игрока по ID
// @Tags players
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} models.Player "Игрок"
// @Failure 404 {object} map[string]string "Не найдено"
// @Failure 500 {object} map[string]string "Внутренняя ошибка сервера"
// @Router /players/{playerID} [get]
func (h *PlayerHandler) GetPlayerByID(w http.ResponseWriter, r *http.Request) {
	playerID, err := getIDFromURL(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, h.logger, err)
		return
	}

	player, err := h.playerService.GetPlayerByID(r.Context(), playerID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, player, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}

// GetAllPlayers godoc
// @Summary Список игроков
// @Tags players
// @Description Возвращает всех игроков в порядке создания.
// @Produce json
// @Success 200 {array} models.Player "Список игроков"
// @Failure 500 {object} map[string]string "Внутренняя ошибка сервера"
// @Router /players [get]
func (h *PlayerHandler) GetAllPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.playerService.GetAllPlayers(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, players, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}

// UpdatePlayer godoc
// @Summary Обновить игрока
// @Tags players
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param body body services.UpdatePlayerInput true "Изменяемые поля"
// @Success 200 {object} models.Player "Обновлённый игрок"
// @Failure 400 {object} map[string]string "Некорректные данные"
// @Failure 404 {object} map[string]string "Не найдено"
// @Failure 500 {object} map[string]string "Внутренняя ошибка сервера"
// @Router /players/{playerID} [put]
func (h *PlayerHandler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	playerID, err := getIDFromURL(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, h.logger, err)
		return
	}

	var input services.UpdatePlayerInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, h.logger, err)
		return
	}

	player, err := h.playerService.UpdatePlayer(r.Context(), playerID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, player, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}

// DeletePlayer godoc
// @Summary Удалить игрока
// @Tags players
// @Description Игрока с результатами в партиях удалить нельзя.
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 "Игрок удалён"
// @Failure 404 {object} map[string]string "Не найдено"
// @Failure 409 {object} map[string]string "Конфликт"
// @Failure 500 {object} map[string]string "Внутренняя ошибка сервера"
// @Router /players/{playerID} [delete]
func (h *PlayerHandler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	playerID, err := getIDFromURL(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, h.logger, err)
		return
	}

	if err := h.playerService.DeletePlayer(r.Context(), playerID); err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
