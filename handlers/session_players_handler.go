package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/boardgame-tracker/services"
)

type SessionPlayersHandler struct {
	sessionPlayersService services.SessionPlayersService
	logger                *slog.Logger
}

func NewSessionPlayersHandler(sps services.SessionPlayersService, logger *slog.Logger) *SessionPlayersHandler {
	return &SessionPlayersHandler{
		sessionPlayersService: sps,
		logger:                loggerOrDefault(logger),
	}
}

// CreateSessionPlayers godoc
// @Summary Создать результат игрока
// @Tags session-players
// @Description Все поля обязательны. id merge зарезервирован.
// @Accept json
// @Produce json
// @Param body body services.SessionPlayersInput true "Результат игрока"
// @Success 200 {object} models.SessionPlayers "Созданная запись"
// @Failure 400 {object} map[string]string "Некорректные данные"
// @Failure 409 {object} map[string]string "Конфликт"
// @Failure 500 {object} map[string]string "Внутренняя ошибка сервера"
// @Router /session-players [post]
func (h *SessionPlayersHandler) CreateSessionPlayers(w http.ResponseWriter, r *http.Request) {
	var input services.SessionPlayersInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, h.logger, err)
		return
	}

	entry, err := h.sessionPlayersService.CreateSessionPlayers(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, entry, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}

// GetSessionPlayersByID godoc
// @Summary Получить результат по ID
// @Tags session-players
// @Produce json
// @Param sessionPlayersID path string true "Session players ID"
// @Success 200 {object} models.SessionPlayers "Запись"
// @Failure 404 {object} map[string]string "Не найдено"
// @Failure 500 {object} map[string]string "Внутренняя ошибка сервера"
// @Router /session-players/{sessionPlayersID} [get]
func (h *SessionPlayersHandler) GetSessionPlayersByID(w http.ResponseWriter, r *http.Request) {
	entryID, err := getIDFromURL(r, "sessionPlayersID")
	if err != nil {
		badRequestResponse(w, r, h.logger, err)
		return
	}

	entry, err := h.sessionPlayersService.GetSessionPlayersByID(r.Context(), entryID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, entry, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}

// GetAllSessionPlayers godoc
// @Summary Список результатов
// @Tags session-players
// @Produce json
// @Success 200 {array} models.SessionPlayers "Список записей"
// @Failure 500 {object} map[string]string "Внутренняя ошибка сервера"
// @Router /session-players [get]
func (h *SessionPlayersHandler) GetAllSessionPlayers(w http.ResponseWriter, r *http.Request) {
	entries, err := h.sessionPlayersService.GetAllSessionPlayers(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, entries, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}

// UpdateSessionPlayers godoc
// @Summary Обновить результат
// @Tags session-players
// @Description Частичное обновление. Новые session_id и player_id должны существовать.
// @Accept json
// @Produce json
// @Param sessionPlayersID path string true "Session players ID"
// @Param body body services.UpdateSessionPlayersInput true "Изменяемые поля"
// @Success 200 {object} models.SessionPlayers "Обновлённая запись"
// @Failure 400 {object} map[string]string "Некорректные данные"
// @Failure 404 {object} map[string]string "Не найдено"
// @Failure 500 {object} map[string]string "Внутренняя ошибка сервера"
// @Router /session-players/{sessionPlayersID} [put]
func (h *SessionPlayersHandler) UpdateSessionPlayers(w http.ResponseWriter, r *http.Request) {
	entryID, err := getIDFromURL(r, "sessionPlayersID")
	if err != nil {
		badRequestResponse(w, r, h.logger, err)
		return
	}

	var input services.UpdateSessionPlayersInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, h.logger, err)
		return
	}

	entry, err := h.sessionPlayersService.UpdateSessionPlayers(r.Context(), entryID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, entry, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}

// DeleteSessionPlayers godoc
// @Summary Удалить результат
// @Tags session-players
// @Produce json
// @Param sessionPlayersID path string true "Session players ID"
// @Success 200 "Запись удалена"
// @Failure 404 {object} map[string]string "Не найдено"
// @Failure 500 {object} map[string]string "Внутренняя ошибка сервера"
// @Router /session-players/{sessionPlayersID} [delete]
func (h *SessionPlayersHandler) DeleteSessionPlayers(w http.ResponseWriter, r *http.Request) {
	entryID, err := getIDFromURL(r, "sessionPlayersID")
	if err != nil {
		badRequestResponse(w, r, h.logger, err)
		return
	}

	if err := h.sessionPlayersService.DeleteSessionPlayers(r.Context(), entryID); err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// MergeSessionPlayers godoc
// @Summary Создать или перезаписать результат
// @Tags session-players
// @Description Создаёт запись или целиком заменяет запись с тем же id.
// @Accept json
// @Produce json
// @Param body body services.SessionPlayersInput true "Результат игрока"
// @Success 200 {object} models.SessionPlayers "Сохранённая запись"
// @Failure 400 {object} map[string]string "Некорректные данные"
// @Failure 404 {object} map[string]string "Не найдено"
// @Failure 500 {object} map[string]string "Внутренняя ошибка сервера"
// @Router /session-players/merge [put]
func (h *SessionPlayersHandler) MergeSessionPlayers(w http.ResponseWriter, r *http.Request) {
	var input services.SessionPlayersInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, h.logger, err)
		return
	}

	entry, err := h.sessionPlayersService.MergeSessionPlayers(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, entry, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}
