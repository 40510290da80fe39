package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Dosada05/boardgame-tracker/services"
)

type SessionHandler struct {
	sessionService        services.SessionService
	sessionPlayersService services.SessionPlayersService
	logger                *slog.Logger
}

func NewSessionHandler(ss services.SessionService, sps services.SessionPlayersService, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		sessionService:        ss,
		sessionPlayersService: sps,
		logger:                loggerOrDefault(logger),
	}
}

// CreateSession godoc
// @Summary Создать партию
// @Tags sessions
// @Description Создаёт партию. date в формате YYYY-MM-DD, game_id должен ссылаться на существующую игру.
// @Accept json
// @Produce json
// @Param body body services.CreateSessionInput true "Данные партии"
// @Success 200 {object} models.Session "Созданная партия"
// @Failure 400 {object} map[string]string "Некорректные данные"
// @Failure 409 {object} map[string]string "Конфликт"
// @Failure 500 {object} map[string]string "Внутренняя ошибка сервера"
// @Router /sessions [post]
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var input services.CreateSessionInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, h.logger, err)
		return
	}

	session, err := h.sessionService.CreateSession(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, session, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}

// GetSessionByID godoc
// @Summary Получить партию по ID
// @Tags sessions
// @Description Партия возвращается вместе с результатами игроков.
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} models.Session "Партия"
// @Failure 404 {object} map[string]string "Не найдено"
// @Failure 500 {object} map[string]string "Внутренняя ошибка сервера"
// @Router /sessions/{sessionID} [get]
func (h *SessionHandler) GetSessionByID(w http.ResponseWriter, r *http.Request) {
	sessionID, err := getIDFromURL(r, "sessionID")
	if err != nil {
		badRequestResponse(w, r, h.logger, err)
		return
	}

	session, err := h.sessionService.GetSessionByID(r.Context(), sessionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, session, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}

// GetAllSessions godoc
// @Summary Список партий
// @Tags sessions
// @Produce json
// @Success 200 {array} models.Session "Список партий"
// @Failure 500 {object} map[string]string "Внутренняя ошибка сервера"
// @Router /sessions [get]
func (h *SessionHandler) GetAllSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.sessionService.GetAllSessions(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, sessions, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}

// UpdateSession godoc
// @Summary Обновить партию
// @Tags sessions
// @Description Частичное обновление даты и игры.
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param body body services.UpdateSessionInput true "Изменяемые поля"
// @Success 200 {object} models.Session "Обновлённая партия"
// @Failure 400 {object} map[string]string "Некорректные данные"
// @Failure 404 {object} map[string]string "Не найдено"
// @Failure 500 {object} map[string]string "Внутренняя ошибка сервера"
// @Router /sessions/{sessionID} [put]
func (h *SessionHandler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := getIDFromURL(r, "sessionID")
	if err != nil {
		badRequestResponse(w, r, h.logger, err)
		return
	}

	var input services.UpdateSessionInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, h.logger, err)
		return
	}

	session, err := h.sessionService.UpdateSession(r.Context(), sessionID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, session, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}

// DeleteSession godoc
// @Summary Удалить партию
// @Tags sessions
// @Description Вместе с партией удаляются её результаты.
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 "Партия удалена"
// @Failure 404 {object} map[string]string "Не найдено"
// @Failure 500 {object} map[string]string "Внутренняя ошибка сервера"
// @Router /sessions/{sessionID} [delete]
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := getIDFromURL(r, "sessionID")
	if err != nil {
		badRequestResponse(w, r, h.logger, err)
		return
	}

	if err := h.sessionService.DeleteSession(r.Context(), sessionID); err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// MergeSessionPlayers godoc
// @Summary Сохранить результаты партии
// @Tags sessions
// @Description Создаёт или перезаписывает все переданные записи в одной транзакции. session_id каждой записи должен совпадать с партией из пути.
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param body body []services.SessionPlayersInput true "Результаты игроков"
// @Success 200 {array} models.SessionPlayers "Сохранённые записи"
// @Failure 400 {object} map[string]string "Некорректные данные"
// @Failure 404 {object} map[string]string "Не найдено"
// @Failure 500 {object} map[string]string "Внутренняя ошибка сервера"
// @Router /sessions/{sessionID}/players [put]
func (h *SessionHandler) MergeSessionPlayers(w http.ResponseWriter, r *http.Request) {
	sessionID, err := getIDFromURL(r, "sessionID")
	if err != nil {
		badRequestResponse(w, r, h.logger, err)
		return
	}

	var inputs []services.SessionPlayersInput
	if err := readJSON(w, r, &inputs); err != nil {
		if errors.Is(err, errMissingBody) {
			mapServiceErrorToHTTP(w, r, h.logger, services.ErrSessionPlayersRequired)
			return
		}
		badRequestResponse(w, r, h.logger, err)
		return
	}

	merged, err := h.sessionPlayersService.MergeAllSessionPlayers(r.Context(), sessionID, inputs)
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, merged, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}
