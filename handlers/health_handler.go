package handlers

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"
)

const healthPingTimeout = 2 * time.Second

type HealthHandler struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewHealthHandler(db *sql.DB, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		logger: loggerOrDefault(logger),
	}
}

// Health godoc
// @Summary Проверка состояния
// @Tags health
// @Description Пингует базу данных.
// @Produce json
// @Success 200 {object} map[string]string "Сервис доступен"
// @Failure 503 {object} map[string]string "База данных недоступна"
// @Router /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.WarnContext(r.Context(), "health check failed", slog.Any("error", err))
		errorResponse(w, r, h.logger, http.StatusServiceUnavailable, "database is unavailable")
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"status": "ok"}, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}
