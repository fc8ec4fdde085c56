package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"newsagent/internal/domain"
)

type recordsGetter interface {
	GetRecords(ctx context.Context) ([]domain.Record, error)
}

type Handler struct {
	log           *slog.Logger
	recordsGetter recordsGetter
}

func NewHandler(log *slog.Logger, getter recordsGetter) *Handler {
	return &Handler{
		log:           log,
		recordsGetter: getter,
	}
}

// getArticles - хендлер для эндпоинта GET /api/articles
func (h *Handler) getArticles(w http.ResponseWriter, r *http.Request) {
	const op = "transport.http/getArticles"
	log := h.log.With(slog.String("op", op))
	if r.Method != http.MethodGet {
		log.Warn("method not allowed")
		respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}
	records, err := h.recordsGetter.GetRecords(r.Context())
	if err != nil {
		log.Error("Failed to get records", slog.Any("error", err))
		respondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if records == nil {
		records = []domain.Record{}
	}
	respondWithJSON(w, http.StatusOK, records)
}

// healthCheck - хендлер для проверки состояния сервиса
func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Вспомогательные функции для ответов
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Failed to marshal JSON response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
