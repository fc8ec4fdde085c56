package http

import (
	"log/slog"
	"net/http"
)

// NewServer создает и настраивает HTTP-сервер режима раздачи отчета.
// Регистрирует эндпоинты API и отдачу HTML-отчета по корневому пути.
// Добавляет middleware для логирования и CORS.
func NewServer(log *slog.Logger, h *Handler, reportPath string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/articles", h.getArticles)
	mux.HandleFunc("/api/health", h.healthCheck)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			http.ServeFile(w, r, reportPath)
			return
		}
		http.NotFound(w, r)
	})
	var handler http.Handler = mux
	handler = loggingMiddleware(log)(handler)
	handler = corsMiddleware()(handler)
	return handler
}
