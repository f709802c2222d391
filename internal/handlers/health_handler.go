// internal/handlers/health_handler.go
package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"go_glossary_api/internal/model"
	"go_glossary_api/internal/webutil"
)

// TermCounter は保存されている用語数を返します (*repository.TermStore が満たす)
type TermCounter interface {
	Count(ctx context.Context) (int, error)
}

type HealthHandler struct {
	counter TermCounter
	name    string
	version string
	logger  *slog.Logger
}

// NewHealthHandler は counter が nil の場合、件数を含めずに応答します
func NewHealthHandler(counter TermCounter, name, version string, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthHandler{counter: counter, name: name, version: version, logger: logger}
}

// Root はAPIの名前とバージョンを返します
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	webutil.RespondWithJSON(w, http.StatusOK, model.APIInfoResponse{
		Message: h.name,
		Version: h.version,
	}, h.logger)
}

// Health はプロセスが応答できるかを返します
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := model.HealthResponse{Status: "healthy", Message: "APIは正常に稼働しています。"}
	if h.counter != nil {
		n, err := h.counter.Count(r.Context())
		if err != nil {
			h.logger.ErrorContext(r.Context(), "Health check failed: could not count terms", slog.Any("error", err))
			webutil.RespondWithJSON(w, http.StatusServiceUnavailable, model.HealthResponse{
				Status:  "unhealthy",
				Message: "データを読み取れません。",
			}, h.logger)
			return
		}
		resp.TotalTerms = &n
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, h.logger)
}
