// internal/handlers/term_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_glossary_api/internal/middleware"
	"go_glossary_api/internal/model"
	"go_glossary_api/internal/service"
	"go_glossary_api/internal/webutil"
)

const defaultPerPage = 10

type TermHandler struct {
	service        service.TermService
	logger         *slog.Logger
	defaultPerPage int
}

type TermHandlerOption func(*TermHandler)

// WithDefaultPerPage は per_page 未指定時の件数を変更します
func WithDefaultPerPage(n int) TermHandlerOption {
	return func(h *TermHandler) {
		if n > 0 {
			h.defaultPerPage = n
		}
	}
}

func NewTermHandler(s service.TermService, logger *slog.Logger, opts ...TermHandlerOption) *TermHandler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &TermHandler{
		service:        s,
		logger:         logger,
		defaultPerPage: defaultPerPage,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// handlerLogger はリクエストスコープのロガーがあればそれを優先します
func (h *TermHandler) handlerLogger(r *http.Request, name string) *slog.Logger {
	logger := h.logger
	if l, ok := middleware.LoggerFromContext(r.Context()); ok {
		logger = l
	}
	return logger.With(slog.String("handler", name))
}

// ListTerms は用語一覧をページングして返します
// GET /api/terms?page=1&per_page=10&search=...
func (h *TermHandler) ListTerms(w http.ResponseWriter, r *http.Request) {
	logger := h.handlerLogger(r, "ListTerms")

	page, err := webutil.IntQueryParam(r, "page", 1)
	if err != nil {
		logger.Warn("Invalid page parameter", slog.String("page", r.URL.Query().Get("page")))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_QUERY_PARAM", "pageは整数で指定してください。", "page", err))
		return
	}
	perPage, err := webutil.IntQueryParam(r, "per_page", h.defaultPerPage)
	if err != nil {
		logger.Warn("Invalid per_page parameter", slog.String("per_page", r.URL.Query().Get("per_page")))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_QUERY_PARAM", "per_pageは整数で指定してください。", "per_page", err))
		return
	}

	q := model.ListTermsQuery{Page: page, PerPage: perPage, Search: r.URL.Query().Get("search")}
	resp, err := h.service.ListTerms(r.Context(), q)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetTerm は指定IDの用語を返します
func (h *TermHandler) GetTerm(w http.ResponseWriter, r *http.Request) {
	logger := h.handlerLogger(r, "GetTerm")

	id, ok := h.termID(w, r, logger)
	if !ok {
		return
	}
	term, err := h.service.GetTerm(r.Context(), id)
	if err != nil {
		webutil.HandleError(w, logger, notFoundAsAppError(err))
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, term, logger)
}

// CreateTerm は新しい用語を作成します
func (h *TermHandler) CreateTerm(w http.ResponseWriter, r *http.Request) {
	logger := h.handlerLogger(r, "CreateTerm")

	var req model.CreateTermRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput))
		return
	}
	if err := webutil.ValidateStruct(req); err != nil {
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	term, err := h.service.CreateTerm(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, term, logger)
}

// UpdateTerm は含まれているフィールドだけを更新します
func (h *TermHandler) UpdateTerm(w http.ResponseWriter, r *http.Request) {
	logger := h.handlerLogger(r, "UpdateTerm")

	id, ok := h.termID(w, r, logger)
	if !ok {
		return
	}
	var req model.UpdateTermRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput))
		return
	}

	term, err := h.service.UpdateTerm(r.Context(), id, &req)
	if err != nil {
		webutil.HandleError(w, logger, notFoundAsAppError(err))
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, term, logger)
}

// DeleteTerm は指定IDの用語を削除します
func (h *TermHandler) DeleteTerm(w http.ResponseWriter, r *http.Request) {
	logger := h.handlerLogger(r, "DeleteTerm")

	id, ok := h.termID(w, r, logger)
	if !ok {
		return
	}
	if err := h.service.DeleteTerm(r.Context(), id); err != nil {
		webutil.HandleError(w, logger, notFoundAsAppError(err))
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.MessageResponse{Message: "用語を削除しました。"}, logger)
}

// SearchTerms は用語・定義・カテゴリを対象に検索します。ページングはしません。
// GET /api/terms/search/{query}
func (h *TermHandler) SearchTerms(w http.ResponseWriter, r *http.Request) {
	logger := h.handlerLogger(r, "SearchTerms")

	query, err := webutil.PathURLParam(r, "query")
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("INVALID_URL_PARAM", "検索語の形式が正しくありません。", "query", err))
		return
	}
	results, err := h.service.SearchTerms(r.Context(), query)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if results == nil {
		results = []*model.Term{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.SearchTermsResponse{
		Results: results,
		Query:   query,
		Count:   len(results),
	}, logger)
}

// termID は {id} を整数として取り出します。失敗時はレスポンスを書き込み false を返します。
func (h *TermHandler) termID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (int, bool) {
	id, err := webutil.IntURLParam(r, "id")
	if err != nil {
		logger.Warn("Invalid term ID format in URL", slog.String("id", r.URL.Path))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_URL_PARAM", "IDの形式が正しくありません。", "id", err))
		return 0, false
	}
	return id, true
}

func notFoundAsAppError(err error) error {
	var appErr *model.AppError
	if errors.Is(err, model.ErrNotFound) && !errors.As(err, &appErr) {
		return model.NewAppError("NOT_FOUND", "用語が見つかりません。", "", err)
	}
	return err
}
