// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"go_glossary_api/internal/model"
)

// HandleError はエラーを解釈し、適切なJSONエラーレスポンスを返します。
// これがアプリケーションのエラーハンドリングの中心となります。
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if logger == nil {
		logger = slog.Default()
	}
	statusCode := MapErrorToStatusCode(err)

	var detail model.ErrorDetail
	var appErr *model.AppError
	switch {
	case errors.As(err, &appErr):
		detail = appErr.Detail
	case errors.Is(err, model.ErrNotFound):
		detail = model.ErrorDetail{Code: "NOT_FOUND", Message: "リソースが見つかりません。"}
	case errors.Is(err, model.ErrInvalidInput):
		detail = model.ErrorDetail{Code: "VALIDATION_ERROR", Message: "入力内容が正しくありません。"}
	case errors.Is(err, model.ErrStorage):
		logger.Error("Storage error", slog.Any("error", err))
		detail = model.ErrorDetail{Code: "STORAGE_ERROR", Message: "データの読み書きに失敗しました。"}
	default:
		// 予期せぬエラーの詳細はログにだけ出す
		logger.Error("Unhandled error", slog.Any("error", err))
		detail = model.ErrorDetail{Code: "INTERNAL_SERVER_ERROR", Message: "サーバー内部でエラーが発生しました。"}
	}

	RespondWithJSON(w, statusCode, model.APIErrorResponse{Detail: detail.Message, Error: detail}, logger)
}

// MapErrorToStatusCode はアプリケーションエラーをHTTPステータスコードにマッピングします
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		// ErrStorage を含め、それ以外は内部サーバーエラー
		return http.StatusInternalServerError
	}
}

// RespondWithJSON はJSONレスポンスを返します
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("Error marshaling JSON response", slog.Any("error", err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail":"レスポンス生成中にエラーが発生しました。","error":{"code":"INTERNAL_SERVER_ERROR","message":"レスポンス生成中にエラーが発生しました。"}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
