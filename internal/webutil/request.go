package webutil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"go_glossary_api/internal/model"

	"github.com/go-chi/chi/v5"
)

// DecodeJSONBody はリクエストボディをデコードします。
// フロントエンドは編集フォームの内容 (id を含む) をそのまま送るため、未知のフィールドは無視します。
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.ErrInvalidInput
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return model.ErrInvalidInput // ボディが空
		}
		return errors.Join(model.ErrInvalidInput, err)
	}
	// JSON値の後ろに余分なデータがあれば不正とする
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return model.ErrInvalidInput
	}
	return nil
}

// IntURLParam はURLパラメータを整数として取り出します
func IntURLParam(r *http.Request, key string) (int, error) {
	v, err := strconv.Atoi(chi.URLParam(r, key))
	if err != nil {
		return 0, model.ErrInvalidInput
	}
	return v, nil
}

// PathURLParam はURLパラメータをデコード済みの文字列として取り出します。
// %2F などを含むパスでは chi が RawPath でマッチするため、ここでデコードします。
func PathURLParam(r *http.Request, key string) (string, error) {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v, nil
	}
	decoded, err := url.PathUnescape(v)
	if err != nil {
		return "", model.ErrInvalidInput
	}
	return decoded, nil
}

// IntQueryParam はクエリパラメータを整数として取り出します。未指定の場合は def を返します。
func IntQueryParam(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, model.ErrInvalidInput
	}
	return v, nil
}
