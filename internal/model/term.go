// internal/model/term.go
package model

// Term は用語集の1エントリを表します
type Term struct {
	ID           int      `json:"id"`
	Term         string   `json:"term"`       // 見出し語
	Definition   string   `json:"definition"` // 定義
	Category     *string  `json:"category"`   // 未設定の場合は null
	RelatedTerms []string `json:"related_terms"`
}

// Clone はスライスとポインタを含めて複製します。
// ストア内部の状態を呼び出し側と共有しないために使います。
func (t *Term) Clone() *Term {
	c := *t
	if t.Category != nil {
		category := *t.Category
		c.Category = &category
	}
	c.RelatedTerms = make([]string, len(t.RelatedTerms))
	copy(c.RelatedTerms, t.RelatedTerms)
	return &c
}

// 用語作成リクエストDTO
type CreateTermRequest struct {
	Term         string   `json:"term" validate:"required"`
	Definition   string   `json:"definition" validate:"required"`
	Category     *string  `json:"category,omitempty"`
	RelatedTerms []string `json:"related_terms,omitempty"`
}

// 用語更新（部分）リクエストDTO
// 各フィールドは Optional で、JSONに含まれていたかどうかを区別します。
type UpdateTermRequest struct {
	Term         Optional[string]   `json:"term"`
	Definition   Optional[string]   `json:"definition"`
	Category     Optional[string]   `json:"category"`
	RelatedTerms Optional[[]string] `json:"related_terms"`
}

// IsEmpty は更新対象のフィールドが1つも指定されていないかを返します
func (r *UpdateTermRequest) IsEmpty() bool {
	return !r.Term.Set && !r.Definition.Set && !r.Category.Set && !r.RelatedTerms.Set
}

// ListTermsQuery は一覧取得の条件です
type ListTermsQuery struct {
	Page    int
	PerPage int
	Search  string // 空文字の場合はフィルタしない
}

// TermListResponse は一覧取得のレスポンスDTO
type TermListResponse struct {
	Terms   []*Term `json:"terms"`
	Total   int     `json:"total"`
	Page    int     `json:"page"`
	PerPage int     `json:"per_page"`
}

// SearchTermsResponse は検索APIのレスポンスDTO
type SearchTermsResponse struct {
	Results []*Term `json:"results"`
	Query   string  `json:"query"`
	Count   int     `json:"count"`
}

// MessageResponse はメッセージのみを返すレスポンス
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse はヘルスチェックのレスポンス
type HealthResponse struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	TotalTerms *int   `json:"total_terms,omitempty"`
}

// APIInfoResponse はルートエンドポイントのレスポンス
type APIInfoResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}
