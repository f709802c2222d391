// internal/service/term_service.go
//go:generate mockery --name TermService --output ./mocks --outpkg mocks --case=underscore --structname MockTermService
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go_glossary_api/internal/middleware"
	"go_glossary_api/internal/model"
	"go_glossary_api/internal/repository"
)

// 一覧取得のページサイズ (MaxPerPage は既定の上限)
const (
	MinPerPage = 1
	MaxPerPage = 100
)

type TermService interface {
	CreateTerm(ctx context.Context, req *model.CreateTermRequest) (*model.Term, error)
	GetTerm(ctx context.Context, id int) (*model.Term, error)
	ListTerms(ctx context.Context, q model.ListTermsQuery) (*model.TermListResponse, error)
	UpdateTerm(ctx context.Context, id int, req *model.UpdateTermRequest) (*model.Term, error)
	DeleteTerm(ctx context.Context, id int) error
	SearchTerms(ctx context.Context, query string) ([]*model.Term, error)
}

type termService struct {
	repo       repository.TermRepository
	maxPerPage int
}

type Option func(*termService)

// WithMaxPerPage は per_page の上限を変更します。0以下は無視します。
func WithMaxPerPage(n int) Option {
	return func(s *termService) {
		if n >= MinPerPage {
			s.maxPerPage = n
		}
	}
}

func NewTermService(repo repository.TermRepository, opts ...Option) TermService {
	s := &termService{repo: repo, maxPerPage: MaxPerPage}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *termService) CreateTerm(ctx context.Context, req *model.CreateTermRequest) (*model.Term, error) {
	if req == nil {
		return nil, model.ErrInvalidInput
	}
	if isBlank(req.Term) {
		return nil, requiredFieldError("term", "用語")
	}
	if isBlank(req.Definition) {
		return nil, requiredFieldError("definition", "定義")
	}
	if req.RelatedTerms == nil {
		req.RelatedTerms = []string{}
	}

	term, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("termService.CreateTerm: %w", err)
	}
	middleware.GetLogger(ctx).Info("Term created", slog.Int("term_id", term.ID))
	return term, nil
}

func (s *termService) GetTerm(ctx context.Context, id int) (*model.Term, error) {
	// ErrNotFound はリポジトリから返ったまま呼び出し側へ渡す
	return s.repo.FindByID(ctx, id)
}

func (s *termService) ListTerms(ctx context.Context, q model.ListTermsQuery) (*model.TermListResponse, error) {
	if q.Page < 1 {
		return nil, model.NewAppError("INVALID_QUERY_PARAM", "pageは1以上で指定してください。", "page", model.ErrInvalidInput)
	}
	if q.PerPage < MinPerPage || q.PerPage > s.maxPerPage {
		msg := fmt.Sprintf("per_pageは%d以上%d以下で指定してください。", MinPerPage, s.maxPerPage)
		return nil, model.NewAppError("INVALID_QUERY_PARAM", msg, "per_page", model.ErrInvalidInput)
	}
	page, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("termService.ListTerms: %w", err)
	}
	return page, nil
}

func (s *termService) UpdateTerm(ctx context.Context, id int, req *model.UpdateTermRequest) (*model.Term, error) {
	if req == nil {
		req = &model.UpdateTermRequest{}
	}
	// term と definition は指定された場合、空にはできない
	if req.Term.Set && (req.Term.Null || isBlank(req.Term.Value)) {
		return nil, requiredFieldError("term", "用語")
	}
	if req.Definition.Set && (req.Definition.Null || isBlank(req.Definition.Value)) {
		return nil, requiredFieldError("definition", "定義")
	}

	term, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("termService.UpdateTerm: %w", err)
	}
	middleware.GetLogger(ctx).Info("Term updated", slog.Int("term_id", id))
	return term, nil
}

func (s *termService) DeleteTerm(ctx context.Context, id int) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("termService.DeleteTerm: %w", err)
	}
	if !deleted {
		return model.ErrNotFound
	}
	middleware.GetLogger(ctx).Info("Term deleted", slog.Int("term_id", id))
	return nil
}

func (s *termService) SearchTerms(ctx context.Context, query string) ([]*model.Term, error) {
	results, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("termService.SearchTerms: %w", err)
	}
	return results, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func requiredFieldError(field, label string) error {
	return model.NewAppError("VALIDATION_ERROR", label+"は必須項目です。", field, model.ErrInvalidInput)
}
