//go:generate mockery --name TermRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"go_glossary_api/internal/middleware"
	"go_glossary_api/internal/model"

	"github.com/google/uuid"
)

// TermRepository は用語データの永続化を担うインターフェースです
type TermRepository interface {
	Create(ctx context.Context, req *model.CreateTermRequest) (*model.Term, error)
	FindByID(ctx context.Context, id int) (*model.Term, error)
	List(ctx context.Context, q model.ListTermsQuery) (*model.TermListResponse, error)
	Update(ctx context.Context, id int, req *model.UpdateTermRequest) (*model.Term, error)
	Delete(ctx context.Context, id int) (bool, error)
	Search(ctx context.Context, query string) ([]*model.Term, error)
	Count(ctx context.Context) (int, error)
}

// OperationObserver はストア操作の結果を受け取ります (メトリクス用)
type OperationObserver interface {
	ObserveStoreOperation(operation string, err error, elapsed time.Duration)
}

type noopObserver struct{}

func (noopObserver) ObserveStoreOperation(string, error, time.Duration) {}

// Option は TermStore の生成オプションです
type Option func(*TermStore)

// WithObserver は操作結果の通知先を設定します
func WithObserver(o OperationObserver) Option {
	return func(s *TermStore) {
		if o != nil {
			s.observer = o
		}
	}
}

// TermStore はJSONファイル1つに用語の全コレクションを保存するストアです。
// ファイルを読み書きするのはこのストアだけで、メモリ上のコピーと常に一致させます。
//
// 更新系は書き込みロックを保持したまま「コピーを変更 → ファイルへ保存 → メモリへ反映」を行います。
// 保存に失敗した場合はメモリ上の状態を変更しません。
type TermStore struct {
	path     string
	logger   *slog.Logger
	observer OperationObserver

	mu    sync.RWMutex
	terms []*model.Term // 保存順 (作成順)
}

var _ TermRepository = (*TermStore)(nil)

// NewTermStore はデータファイルを読み込んでストアを初期化します。
// ファイルが存在しない場合は空のコレクションで作成し、すぐに保存します。
// ファイルの内容が壊れている場合はエラーを返し、ストアは起動できません。
func NewTermStore(path string, logger *slog.Logger, opts ...Option) (*TermStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &TermStore{
		path:     path,
		logger:   logger,
		observer: noopObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("TermStore.New: create data directory: %w: %v", model.ErrStorage, err)
	}

	terms, err := loadTerms(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Info("Data file not found, creating empty collection", slog.String("path", path))
		if err := writeTerms(path, nil); err != nil {
			return nil, fmt.Errorf("TermStore.New: %w", err)
		}
		s.terms = []*model.Term{}
	case err != nil:
		return nil, fmt.Errorf("TermStore.New: %w", err)
	default:
		s.terms = terms
	}

	logger.Info("Term store loaded", slog.String("path", path), slog.Int("count", len(s.terms)))
	return s, nil
}

// Path はデータファイルのパスを返します
func (s *TermStore) Path() string {
	return s.path
}

func (s *TermStore) Create(ctx context.Context, req *model.CreateTermRequest) (term *model.Term, err error) {
	defer s.observe("create", time.Now(), &err)
	logger := s.loggerFrom(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	related := make([]string, len(req.RelatedTerms))
	copy(related, req.RelatedTerms)
	created := &model.Term{
		ID:           s.nextID(),
		Term:         req.Term,
		Definition:   req.Definition,
		RelatedTerms: related,
	}
	if req.Category != nil {
		category := *req.Category
		created.Category = &category
	}

	next := make([]*model.Term, len(s.terms), len(s.terms)+1)
	copy(next, s.terms)
	next = append(next, created)

	if err := s.commit(next); err != nil {
		logger.Error("Error persisting created term",
			slog.Any("error", err),
			slog.String("term", req.Term),
		)
		return nil, fmt.Errorf("TermStore.Create: %w", err)
	}
	return created.Clone(), nil
}

func (s *TermStore) FindByID(ctx context.Context, id int) (term *model.Term, err error) {
	defer s.observe("get", time.Now(), &err)

	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.terms[i].Clone(), nil
	}
	return nil, model.ErrNotFound
}

// List は検索語 (term と definition のみが対象) で絞り込み、ID降順でページ分割して返します。
// 範囲外のページは空配列になり、Total は絞り込み後の件数のままです。
func (s *TermStore) List(ctx context.Context, q model.ListTermsQuery) (page *model.TermListResponse, err error) {
	defer s.observe("list", time.Now(), &err)

	s.mu.RLock()
	filtered := make([]*model.Term, 0, len(s.terms))
	needle := strings.ToLower(q.Search)
	for _, t := range s.terms {
		if needle != "" &&
			!strings.Contains(strings.ToLower(t.Term), needle) &&
			!strings.Contains(strings.ToLower(t.Definition), needle) {
			continue
		}
		filtered = append(filtered, t.Clone())
	}
	s.mu.RUnlock()

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].ID > filtered[j].ID
	})

	total := len(filtered)
	start, end := pageBounds(q.Page, q.PerPage, total)

	return &model.TermListResponse{
		Terms:   filtered[start:end],
		Total:   total,
		Page:    q.Page,
		PerPage: q.PerPage,
	}, nil
}

// Update は指定されたフィールドだけを書き換えます。
// 何も指定されていない場合も保存し、現在の値を返します。
func (s *TermStore) Update(ctx context.Context, id int, req *model.UpdateTermRequest) (term *model.Term, err error) {
	defer s.observe("update", time.Now(), &err)
	logger := s.loggerFrom(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, model.ErrNotFound
	}

	updated := s.terms[i].Clone()
	applyUpdate(updated, req)

	next := make([]*model.Term, len(s.terms))
	copy(next, s.terms)
	next[i] = updated

	if err := s.commit(next); err != nil {
		logger.Error("Error persisting updated term",
			slog.Any("error", err),
			slog.Int("term_id", id),
		)
		return nil, fmt.Errorf("TermStore.Update: %w", err)
	}
	return updated.Clone(), nil
}

// Delete は最初に一致したレコードを削除します。該当がなければ false を返し、保存もしません。
func (s *TermStore) Delete(ctx context.Context, id int) (deleted bool, err error) {
	defer s.observe("delete", time.Now(), &err)
	logger := s.loggerFrom(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}

	next := make([]*model.Term, 0, len(s.terms)-1)
	next = append(next, s.terms[:i]...)
	next = append(next, s.terms[i+1:]...)

	if err := s.commit(next); err != nil {
		logger.Error("Error persisting term deletion",
			slog.Any("error", err),
			slog.Int("term_id", id),
		)
		return false, fmt.Errorf("TermStore.Delete: %w", err)
	}
	return true, nil
}

// Search は term / definition / category のいずれかに部分一致するレコードを保存順で返します。
func (s *TermStore) Search(ctx context.Context, query string) (results []*model.Term, err error) {
	defer s.observe("search", time.Now(), &err)

	needle := strings.ToLower(query)

	s.mu.RLock()
	defer s.mu.RUnlock()

	results = make([]*model.Term, 0)
	for _, t := range s.terms {
		if strings.Contains(strings.ToLower(t.Term), needle) ||
			strings.Contains(strings.ToLower(t.Definition), needle) ||
			(t.Category != nil && strings.Contains(strings.ToLower(*t.Category), needle)) {
			results = append(results, t.Clone())
		}
	}
	return results, nil
}

func (s *TermStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.terms), nil
}

// nextID は現在の最大ID + 1 を返します。呼び出し側でロックを保持していること。
func (s *TermStore) nextID() int {
	maxID := 0
	for _, t := range s.terms {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID + 1
}

// indexOf は呼び出し側でロックを保持していること。
func (s *TermStore) indexOf(id int) int {
	for i, t := range s.terms {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// commit は next をファイルへ保存し、成功した場合のみメモリへ反映します。
func (s *TermStore) commit(next []*model.Term) error {
	if err := writeTerms(s.path, next); err != nil {
		return err
	}
	s.terms = next
	return nil
}

// loggerFrom はリクエストスコープのロガーを優先し、無ければストアのロガーを返します
func (s *TermStore) loggerFrom(ctx context.Context) *slog.Logger {
	if l, ok := middleware.LoggerFromContext(ctx); ok {
		return l
	}
	return s.logger
}

func (s *TermStore) observe(operation string, start time.Time, err *error) {
	s.observer.ObserveStoreOperation(operation, *err, time.Since(start))
}

func applyUpdate(t *model.Term, req *model.UpdateTermRequest) {
	if req.Term.Set {
		t.Term = req.Term.Value
	}
	if req.Definition.Set {
		t.Definition = req.Definition.Value
	}
	if req.Category.Set {
		if req.Category.Null {
			t.Category = nil
		} else {
			category := req.Category.Value
			t.Category = &category
		}
	}
	if req.RelatedTerms.Set {
		related := make([]string, len(req.RelatedTerms.Value))
		copy(related, req.RelatedTerms.Value)
		t.RelatedTerms = related
	}
}

// pageBounds は [start, end) を total の範囲に収めて返します
func pageBounds(page, perPage, total int) (int, int) {
	if page < 1 || perPage < 1 {
		return 0, 0
	}
	// 乗算前に判定し、巨大な page でもオーバーフローさせない
	if page-1 > total/perPage {
		return total, total
	}
	start := (page - 1) * perPage
	if start > total {
		return total, total
	}
	if perPage >= total-start {
		return start, total
	}
	return start, start + perPage
}

func loadTerms(path string) ([]*model.Term, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, fmt.Errorf("read %s: %w: %v", path, model.ErrStorage, err)
	}

	var terms []*model.Term
	if err := json.Unmarshal(data, &terms); err != nil {
		return nil, fmt.Errorf("parse %s: %w: %v", path, model.ErrStorage, err)
	}

	seen := make(map[int]struct{}, len(terms))
	for i, t := range terms {
		if t == nil || t.ID <= 0 {
			return nil, fmt.Errorf("parse %s: record %d has no valid id: %w", path, i, model.ErrStorage)
		}
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("parse %s: duplicate id %d: %w", path, t.ID, model.ErrStorage)
		}
		seen[t.ID] = struct{}{}
		if t.RelatedTerms == nil {
			t.RelatedTerms = []string{}
		}
	}
	if terms == nil {
		terms = []*model.Term{}
	}
	return terms, nil
}

// writeTerms は一時ファイルに書き出してから rename し、ファイル全体を置き換えます。
func writeTerms(path string, terms []*model.Term) error {
	if terms == nil {
		terms = []*model.Term{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(terms); err != nil {
		return fmt.Errorf("encode terms: %w: %v", model.ErrStorage, err)
	}

	dir, base := filepath.Split(path)
	tmpPath := filepath.Join(dir, "."+base+"."+uuid.NewString()+".tmp")

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create temp file: %w: %v", model.ErrStorage, err)
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w: %v", model.ErrStorage, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("sync temp file: %w: %v", model.ErrStorage, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w: %v", model.ErrStorage, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace %s: %w: %v", path, model.ErrStorage, err)
	}
	return nil
}
