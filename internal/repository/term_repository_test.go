package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"
	"time"

	"go_glossary_api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// --- テストヘルパー関数 ---

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T) *TermStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "terms.json")
	store, err := NewTermStore(path, testLogger())
	require.NoError(t, err)
	return store
}

func strPtr(s string) *string { return &s }

func readFileTerms(t *testing.T, path string) []*model.Term {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var terms []*model.Term
	require.NoError(t, json.Unmarshal(data, &terms))
	return terms
}

func mustCreate(t *testing.T, s *TermStore, term, definition string) *model.Term {
	t.Helper()
	created, err := s.Create(context.Background(), &model.CreateTermRequest{Term: term, Definition: definition})
	require.NoError(t, err)
	return created
}

type recordingObserver struct {
	mu  sync.Mutex
	ops []string
}

func (r *recordingObserver) ObserveStoreOperation(op string, err error, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.ops = append(r.ops, op+":"+status)
}

// --- 初期化 ---

func TestNewTermStore_CreatesFileWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "terms.json")

	store, err := NewTermStore(path, testLogger())
	require.NoError(t, err)

	assert.FileExists(t, path)
	assert.Equal(t, path, store.Path())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))

	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestNewTermStore_LoadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terms.json")
	content := `[
  {"id": 3, "term": "CORS", "definition": "Cross-Origin Resource Sharing", "category": "web", "related_terms": ["HTTP"]},
  {"id": 1, "term": "API", "definition": "Application Programming Interface", "category": null, "related_terms": null}
]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	store, err := NewTermStore(path, testLogger())
	require.NoError(t, err)

	api, err := store.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, api.Category)
	assert.NotNil(t, api.RelatedTerms, "null related_terms is normalised to an empty slice")
	assert.Empty(t, api.RelatedTerms)

	// 次のIDは最大ID + 1
	created := mustCreate(t, store, "REST", "Representational State Transfer")
	assert.Equal(t, 4, created.ID)
}

func TestNewTermStore_CorruptFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "不正なJSON", content: `[{"id": 1, "term": `},
		{name: "配列ではない", content: `{"id": 1}`},
		{name: "IDなし", content: `[{"term": "API", "definition": "x"}]`},
		{name: "ID重複", content: `[{"id": 1, "term": "A", "definition": "x"}, {"id": 1, "term": "B", "definition": "y"}]`},
		{name: "nullレコード", content: `[null]`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "terms.json")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o644))

			store, err := NewTermStore(path, testLogger())
			assert.Nil(t, store)
			require.Error(t, err)
			assert.True(t, errors.Is(err, model.ErrStorage), "got %v", err)
			assert.False(t, errors.Is(err, model.ErrNotFound))
		})
	}
}

func TestNewTermStore_UnreadablePath(t *testing.T) {
	// データファイルのパスがディレクトリになっている
	path := filepath.Join(t.TempDir(), "terms.json")
	require.NoError(t, os.Mkdir(path, 0o755))

	_, err := NewTermStore(path, testLogger())
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrStorage)
}

// --- Create / FindByID ---

func TestTermStore_CreateAssignsIncreasingIDs(t *testing.T) {
	store := newTestStore(t)

	var last int
	for i := 0; i < 5; i++ {
		created := mustCreate(t, store, fmt.Sprintf("term-%d", i), "def")
		assert.Equal(t, last+1, created.ID)
		last = created.ID
	}
}

func TestTermStore_CreateGetRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, &model.CreateTermRequest{
		Term:         "API",
		Definition:   "Application Programming Interface",
		Category:     strPtr("web"),
		RelatedTerms: []string{"REST", "HTTP"},
	})
	require.NoError(t, err)

	got, err := store.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	// ファイルにも反映されている
	onDisk := readFileTerms(t, store.Path())
	require.Len(t, onDisk, 1)
	assert.Equal(t, created, onDisk[0])
}

func TestTermStore_CreateDefaultsRelatedTerms(t *testing.T) {
	store := newTestStore(t)

	created := mustCreate(t, store, "API", "def")
	assert.NotNil(t, created.RelatedTerms)
	assert.Empty(t, created.RelatedTerms)
	assert.Nil(t, created.Category)

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"term":"API","definition":"def","category":null,"related_terms":[]}]`, string(data))
}

func TestTermStore_FileKeepsNonASCII(t *testing.T) {
	store := newTestStore(t)
	mustCreate(t, store, "Термин", "<определение> & описание")

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "Термин")
	assert.Contains(t, string(data), "<определение> & описание")
}

func TestTermStore_IDsNotReusedAfterDeletingOlderRecord(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	mustCreate(t, store, "A", "a")
	mustCreate(t, store, "B", "b")
	ok, err := store.Delete(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)

	created := mustCreate(t, store, "C", "c")
	assert.Equal(t, 3, created.ID)
}

func TestTermStore_FindByIDNotFound(t *testing.T) {
	store := newTestStore(t)

	got, err := store.FindByID(context.Background(), 42)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestTermStore_ReturnedTermsDoNotAliasState(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, &model.CreateTermRequest{Term: "API", Definition: "def", RelatedTerms: []string{"REST"}})
	require.NoError(t, err)
	created.Term = "mutated"
	created.RelatedTerms[0] = "mutated"

	got, err := store.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "API", got.Term)
	assert.Equal(t, []string{"REST"}, got.RelatedTerms)
}

func TestTermStore_ReloadAfterRestart(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	mustCreate(t, store, "API", "Application Programming Interface")
	mustCreate(t, store, "CORS", "Cross-Origin Resource Sharing")

	reopened, err := NewTermStore(store.Path(), testLogger())
	require.NoError(t, err)

	count, err := reopened.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	created := mustCreate(t, reopened, "REST", "def")
	assert.Equal(t, 3, created.ID)
}

// --- List ---

func TestTermStore_List(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	mustCreate(t, store, "API", "Application Programming Interface")
	mustCreate(t, store, "CORS", "Cross-Origin Resource Sharing")
	_, err := store.Create(ctx, &model.CreateTermRequest{Term: "REST", Definition: "Representational State Transfer", Category: strPtr("interface")})
	require.NoError(t, err)

	tests := []struct {
		name      string
		query     model.ListTermsQuery
		wantIDs   []int
		wantTotal int
	}{
		{
			name:      "全件をID降順",
			query:     model.ListTermsQuery{Page: 1, PerPage: 10},
			wantIDs:   []int{3, 2, 1},
			wantTotal: 3,
		},
		{
			name:      "2ページ目",
			query:     model.ListTermsQuery{Page: 2, PerPage: 2},
			wantIDs:   []int{1},
			wantTotal: 3,
		},
		{
			name:      "範囲外のページは空",
			query:     model.ListTermsQuery{Page: 5, PerPage: 2},
			wantIDs:   []int{},
			wantTotal: 3,
		},
		{
			name:      "int上限付近のページでも空",
			query:     model.ListTermsQuery{Page: 184467440737095517, PerPage: 100},
			wantIDs:   []int{},
			wantTotal: 3,
		},
		{
			name:      "page=MaxInt",
			query:     model.ListTermsQuery{Page: math.MaxInt, PerPage: 100},
			wantIDs:   []int{},
			wantTotal: 3,
		},
		{
			name:      "termで検索 (大文字小文字を区別しない)",
			query:     model.ListTermsQuery{Page: 1, PerPage: 10, Search: "cors"},
			wantIDs:   []int{2},
			wantTotal: 1,
		},
		{
			name:      "definitionで検索",
			query:     model.ListTermsQuery{Page: 1, PerPage: 10, Search: "PROGRAMMING"},
			wantIDs:   []int{1},
			wantTotal: 1,
		},
		{
			name:      "categoryは検索対象外",
			query:     model.ListTermsQuery{Page: 1, PerPage: 10, Search: "interface"},
			wantIDs:   []int{1},
			wantTotal: 1,
		},
		{
			name:      "一致なし",
			query:     model.ListTermsQuery{Page: 1, PerPage: 10, Search: "zzz"},
			wantIDs:   []int{},
			wantTotal: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			page, err := store.List(ctx, tc.query)
			require.NoError(t, err)

			ids := make([]int, 0, len(page.Terms))
			for _, term := range page.Terms {
				ids = append(ids, term.ID)
			}
			assert.Equal(t, tc.wantIDs, ids)
			assert.Equal(t, tc.wantTotal, page.Total)
			assert.Equal(t, tc.query.Page, page.Page)
			assert.Equal(t, tc.query.PerPage, page.PerPage)
			assert.NotNil(t, page.Terms)
		})
	}
}

func Test_pageBounds(t *testing.T) {
	tests := []struct {
		name                 string
		page, perPage, total int
		wantStart, wantEnd   int
	}{
		{name: "先頭ページ", page: 1, perPage: 10, total: 25, wantStart: 0, wantEnd: 10},
		{name: "最終ページは端数", page: 3, perPage: 10, total: 25, wantStart: 20, wantEnd: 25},
		{name: "start == total", page: 2, perPage: 5, total: 5, wantStart: 5, wantEnd: 5},
		{name: "perPage == total", page: 1, perPage: 7, total: 7, wantStart: 0, wantEnd: 7},
		{name: "total == 0", page: 1, perPage: 10, total: 0, wantStart: 0, wantEnd: 0},
		{name: "total == 0 で2ページ目", page: 2, perPage: 10, total: 0, wantStart: 0, wantEnd: 0},
		{name: "範囲外", page: 4, perPage: 10, total: 25, wantStart: 25, wantEnd: 25},
		{name: "巨大なpage", page: 184467440737095517, perPage: 100, total: 1, wantStart: 1, wantEnd: 1},
		{name: "page=MaxInt", page: math.MaxInt, perPage: 2, total: 3, wantStart: 3, wantEnd: 3},
		{name: "perPage=MaxInt", page: 1, perPage: math.MaxInt, total: 3, wantStart: 0, wantEnd: 3},
		{name: "page=0", page: 0, perPage: 10, total: 3, wantStart: 0, wantEnd: 0},
		{name: "perPage=0", page: 1, perPage: 0, total: 3, wantStart: 0, wantEnd: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			start, end := pageBounds(tc.page, tc.perPage, tc.total)
			assert.Equal(t, tc.wantStart, start)
			assert.Equal(t, tc.wantEnd, end)
		})
	}
}

func TestTermStore_ListPagesReconstructSortedSequence(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	for i := 0; i < 23; i++ {
		mustCreate(t, store, fmt.Sprintf("term-%02d", i), "def")
	}
	// 削除と更新を挟んでも順序と件数が崩れないこと
	_, err := store.Delete(ctx, 7)
	require.NoError(t, err)
	_, err = store.Update(ctx, 3, &model.UpdateTermRequest{Term: model.Some("renamed")})
	require.NoError(t, err)

	for _, perPage := range []int{1, 4, 10, 22, 100} {
		t.Run(fmt.Sprintf("per_page=%d", perPage), func(t *testing.T) {
			var ids []int
			for page := 1; ; page++ {
				res, err := store.List(ctx, model.ListTermsQuery{Page: page, PerPage: perPage})
				require.NoError(t, err)
				assert.Equal(t, 22, res.Total)
				if len(res.Terms) == 0 {
					break
				}
				for _, term := range res.Terms {
					ids = append(ids, term.ID)
				}
			}
			require.Len(t, ids, 22)
			assert.True(t, sort.SliceIsSorted(ids, func(i, j int) bool { return ids[i] > ids[j] }))
			assert.NotContains(t, ids, 7)
		})
	}
}

// --- Update ---

func TestTermStore_Update(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		req    model.UpdateTermRequest
		verify func(t *testing.T, before, after *model.Term)
	}{
		{
			name: "空の更新は何も変えない",
			req:  model.UpdateTermRequest{},
			verify: func(t *testing.T, before, after *model.Term) {
				assert.Equal(t, before, after)
			},
		},
		{
			name: "categoryのみ設定",
			req:  model.UpdateTermRequest{Category: model.Some("web")},
			verify: func(t *testing.T, before, after *model.Term) {
				require.NotNil(t, after.Category)
				assert.Equal(t, "web", *after.Category)
				assert.Equal(t, before.Term, after.Term)
				assert.Equal(t, before.Definition, after.Definition)
				assert.Equal(t, before.RelatedTerms, after.RelatedTerms)
			},
		},
		{
			name: "categoryをnullでクリア",
			req:  model.UpdateTermRequest{Category: model.Null[string]()},
			verify: func(t *testing.T, before, after *model.Term) {
				assert.Nil(t, after.Category)
				assert.Equal(t, before.Term, after.Term)
			},
		},
		{
			name: "related_termsをnullでクリア",
			req:  model.UpdateTermRequest{RelatedTerms: model.Null[[]string]()},
			verify: func(t *testing.T, before, after *model.Term) {
				assert.NotNil(t, after.RelatedTerms)
				assert.Empty(t, after.RelatedTerms)
				assert.Equal(t, before.Category, after.Category)
			},
		},
		{
			name: "termとdefinitionを更新",
			req: model.UpdateTermRequest{
				Term:       model.Some("Web API"),
				Definition: model.Some("An API over HTTP"),
			},
			verify: func(t *testing.T, before, after *model.Term) {
				assert.Equal(t, before.ID, after.ID)
				assert.Equal(t, "Web API", after.Term)
				assert.Equal(t, "An API over HTTP", after.Definition)
				assert.Equal(t, before.Category, after.Category)
				assert.Equal(t, before.RelatedTerms, after.RelatedTerms)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := newTestStore(t)
			before, err := store.Create(ctx, &model.CreateTermRequest{
				Term:         "API",
				Definition:   "Application Programming Interface",
				Category:     strPtr("software"),
				RelatedTerms: []string{"REST"},
			})
			require.NoError(t, err)

			after, err := store.Update(ctx, before.ID, &tc.req)
			require.NoError(t, err)
			tc.verify(t, before, after)

			got, err := store.FindByID(ctx, before.ID)
			require.NoError(t, err)
			assert.Equal(t, after, got)
			assert.Equal(t, []*model.Term{after}, readFileTerms(t, store.Path()))
		})
	}
}

func TestTermStore_UpdateNotFound(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	mustCreate(t, store, "API", "def")

	before, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	got, err := store.Update(ctx, 99, &model.UpdateTermRequest{Term: model.Some("x")})
	assert.Nil(t, got)
	assert.ErrorIs(t, err, model.ErrNotFound)

	after, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

// --- Delete ---

func TestTermStore_Delete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	mustCreate(t, store, "API", "def")
	mustCreate(t, store, "CORS", "def")

	ok, err := store.Delete(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = store.FindByID(ctx, 1)
	assert.ErrorIs(t, err, model.ErrNotFound)

	page, err := store.List(ctx, model.ListTermsQuery{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	assert.Len(t, readFileTerms(t, store.Path()), 1)
}

func TestTermStore_DeleteMissingIsNoop(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	mustCreate(t, store, "API", "def")

	ok, err := store.Delete(ctx, 99)
	require.NoError(t, err)
	assert.False(t, ok)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

// --- Search ---

func TestTermStore_Search(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	mustCreate(t, store, "API", "Application Programming Interface")
	mustCreate(t, store, "CORS", "Cross-Origin Resource Sharing")
	_, err := store.Create(ctx, &model.CreateTermRequest{Term: "JWT", Definition: "JSON Web Token", Category: strPtr("Security")})
	require.NoError(t, err)

	tests := []struct {
		name    string
		query   string
		wantIDs []int
	}{
		{name: "termに一致", query: "api", wantIDs: []int{1}},
		{name: "definitionに一致", query: "resource", wantIDs: []int{2}},
		{name: "categoryに一致", query: "SECURITY", wantIDs: []int{3}},
		{name: "複数一致は保存順", query: "o", wantIDs: []int{1, 2, 3}},
		{name: "一致なし", query: "graphql", wantIDs: []int{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			results, err := store.Search(ctx, tc.query)
			require.NoError(t, err)

			ids := make([]int, 0, len(results))
			for _, term := range results {
				ids = append(ids, term.ID)
			}
			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}

// --- ストレージ障害 ---

func TestTermStore_WriteFailureKeepsState(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "terms.json")
	store, err := NewTermStore(path, testLogger())
	require.NoError(t, err)
	mustCreate(t, store, "API", "def")

	// ディレクトリを書き込み不可にして一時ファイルの作成を失敗させる
	require.NoError(t, os.Chmod(dir, 0o555))
	t.Cleanup(func() { os.Chmod(dir, 0o755) })
	if f, err := os.CreateTemp(dir, "probe"); err == nil {
		f.Close()
		os.Remove(f.Name())
		t.Skip("directory permissions are not enforced (running as root?)")
	}

	ctx := context.Background()
	_, err = store.Create(ctx, &model.CreateTermRequest{Term: "CORS", Definition: "def"})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrStorage)

	_, err = store.Update(ctx, 1, &model.UpdateTermRequest{Term: model.Some("changed")})
	assert.ErrorIs(t, err, model.ErrStorage)

	_, err = store.Delete(ctx, 1)
	assert.ErrorIs(t, err, model.ErrStorage)

	// メモリ上の状態は変わらない
	got, err := store.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "API", got.Term)
	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

// --- 並行アクセス ---

func TestTermStore_ConcurrentCreatesGetUniqueIDs(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	const workers = 20
	const perWorker = 5
	var wg sync.WaitGroup
	idCh := make(chan int, workers*perWorker)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				created, err := store.Create(ctx, &model.CreateTermRequest{Term: fmt.Sprintf("t-%d-%d", w, i), Definition: "def"})
				if !assert.NoError(t, err) {
					return
				}
				idCh <- created.ID
				_, _ = store.List(ctx, model.ListTermsQuery{Page: 1, PerPage: 10})
			}
		}(w)
	}
	wg.Wait()
	close(idCh)

	seen := make(map[int]bool)
	for id := range idCh {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers*perWorker)
	assert.Len(t, readFileTerms(t, store.Path()), workers*perWorker)

	// 一時ファイルが残っていない
	entries, err := os.ReadDir(filepath.Dir(store.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestTermStore_ObserverReceivesOperations(t *testing.T) {
	obs := &recordingObserver{}
	path := filepath.Join(t.TempDir(), "terms.json")
	store, err := NewTermStore(path, testLogger(), WithObserver(obs))
	require.NoError(t, err)
	ctx := context.Background()

	mustCreate(t, store, "API", "def")
	_, _ = store.FindByID(ctx, 1)
	_, _ = store.FindByID(ctx, 2)
	_, _ = store.Search(ctx, "api")

	assert.Equal(t, []string{"create:ok", "get:ok", "get:error", "search:ok"}, obs.ops)
}

// --- シナリオ ---

// TermStoreScenarioSuite は作成から削除までの一連の流れを検証します
type TermStoreScenarioSuite struct {
	suite.Suite
	store *TermStore
	ctx   context.Context
}

func (s *TermStoreScenarioSuite) SetupTest() {
	s.ctx = context.Background()
	store, err := NewTermStore(filepath.Join(s.T().TempDir(), "terms.json"), testLogger())
	s.Require().NoError(err)
	s.store = store

	api, err := s.store.Create(s.ctx, &model.CreateTermRequest{Term: "API", Definition: "Application Programming Interface"})
	s.Require().NoError(err)
	s.Require().Equal(1, api.ID)
	cors, err := s.store.Create(s.ctx, &model.CreateTermRequest{Term: "CORS", Definition: "Cross-Origin Resource Sharing"})
	s.Require().NoError(err)
	s.Require().Equal(2, cors.ID)
}

func (s *TermStoreScenarioSuite) TestListNewestFirst() {
	page, err := s.store.List(s.ctx, model.ListTermsQuery{Page: 1, PerPage: 10})
	s.Require().NoError(err)
	s.Equal(2, page.Total)
	s.Require().Len(page.Terms, 2)
	s.Equal("CORS", page.Terms[0].Term)
	s.Equal("API", page.Terms[1].Term)
}

func (s *TermStoreScenarioSuite) TestUpdateCategory() {
	_, err := s.store.Update(s.ctx, 1, &model.UpdateTermRequest{Category: model.Some("web")})
	s.Require().NoError(err)

	got, err := s.store.FindByID(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal("API", got.Term)
	s.Equal("Application Programming Interface", got.Definition)
	s.Require().NotNil(got.Category)
	s.Equal("web", *got.Category)
}

func (s *TermStoreScenarioSuite) TestDeleteThenGet() {
	ok, err := s.store.Delete(s.ctx, 1)
	s.Require().NoError(err)
	s.True(ok)

	_, err = s.store.FindByID(s.ctx, 1)
	s.ErrorIs(err, model.ErrNotFound)

	page, err := s.store.List(s.ctx, model.ListTermsQuery{Page: 1, PerPage: 10})
	s.Require().NoError(err)
	s.Equal(1, page.Total)
}

func (s *TermStoreScenarioSuite) TestSearchAPI() {
	results, err := s.store.Search(s.ctx, "api")
	s.Require().NoError(err)
	s.Require().Len(results, 1)
	s.Equal("API", results[0].Term)
}

func TestTermStoreScenarioSuite(t *testing.T) {
	suite.Run(t, new(TermStoreScenarioSuite))
}
