// Package catalog 스프레드시트에서 읽은 상품 목록과 검색 인덱스를 하나의 스냅샷으로 묶어 관리합니다.
package catalog

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/darkkaiser/rarities-store/internal/catalog/product"
	"github.com/darkkaiser/rarities-store/internal/catalog/schema"
	"github.com/darkkaiser/rarities-store/internal/catalog/search"
	"github.com/darkkaiser/rarities-store/internal/catalog/source"
	"github.com/darkkaiser/rarities-store/internal/catalog/view"
	applog "github.com/darkkaiser/rarities-store/pkg/log"
)

const component = "catalog"

// Snapshot 한 번의 적재 결과입니다. 생성 이후에는 변경되지 않으므로 여러 고루틴에서 동시에 읽을 수 있습니다.
type Snapshot struct {
	Products   []product.Product
	Index      *search.Index
	Categories []string
	LoadedAt   time.Time

	bySeq map[int]int
}

// Product SequenceIndex로 상품을 찾습니다.
func (s *Snapshot) Product(index int) (product.Product, bool) {
	i, ok := s.bySeq[index]
	if !ok {
		return product.Product{}, false
	}
	return s.Products[i], true
}

// View 스냅샷의 인덱스를 사용하여 필터, 검색, 정렬을 적용합니다.
func (s *Snapshot) View(q view.Query) []product.Product {
	return view.View(s.Products, s.Index, q)
}

// Status 헬스 체크 등에 노출하는 적재 상태입니다.
type Status struct {
	Loaded    bool      `json:"loaded"`
	Products  int       `json:"products"`
	LoadedAt  time.Time `json:"loaded_at,omitzero"`
	LastError string    `json:"last_error,omitempty"`
}

// Service 현재 스냅샷을 보관하고 다시 적재합니다.
type Service struct {
	loader source.Loader

	current atomic.Pointer[Snapshot]

	errMu   sync.RWMutex
	lastErr error

	// 동시에 여러 번 Reload가 호출되어도 적재는 한 번에 하나씩 수행됩니다.
	reloadMu sync.Mutex
}

// NewService 새로운 Service를 생성합니다. 첫 적재는 Reload 호출 시 수행됩니다.
func NewService(loader source.Loader) *Service {
	return &Service{
		loader: loader,
	}
}

// Reload 원본을 다시 읽어 새 스냅샷을 만듭니다.
// 실패하면 기존 스냅샷을 유지하고 에러를 기록한 뒤 반환합니다.
func (s *Service) Reload(ctx context.Context) (*Snapshot, error) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	snap, err := s.build(ctx)

	s.errMu.Lock()
	s.lastErr = err
	s.errMu.Unlock()

	if err != nil {
		fields := applog.Fields{"error": err}
		if prev := s.current.Load(); prev != nil {
			fields["kept_products"] = len(prev.Products)
			fields["kept_loaded_at"] = prev.LoadedAt
		}
		applog.WithComponentAndFields(component, fields).Error("카탈로그 적재 실패: 기존 스냅샷을 유지합니다")

		return nil, err
	}

	s.current.Store(snap)

	applog.WithComponentAndFields(component, applog.Fields{
		"products":   len(snap.Products),
		"categories": len(snap.Categories),
	}).Info("카탈로그 적재 완료")

	return snap, nil
}

func (s *Service) build(ctx context.Context) (*Snapshot, error) {
	sheet, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	columns, err := schema.Resolve(sheet.Headers)
	if err != nil {
		return nil, err
	}

	products := product.NewNormalizer(columns).NormalizeAll(sheet.Rows)

	return NewSnapshot(products, time.Now()), nil
}

// NewSnapshot 정규화된 상품 목록으로 스냅샷을 만듭니다.
func NewSnapshot(products []product.Product, loadedAt time.Time) *Snapshot {
	snap := &Snapshot{
		Products:   products,
		Index:      search.NewIndex(products),
		Categories: Categories(products),
		LoadedAt:   loadedAt,
		bySeq:      make(map[int]int, len(products)),
	}
	for i, p := range products {
		snap.bySeq[p.SequenceIndex] = i
	}

	return snap
}

// Current 현재 스냅샷을 반환합니다. 한 번도 적재에 성공하지 못했다면 마지막 적재 에러를 담은 ErrNotLoaded를 반환합니다.
func (s *Service) Current() (*Snapshot, error) {
	if snap := s.current.Load(); snap != nil {
		return snap, nil
	}
	return nil, newErrNotLoaded(s.LastError())
}

// Product 현재 스냅샷에서 SequenceIndex로 상품을 찾습니다.
func (s *Service) Product(index int) (product.Product, error) {
	snap, err := s.Current()
	if err != nil {
		return product.Product{}, err
	}

	p, ok := snap.Product(index)
	if !ok {
		return product.Product{}, newErrProductNotFound(index)
	}
	return p, nil
}

// LastError 가장 최근 적재 시도의 에러를 반환합니다. 성공했다면 nil입니다.
func (s *Service) LastError() error {
	s.errMu.RLock()
	defer s.errMu.RUnlock()

	return s.lastErr
}

// Status 현재 적재 상태를 반환합니다.
func (s *Service) Status() Status {
	var st Status
	if snap := s.current.Load(); snap != nil {
		st.Loaded = true
		st.Products = len(snap.Products)
		st.LoadedAt = snap.LoadedAt
	}
	if err := s.LastError(); err != nil {
		st.LastError = err.Error()
	}
	return st
}

// Categories 비어 있지 않은 카테고리를 중복 없이 정렬하여 반환합니다.
func Categories(products []product.Product) []string {
	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	sort.Strings(categories)

	return categories
}
