package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/darkkaiser/rarities-store/internal/render"
	"github.com/darkkaiser/rarities-store/internal/service/api/middleware"
	"github.com/darkkaiser/rarities-store/internal/service/api/v1/model/response"
	applog "github.com/darkkaiser/rarities-store/pkg/log"
	"github.com/labstack/echo/v4"
)

// SSE 이벤트 이름
const (
	eventMeta = "meta"
	eventCard = "card"
	eventDone = "done"
)

// streamRegistry 세션별로 진행 중인 카탈로그 스트림을 추적합니다.
// 같은 세션에서 새 스트림이 시작되면 이전 스트림은 취소됩니다.
type streamRegistry struct {
	mu     sync.Mutex
	active map[string]*streamEntry
}

type streamEntry struct {
	cancel context.CancelFunc
}

func newStreamRegistry() *streamRegistry {
	return &streamRegistry{active: make(map[string]*streamEntry)}
}

// acquire 세션의 이전 스트림을 취소하고 새 스트림을 등록합니다.
// 반환된 release는 스트림 종료 시 호출해야 하며, 그 사이 다른 스트림이 등록되었다면 아무것도 하지 않습니다.
func (r *streamRegistry) acquire(session string, cancel context.CancelFunc) (release func()) {
	entry := &streamEntry{cancel: cancel}

	r.mu.Lock()
	if prev, ok := r.active[session]; ok {
		prev.cancel()
	}
	r.active[session] = entry
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		if r.active[session] == entry {
			delete(r.active, session)
		}
		r.mu.Unlock()
	}
}

// StreamCatalogHandler godoc
// @Summary 상품 카드 스트림 (Server-Sent Events)
// @Description 카탈로그 조회와 같은 조건의 상품 카드를 묶음 단위로 시간차를 두고 전송합니다.
// @Description 이미지 제공자의 요청 제한을 피하기 위해 묶음(기본 10개) 안의 카드 사이에 간격(기본 150ms)을 둡니다.
// @Description
// @Description 이벤트 순서: meta 1회, card N회, done 1회.
// @Description 같은 세션에서 새 스트림을 열면 이전 스트림은 더 이상 카드를 받지 못하고 종료됩니다.
// @Tags Catalog
// @Produce text/event-stream
// @Param category query string false "카테고리"
// @Param q query string false "검색어"
// @Param sort query string false "정렬 기준"
// @Param lang query string false "표시 언어" Enums(en, ar)
// @Success 200 {object} response.StreamCard "card 이벤트 데이터"
// @Failure 503 {object} response.ErrorResponse "카탈로그 미적재"
// @Router /api/v1/catalog/stream [get]
func (h *Handler) StreamCatalogHandler(c echo.Context) error {
	snap, err := h.catalog.Current()
	if err != nil {
		return err
	}

	lang := h.resolveLang(c)
	cards := newCards(snap.View(catalogQuery(c)), lang)

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	release := h.streams.acquire(middleware.SessionID(c), cancel)
	defer release()

	// emit은 큐의 락 안에서 호출되므로 막히지 않도록 전체 카드 수만큼 버퍼를 둡니다.
	events := make(chan response.StreamCard, len(cards))
	var q *render.Queue[response.Card]
	q = render.NewQueue(
		func(pass uint64, index int, card response.Card) {
			events <- response.StreamCard{Pass: pass, Position: index, Card: card}
		},
		render.WithBatchSize(h.cfg.RenderBatchSize),
		render.WithStagger(h.cfg.RenderStagger),
		render.WithOnBatchDone(func(pass uint64, _, _ int) {
			q.RevealPass(pass)
		}),
	)
	defer q.Cancel()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.Header().Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)

	// 스트림은 카드 수에 비례해 길어지므로 서버의 쓰기 타임아웃을 해제합니다.
	_ = http.NewResponseController(res).SetWriteDeadline(time.Time{})

	pass := q.Start(cards)

	if err := writeEvent(res, eventMeta, response.StreamMeta{Pass: pass, Total: len(cards), Lang: string(lang), Dir: lang.Dir()}); err != nil {
		return nil
	}

	rendered := 0
	for rendered < len(cards) {
		select {
		case <-ctx.Done():
			h.log(c).WithFields(applog.Fields{
				"pass":     pass,
				"rendered": rendered,
				"total":    len(cards),
			}).Debug("카탈로그 스트림 중단: 연결 종료 또는 새 스트림 시작")
			return nil

		case ev := <-events:
			if err := writeEvent(res, eventCard, ev); err != nil {
				return nil
			}
			rendered++
		}
	}

	_ = writeEvent(res, eventDone, response.StreamDone{Pass: pass, Rendered: rendered})
	return nil
}

// writeEvent SSE 이벤트 하나를 쓰고 즉시 전송합니다.
func writeEvent(res *echo.Response, name string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(res, "event: %s\ndata: %s\n\n", name, payload); err != nil {
		return err
	}
	res.Flush()

	return nil
}
