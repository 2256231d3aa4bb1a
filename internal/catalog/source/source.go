// Package source 게시된 Google 스프레드시트 CSV를 내려받아 헤더와 행으로 분리합니다.
package source

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/darkkaiser/rarities-store/internal/fetcher"
	apperrors "github.com/darkkaiser/rarities-store/internal/pkg/errors"
	applog "github.com/darkkaiser/rarities-store/pkg/log"
)

const component = "catalog.source"

// Loader 카탈로그 원본 데이터를 읽어오는 인터페이스입니다.
type Loader interface {
	Load(ctx context.Context) (*Sheet, error)
}

// SheetLoader 게시된 CSV URL에서 Sheet를 읽어오는 Loader 구현체입니다.
type SheetLoader struct {
	fetcher fetcher.Fetcher
	url     string
}

var _ Loader = (*SheetLoader)(nil)

// NewSheetLoader 새로운 SheetLoader를 생성합니다.
func NewSheetLoader(f fetcher.Fetcher, url string) *SheetLoader {
	return &SheetLoader{
		fetcher: f,
		url:     url,
	}
}

// Load CSV를 내려받아 파싱합니다.
// 비공개 시트처럼 HTML 페이지가 응답되면 페이지 제목을 담은 ErrNotPublished를 반환합니다.
func (l *SheetLoader) Load(ctx context.Context) (*Sheet, error) {
	resp, err := fetcher.Get(ctx, l.fetcher, l.url)
	if err != nil {
		errType := apperrors.UnderlyingType(err)
		if errType == apperrors.Unknown {
			errType = apperrors.Unavailable
		}
		return nil, apperrors.Wrap(err, errType, "스프레드시트를 내려받지 못했습니다")
	}

	html := fetcher.IsHTML(resp)

	body, err := fetcher.ReadBody(resp)
	if err != nil {
		return nil, err
	}

	if html || looksLikeHTML(body) {
		title := pageTitle(body)

		applog.WithComponentAndFields(component, applog.Fields{
			"title": title,
		}).Warn("스프레드시트 적재 실패: CSV 대신 HTML 페이지가 응답되었습니다")

		return nil, newErrNotPublished(title)
	}

	sheet, err := Parse(strings.NewReader(body))
	if err != nil {
		return nil, err
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"headers": len(sheet.Headers),
		"rows":    len(sheet.Rows),
	}).Debug("스프레드시트 적재 완료")

	return sheet, nil
}

func looksLikeHTML(body string) bool {
	head := strings.ToLower(strings.TrimSpace(body))
	return strings.HasPrefix(head, "<!doctype html") || strings.HasPrefix(head, "<html")
}

func pageTitle(body string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}
