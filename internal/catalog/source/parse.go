package source

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/darkkaiser/rarities-store/internal/catalog/product"
	applog "github.com/darkkaiser/rarities-store/pkg/log"
)

// Sheet 헤더 행과 데이터 행으로 분리된 스프레드시트 내용입니다.
type Sheet struct {
	Headers []string
	Rows    []product.RawRow
}

// Parse 첫 번째 행을 헤더로 하는 CSV를 읽어 Sheet로 변환합니다.
//
// 모든 셀이 비어 있는 행은 건너뛰고, 필드 수가 헤더와 다른 행이나 따옴표 오류가 있는 행은 경고를 남긴 뒤
// 읽을 수 있는 만큼만 반영합니다. 데이터 행이 하나도 없으면 ErrNoData를 반환합니다.
func Parse(r io.Reader) (*Sheet, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	headers, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoData
		}
		return nil, newErrCSVParseFailed(err)
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	sheet := &Sheet{Headers: headers}
	for line := 2; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"line":  line,
				"error": err,
			}).Warn("CSV 행 파싱 경고: 해당 행을 건너뜁니다")

			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				continue
			}
			break
		}

		if isBlank(record) {
			continue
		}
		if len(record) != len(headers) {
			applog.WithComponentAndFields(component, applog.Fields{
				"line":     line,
				"fields":   len(record),
				"expected": len(headers),
			}).Warn("CSV 행 파싱 경고: 필드 수가 헤더와 일치하지 않습니다")
		}

		row := make(product.RawRow, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			if i < len(record) {
				row[h] = record[i]
			} else {
				row[h] = ""
			}
		}
		sheet.Rows = append(sheet.Rows, row)
	}

	if len(sheet.Rows) == 0 {
		return nil, ErrNoData
	}

	return sheet, nil
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
