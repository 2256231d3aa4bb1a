// Package storage 브라우저 세션별 키/값 데이터를 저장합니다.
//
// 세션마다 고정된 키(KeyCart, KeyLang)로 장바구니와 언어 설정을 보관하며,
// 파일 시스템(file) 또는 SQLite(sqlite) 구현을 설정으로 선택합니다.
package storage

import (
	"context"
)

const component = "storage"

const (
	// KeyCart 장바구니 항목 목록 (cr_cart JSON 배열)
	KeyCart = "cr_cart"

	// KeyLang 언어 설정 ("en" | "ar")
	KeyLang = "cr_lang"
)

// Driver 저장소 구현 종류입니다.
type Driver string

const (
	DriverFile   Driver = "file"
	DriverSQLite Driver = "sqlite"
)

// Store 세션 단위 키/값 저장소입니다.
type Store interface {
	// Get 저장된 값을 반환합니다. 값이 없으면 ErrNotFound를 반환합니다.
	Get(ctx context.Context, session, key string) ([]byte, error)

	// Put 값을 저장합니다. 반환되는 시점에는 저장이 완료되어 있습니다.
	Put(ctx context.Context, session, key string, value []byte) error

	// Delete 값을 삭제합니다. 값이 없어도 에러가 아닙니다.
	Delete(ctx context.Context, session, key string) error

	Close() error
}

// Options 저장소 생성 옵션입니다.
type Options struct {
	Driver Driver

	// Dir file 드라이버의 저장 디렉토리
	Dir string

	// DSN sqlite 드라이버의 데이터 소스 (예: "data/rarities.db", ":memory:")
	DSN string
}

// Open 옵션에 맞는 저장소를 생성합니다.
func Open(opts Options) (Store, error) {
	switch opts.Driver {
	case DriverFile, "":
		return NewFileStore(opts.Dir)
	case DriverSQLite:
		return NewSQLiteStore(opts.DSN)
	default:
		return nil, NewErrUnsupportedDriver(string(opts.Driver))
	}
}
