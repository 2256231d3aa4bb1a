package storage

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	applog "github.com/darkkaiser/rarities-store/pkg/log"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS session_values(
  session_id TEXT NOT NULL,
  key        TEXT NOT NULL,
  value      BLOB NOT NULL,
  updated_at TEXT NOT NULL,
  PRIMARY KEY(session_id, key)
);
CREATE INDEX IF NOT EXISTS idx_session_values_updated_at ON session_values(updated_at);
`

// sqliteStore 세션 값을 SQLite 테이블 한 행씩 저장하는 Store 구현체입니다.
type sqliteStore struct {
	db *sqlx.DB
}

var _ Store = (*sqliteStore)(nil)

// NewSQLiteStore SQLite 저장소를 생성하고 스키마를 준비합니다.
// dsn이 비어 있으면 "data/rarities-store.db"를 사용합니다.
func NewSQLiteStore(dsn string) (Store, error) {
	if dsn == "" {
		dsn = defaultDataDirectory + "/rarities-store.db"
	}

	if !strings.HasPrefix(dsn, ":memory:") && !strings.HasPrefix(dsn, "file:") {
		if err := os.MkdirAll(filepath.Dir(dsn), 0755); err != nil {
			return nil, NewErrDirectoryAccessFailed(err, filepath.Dir(dsn))
		}
	}

	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, NewErrDatabaseOpenFailed(err, dsn)
	}

	// SQLite는 쓰기를 하나씩만 처리하며, ":memory:"는 연결마다 별도의 DB가 생긴다.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, NewErrDatabaseOpenFailed(err, dsn)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, NewErrDatabaseOpenFailed(err, dsn)
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"dsn": dsn,
	}).Debug("SQLite 저장소 준비 완료")

	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Get(ctx context.Context, session, key string) ([]byte, error) {
	if session == "" || key == "" {
		return nil, ErrInvalidKey
	}

	var value []byte
	err := s.db.GetContext(ctx, &value, `SELECT value FROM session_values WHERE session_id = ? AND key = ?`, session, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, NewErrReadFailed(err)
	}

	return value, nil
}

func (s *sqliteStore) Put(ctx context.Context, session, key string, value []byte) error {
	if session == "" || key == "" {
		return ErrInvalidKey
	}
	if value == nil {
		value = []byte{}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO session_values(session_id, key, value, updated_at)
		VALUES(?, ?, ?, ?)
		ON CONFLICT(session_id, key) DO UPDATE
		SET value = excluded.value, updated_at = excluded.updated_at
	`, session, key, value, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return NewErrWriteFailed(err, "데이터베이스 쓰기")
	}

	return nil
}

func (s *sqliteStore) Delete(ctx context.Context, session, key string) error {
	if session == "" || key == "" {
		return ErrInvalidKey
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM session_values WHERE session_id = ? AND key = ?`, session, key); err != nil {
		return NewErrWriteFailed(err, "데이터베이스 삭제")
	}
	return nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
