package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/darkkaiser/rarities-store/pkg/concurrency"
	applog "github.com/darkkaiser/rarities-store/pkg/log"
)

const (
	// defaultDataDirectory file 드라이버의 기본 저장 디렉토리
	defaultDataDirectory = "data"

	// tempFilePattern 원자적 쓰기에 사용하는 임시 파일 이름 패턴
	tempFilePattern = "session-value-*.tmp"

	// staleTempFileAge 이 시간보다 오래된 임시 파일은 이전 실행의 잔존물로 보고 삭제합니다.
	staleTempFileAge = time.Hour
)

// fileStore 세션 값을 파일 하나씩 저장하는 Store 구현체입니다.
//
// [파일 구조]
//   - session-{세션}-{키}-{hash}.dat: 저장된 값
//   - session-value-*.tmp: 저장 중 생성되는 임시 파일
type fileStore struct {
	baseDir string

	// locks 같은 파일에 대한 동시 읽기/쓰기를 막는 파일별 뮤텍스
	locks *concurrency.KeyedMutex[string]
}

var _ Store = (*fileStore)(nil)

// NewFileStore 파일 시스템 기반 저장소를 생성합니다.
// dir이 비어 있으면 "data"를 사용하며, 이전 실행에서 남은 임시 파일을 정리합니다.
func NewFileStore(dir string) (Store, error) {
	if dir == "" {
		dir = defaultDataDirectory
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, NewErrDirectoryAccessFailed(err, dir)
	}
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return nil, NewErrDirectoryAccessFailed(err, absDir)
	}

	s := &fileStore{
		baseDir: absDir,
		locks:   concurrency.NewKeyedMutex[string](),
	}
	s.cleanupStaleTempFiles()

	return s, nil
}

func (s *fileStore) cleanupStaleTempFiles() {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"dir":   s.baseDir,
			"error": err,
		}).Warn("임시 파일 정리 중단: 디렉토리 조회 실패")
		return
	}

	threshold := time.Now().Add(-staleTempFileAge)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if matched, _ := filepath.Match(tempFilePattern, entry.Name()); !matched {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(threshold) {
			continue
		}

		fullPath := filepath.Join(s.baseDir, entry.Name())
		if err := os.Remove(fullPath); err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"file":  fullPath,
				"error": err,
			}).Warn("임시 파일 삭제 실패: 파일 제거 오류")
			continue
		}
		applog.WithComponentAndFields(component, applog.Fields{
			"file": fullPath,
		}).Info("임시 파일 삭제 완료: 이전 실행 잔존 파일 정리")
	}
}

func (s *fileStore) Get(_ context.Context, session, key string) ([]byte, error) {
	filename, err := s.resolveSafePath(session, key)
	if err != nil {
		return nil, err
	}

	var data []byte
	err = s.locks.WithLock(strings.ToLower(filename), func() error {
		var readErr error
		data, readErr = os.ReadFile(filename)
		if readErr != nil {
			if errors.Is(readErr, fs.ErrNotExist) {
				return ErrNotFound
			}
			return NewErrReadFailed(readErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return data, nil
}

func (s *fileStore) Put(_ context.Context, session, key string, value []byte) error {
	filename, err := s.resolveSafePath(session, key)
	if err != nil {
		return err
	}

	return s.locks.WithLock(strings.ToLower(filename), func() error {
		return s.writeAtomic(filename, value)
	})
}

func (s *fileStore) Delete(_ context.Context, session, key string) error {
	filename, err := s.resolveSafePath(session, key)
	if err != nil {
		return err
	}

	return s.locks.WithLock(strings.ToLower(filename), func() error {
		if err := os.Remove(filename); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return NewErrWriteFailed(err, "파일 삭제")
		}
		return nil
	})
}

func (s *fileStore) Close() error {
	return nil
}

// resolveSafePath 세션/키로 만든 파일 경로가 저장 디렉토리를 벗어나지 않는지 검증합니다.
// 단순 접두사 비교 대신 filepath.Rel을 사용해 형제 디렉토리 우회도 차단합니다.
func (s *fileStore) resolveSafePath(session, key string) (string, error) {
	if session == "" || key == "" {
		return "", ErrInvalidKey
	}

	filename := generateFilename(session, key)
	cleanPath := filepath.Clean(filepath.Join(s.baseDir, filename))

	rel, err := filepath.Rel(s.baseDir, cleanPath)
	if err != nil {
		return "", NewErrPathResolutionFailed(err)
	}
	if strings.HasPrefix(rel, "..") || strings.ContainsRune(rel, filepath.Separator) {
		applog.WithComponentAndFields(component, applog.Fields{
			"filename": filename,
			"base_dir": s.baseDir,
			"rel_path": rel,
		}).Error("파일 경로 생성 차단: 경로 이탈 시도 감지")

		return "", ErrPathTraversalDetected
	}

	return cleanPath, nil
}

// writeAtomic 임시 파일에 쓰고 fsync한 뒤 rename하여, 저장 도중 장애가 나도
// 이전 값 또는 새 값 중 하나만 남도록 합니다.
func (s *fileStore) writeAtomic(filename string, data []byte) error {
	dir := filepath.Dir(filename)

	tmpFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return NewErrWriteFailed(err, "임시 파일 생성")
	}
	tmpPath := tmpFile.Name()

	// Windows에서는 열린 파일을 삭제할 수 없으므로 Close가 Remove보다 먼저 실행되어야 한다.
	defer os.Remove(tmpPath)
	defer tmpFile.Close()

	if _, err := tmpFile.Write(data); err != nil {
		return NewErrWriteFailed(err, "파일 쓰기")
	}
	if err := tmpFile.Sync(); err != nil {
		return NewErrWriteFailed(err, "디스크 동기화")
	}
	if err := tmpFile.Close(); err != nil {
		return NewErrWriteFailed(err, "파일 닫기")
	}
	if err := renameWithRetry(tmpPath, filename); err != nil {
		return NewErrWriteFailed(err, "파일 이름 변경")
	}

	if dirFile, err := os.Open(dir); err == nil {
		_ = dirFile.Sync()
		dirFile.Close()
	}

	return nil
}

// renameWithRetry 백신, 인덱서 등이 파일을 잠시 잡고 있는 경우를 위해 짧게 재시도합니다.
func renameWithRetry(oldPath, newPath string) error {
	const maxRetries = 5
	const retryDelay = 10 * time.Millisecond

	var lastErr error
	for range maxRetries {
		if lastErr = os.Rename(oldPath, newPath); lastErr == nil {
			return nil
		}
		time.Sleep(retryDelay)
	}
	return lastErr
}
