package log

import (
	"errors"
	"io"
	"sync/atomic"
)

// closer Hook을 먼저 닫은 뒤 로그 파일들을 Sync/Close 합니다.
// 여러 번 호출해도 안전합니다.
type closer struct {
	closers []io.Closer
	hook    *hook
	closed  atomic.Bool
}

func (c *closer) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}

	if c.hook != nil {
		_ = c.hook.Close()
	}

	var errs error
	for _, cl := range c.closers {
		if cl == nil {
			continue
		}
		if s, ok := cl.(interface{ Sync() error }); ok {
			_ = s.Sync()
		}
		if err := cl.Close(); err != nil {
			errs = errors.Join(errs, err)
		}
	}

	return errs
}

// silentFormatter logrus 기본 출력 경로의 포맷팅 비용을 없애기 위한 포맷터입니다.
// 실제 포맷팅은 hook에서 수행합니다.
type silentFormatter struct{}

func (silentFormatter) Format(*Entry) ([]byte, error) {
	return nil, nil
}
