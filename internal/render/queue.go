// Package render 항목들을 일정 크기의 묶음(batch)으로 나누어 시간차를 두고 내보내는 큐를 제공합니다.
//
// 한 번에 많은 이미지를 요청해 이미지 제공자의 요청 제한에 걸리지 않도록
// 묶음 안의 항목들을 stagger 간격으로 하나씩 내보냅니다. 새 패스(pass)를 시작하면
// 이전 패스의 아직 내보내지 않은 항목은 모두 무효화됩니다.
package render

import (
	"sync"
	"time"
)

const (
	// DefaultBatchSize 한 번에 예약하는 항목 수
	DefaultBatchSize = 10

	// DefaultStagger 묶음 안에서 항목 사이의 간격
	DefaultStagger = 150 * time.Millisecond
)

type config struct {
	batchSize   int
	stagger     time.Duration
	onBatchDone func(pass uint64, rendered, total int)
}

// Option Queue 생성 옵션입니다.
type Option func(*config)

// WithBatchSize 묶음 크기를 변경합니다. 0 이하의 값은 무시합니다.
func WithBatchSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.batchSize = n
		}
	}
}

// WithStagger 항목 사이의 간격을 변경합니다. 음수는 무시합니다.
func WithStagger(d time.Duration) Option {
	return func(c *config) {
		if d >= 0 {
			c.stagger = d
		}
	}
}

// WithOnBatchDone 묶음의 마지막 항목을 내보낸 직후, 아직 남은 항목이 있으면 호출될 함수를 지정합니다.
// 큐의 락 밖에서 호출되므로 함수 안에서 RevealPass를 호출해 다음 묶음을 예약할 수 있습니다.
func WithOnBatchDone(fn func(pass uint64, rendered, total int)) Option {
	return func(c *config) {
		c.onBatchDone = fn
	}
}

// Queue 취소 가능한 시간차 출력 큐입니다.
type Queue[T any] struct {
	mu sync.Mutex

	cfg  config
	emit func(pass uint64, index int, item T)

	pass  uint64
	items []T

	// rendered 예약이 끝난 항목 수. 예약 즉시 증가하므로 같은 묶음이 두 번 예약되지 않는다.
	rendered int

	// timers 아직 실행되지 않은 예약. 항목 위치가 키이며 실행되면 제거된다.
	timers map[int]*time.Timer
}

// NewQueue 큐를 생성합니다.
//
// emit은 큐의 락을 잡은 상태에서 호출되므로 패스가 바뀐 뒤에는 이전 패스의 항목이 절대 전달되지 않습니다.
// 대신 emit 안에서 Queue의 메서드를 호출하면 안 됩니다.
func NewQueue[T any](emit func(pass uint64, index int, item T), opts ...Option) *Queue[T] {
	cfg := config{
		batchSize: DefaultBatchSize,
		stagger:   DefaultStagger,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Queue[T]{
		cfg:    cfg,
		emit:   emit,
		timers: make(map[int]*time.Timer),
	}
}

// Start 새 패스를 시작하고 첫 묶음을 예약합니다. 이전 패스의 대기 중인 항목은 모두 취소됩니다.
func (q *Queue[T]) Start(items []T) uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.stopTimersLocked()

	q.pass++
	q.items = append([]T(nil), items...)
	q.rendered = 0

	q.scheduleLocked()

	return q.pass
}

// Reveal 현재 패스의 다음 묶음을 예약합니다. 남은 항목이 없으면 false를 반환합니다.
func (q *Queue[T]) Reveal() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.scheduleLocked()
}

// RevealPass pass가 현재 패스일 때만 다음 묶음을 예약합니다.
func (q *Queue[T]) RevealPass(pass uint64) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if pass != q.pass {
		return false
	}
	return q.scheduleLocked()
}

// Cancel 현재 패스를 무효화합니다. 대기 중인 항목은 더 이상 전달되지 않습니다.
func (q *Queue[T]) Cancel() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.stopTimersLocked()

	q.pass++
	q.items = nil
	q.rendered = 0
}

// Pass 현재 패스 번호를 반환합니다.
func (q *Queue[T]) Pass() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.pass
}

// Progress 현재 패스에서 예약된 항목 수와 전체 항목 수를 반환합니다.
func (q *Queue[T]) Progress() (rendered, total int) {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.rendered, len(q.items)
}

func (q *Queue[T]) scheduleLocked() bool {
	if q.rendered >= len(q.items) {
		return false
	}

	start := q.rendered
	end := min(start+q.cfg.batchSize, len(q.items))
	q.rendered = end

	pass := q.pass
	b := &batch{remaining: end - start}
	for i := start; i < end; i++ {
		delay := time.Duration(i-start) * q.cfg.stagger
		q.timers[i] = time.AfterFunc(delay, func() {
			q.fire(pass, i, b)
		})
	}
	return true
}

// batch 한 번에 예약된 항목들 중 아직 내보내지 않은 항목 수를 추적합니다.
// stagger가 0이면 타이머 실행 순서가 보장되지 않으므로 마지막 항목을 위치로 판단하지 않습니다.
type batch struct {
	remaining int
}

func (q *Queue[T]) fire(pass uint64, index int, b *batch) {
	q.mu.Lock()
	if pass != q.pass {
		q.mu.Unlock()
		return
	}
	delete(q.timers, index)
	q.emit(pass, index, q.items[index])

	b.remaining--
	done := b.remaining == 0
	rendered, total := q.rendered, len(q.items)
	q.mu.Unlock()

	if done && rendered < total && q.cfg.onBatchDone != nil {
		q.cfg.onBatchDone(pass, rendered, total)
	}
}

func (q *Queue[T]) stopTimersLocked() {
	for _, t := range q.timers {
		t.Stop()
	}
	clear(q.timers)
}
