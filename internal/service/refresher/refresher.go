// Package refresher Cron 스케줄에 맞춰 카탈로그를 주기적으로 다시 읽어들이는 서비스를 제공합니다.
package refresher

import (
	"context"
	"sync"
	"time"

	"github.com/darkkaiser/rarities-store/internal/catalog"
	"github.com/darkkaiser/rarities-store/pkg/cronx"
	applog "github.com/darkkaiser/rarities-store/pkg/log"
	"github.com/robfig/cron/v3"
)

// component Refresher 서비스의 로깅용 컴포넌트 이름
const component = "refresher.service"

// defaultReloadTimeout 한 번의 갱신 작업에 허용하는 최대 시간
const defaultReloadTimeout = 2 * time.Minute

// Reloader 카탈로그를 다시 읽어들입니다. *catalog.Service가 구현합니다.
type Reloader interface {
	Reload(ctx context.Context) (*catalog.Snapshot, error)
}

var _ Reloader = (*catalog.Service)(nil)

// Refresher 설정된 Cron 표현식(6필드)에 따라 카탈로그 갱신을 실행합니다.
//
// 갱신에 실패하면 이전 스냅샷이 그대로 유지되므로 로그만 남기고 다음 스케줄을 기다립니다.
type Refresher struct {
	timeSpec string
	reloader Reloader

	reloadTimeout time.Duration

	cron *cron.Cron

	running   bool
	runningMu sync.Mutex
}

// New 새로운 Refresher 인스턴스를 생성합니다.
func New(timeSpec string, reloader Reloader) *Refresher {
	if reloader == nil {
		panic("Reloader는 필수입니다")
	}

	return &Refresher{
		timeSpec: timeSpec,
		reloader: reloader,

		reloadTimeout: defaultReloadTimeout,
	}
}

// Start 갱신 스케줄을 등록하고 Cron 엔진을 시작합니다.
//
// serviceStopCtx가 취소되면 진행 중인 갱신이 끝나기를 기다린 뒤 serviceStopWG.Done()을 호출합니다.
// Cron 표현식이 잘못된 경우에는 즉시 serviceStopWG.Done()을 호출하고 에러를 반환합니다.
func (r *Refresher) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	r.runningMu.Lock()
	defer r.runningMu.Unlock()

	applog.WithComponent(component).Info("서비스 시작 진입: 카탈로그 갱신 서비스를 초기화합니다")

	if r.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("카탈로그 갱신 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	c := cron.New(
		cron.WithParser(cronx.StandardParser()),
		cron.WithLogger(cron.VerbosePrintfLogger(applog.StandardLogger())),
		cron.WithChain(
			cron.Recover(cron.VerbosePrintfLogger(applog.StandardLogger())),
			cron.SkipIfStillRunning(cron.VerbosePrintfLogger(applog.StandardLogger())),
		),
	)

	if _, err := c.AddFunc(r.timeSpec, func() { r.reload(serviceStopCtx) }); err != nil {
		serviceStopWG.Done()

		err = NewErrInvalidTimeSpec(r.timeSpec, err)
		applog.WithComponentAndFields(component, applog.Fields{
			"time_spec": r.timeSpec,
			"error":     err,
		}).Error("서비스 시작 실패: 갱신 스케줄을 등록하지 못했습니다")

		return err
	}

	r.cron = c
	r.cron.Start()
	r.running = true

	applog.WithComponentAndFields(component, applog.Fields{
		"time_spec": r.timeSpec,
	}).Info("서비스 시작 완료: 카탈로그 갱신 스케줄이 등록되었습니다")

	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		r.stop()
	}()

	return nil
}

func (r *Refresher) stop() {
	r.runningMu.Lock()
	defer r.runningMu.Unlock()

	if !r.running {
		return
	}

	applog.WithComponent(component).Info("종료 절차 진입: 카탈로그 갱신 서비스 중지 시그널을 수신했습니다")

	// 실행 중인 갱신 작업 완료 대기
	ctx := r.cron.Stop()
	<-ctx.Done()

	r.cron = nil
	r.running = false

	applog.WithComponent(component).Info("카탈로그 갱신 서비스 종료 완료")
}

// reload 한 번의 갱신을 수행합니다. 서비스 종료 시에는 진행 중인 다운로드도 함께 취소됩니다.
func (r *Refresher) reload(serviceStopCtx context.Context) {
	ctx, cancel := context.WithTimeout(serviceStopCtx, r.reloadTimeout)
	defer cancel()

	startedAt := time.Now()

	snapshot, err := r.reloader.Reload(ctx)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": err,
		}).Warn("카탈로그 갱신 실패: 이전 카탈로그를 유지합니다")
		return
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"products":    len(snapshot.Products),
		"categories":  len(snapshot.Categories),
		"duration_ms": time.Since(startedAt).Milliseconds(),
	}).Info("카탈로그 갱신 완료")
}
