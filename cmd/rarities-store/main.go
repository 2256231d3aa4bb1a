package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/darkkaiser/rarities-store/internal/catalog"
	"github.com/darkkaiser/rarities-store/internal/catalog/source"
	"github.com/darkkaiser/rarities-store/internal/checkout"
	"github.com/darkkaiser/rarities-store/internal/config"
	"github.com/darkkaiser/rarities-store/internal/fetcher"
	"github.com/darkkaiser/rarities-store/internal/pkg/version"
	"github.com/darkkaiser/rarities-store/internal/service/api"
	"github.com/darkkaiser/rarities-store/internal/service/refresher"
	"github.com/darkkaiser/rarities-store/internal/storage"
	applog "github.com/darkkaiser/rarities-store/pkg/log"
)

// @title Rarities Store API
// @version 1.0.0
// @description Creative Rarities 상품 카탈로그와 장바구니, WhatsApp 주문 메시지를 제공하는 REST API입니다.
// @description
// @description ## 주요 기능
// @description - 게시된 Google 스프레드시트(CSV)에서 상품 카탈로그 적재 및 주기적 갱신
// @description - 카테고리 필터, 검색, 정렬
// @description - 품번별 수량 합산에 따른 소매가/도매가 계산
// @description - WhatsApp 주문 메시지와 딥링크 생성
// @description
// @description ## 세션
// @description 장바구니와 언어 설정은 세션 단위로 저장됩니다.
// @description X-Session-ID 헤더 또는 rs_session 쿠키로 세션을 식별하며, 없으면 서버가 새로 발급합니다.

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser
// @contact.email darkkaiser@gmail.com

// @license.name MIT

// @host localhost:8080
// @BasePath /

const component = "main"

// initialLoadTimeout 서버 시작 시 최초 카탈로그 적재에 허용하는 최대 시간
const initialLoadTimeout = 90 * time.Second

const (
	banner = `
  ____             _ _   _             ____  _
 |  _ \ __ _ _ __ (_) |_(_) ___  ___  / ___|| |_ ___  _ __ ___
 | |_) / _' | '__|| | __| |/ _ \/ __| \___ \| __/ _ \| '__/ _ \
 |  _ < (_| | |   | | |_| |  __/\__ \  ___) | || (_) | | |  __/
 |_| \_\__,_|_|   |_|\__|_|\___||___/ |____/ \__\___/|_|  \___|
                                                        %s
                                                  developed by DarkKaiser
--------------------------------------------------------------------------------
`
)

// starter 메인 고루틴이 생명주기를 관리하는 서비스입니다.
type starter interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}

func main() {
	// 1. .env 및 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] .env 파일 로드 실패: %v\n", err)
		os.Exit(1)
	}

	appConfig, err := config.Load()
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	var logOpts applog.Options
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		logOpts = applog.NewProductionOptions(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	applog.SetDebugMode(appConfig.Debug)

	buildInfo := version.Get()

	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields(component, applog.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent(component).Warn(warning)
	}

	if err := run(appConfig, buildInfo); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": err,
		}).Error("서버 실행 실패로 프로그램을 종료합니다")

		appLogCloser.Close()
		os.Exit(1)
	}
}

func run(appConfig *config.AppConfig, buildInfo version.Info) error {
	// 카탈로그
	f := fetcher.New(fetcher.Config{
		Timeout:       appConfig.Catalog.Fetch.Timeout,
		MaxRetries:    appConfig.Catalog.Fetch.MaxRetries,
		MinRetryDelay: appConfig.Catalog.Fetch.RetryDelay,
		MaxBytes:      appConfig.Catalog.Fetch.MaxBytes,
	})
	catalogService := catalog.NewService(source.NewSheetLoader(f, appConfig.Catalog.SourceURL))

	loadCtx, loadCancel := context.WithTimeout(context.Background(), initialLoadTimeout)
	snapshot, err := catalogService.Reload(loadCtx)
	loadCancel()
	if err != nil {
		// 카탈로그 없이도 서버는 기동하며, 조회 API는 갱신에 성공할 때까지 503을 반환한다
		applog.WithComponentAndFields(component, applog.Fields{
			"error": err,
		}).Error("최초 카탈로그 적재 실패")
	} else {
		applog.WithComponentAndFields(component, applog.Fields{
			"products":   len(snapshot.Products),
			"categories": len(snapshot.Categories),
		}).Info("최초 카탈로그 적재 완료")
	}

	// 세션 저장소
	store, err := storage.Open(storage.Options{
		Driver: storage.Driver(appConfig.Storage.Driver),
		Dir:    appConfig.Storage.Dir,
		DSN:    appConfig.Storage.DSN,
	})
	if err != nil {
		return err
	}
	defer store.Close()

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	serviceStopWG := &sync.WaitGroup{}

	// 주문 알림 (선택)
	var notifier checkout.OrderNotifier = checkout.NopNotifier{}
	if appConfig.Notifier.Telegram.Enabled {
		telegramNotifier, err := checkout.NewTelegramNotifier(appConfig.Notifier.Telegram.BotToken, appConfig.Notifier.Telegram.ChatID, appConfig.Debug)
		if err != nil {
			// 알림은 부가 기능이므로 실패해도 주문 메시지 생성은 계속 제공한다
			applog.WithComponentAndFields(component, applog.Fields{
				"error": err,
			}).Error("텔레그램 주문 알림 초기화 실패: 알림 없이 계속 진행합니다")
		} else {
			telegramNotifier.Start(serviceStopCtx, serviceStopWG)
			notifier = telegramNotifier
		}
	}

	checkoutService := checkout.NewService(appConfig.Checkout.WhatsAppPhone, appConfig.Checkout.Currency, notifier)

	services := []starter{api.NewService(appConfig, catalogService, store, checkoutService, buildInfo)}
	if appConfig.Catalog.Refresh.Enabled {
		services = append(services, refresher.New(appConfig.Catalog.Refresh.TimeSpec, catalogService))
	}

	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			cancel() // 이미 시작된 서비스들도 종료
			serviceStopWG.Wait()

			return err
		}
	}

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponent(component).Info("서버 가동 완료")

	<-termC

	applog.WithComponent(component).Info("종료 신호 수신: 서비스를 중지합니다")
	cancel()
	serviceStopWG.Wait()

	return nil
}
