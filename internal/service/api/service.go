// Package api Rarities Store의 HTTP API 서버를 제공합니다.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	_ "github.com/darkkaiser/rarities-store/docs"
	"github.com/darkkaiser/rarities-store/internal/config"
	"github.com/darkkaiser/rarities-store/internal/pkg/version"
	"github.com/darkkaiser/rarities-store/internal/service/api/constants"
	"github.com/darkkaiser/rarities-store/internal/service/api/handler/system"
	v1 "github.com/darkkaiser/rarities-store/internal/service/api/v1"
	v1handler "github.com/darkkaiser/rarities-store/internal/service/api/v1/handler"
	"github.com/darkkaiser/rarities-store/internal/storage"
	applog "github.com/darkkaiser/rarities-store/pkg/log"
	"github.com/labstack/echo/v4"
)

// CatalogService API가 사용하는 카탈로그 기능입니다. *catalog.Service가 구현합니다.
type CatalogService interface {
	v1handler.Catalog
	system.StatusProvider
}

// Service API 서버의 생명주기를 관리합니다.
//
// Start로 시작하면 별도 고루틴에서 HTTP 서버를 실행하고, 전달된 context가 취소되면
// Graceful Shutdown(최대 5초)을 수행한 뒤 WaitGroup에 완료를 알립니다.
type Service struct {
	appConfig *config.AppConfig

	catalog  CatalogService
	store    storage.Store
	checkout v1handler.Checkout

	buildInfo version.Info

	running   bool
	runningMu sync.Mutex
}

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, catalog CatalogService, store storage.Store, checkout v1handler.Checkout, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}
	if catalog == nil {
		panic(constants.PanicMsgCatalogRequired)
	}
	if store == nil {
		panic(constants.PanicMsgStoreRequired)
	}
	if checkout == nil {
		panic(constants.PanicMsgCheckoutRequired)
	}

	return &Service{
		appConfig: appConfig,

		catalog:  catalog,
		store:    store,
		checkout: checkout,

		buildInfo: buildInfo,
	}
}

// Start API 서비스를 시작합니다. 서버는 고루틴에서 실행되며 이 함수는 즉시 반환됩니다.
// 이미 실행 중이면 경고만 남기고 serviceStopWG.Done()을 호출합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarted)

	return nil
}

func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.setupServer()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer 핸들러, 미들웨어, 라우트가 구성된 Echo 인스턴스를 생성합니다.
func (s *Service) setupServer() *echo.Echo {
	systemHandler := system.New(s.catalog, s.buildInfo)
	v1Handler := v1handler.NewHandler(s.catalog, s.store, s.checkout, v1handler.Config{
		WholesaleThreshold: s.appConfig.Catalog.WholesaleThreshold,
		Currency:           s.appConfig.Checkout.Currency,
		RenderBatchSize:    s.appConfig.Render.BatchSize,
		RenderStagger:      s.appConfig.Render.Stagger,
	})

	e := NewHTTPServer(HTTPServerConfig{
		Debug:          s.appConfig.Debug,
		AllowOrigins:   s.appConfig.HTTP.AllowOrigins,
		RequestTimeout: s.appConfig.HTTP.RequestTimeout,
	})

	RegisterRoutes(e, systemHandler)
	v1.RegisterRoutes(e, v1Handler, s.appConfig.HTTP.SecureCookie)

	return e
}

// startHTTPServer HTTP 서버를 실행합니다. 서버가 종료될 때까지 반환되지 않으며, 종료되면 done을 닫습니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	port := s.appConfig.HTTP.ListenPort
	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": port,
	}).Debug(constants.LogMsgServiceHTTPServerStarting)

	s.handleServerError(e.Start(fmt.Sprintf(":%d", port)))
}

// handleServerError http.ErrServerClosed는 정상 종료로, 그 외의 에러는 치명적인 오류로 기록합니다.
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceHTTPServerStopped)
		return
	}

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.HTTP.ListenPort,
		"error": err,
	}).Error(constants.LogMsgServiceHTTPServerFatalError)
}

// waitForShutdown 종료 신호 또는 서버의 조기 종료를 기다린 뒤 정리합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)

	case <-httpServerDone:
		// 포트 바인딩 실패 등으로 서버가 먼저 종료됨
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)

		s.cleanup()

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgServiceHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup()
}

func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}
