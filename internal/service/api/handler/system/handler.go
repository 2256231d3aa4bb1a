// Package system 헬스체크, 버전 정보 등 시스템 엔드포인트 핸들러를 제공합니다.
package system

import (
	"fmt"
	"net/http"
	"time"

	"github.com/darkkaiser/rarities-store/internal/catalog"
	"github.com/darkkaiser/rarities-store/internal/pkg/version"
	"github.com/darkkaiser/rarities-store/internal/service/api/constants"
	"github.com/darkkaiser/rarities-store/internal/service/api/model/system"
	applog "github.com/darkkaiser/rarities-store/pkg/log"
	"github.com/labstack/echo/v4"
)

// StatusProvider 카탈로그 적재 상태를 제공합니다.
type StatusProvider interface {
	Status() catalog.Status
}

// Handler 시스템 엔드포인트 핸들러 (헬스체크, 버전 정보)
type Handler struct {
	catalog StatusProvider

	buildInfo version.Info

	serverStartTime time.Time
}

// New Handler 인스턴스를 생성합니다.
func New(catalog StatusProvider, buildInfo version.Info) *Handler {
	if catalog == nil {
		panic(constants.PanicMsgStatusProviderRequired)
	}

	return &Handler{
		catalog: catalog,

		buildInfo: buildInfo,

		serverStartTime: time.Now(),
	}
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 서버와 상품 카탈로그의 상태를 확인합니다.
// @Description 카탈로그가 한 번도 적재되지 않았으면 unhealthy입니다. 갱신 실패 후에도 이전 카탈로그로 서비스 중이면 healthy이며 message에 마지막 오류를 담습니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "헬스체크 결과"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/health",
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	status := h.catalog.Status()

	dep := system.DependencyStatus{
		Status:  constants.HealthStatusHealthy,
		Message: fmt.Sprintf(constants.MsgDepStatusCatalogLoaded, status.Products),
	}
	if status.Loaded {
		loadedAt := status.LoadedAt
		dep.UpdatedAt = &loadedAt
		if status.LastError != "" {
			dep.Message = status.LastError
		}
	} else {
		dep.Status = constants.HealthStatusUnhealthy
		dep.Message = constants.MsgDepStatusCatalogNotLoaded
		if status.LastError != "" {
			dep.Message = status.LastError
		}
	}

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status:       dep.Status,
		Uptime:       int64(time.Since(h.serverStartTime).Seconds()),
		Dependencies: map[string]system.DependencyStatus{constants.DependencyCatalog: dep},
	})
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 서버의 버전, Git 커밋, 빌드 날짜, 빌드 번호, Go 버전을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/version",
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgVersionInfo)

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:     h.buildInfo.Version,
		Commit:      h.buildInfo.Commit,
		BuildDate:   h.buildInfo.BuildDate,
		BuildNumber: h.buildInfo.BuildNumber,
		GoVersion:   h.buildInfo.GoVersion,
		Platform:    h.buildInfo.OS + "/" + h.buildInfo.Arch,
	})
}
