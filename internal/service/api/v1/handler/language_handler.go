package handler

import (
	"context"
	"net/http"

	"github.com/darkkaiser/rarities-store/internal/catalog/i18n"
	"github.com/darkkaiser/rarities-store/internal/service/api/constants"
	"github.com/darkkaiser/rarities-store/internal/service/api/httputil"
	"github.com/darkkaiser/rarities-store/internal/service/api/middleware"
	"github.com/darkkaiser/rarities-store/internal/service/api/v1/model/request"
	"github.com/darkkaiser/rarities-store/internal/service/api/v1/model/response"
	"github.com/darkkaiser/rarities-store/internal/storage"
	"github.com/labstack/echo/v4"
)

func newLanguageResponse(lang i18n.Lang) response.LanguageResponse {
	return response.LanguageResponse{
		Lang:     string(lang),
		Dir:      lang.Dir(),
		Messages: i18n.For(lang),
	}
}

// GetLanguageHandler godoc
// @Summary 언어 설정 조회
// @Description 세션의 언어 설정과 해당 언어의 화면 문구를 반환합니다. 설정이 없으면 영어입니다.
// @Tags Session
// @Produce json
// @Param X-Session-ID header string false "세션 ID"
// @Success 200 {object} response.LanguageResponse "언어 설정"
// @Router /api/v1/session/language [get]
func (h *Handler) GetLanguageHandler(c echo.Context) error {
	lang := h.loadLang(c.Request().Context(), middleware.SessionID(c))

	return c.JSON(http.StatusOK, newLanguageResponse(lang))
}

// PutLanguageHandler godoc
// @Summary 언어 설정 변경
// @Tags Session
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "세션 ID"
// @Param language body request.LanguageRequest true "언어"
// @Success 200 {object} response.LanguageResponse "변경된 언어 설정"
// @Failure 400 {object} response.ErrorResponse "지원하지 않는 언어"
// @Router /api/v1/session/language [put]
func (h *Handler) PutLanguageHandler(c echo.Context) error {
	req := new(request.LanguageRequest)
	if err := c.Bind(req); err != nil {
		return httputil.NewBadRequestError(constants.ErrMsgBadRequestInvalidBody)
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	lang, ok := i18n.ParseLang(req.Lang)
	if !ok {
		return httputil.NewBadRequestError(constants.ErrMsgInvalidLanguage)
	}

	err := h.withSession(c, func(ctx context.Context, session string) error {
		return h.store.Put(ctx, session, storage.KeyLang, []byte(lang))
	})
	if err != nil {
		return err
	}

	h.log(c).WithField("lang", lang).Debug("언어 설정 변경")

	return c.JSON(http.StatusOK, newLanguageResponse(lang))
}
