package httputil

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/darkkaiser/rarities-store/internal/service/api/constants"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator echo.Validator 구현체입니다. 요청 모델의 validate 태그를 검사합니다.
type RequestValidator struct {
	validate *validator.Validate
}

var _ echo.Validator = (*RequestValidator)(nil)

// NewRequestValidator json 태그 이름으로 필드를 표시하는 RequestValidator를 생성합니다.
func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &RequestValidator{validate: v}
}

// Validate 검증에 실패하면 필드별 사유를 담은 400 에러를 반환합니다.
func (rv *RequestValidator) Validate(i any) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return NewBadRequestError(constants.ErrMsgBadRequest)
	}

	reasons := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		reasons = append(reasons, describe(fe))
	}
	return NewBadRequestError(strings.Join(reasons, ", "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s은(는) 필수입니다", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s은(는) [%s] 중 하나여야 합니다", fe.Field(), fe.Param())
	case "min", "gte":
		return fmt.Sprintf("%s은(는) %s 이상이어야 합니다", fe.Field(), fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s은(는) %s 이하여야 합니다", fe.Field(), fe.Param())
	case "ne":
		return fmt.Sprintf("%s은(는) %s일 수 없습니다", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s 값이 올바르지 않습니다 (%s)", fe.Field(), fe.Tag())
	}
}
