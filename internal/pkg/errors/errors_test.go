package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// 생성 및 메시지
// =============================================================================

func TestNewAndWrap_ErrorString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"New", New(NotFound, "상품 없음"), "[NotFound] 상품 없음"},
		{"Newf", Newf(InvalidInput, "잘못된 인덱스: %d", 7), "[InvalidInput] 잘못된 인덱스: 7"},
		{"Wrap", Wrap(stderrors.New("boom"), System, "저장 실패"), "[System] 저장 실패: boom"},
		{"Wrapf", Wrapf(stderrors.New("eof"), ParsingFailed, "%s 해석 실패", "csv"), "[ParsingFailed] csv 해석 실패: eof"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestWrap_NilError(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Wrap(nil, Internal, "무시"))
	assert.Nil(t, Wrapf(nil, Internal, "무시 %d", 1))
}

func TestErrorType_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Unavailable", Unavailable.String())
	assert.Equal(t, "ExecutionFailed", ExecutionFailed.String())
	assert.Equal(t, "ErrorType(99)", ErrorType(99).String())
}

// =============================================================================
// 체인 탐색
// =============================================================================

func TestIsAndUnderlyingType(t *testing.T) {
	t.Parallel()

	root := stderrors.New("sql: no rows")
	err := Wrap(Wrap(root, NotFound, "상품 조회 실패"), Internal, "장바구니 담기 실패")

	assert.True(t, Is(err, NotFound))
	assert.True(t, Is(err, Internal))
	assert.False(t, Is(err, Conflict))
	assert.Equal(t, NotFound, UnderlyingType(err))
	assert.Equal(t, Unknown, UnderlyingType(root))
	assert.Same(t, root, RootCause(err))
	assert.Nil(t, RootCause(nil))

	var appErr *AppError
	require.True(t, As(err, &appErr))
	assert.Equal(t, Internal, appErr.Type())
	assert.Equal(t, "장바구니 담기 실패", appErr.Message())
}

func TestFormat_StackTrace(t *testing.T) {
	t.Parallel()

	err := Wrap(New(NotFound, "inner"), Internal, "outer")
	out := fmt.Sprintf("%+v", err)

	assert.Contains(t, out, "[Internal] outer")
	assert.Contains(t, out, "Caused by:")
	assert.Contains(t, out, "[NotFound] inner")
	assert.Equal(t, 1, strings.Count(out, "Stack trace:"), "스택은 체인 경계에서 한 번만 출력되어야 합니다")
	assert.Equal(t, err.Error(), fmt.Sprintf("%s", err))
	assert.Equal(t, fmt.Sprintf("%q", err.Error()), fmt.Sprintf("%q", err))
}

func TestCaptureStack_PointsToCaller(t *testing.T) {
	t.Parallel()

	err := New(Internal, "here")
	var appErr *AppError
	require.True(t, As(err, &appErr))
	require.NotEmpty(t, appErr.Stack())
	assert.Equal(t, "errors_test.go", appErr.Stack()[0].File)
	assert.LessOrEqual(t, len(appErr.Stack()), maxStackFrames)
}
