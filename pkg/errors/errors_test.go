package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_CarriesCodeAndStack(t *testing.T) {
	err := New(CodeTemplateNotFound, "no template for records_request")
	require.NotNil(t, err)
	assert.Equal(t, CodeTemplateNotFound, err.Code)
	assert.Contains(t, err.Error(), "DRAFT_001")
	assert.Contains(t, err.Error(), "no template for records_request")
	assert.NotEmpty(t, err.Stack)
}

func TestError_DetailSegment(t *testing.T) {
	err := InvalidParam("text too short").WithDetail("got 4 characters")
	assert.Equal(t, "[COMMON_002] text too short: got 4 characters", err.Error())

	bare := InvalidParam("text too short")
	assert.Equal(t, "[COMMON_002] text too short", bare.Error())
}

func TestWrap_NilPassthrough(t *testing.T) {
	assert.Nil(t, Wrap(nil, CodeRenderFailed, "should be nil"))
}

func TestWrap_PreservesCodeWhenUnknown(t *testing.T) {
	inner := New(CodeCategoryUnknown, "no such category")
	outer := Wrap(inner, CodeUnknown, "resolution failed")
	assert.Equal(t, CodeCategoryUnknown, outer.Code)
	assert.True(t, stderrors.Is(outer, outer))

	var ae *AppError
	require.True(t, stderrors.As(outer, &ae))
	assert.ErrorIs(t, outer, outer)
	assert.Equal(t, inner, stderrors.Unwrap(outer))
}

func TestIsCode_TraversesChain(t *testing.T) {
	inner := New(CodeTextTooShort, "too short")
	outer := Wrap(inner, CodeInternal, "pipeline rejected input")
	assert.True(t, IsCode(outer, CodeTextTooShort))
	assert.True(t, IsCode(outer, CodeInternal))
	assert.False(t, IsCode(outer, CodeRenderFailed))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("gone")))
	assert.True(t, IsNotFound(New(CodeTemplateNotFound, "no template")))
	assert.True(t, IsNotFound(New(CodeCategoryUnknown, "no category")))
	assert.False(t, IsNotFound(Internal("boom")))
	assert.False(t, IsNotFound(stderrors.New("plain")))
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(New(CodeTextTooShort, "short")))
	assert.True(t, IsValidation(InvalidParam("bad")))
	assert.False(t, IsValidation(Internal("boom")))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, CodeOK, GetCode(nil))
	assert.Equal(t, CodeUnknown, GetCode(stderrors.New("plain")))
	assert.Equal(t, CodeRenderFailed, GetCode(New(CodeRenderFailed, "render")))
}

func TestHTTPStatus(t *testing.T) {
	cases := map[ErrorCode]int{
		CodeOK:              http.StatusOK,
		CodeTextTooShort:    http.StatusBadRequest,
		CodeTemplateNotFound: http.StatusNotFound,
		CodeRateLimit:       http.StatusTooManyRequests,
		CodeFeatureDisabled: http.StatusServiceUnavailable,
		CodeInternal:        http.StatusInternalServerError,
		CodeUnknown:         http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, HTTPStatus(code), "code %s", code)
	}
}
