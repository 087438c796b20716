package errors

import "net/http"

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes
const (
	CodeOK              ErrorCode = "OK"
	CodeUnknown         ErrorCode = "COMMON_000"
	CodeInternal        ErrorCode = "COMMON_001"
	CodeInvalidParam    ErrorCode = "COMMON_002"
	CodeNotFound        ErrorCode = "COMMON_003"
	CodeRateLimit       ErrorCode = "COMMON_004"
	CodeValidation      ErrorCode = "COMMON_005"
	CodeSerialization   ErrorCode = "COMMON_006"
	CodeFeatureDisabled ErrorCode = "COMMON_007"
	CodeTimeout         ErrorCode = "COMMON_008"
)

// Inference pipeline error codes
const (
	// CodeTextTooShort: input below the minimum length the pipeline accepts.
	CodeTextTooShort ErrorCode = "INF_001"
	// CodeTextTooLong: input above the maximum accepted length.
	CodeTextTooLong ErrorCode = "INF_002"
	// CodeIntentInvalid: a caller supplied an intent string outside the enum.
	CodeIntentInvalid ErrorCode = "INF_003"
	// CodeRuleEngineFailed: the primary rule matcher failed on well-formed
	// input.  This indicates a dictionary/configuration bug and is fatal for
	// the request.
	CodeRuleEngineFailed ErrorCode = "INF_004"
	// CodeStageDegraded: a secondary stage (NLP, semantic) failed and was
	// skipped.  Never surfaced to callers as a request failure; used for
	// metric labels only.
	CodeStageDegraded ErrorCode = "INF_005"
)

// Authority resolution error codes
const (
	// CodeCategoryUnknown: the issue category is not in the directory.
	CodeCategoryUnknown ErrorCode = "AUTH_001"
	// CodeStateUnknown: the state name did not normalise to a known state.
	CodeStateUnknown ErrorCode = "AUTH_002"
)

// Draft assembly error codes
const (
	CodeTemplateNotFound   ErrorCode = "DRAFT_001"
	CodeDocumentTypeInvalid ErrorCode = "DRAFT_002"
)

// Document rendering error codes
const (
	CodeRenderFailed      ErrorCode = "RENDER_001"
	CodeFormatUnsupported ErrorCode = "RENDER_002"
)

// Enhancement error codes
const (
	// CodeEnhanceFailed: the enhancer backend returned an error.
	CodeEnhanceFailed ErrorCode = "ENH_001"
	// CodePlaceholderLost: enhancement dropped a [PLACEHOLDER] token; the
	// original text is kept and this code records why.
	CodePlaceholderLost ErrorCode = "ENH_002"
)

// HTTPStatus maps an ErrorCode to the HTTP status code the interfaces layer
// should respond with.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case CodeOK:
		return http.StatusOK
	case CodeInvalidParam, CodeValidation, CodeTextTooShort, CodeTextTooLong,
		CodeIntentInvalid, CodeDocumentTypeInvalid, CodeFormatUnsupported:
		return http.StatusBadRequest
	case CodeNotFound, CodeTemplateNotFound, CodeCategoryUnknown:
		return http.StatusNotFound
	case CodeRateLimit:
		return http.StatusTooManyRequests
	case CodeFeatureDisabled:
		return http.StatusServiceUnavailable
	case CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
