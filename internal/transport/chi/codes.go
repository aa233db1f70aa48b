package chi

// ErrorCode identifies the class of an API error.
type ErrorCode string

// API error codes.
const (
	CodeBadRequest           ErrorCode = "bad_request"
	CodeValidationFailed     ErrorCode = "validation_failed"
	CodeNotFound             ErrorCode = "not_found"
	CodeRateLimited          ErrorCode = "rate_limited"
	CodeSearchProviderError  ErrorCode = "search_provider_error"
	CodeSuggestionsDisabled  ErrorCode = "suggestions_disabled"
	CodeSuggestionError      ErrorCode = "suggestion_provider_error"
	CodeSurveyStoreError     ErrorCode = "survey_store_error"
	CodeInternalError        ErrorCode = "internal_error"
)

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}
