package domain

import "errors"

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrValidation signals invalid request input.
	ErrValidation = errors.New("validation failed")
	// ErrRateLimited signals a rate limit hit.
	ErrRateLimited = errors.New("rate limited")
	// ErrSearchProviderError signals an upstream search provider failure.
	ErrSearchProviderError = errors.New("search provider error")
	// ErrSuggestionProviderError signals an AI provider failure.
	ErrSuggestionProviderError = errors.New("suggestion provider error")
	// ErrSuggestionsDisabled signals that no AI provider is configured.
	ErrSuggestionsDisabled = errors.New("suggestions disabled")
	// ErrSurveyStoreError signals a survey storage backend failure.
	ErrSurveyStoreError = errors.New("survey store error")
)
