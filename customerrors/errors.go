package customerrors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSymbol         = errors.New("symbol is required")
	ErrMalformedBatchRequest = errors.New("batch request must carry an array of symbols")
	ErrProviderThrottled     = errors.New("provider rate limit reached")
	ErrSymbolNotFound        = errors.New("symbol not found")
	ErrNoTextGenerator       = errors.New("no text generation provider configured")
	ErrEmptyCompletion       = errors.New("text generation returned no content")
)

// QuoteFetchError means the quote or profile lookup for Symbol failed. It is
// fatal to that symbol's report only.
type QuoteFetchError struct {
	Symbol string
	Err    error
}

func (e *QuoteFetchError) Error() string {
	return fmt.Sprintf("failed to fetch quote for %s: %v", e.Symbol, e.Err)
}

func (e *QuoteFetchError) Unwrap() error {
	return e.Err
}

// UpstreamError is a non-2xx answer from a provider.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	body := e.Body
	if len(body) > 200 {
		body = body[:200]
	}
	return fmt.Sprintf("%s api error (status %d): %s", e.Provider, e.StatusCode, body)
}
