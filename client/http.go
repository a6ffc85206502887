package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"earnings/customerrors"
	"earnings/middleware"

	"github.com/go-resty/resty/v2"
)

const DefaultTimeout = 15 * time.Second

func newRestyClient(baseURL string, timeout time.Duration) *resty.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "earnings-backend/1.0")

	c.OnAfterResponse(middleware.DecompressMiddleware)
	return c
}

// getJSON executes a GET and decodes a 2xx body into T.
func getJSON[T any](ctx context.Context, req *resty.Request, provider, path string) (*T, error) {
	resp, err := req.SetContext(ctx).Get(path)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", provider, err)
	}
	if !resp.IsSuccess() {
		return nil, &customerrors.UpstreamError{
			Provider:   provider,
			StatusCode: resp.StatusCode(),
			Body:       resp.String(),
		}
	}

	var out T
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("%s decode error: %w", provider, err)
	}
	return &out, nil
}
