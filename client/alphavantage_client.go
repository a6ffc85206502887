package client

import (
	"context"
	"fmt"
	"time"

	"earnings/customerrors"
	"earnings/model"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const alphaVantageBaseURL = "https://www.alphavantage.co"

type AlphaVantageClient struct {
	client  *resty.Client
	apiKey  string
	limiter *rate.Limiter
}

func NewAlphaVantageClient(apiKey string, timeout time.Duration) *AlphaVantageClient {
	return NewAlphaVantageClientWithBaseURL(alphaVantageBaseURL, apiKey, timeout)
}

func NewAlphaVantageClientWithBaseURL(baseURL, apiKey string, timeout time.Duration) *AlphaVantageClient {
	return &AlphaVantageClient{
		client: newRestyClient(baseURL, timeout),
		apiKey: apiKey,
	}
}

// WithRateLimit spaces outbound calls to at most rpm per minute. The free
// tier rejects bursts with a "Note" payload instead of an HTTP error.
func (a *AlphaVantageClient) WithRateLimit(rpm int) *AlphaVantageClient {
	if rpm > 0 {
		a.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), rpm)
	}
	return a
}

func (a *AlphaVantageClient) GetEarnings(ctx context.Context, symbol string) (*model.AlphaVantageEarnings, error) {
	out, err := query[model.AlphaVantageEarnings](ctx, a, "EARNINGS", symbol)
	if err != nil {
		return nil, err
	}
	if err := noticeError(out.AlphaVantageNotice); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *AlphaVantageClient) GetOverview(ctx context.Context, symbol string) (*model.AlphaVantageOverview, error) {
	out, err := query[model.AlphaVantageOverview](ctx, a, "OVERVIEW", symbol)
	if err != nil {
		return nil, err
	}
	if err := noticeError(out.AlphaVantageNotice); err != nil {
		return nil, err
	}
	return out, nil
}

func query[T any](ctx context.Context, a *AlphaVantageClient, function, symbol string) (*T, error) {
	if a.limiter != nil {
		if err := a.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("alphavantage throttle: %w", err)
		}
	}

	req := a.client.R().SetQueryParams(map[string]string{
		"function": function,
		"symbol":   symbol,
		"apikey":   a.apiKey,
	})
	return getJSON[T](ctx, req, "alphavantage", "/query")
}

// noticeError turns Alpha Vantage's 200-with-message replies into errors.
func noticeError(n model.AlphaVantageNotice) error {
	switch {
	case n.ErrorMessage != "":
		return fmt.Errorf("alphavantage: %s", n.ErrorMessage)
	case n.Note != "" || n.Information != "":
		return fmt.Errorf("%w: %s", customerrors.ErrProviderThrottled, n.Message())
	}
	return nil
}
