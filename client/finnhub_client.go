package client

import (
	"context"
	"fmt"
	"time"

	"earnings/customerrors"
	"earnings/model"
	"earnings/util"

	"github.com/go-resty/resty/v2"
)

const finnhubBaseURL = "https://finnhub.io/api/v1"

type FinnhubClient struct {
	client *resty.Client
}

func NewFinnhubClient(apiKey string, timeout time.Duration) *FinnhubClient {
	return NewFinnhubClientWithBaseURL(finnhubBaseURL, apiKey, timeout)
}

func NewFinnhubClientWithBaseURL(baseURL, apiKey string, timeout time.Duration) *FinnhubClient {
	c := newRestyClient(baseURL, timeout).
		SetHeader("X-Finnhub-Token", apiKey)

	return &FinnhubClient{client: c}
}

// GetQuote fetches the real-time quote. Finnhub answers unknown symbols with
// an all-zero body, which is reported as ErrSymbolNotFound.
func (f *FinnhubClient) GetQuote(ctx context.Context, symbol string) (*model.FinnhubQuote, error) {
	quote, err := getJSON[model.FinnhubQuote](ctx, f.client.R().SetQueryParam("symbol", symbol), "finnhub", "/quote")
	if err != nil {
		return nil, err
	}
	if quote.IsEmpty() {
		return nil, fmt.Errorf("%w: %s", customerrors.ErrSymbolNotFound, symbol)
	}
	return quote, nil
}

func (f *FinnhubClient) GetProfile(ctx context.Context, symbol string) (*model.FinnhubProfile, error) {
	return getJSON[model.FinnhubProfile](ctx, f.client.R().SetQueryParam("symbol", symbol), "finnhub", "/stock/profile2")
}

func (f *FinnhubClient) GetEarningsCalendar(ctx context.Context, symbol string, from, to time.Time) (*model.FinnhubEarningsCalendar, error) {
	req := f.client.R().SetQueryParams(map[string]string{
		"symbol": symbol,
		"from":   util.FormatDate(from),
		"to":     util.FormatDate(to),
	})
	return getJSON[model.FinnhubEarningsCalendar](ctx, req, "finnhub", "/calendar/earnings")
}
