package service

import (
	"context"
	"time"

	"earnings/model"
)

//go:generate mockgen -package=service_test -destination=mock_providers_test.go -source=providers.go

// QuoteProvider is the market-data upstream (Finnhub).
type QuoteProvider interface {
	GetQuote(ctx context.Context, symbol string) (*model.FinnhubQuote, error)
	GetProfile(ctx context.Context, symbol string) (*model.FinnhubProfile, error)
}

// FundamentalsProvider is the earnings and company-overview upstream (Alpha Vantage).
type FundamentalsProvider interface {
	GetEarnings(ctx context.Context, symbol string) (*model.AlphaVantageEarnings, error)
	GetOverview(ctx context.Context, symbol string) (*model.AlphaVantageOverview, error)
}

// EarningsCalendarProvider supplies upcoming report dates.
type EarningsCalendarProvider interface {
	GetEarningsCalendar(ctx context.Context, symbol string, from, to time.Time) (*model.FinnhubEarningsCalendar, error)
}

// TextGenerator is an LLM backend that turns a prompt into prose.
type TextGenerator interface {
	Name() string
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
