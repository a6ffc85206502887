package service_test

import (
	"context"
	"time"

	"earnings/cache"
	"earnings/model"
)

func newStore() *cache.Store {
	return cache.New(time.Minute, 0, 0)
}

func finnhubQuote(price, change, pct, prev float64) *model.FinnhubQuote {
	return &model.FinnhubQuote{
		Current:       price,
		Change:        change,
		PercentChange: pct,
		High:          model.Some(price + 1),
		Low:           model.Some(price - 1),
		PreviousClose: prev,
		Timestamp:     1735689600,
	}
}

func finnhubProfile(name string) *model.FinnhubProfile {
	return &model.FinnhubProfile{
		Name:                 name,
		Exchange:             "NASDAQ NMS - GLOBAL MARKET",
		Industry:             "Technology",
		Currency:             "USD",
		MarketCapitalization: model.Some(2500000),
	}
}

func quarter(fiscal string, reported, estimated float64) model.QuarterlyEarnings {
	return model.QuarterlyEarnings{
		FiscalDateEnding:   model.Text(fiscal),
		ReportedDate:       model.Text(fiscal),
		ReportedEPS:        model.Some(reported),
		EstimatedEPS:       model.Some(estimated),
		Surprise:           model.Some(reported - estimated),
		SurprisePercentage: model.Some((reported - estimated) / estimated * 100),
	}
}

type quoteFunc func(ctx context.Context, symbol string) (model.Quote, error)

func (f quoteFunc) GetQuote(ctx context.Context, symbol string) (model.Quote, error) {
	return f(ctx, symbol)
}

type earningsFunc func(ctx context.Context, symbol string) model.EarningsSnapshot

func (f earningsFunc) GetEarnings(ctx context.Context, symbol string) model.EarningsSnapshot {
	return f(ctx, symbol)
}

type summaryFunc func(ctx context.Context, q model.Quote, e model.EarningsSnapshot) string

func (f summaryFunc) Generate(ctx context.Context, q model.Quote, e model.EarningsSnapshot) string {
	return f(ctx, q, e)
}
