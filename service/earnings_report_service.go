package service

import (
	"context"
	"fmt"

	"earnings/customerrors"
	"earnings/model"
	"earnings/util"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const DefaultBatchConcurrency = 10

type EarningsReportService interface {
	GetReport(ctx context.Context, symbol string) (*model.EarningsReport, error)
	GetBatch(ctx context.Context, symbols []string) ([]model.BatchResult, error)
}

type EarningsReportServiceImpl struct {
	quotes      QuoteService
	earnings    EarningsService
	summaries   SummaryService
	concurrency int
}

func NewEarningsReportService(quotes QuoteService, earnings EarningsService, summaries SummaryService, concurrency int) *EarningsReportServiceImpl {
	if concurrency <= 0 {
		concurrency = DefaultBatchConcurrency
	}
	return &EarningsReportServiceImpl{
		quotes:      quotes,
		earnings:    earnings,
		summaries:   summaries,
		concurrency: concurrency,
	}
}

// GetReport fetches quote and earnings concurrently and summarizes them once
// both are in. Only a quote failure fails the report.
func (s *EarningsReportServiceImpl) GetReport(ctx context.Context, symbol string) (*model.EarningsReport, error) {
	sym := util.NormalizeSymbol(symbol)
	if sym == "" {
		return nil, customerrors.ErrInvalidSymbol
	}

	var (
		quote    model.Quote
		snapshot model.EarningsSnapshot
	)

	// A plain group: a quote failure must not cancel the earnings fetch,
	// whose result may still be cached for the next request.
	var g errgroup.Group
	goSafe(&g, func() error {
		q, err := s.quotes.GetQuote(ctx, sym)
		if err != nil {
			return err
		}
		quote = q
		return nil
	})
	goSafe(&g, func() error {
		snapshot = s.earnings.GetEarnings(ctx, sym)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &model.EarningsReport{
		Stock:    quote,
		Earnings: snapshot,
		Summary:  s.summaries.Generate(ctx, quote, snapshot),
	}, nil
}

// GetBatch builds a report per symbol on a bounded pool. Results keep input
// order and carry per-symbol failures. An error is returned only when the
// batch itself could not be run.
func (s *EarningsReportServiceImpl) GetBatch(ctx context.Context, symbols []string) ([]model.BatchResult, error) {
	results := make([]model.BatchResult, len(symbols))

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, symbol := range symbols {
		if err := ctx.Err(); err != nil {
			_ = g.Wait()
			return nil, fmt.Errorf("batch aborted: %w", err)
		}
		g.Go(func() error {
			results[i] = s.batchEntry(ctx, symbol)
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
		}
	}
	log.Info().Int("symbols", len(symbols)).Int("failed", failed).Msg("batch completed")
	return results, nil
}

func (s *EarningsReportServiceImpl) batchEntry(ctx context.Context, symbol string) (result model.BatchResult) {
	result.Symbol = symbol
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("symbol", symbol).Msg("recovered panic in batch entry")
			result = model.BatchResult{Symbol: symbol, Success: false, Error: "internal error"}
		}
	}()

	report, err := s.GetReport(ctx, symbol)
	if err != nil {
		return model.BatchResult{Symbol: symbol, Success: false, Error: err.Error()}
	}
	return model.BatchResult{Symbol: symbol, Success: true, Data: report}
}
