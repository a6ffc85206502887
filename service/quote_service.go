package service

import (
	"context"
	"errors"
	"fmt"

	"earnings/cache"
	"earnings/customerrors"
	"earnings/model"
	"earnings/util"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

type QuoteService interface {
	GetQuote(ctx context.Context, symbol string) (model.Quote, error)
}

type QuoteServiceImpl struct {
	provider QuoteProvider
	cache    *cache.Store
	inflight singleflight.Group
}

func NewQuoteService(provider QuoteProvider, store *cache.Store) *QuoteServiceImpl {
	return &QuoteServiceImpl{
		provider: provider,
		cache:    store,
	}
}

// GetQuote returns the cached quote for symbol or fetches quote and profile
// concurrently. Any upstream failure is reported as a *customerrors.QuoteFetchError
// and nothing is cached.
func (s *QuoteServiceImpl) GetQuote(ctx context.Context, symbol string) (model.Quote, error) {
	sym := util.NormalizeSymbol(symbol)
	if sym == "" {
		return model.Quote{}, &customerrors.QuoteFetchError{Symbol: symbol, Err: customerrors.ErrInvalidSymbol}
	}

	if q, ok := cache.Get[model.Quote](s.cache, cache.QuoteNamespace, sym); ok {
		log.Debug().Str("symbol", sym).Msg("quote cache hit")
		return q, nil
	}

	if err := ctx.Err(); err != nil {
		return model.Quote{}, &customerrors.QuoteFetchError{Symbol: sym, Err: err}
	}

	// The flight is shared, so it runs detached and each caller only waits
	// on its own context.
	ch := s.inflight.DoChan(sym, func() (any, error) {
		// a previous flight may have filled the cache after our miss
		if q, ok := cache.Get[model.Quote](s.cache, cache.QuoteNamespace, sym); ok {
			return q, nil
		}
		fctx, cancel := detach(ctx)
		defer cancel()
		return s.fetch(fctx, sym)
	})

	select {
	case <-ctx.Done():
		return model.Quote{}, &customerrors.QuoteFetchError{Symbol: sym, Err: ctx.Err()}
	case res := <-ch:
		if res.Err != nil {
			return model.Quote{}, res.Err
		}
		return res.Val.(model.Quote), nil
	}
}

func (s *QuoteServiceImpl) fetch(ctx context.Context, sym string) (model.Quote, error) {
	var (
		quote   *model.FinnhubQuote
		profile *model.FinnhubProfile
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		q, err := s.provider.GetQuote(gctx, sym)
		if err != nil {
			return fmt.Errorf("quote lookup: %w", err)
		}
		if q == nil {
			return errors.New("quote lookup: empty response")
		}
		quote = q
		return nil
	})
	g.Go(func() error {
		p, err := s.provider.GetProfile(gctx, sym)
		if err != nil {
			return fmt.Errorf("profile lookup: %w", err)
		}
		if p == nil {
			return errors.New("profile lookup: empty response")
		}
		profile = p
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Warn().Err(err).Str("symbol", sym).Msg("quote fetch failed")
		return model.Quote{}, &customerrors.QuoteFetchError{Symbol: sym, Err: err}
	}

	q := buildQuote(sym, quote, profile)
	cache.Set(s.cache, cache.QuoteNamespace, sym, q)
	log.Debug().Str("symbol", sym).Float64("price", q.Price).Msg("quote cached")
	return q, nil
}

func buildQuote(sym string, quote *model.FinnhubQuote, profile *model.FinnhubProfile) model.Quote {
	return model.Quote{
		Symbol:        sym,
		Name:          profile.Name,
		Price:         quote.Current,
		Change:        quote.Change,
		ChangePercent: quote.PercentChange,
		PreviousClose: quote.PreviousClose,
		DayHigh:       quote.High,
		DayLow:        quote.Low,
		MarketCap:     profile.MarketCapitalization,
		Industry:      model.Text(profile.Industry),
		Exchange:      model.Text(profile.Exchange),
		Currency:      model.Text(profile.Currency),
	}
}
