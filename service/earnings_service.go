package service

import (
	"context"
	"errors"
	"slices"
	"sort"
	"time"

	"earnings/cache"
	"earnings/model"
	"earnings/util"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// calendarWindow is how far ahead the next report date is searched for.
const calendarWindow = 90 * 24 * time.Hour

type EarningsService interface {
	// GetEarnings never fails. Missing upstream data yields the
	// unavailable snapshot.
	GetEarnings(ctx context.Context, symbol string) model.EarningsSnapshot
}

type EarningsServiceImpl struct {
	fundamentals  FundamentalsProvider
	calendar      EarningsCalendarProvider
	cache         *cache.Store
	nullResultTTL time.Duration
	inflight      singleflight.Group
	now           func() time.Time
}

// NewEarningsService wires the fundamentals source and an optional calendar
// source. A nullResultTTL of zero disables caching of unavailable snapshots.
func NewEarningsService(fundamentals FundamentalsProvider, calendar EarningsCalendarProvider, store *cache.Store, nullResultTTL time.Duration) *EarningsServiceImpl {
	return &EarningsServiceImpl{
		fundamentals:  fundamentals,
		calendar:      calendar,
		cache:         store,
		nullResultTTL: nullResultTTL,
		now:           time.Now,
	}
}

func (s *EarningsServiceImpl) GetEarnings(ctx context.Context, symbol string) model.EarningsSnapshot {
	sym := util.NormalizeSymbol(symbol)
	if sym == "" {
		return model.UnavailableEarnings()
	}

	if snap, ok := cache.Get[model.EarningsSnapshot](s.cache, cache.EarningsNamespace, sym); ok {
		log.Debug().Str("symbol", sym).Bool("available", snap.Available).Msg("earnings cache hit")
		return snap
	}

	if ctx.Err() != nil {
		return model.UnavailableEarnings()
	}

	ch := s.inflight.DoChan(sym, func() (any, error) {
		if snap, ok := cache.Get[model.EarningsSnapshot](s.cache, cache.EarningsNamespace, sym); ok {
			return snap, nil
		}
		fctx, cancel := detach(ctx)
		defer cancel()
		return s.fetch(fctx, sym), nil
	})

	select {
	case <-ctx.Done():
		log.Debug().Str("symbol", sym).Msg("earnings wait abandoned")
		return model.UnavailableEarnings()
	case res := <-ch:
		snap := res.Val.(model.EarningsSnapshot)
		if res.Shared {
			snap.HistoricalEarnings = slices.Clone(snap.HistoricalEarnings)
		}
		return snap
	}
}

func (s *EarningsServiceImpl) fetch(ctx context.Context, sym string) model.EarningsSnapshot {
	var (
		earnings    *model.AlphaVantageEarnings
		earningsErr error
		overview    *model.AlphaVantageOverview
		nextDate    model.Text
	)

	// Secondary lookups are best-effort, so siblings are never cancelled.
	var g errgroup.Group
	g.Go(func() error {
		earnings, earningsErr = s.fundamentals.GetEarnings(ctx, sym)
		return nil
	})
	g.Go(func() error {
		o, err := s.fundamentals.GetOverview(ctx, sym)
		if err != nil {
			log.Warn().Err(err).Str("symbol", sym).Msg("company overview unavailable")
			return nil
		}
		overview = o
		return nil
	})
	if s.calendar != nil {
		g.Go(func() error {
			nextDate = s.nextEarningsDate(ctx, sym)
			return nil
		})
	}
	_ = g.Wait()

	if earningsErr != nil || earnings == nil || !earnings.HasData() {
		ev := log.Warn().Str("symbol", sym)
		if earningsErr != nil {
			ev = ev.Err(earningsErr)
		}
		ev.Msg("no earnings data, returning unavailable snapshot")

		snap := model.UnavailableEarnings()
		if ctx.Err() == nil && !isContextError(earningsErr) {
			cache.SetWithTTL(s.cache, cache.EarningsNamespace, sym, snap, s.nullResultTTL)
		}
		return snap
	}

	snap := buildSnapshot(earnings, overview, nextDate)
	cache.Set(s.cache, cache.EarningsNamespace, sym, snap)
	return snap
}

// nextEarningsDate returns the earliest scheduled report inside the calendar window.
func (s *EarningsServiceImpl) nextEarningsDate(ctx context.Context, sym string) model.Text {
	today := s.now().UTC().Truncate(24 * time.Hour)
	cal, err := s.calendar.GetEarningsCalendar(ctx, sym, today, today.Add(calendarWindow))
	if err != nil || cal == nil {
		if err != nil {
			log.Warn().Err(err).Str("symbol", sym).Msg("earnings calendar unavailable")
		}
		return ""
	}

	var next string
	for _, ev := range cal.EarningsCalendar {
		if ev.Date == "" || (ev.Symbol != "" && util.NormalizeSymbol(ev.Symbol) != sym) {
			continue
		}
		d, err := util.ParseDate(ev.Date)
		if err != nil || d.Before(today) {
			continue
		}
		if next == "" || ev.Date < next {
			next = ev.Date
		}
	}
	return model.Text(next)
}

func buildSnapshot(earnings *model.AlphaVantageEarnings, overview *model.AlphaVantageOverview, nextDate model.Text) model.EarningsSnapshot {
	quarters := slices.Clone(earnings.QuarterlyEarnings)
	sort.SliceStable(quarters, func(i, j int) bool {
		return quarters[i].FiscalDateEnding.String() > quarters[j].FiscalDateEnding.String()
	})
	if len(quarters) > model.MaxHistoricalQuarters {
		quarters = quarters[:model.MaxHistoricalQuarters]
	}
	if quarters == nil {
		quarters = []model.QuarterlyEarnings{}
	}

	snap := model.EarningsSnapshot{
		Available:          true,
		HistoricalEarnings: quarters,
	}
	if len(quarters) > 0 {
		latest := quarters[0]
		snap.LatestEarnings = model.LatestEarnings{
			FiscalDateEnding:   latest.FiscalDateEnding,
			ReportedDate:       latest.ReportedDate,
			ReportedEPS:        latest.ReportedEPS,
			EstimatedEPS:       latest.EstimatedEPS,
			Surprise:           latest.Surprise,
			SurprisePercentage: latest.SurprisePercentage,
		}
	}
	snap.LatestEarnings.NextEarningsDate = nextDate
	if overview != nil {
		snap.Overview = overview.ToOverview()
	}
	return snap
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
