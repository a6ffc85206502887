package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"earnings/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quote(symbol string, price float64) model.Quote {
	return model.Quote{Symbol: symbol, Name: symbol + " Inc", Price: price, DayHigh: model.Some(price + 1)}
}

func TestKey_NormalizesSymbol(t *testing.T) {
	assert.Equal(t, "quote:AAPL", Key(QuoteNamespace, " aapl "))
	assert.Equal(t, "earnings:MSFT", Key(EarningsNamespace, "msft"))
}

func TestStore_SetThenGetWithinTTL(t *testing.T) {
	s := New(time.Minute, 0, 0)
	want := quote("AAPL", 150)

	Set(s, QuoteNamespace, "AAPL", want)

	got, ok := Get[model.Quote](s, QuoteNamespace, "aapl")
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestStore_ExpiredEntryIsAbsent(t *testing.T) {
	s := New(30*time.Millisecond, 0, 0)
	Set(s, QuoteNamespace, "AAPL", quote("AAPL", 150))

	time.Sleep(60 * time.Millisecond)

	_, ok := Get[model.Quote](s, QuoteNamespace, "AAPL")
	assert.False(t, ok, "expired entry must never be returned")
}

func TestStore_OverwriteReplacesValue(t *testing.T) {
	s := New(time.Minute, 0, 0)
	Set(s, QuoteNamespace, "AAPL", quote("AAPL", 150))
	Set(s, QuoteNamespace, "AAPL", quote("AAPL", 151))

	got, ok := Get[model.Quote](s, QuoteNamespace, "AAPL")
	require.True(t, ok)
	assert.Equal(t, 151.0, got.Price)
	assert.Equal(t, 1, s.Len())
}

func TestStore_FlushDropsEverything(t *testing.T) {
	s := New(time.Minute, 0, 0)
	Set(s, QuoteNamespace, "AAPL", quote("AAPL", 150))
	SetWithTTL(s, EarningsNamespace, "AAPL", model.UnavailableEarnings(), time.Second)
	require.Equal(t, 2, s.Len())

	s.Flush()

	assert.Zero(t, s.Len())
	_, ok := Get[model.Quote](s, QuoteNamespace, "AAPL")
	assert.False(t, ok)
}

func TestStore_OverwriteRefreshesTimestamp(t *testing.T) {
	s := New(80*time.Millisecond, 0, 0)
	Set(s, QuoteNamespace, "AAPL", quote("AAPL", 150))
	time.Sleep(50 * time.Millisecond)
	Set(s, QuoteNamespace, "AAPL", quote("AAPL", 151))
	time.Sleep(50 * time.Millisecond)

	got, ok := Get[model.Quote](s, QuoteNamespace, "AAPL")
	require.True(t, ok)
	assert.Equal(t, 151.0, got.Price)
}

func TestStore_NamespacesAreSeparate(t *testing.T) {
	s := New(time.Minute, 0, 0)
	Set(s, QuoteNamespace, "AAPL", quote("AAPL", 150))

	_, ok := Get[model.EarningsSnapshot](s, EarningsNamespace, "AAPL")
	assert.False(t, ok)
}

func TestStore_WrongTypeIsAbsent(t *testing.T) {
	s := New(time.Minute, 0, 0)
	Set(s, QuoteNamespace, "AAPL", quote("AAPL", 150))

	_, ok := Get[model.EarningsSnapshot](s, QuoteNamespace, "AAPL")
	assert.False(t, ok)
}

func TestStore_ReturnsCopies(t *testing.T) {
	s := New(time.Minute, 0, 0)
	snap := model.EarningsSnapshot{
		Available: true,
		HistoricalEarnings: []model.QuarterlyEarnings{
			{ReportedEPS: model.Some(1.5)},
		},
	}
	Set(s, EarningsNamespace, "AAPL", snap)

	// mutating the caller's value after Set must not reach the cache
	snap.HistoricalEarnings[0].ReportedEPS = model.Some(99)

	first, ok := Get[model.EarningsSnapshot](s, EarningsNamespace, "AAPL")
	require.True(t, ok)
	require.Len(t, first.HistoricalEarnings, 1)
	assert.Equal(t, 1.5, first.HistoricalEarnings[0].ReportedEPS.Value)

	first.HistoricalEarnings[0].ReportedEPS = model.Some(42)

	second, ok := Get[model.EarningsSnapshot](s, EarningsNamespace, "AAPL")
	require.True(t, ok)
	assert.Equal(t, 1.5, second.HistoricalEarnings[0].ReportedEPS.Value)
}

func TestStore_SetWithNonPositiveTTLStoresNothing(t *testing.T) {
	s := New(time.Minute, 0, 0)
	SetWithTTL(s, EarningsNamespace, "AAPL", model.UnavailableEarnings(), 0)

	_, ok := Get[model.EarningsSnapshot](s, EarningsNamespace, "AAPL")
	assert.False(t, ok)
}

func TestStore_SetWithTTLUsesEntryLifetime(t *testing.T) {
	s := New(time.Minute, 0, 0)
	SetWithTTL(s, EarningsNamespace, "AAPL", model.UnavailableEarnings(), 30*time.Millisecond)

	_, ok := Get[model.EarningsSnapshot](s, EarningsNamespace, "AAPL")
	require.True(t, ok)

	time.Sleep(60 * time.Millisecond)
	_, ok = Get[model.EarningsSnapshot](s, EarningsNamespace, "AAPL")
	assert.False(t, ok)
}

func TestStore_MaxItemsEvictsOldest(t *testing.T) {
	s := New(time.Minute, 0, 2)

	Set(s, QuoteNamespace, "AAA", quote("AAA", 1))
	time.Sleep(2 * time.Millisecond)
	Set(s, QuoteNamespace, "BBB", quote("BBB", 2))
	time.Sleep(2 * time.Millisecond)
	Set(s, QuoteNamespace, "CCC", quote("CCC", 3))

	assert.Equal(t, 2, s.Len())
	_, ok := Get[model.Quote](s, QuoteNamespace, "AAA")
	assert.False(t, ok, "oldest entry should have been evicted")
	_, ok = Get[model.Quote](s, QuoteNamespace, "CCC")
	assert.True(t, ok)
}

func TestStore_MaxItemsOverwriteDoesNotEvict(t *testing.T) {
	s := New(time.Minute, 0, 2)
	Set(s, QuoteNamespace, "AAA", quote("AAA", 1))
	Set(s, QuoteNamespace, "BBB", quote("BBB", 2))
	Set(s, QuoteNamespace, "AAA", quote("AAA", 10))

	assert.Equal(t, 2, s.Len())
	_, ok := Get[model.Quote](s, QuoteNamespace, "BBB")
	assert.True(t, ok)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := New(time.Minute, 0, 50)
	var wg sync.WaitGroup

	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				sym := fmt.Sprintf("S%d", j%10)
				Set(s, QuoteNamespace, sym, quote(sym, float64(n)))
				if got, ok := Get[model.Quote](s, QuoteNamespace, sym); ok {
					// never a torn value: name and symbol always agree
					assert.Equal(t, sym+" Inc", got.Name)
				}
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, s.Len(), 50)
}
