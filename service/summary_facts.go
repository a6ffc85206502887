package service

import (
	"fmt"
	"math"
	"strings"

	"earnings/model"
	"earnings/util"
)

// summaryFacts is the presentable view of a quote and snapshot. Both the
// prompt and the template read from it, so they agree on what is shown.
type summaryFacts struct {
	Symbol        string
	Name          string
	Price         float64
	Change        float64
	ChangePercent float64
	MarketCap     model.Metric
	Industry      model.Text

	FiscalDateEnding   model.Text
	ReportedEPS        model.Metric
	EstimatedEPS       model.Metric
	SurprisePercentage model.Metric
	NextEarningsDate   model.Text

	Revenue      model.Metric
	ProfitMargin model.Metric
	PERatio      model.Metric
	ForwardPE    model.Metric
	Week52High   model.Metric
	Week52Low    model.Metric
}

func newSummaryFacts(q model.Quote, e model.EarningsSnapshot) summaryFacts {
	return summaryFacts{
		Symbol:        q.Symbol,
		Name:          q.DisplayName(),
		Price:         q.Price,
		Change:        q.Change,
		ChangePercent: q.ChangePercent,
		MarketCap:     q.MarketCap,
		Industry:      q.Industry,

		FiscalDateEnding:   e.LatestEarnings.FiscalDateEnding,
		ReportedEPS:        e.LatestEarnings.ReportedEPS,
		EstimatedEPS:       e.LatestEarnings.EstimatedEPS,
		SurprisePercentage: e.LatestEarnings.SurprisePercentage,
		NextEarningsDate:   e.LatestEarnings.NextEarningsDate,

		Revenue:      e.Overview.Revenue,
		ProfitMargin: e.Overview.ProfitMargin,
		PERatio:      e.Overview.PERatio,
		ForwardPE:    e.Overview.ForwardPE,
		Week52High:   e.Overview.Week52High,
		Week52Low:    e.Overview.Week52Low,
	}
}

// title is "Apple Inc (AAPL)", or just the symbol when no name is known.
func (f summaryFacts) title() string {
	if f.Name == "" || strings.EqualFold(f.Name, f.Symbol) {
		return f.Symbol
	}
	return fmt.Sprintf("%s (%s)", f.Name, f.Symbol)
}

func (f summaryFacts) hasEPSComparison() bool {
	return f.ReportedEPS.Present() && f.EstimatedEPS.Present()
}

func (f summaryFacts) hasRange() bool {
	return f.Week52High.Present() && f.Week52Low.Present() && f.Week52High.Value > f.Week52Low.Value
}

func (f summaryFacts) hasValuation() bool {
	return f.PERatio.Present() && f.PERatio.Value > 0 && f.PERatio.Value < 100
}

const analystSystemPrompt = "You are a financial analyst providing concise, insightful earnings summaries."

// buildPrompt lists only the fields that are present.
func buildPrompt(f summaryFacts) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze the following earnings data for %s:\n\n", f.title())

	fmt.Fprintf(&b, "Current Price: %s\n", util.FormatMoney(f.Price))
	fmt.Fprintf(&b, "Daily Change: %s (%s)\n", util.FormatMoney(f.Change), util.FormatSignedPercent(f.ChangePercent))
	if f.MarketCap.Present() {
		fmt.Fprintf(&b, "Market Cap: %s\n", util.FormatLargeNumber(f.MarketCap.Value*1e6))
	}
	if f.Industry.Present() {
		fmt.Fprintf(&b, "Industry: %s\n", f.Industry)
	}

	var earnings []string
	if f.ReportedEPS.Present() {
		earnings = append(earnings, "Reported EPS: "+util.FormatMoney(f.ReportedEPS.Value))
	}
	if f.EstimatedEPS.Present() {
		earnings = append(earnings, "Estimated EPS: "+util.FormatMoney(f.EstimatedEPS.Value))
	}
	if f.SurprisePercentage.Present() {
		earnings = append(earnings, fmt.Sprintf("Surprise: %.2f%%", f.SurprisePercentage.Value))
	}
	if f.NextEarningsDate.Present() {
		earnings = append(earnings, "Next Earnings Date: "+f.NextEarningsDate.String())
	}
	writeSection(&b, latestHeading(f), earnings)

	var metrics []string
	if f.Revenue.Present() {
		metrics = append(metrics, "Revenue (TTM): "+util.FormatLargeNumber(f.Revenue.Value))
	}
	if f.ProfitMargin.Present() {
		metrics = append(metrics, fmt.Sprintf("Profit Margin: %.1f%%", f.ProfitMargin.Value*100))
	}
	if f.PERatio.Present() {
		metrics = append(metrics, fmt.Sprintf("P/E Ratio: %.2f", f.PERatio.Value))
	}
	if f.ForwardPE.Present() {
		metrics = append(metrics, fmt.Sprintf("Forward P/E: %.2f", f.ForwardPE.Value))
	}
	if f.hasRange() {
		metrics = append(metrics, fmt.Sprintf("52-Week Range: %s - %s", util.FormatMoney(f.Week52Low.Value), util.FormatMoney(f.Week52High.Value)))
	}
	writeSection(&b, "Company Metrics", metrics)

	b.WriteString("\nProvide a concise summary (3-4 sentences) of the company's earnings performance, ")
	b.WriteString("key highlights, and what investors should note. Focus on the most important insights.")
	return b.String()
}

func latestHeading(f summaryFacts) string {
	if f.FiscalDateEnding.Present() {
		return "Latest Earnings (quarter ending " + f.FiscalDateEnding.String() + ")"
	}
	return "Latest Earnings"
}

func writeSection(b *strings.Builder, heading string, lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s:\n", heading)
	for _, l := range lines {
		fmt.Fprintf(b, "- %s\n", l)
	}
}

// templateSummary is the deterministic local summary. It only needs a quote.
func templateSummary(f summaryFacts) string {
	sentences := []string{priceSentence(f), earningsSentence(f)}

	if f.Revenue.Present() {
		s := "The company reported TTM revenue of " + util.FormatLargeNumber(f.Revenue.Value)
		if f.ProfitMargin.Present() {
			s += fmt.Sprintf(" with a profit margin of %.1f%%", f.ProfitMargin.Value*100)
		}
		sentences = append(sentences, s+".")
	}

	if f.hasValuation() {
		pe := f.PERatio.Value
		var view string
		switch {
		case pe < 15:
			view = "the stock appears to be valued conservatively"
		case pe > 30:
			view = "the stock reflects high growth expectations"
		default:
			view = "the valuation appears reasonable relative to the market"
		}
		sentences = append(sentences, fmt.Sprintf("Trading at a P/E ratio of %.1f, %s.", pe, view))
	}

	if f.hasRange() {
		sentences = append(sentences, rangeSentence(f))
	}

	if f.NextEarningsDate.Present() {
		sentences = append(sentences, "The next earnings report is expected on "+util.HumanDate(f.NextEarningsDate.String())+".")
	}

	return strings.Join(sentences, " ")
}

func priceSentence(f summaryFacts) string {
	move := "unchanged on the day"
	switch {
	case f.Change > 0:
		move = fmt.Sprintf("up %s (%s) on the day", util.FormatMoney(f.Change), util.FormatSignedPercent(f.ChangePercent))
	case f.Change < 0:
		move = fmt.Sprintf("down %s (%s) on the day", util.FormatMoney(math.Abs(f.Change)), util.FormatSignedPercent(f.ChangePercent))
	}
	return fmt.Sprintf("%s is trading at %s, %s.", f.title(), util.FormatMoney(f.Price), move)
}

func earningsSentence(f summaryFacts) string {
	if !f.hasEPSComparison() {
		if f.ReportedEPS.Present() {
			return fmt.Sprintf("The latest quarter came in at %s per share.", util.FormatMoney(f.ReportedEPS.Value))
		}
		return "No recent earnings report is available."
	}

	reported := util.FormatMoney(f.ReportedEPS.Value)
	estimated := util.FormatMoney(f.EstimatedEPS.Value)
	switch {
	case f.ReportedEPS.Value > f.EstimatedEPS.Value:
		s := fmt.Sprintf("The company beat earnings expectations with EPS of %s vs. estimated %s", reported, estimated)
		if f.SurprisePercentage.Present() {
			s += fmt.Sprintf(", a positive surprise of %.2f%%", math.Abs(f.SurprisePercentage.Value))
		}
		return s + "."
	case f.ReportedEPS.Value < f.EstimatedEPS.Value:
		s := fmt.Sprintf("The company missed earnings expectations with EPS of %s vs. estimated %s", reported, estimated)
		if f.SurprisePercentage.Present() {
			s += fmt.Sprintf(", falling short by %.2f%%", math.Abs(f.SurprisePercentage.Value))
		}
		return s + "."
	default:
		return fmt.Sprintf("The company met earnings expectations with EPS of %s.", reported)
	}
}

func rangeSentence(f summaryFacts) string {
	low, high := f.Week52Low.Value, f.Week52High.Value
	pos := (f.Price - low) / (high - low) * 100

	var where string
	switch {
	case pos >= 80:
		where = "near the top of"
	case pos <= 20:
		where = "near the bottom of"
	default:
		where = "in the middle of"
	}
	return fmt.Sprintf("The share price sits %s its 52-week range of %s to %s.", where, util.FormatMoney(low), util.FormatMoney(high))
}
