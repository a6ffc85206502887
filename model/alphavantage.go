package model

// AlphaVantageNotice holds the fields Alpha Vantage fills instead of data
// when a key is throttled or a call is rejected.
type AlphaVantageNotice struct {
	Note         string `json:"Note,omitempty"`
	Information  string `json:"Information,omitempty"`
	ErrorMessage string `json:"Error Message,omitempty"`
}

func (n AlphaVantageNotice) Message() string {
	switch {
	case n.ErrorMessage != "":
		return n.ErrorMessage
	case n.Note != "":
		return n.Note
	default:
		return n.Information
	}
}

type AnnualEarnings struct {
	FiscalDateEnding Text   `json:"fiscalDateEnding"`
	ReportedEPS      Metric `json:"reportedEPS"`
}

// AlphaVantageEarnings is the function=EARNINGS payload.
type AlphaVantageEarnings struct {
	AlphaVantageNotice
	Symbol            string              `json:"symbol"`
	AnnualEarnings    []AnnualEarnings    `json:"annualEarnings"`
	QuarterlyEarnings []QuarterlyEarnings `json:"quarterlyEarnings"`
}

func (e AlphaVantageEarnings) HasData() bool {
	return len(e.QuarterlyEarnings) > 0 || len(e.AnnualEarnings) > 0
}

// AlphaVantageOverview is the subset of function=OVERVIEW this service reads.
type AlphaVantageOverview struct {
	AlphaVantageNotice
	Symbol             string `json:"Symbol"`
	Name               string `json:"Name"`
	Sector             string `json:"Sector"`
	Industry           string `json:"Industry"`
	RevenueTTM         Metric `json:"RevenueTTM"`
	RevenuePerShareTTM Metric `json:"RevenuePerShareTTM"`
	ProfitMargin       Metric `json:"ProfitMargin"`
	OperatingMarginTTM Metric `json:"OperatingMarginTTM"`
	ReturnOnEquityTTM  Metric `json:"ReturnOnEquityTTM"`
	PERatio            Metric `json:"PERatio"`
	ForwardPE          Metric `json:"ForwardPE"`
	PEGRatio           Metric `json:"PEGRatio"`
	Beta               Metric `json:"Beta"`
	Week52High         Metric `json:"52WeekHigh"`
	Week52Low          Metric `json:"52WeekLow"`
}

func (o AlphaVantageOverview) ToOverview() Overview {
	return Overview{
		Revenue:         o.RevenueTTM,
		RevenuePerShare: o.RevenuePerShareTTM,
		ProfitMargin:    o.ProfitMargin,
		OperatingMargin: o.OperatingMarginTTM,
		ReturnOnEquity:  o.ReturnOnEquityTTM,
		PERatio:         o.PERatio,
		ForwardPE:       o.ForwardPE,
		PEGRatio:        o.PEGRatio,
		Beta:            o.Beta,
		Week52High:      o.Week52High,
		Week52Low:       o.Week52Low,
	}
}
