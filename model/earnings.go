package model

import "encoding/json"

// MaxHistoricalQuarters caps how many prior quarterly reports a snapshot keeps.
const MaxHistoricalQuarters = 4

type LatestEarnings struct {
	FiscalDateEnding   Text   `json:"fiscalDateEnding"`
	ReportedDate       Text   `json:"reportedDate"`
	ReportedEPS        Metric `json:"reportedEPS"`
	EstimatedEPS       Metric `json:"estimatedEPS"`
	Surprise           Metric `json:"surprise"`
	SurprisePercentage Metric `json:"surprisePercentage"`
	NextEarningsDate   Text   `json:"nextEarningsDate"`
}

type Overview struct {
	Revenue         Metric `json:"revenue"`
	RevenuePerShare Metric `json:"revenuePerShare"`
	ProfitMargin    Metric `json:"profitMargin"`
	OperatingMargin Metric `json:"operatingMargin"`
	ReturnOnEquity  Metric `json:"returnOnEquity"`
	PERatio         Metric `json:"peRatio"`
	ForwardPE       Metric `json:"forwardPE"`
	PEGRatio        Metric `json:"pegRatio"`
	Beta            Metric `json:"beta"`
	Week52High      Metric `json:"week52High"`
	Week52Low       Metric `json:"week52Low"`
}

// QuarterlyEarnings mirrors one entry of Alpha Vantage's quarterlyEarnings list.
type QuarterlyEarnings struct {
	FiscalDateEnding   Text   `json:"fiscalDateEnding"`
	ReportedDate       Text   `json:"reportedDate"`
	ReportedEPS        Metric `json:"reportedEPS"`
	EstimatedEPS       Metric `json:"estimatedEPS"`
	Surprise           Metric `json:"surprise"`
	SurprisePercentage Metric `json:"surprisePercentage"`
	ReportTime         Text   `json:"reportTime"`
}

// EarningsSnapshot is the fundamentals view of a symbol. Available is false
// for the null-result, in which every figure is absent.
type EarningsSnapshot struct {
	Available          bool                `json:"available"`
	LatestEarnings     LatestEarnings      `json:"latestEarnings"`
	Overview           Overview            `json:"overview"`
	HistoricalEarnings []QuarterlyEarnings `json:"historicalEarnings"`
}

// MarshalJSON always renders historicalEarnings as a list.
func (e EarningsSnapshot) MarshalJSON() ([]byte, error) {
	type snapshot EarningsSnapshot
	if e.HistoricalEarnings == nil {
		e.HistoricalEarnings = []QuarterlyEarnings{}
	}
	return json.Marshal(snapshot(e))
}

// UnavailableEarnings builds the null-result snapshot.
func UnavailableEarnings() EarningsSnapshot {
	return EarningsSnapshot{
		Available:          false,
		HistoricalEarnings: []QuarterlyEarnings{},
	}
}

// EarningsReport is the assembled answer for one symbol.
type EarningsReport struct {
	Stock    Quote            `json:"stock"`
	Earnings EarningsSnapshot `json:"earnings"`
	Summary  string           `json:"summary"`
}

// BatchResult is one symbol's outcome within a batch request.
type BatchResult struct {
	Symbol  string          `json:"symbol"`
	Success bool            `json:"success"`
	Data    *EarningsReport `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}
