package model

// Quote is the current price and company profile for one symbol.
type Quote struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	PreviousClose float64 `json:"previousClose"`
	DayHigh       Metric  `json:"dayHigh"`
	DayLow        Metric  `json:"dayLow"`
	// MarketCap is reported in millions of the listing currency.
	MarketCap Metric `json:"marketCap"`
	Industry  Text   `json:"industry"`
	Exchange  Text   `json:"exchange"`
	Currency  Text   `json:"currency"`
}

// DisplayName returns the company name, or the symbol when the profile had none.
func (q Quote) DisplayName() string {
	if q.Name != "" {
		return q.Name
	}
	return q.Symbol
}
