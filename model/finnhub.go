package model

// FinnhubQuote is the /quote payload. Finnhub answers unknown symbols with
// a 200 and all-zero fields.
type FinnhubQuote struct {
	Current       float64 `json:"c"`
	Change        float64 `json:"d"`
	PercentChange float64 `json:"dp"`
	High          Metric  `json:"h"`
	Low           Metric  `json:"l"`
	Open          Metric  `json:"o"`
	PreviousClose float64 `json:"pc"`
	Timestamp     int64   `json:"t"`
}

func (q FinnhubQuote) IsEmpty() bool {
	return q.Current == 0 && q.PreviousClose == 0 && q.Timestamp == 0
}

// FinnhubProfile is the /stock/profile2 payload.
type FinnhubProfile struct {
	Name                 string `json:"name"`
	Ticker               string `json:"ticker"`
	Exchange             string `json:"exchange"`
	Industry             string `json:"finnhubIndustry"`
	Country              string `json:"country"`
	Currency             string `json:"currency"`
	IPO                  string `json:"ipo"`
	Logo                 string `json:"logo"`
	WebURL               string `json:"weburl"`
	MarketCapitalization Metric `json:"marketCapitalization"`
	ShareOutstanding     Metric `json:"shareOutstanding"`
}

type FinnhubEarningsEvent struct {
	Symbol          string `json:"symbol"`
	Date            string `json:"date"`
	Hour            string `json:"hour"`
	Quarter         int    `json:"quarter"`
	Year            int    `json:"year"`
	EpsActual       Metric `json:"epsActual"`
	EpsEstimate     Metric `json:"epsEstimate"`
	RevenueActual   Metric `json:"revenueActual"`
	RevenueEstimate Metric `json:"revenueEstimate"`
}

// FinnhubEarningsCalendar is the /calendar/earnings payload.
type FinnhubEarningsCalendar struct {
	EarningsCalendar []FinnhubEarningsEvent `json:"earningsCalendar"`
}
